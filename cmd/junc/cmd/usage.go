package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

func usage() string {
	invoc := filepath.Base(os.Args[0])
	return fmt.Sprintf(`junc %[2]s: Create, delete and list NTFS junctions.
Usage: %[1]s [-s] [-q] <directory>
    List junction, if it exists, at the given directory.
      -s: Recursive. Print all junctions at and below the given directory.
      -q: Quiet. Do not report filesystem access errors.

Usage: %[1]s <junction directory> <target directory>
    Create a junction from <junction directory> to <target directory>.

Usage: %[1]s -d <junction directory>
    Remove the junction at <junction directory> and remove the resulting empty directory.
`, invoc, version)
}
