package main

import (
	"os"

	"github.com/bianoble/junc/cmd/junc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
