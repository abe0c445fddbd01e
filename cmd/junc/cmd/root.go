package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Flags.
var (
	recursive  bool
	quiet      bool
	deleteMode bool
	configPath string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "junc [-s] [-q] <directory> | <junction directory> <target directory> | -d <junction directory>",
	Short: "Create, delete and list NTFS junctions",
	Long: `junc creates, deletes and lists NTFS directory junctions.

With one path it prints the junction at that path. With -s it prints every
junction at and below the path without following any reparse point. With two
paths it creates a junction. With -d it removes a junction and the empty
directory it leaves behind.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	f := rootCmd.Flags()
	f.BoolVarP(&recursive, "recursive", "s", false, "print all junctions at and below the given directory")
	f.BoolVarP(&quiet, "quiet", "q", false, "do not report filesystem access errors")
	f.BoolVarP(&deleteMode, "delete", "d", false, "remove the junction and the resulting empty directory")
	f.StringVar(&configPath, "config", "", "path to a junc.yaml config file")
	f.BoolVar(&verbose, "verbose", false, "debug logging on stderr")
	f.BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func run(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}
	if req == nil {
		fmt.Fprint(cmd.OutOrStdout(), usage())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := newEngine(cmd, cfg)
	if err != nil {
		return err
	}
	return eng.Run(applyDefaults(req, cfg, cmd.Flags().Changed("quiet")))
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetArgs(stripLegacyFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		errorf("%v", err)
		return err
	}
	return nil
}
