package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bianoble/junc/internal/config"
	"github.com/bianoble/junc/internal/engine"
	"github.com/bianoble/junc/internal/logging"
	"github.com/bianoble/junc/internal/platform"
)

// Replaced in tests.
var (
	newPrimitive = platform.Native
	newFs        = afero.NewOsFs
)

// loadConfig merges the discovered config layers.
func loadConfig() (*config.Config, error) {
	layers := config.DiscoverPaths(config.DiscoverOptions{
		ExplicitPath: configPath,
		NoInherit:    config.EnvNoInherit(),
	})
	cfg, _, err := config.LoadLayers(layers)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostics logger from flags and config.
func newLogger(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	plain := cfg.NoColorDefault()
	if cmd.Flags().Changed("no-color") {
		plain = noColor
	}
	return logging.New(logging.Options{
		Out:     cmd.ErrOrStderr(),
		Level:   level,
		NoColor: plain,
	})
}

// newEngine wires the platform primitive, filesystem and logger.
func newEngine(cmd *cobra.Command, cfg *config.Config) (*engine.Engine, error) {
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return engine.New(newPrimitive(), newFs(), cmd.OutOrStdout(), log), nil
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
