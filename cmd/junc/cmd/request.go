package cmd

import (
	"strings"

	"github.com/bianoble/junc/internal/config"
	"github.com/bianoble/junc/internal/engine"
)

// legacyFlags are accepted for compatibility with older junction tools and
// otherwise ignored.
var legacyFlags = map[string]bool{
	"-nobanner":   true,
	"-accepteula": true,
}

// stripLegacyFlags drops legacy flags before cobra sees them; pflag would
// otherwise read -nobanner as a cluster of shorthands.
func stripLegacyFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if legacyFlags[strings.ToLower(a)] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// parseRequest turns parsed flags and positional paths into a request. A nil
// request with a nil error means usage should be shown.
func parseRequest(paths []string) (engine.Request, error) {
	if deleteMode {
		if recursive || quiet {
			return nil, engine.Usagef("-q and -s cannot be combined with -d")
		}
		if len(paths) != 1 {
			return nil, engine.Usagef("expected exactly 1 path to junction to delete, got %d", len(paths))
		}
		return engine.DeleteRequest{Path: paths[0]}, nil
	}

	switch n := len(paths); n {
	case 0:
		return nil, nil
	case 1:
		return engine.ListRequest{Path: paths[0], Quiet: quiet, Recursive: recursive}, nil
	case 2:
		if quiet || recursive {
			return nil, engine.Usagef("q and s are for a different subcommand")
		}
		return engine.CreateRequest{Source: paths[0], Destination: paths[1]}, nil
	default:
		if quiet || recursive {
			return nil, engine.Usagef("expected exactly 1 path to display junction information, got %d", n)
		}
		return nil, engine.Usagef("expected exactly 2 paths to create junction, got %d", n)
	}
}

// applyDefaults fills in settings the command line left to the config file.
// quietSet reports whether -q was given explicitly; an explicit flag wins.
func applyDefaults(req engine.Request, cfg *config.Config, quietSet bool) engine.Request {
	if lr, ok := req.(engine.ListRequest); ok && !quietSet {
		lr.Quiet = cfg.QuietDefault()
		return lr
	}
	return req
}
