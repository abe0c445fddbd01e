package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const configFileName = "junc.yaml"
const configDirName = "junc"

// Level represents the precedence level of a configuration file.
type Level string

const (
	LevelSystem   Level = "system"
	LevelUser     Level = "user"
	LevelExplicit Level = "explicit"
)

// LayerInfo describes a discovered config file and its load status.
type LayerInfo struct {
	Err      error // non-nil if the file exists but failed to load
	Path     string
	Level    Level
	Loaded   bool
	Required bool
}

// DiscoverOptions controls how config paths are discovered.
type DiscoverOptions struct {
	// ExplicitPath is a config file named on the command line. It must exist.
	ExplicitPath string

	// SystemConfigPath overrides the default system config path.
	// Empty means use the OS default. Set to a nonexistent path to skip.
	SystemConfigPath string

	// UserConfigPath overrides the default user config path.
	// Empty means use the OS default. Set to a nonexistent path to skip.
	UserConfigPath string

	// NoInherit skips the system and user layers.
	NoInherit bool
}

// DiscoverPaths returns the ordered list of config file paths to check,
// from lowest precedence (system) to highest (explicit).
// Paths are deduplicated by resolved absolute path.
func DiscoverPaths(opts DiscoverOptions) []LayerInfo {
	var layers []LayerInfo
	seen := make(map[string]bool)

	addLayer := func(level Level, path string, required bool) {
		if path == "" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		layers = append(layers, LayerInfo{
			Path:     path,
			Level:    level,
			Required: required,
		})
	}

	if !opts.NoInherit {
		sysPath := opts.SystemConfigPath
		if sysPath == "" {
			sysPath = defaultSystemConfigPath()
		}
		addLayer(LevelSystem, sysPath, false)

		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = defaultUserConfigPath()
		}
		addLayer(LevelUser, userPath, false)
	}

	addLayer(LevelExplicit, opts.ExplicitPath, true)

	return layers
}

// defaultSystemConfigPath returns the platform-standard system config path.
func defaultSystemConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		pd := os.Getenv("ProgramData")
		if pd == "" {
			pd = `C:\ProgramData`
		}
		return filepath.Join(pd, configDirName, configFileName)
	default:
		return filepath.Join("/etc", configDirName, configFileName)
	}
}

// defaultUserConfigPath returns the platform-standard user config path.
func defaultUserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, configFileName)
}

// EnvNoInherit returns true if JUNC_NO_INHERIT is set to "1" or "true".
func EnvNoInherit() bool {
	return envBoolTrue("JUNC_NO_INHERIT")
}

// envBoolTrue returns true if the env var is set to "1" or "true" (case-insensitive).
func envBoolTrue(key string) bool {
	v := os.Getenv(key)
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true"
}
