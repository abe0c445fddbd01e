package config

// Config represents a junc.yaml configuration file. Pointer fields are nil
// when a layer does not set them.
type Config struct {
	Version  int    `yaml:"version"`
	Quiet    *bool  `yaml:"quiet,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	NoColor  *bool  `yaml:"no_color,omitempty"`
}

// QuietDefault reports the configured default for -q.
func (c *Config) QuietDefault() bool {
	return c != nil && c.Quiet != nil && *c.Quiet
}

// NoColorDefault reports the configured default for --no-color.
func (c *Config) NoColorDefault() bool {
	return c != nil && c.NoColor != nil && *c.NoColor
}

// Default returns the configuration used when no file sets anything.
func Default() *Config {
	return &Config{Version: 1, LogLevel: "warn"}
}
