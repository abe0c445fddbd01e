// Package config loads junc.yaml. Files are layered system, user, then the
// file named with --config, later layers overriding the fields they set.
package config
