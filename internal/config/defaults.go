// Package config provides configuration loading and defaults for pathjoin.
package config

// DefaultConfigDir is the default location for pathjoin configuration.
const DefaultConfigDir = "~/.config/pathjoin"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment variable overrides, e.g. PATHJOIN_BATCH_WORKERS.
const EnvPrefix = "PATHJOIN"

// DefaultBases holds the named base paths available without a config file.
var DefaultBases = map[string]string{}

// DefaultBatch holds the default batch settings.
var DefaultBatch = Batch{
	Workers:   4,
	Delimiter: "\t",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
