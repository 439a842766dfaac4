package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level pathjoin configuration.
type Config struct {
	Bases  map[string]string `mapstructure:"bases"`
	Batch  Batch             `mapstructure:"batch"`
	Output Output            `mapstructure:"output"`
}

// Batch defines settings for the batch command.
type Batch struct {
	Workers   int    `mapstructure:"workers"`
	Delimiter string `mapstructure:"delimiter"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath resolves a leading "~/" against the home directory. The path is
// returned unchanged when there is no home directory to resolve against.
func expandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// newViper returns a viper instance carrying every default and the
// PATHJOIN_ environment overrides.
func newViper() *viper.Viper {
	v := viper.New()
	defaults := map[string]any{
		"bases":           DefaultBases,
		"batch.workers":   DefaultBatch.Workers,
		"batch.delimiter": DefaultBatch.Delimiter,
		"output.color":    DefaultOutput.Color,
		"output.width":    DefaultOutput.Width,
	}
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile, or config.yaml under DefaultConfigDir when cfgFile is
// empty. A missing file yields the defaults.
func Load(cfgFile string) (*Config, error) {
	v := newViper()

	if cfgFile == "" {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	} else {
		v.SetConfigFile(expandPath(cfgFile))
	}

	if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
		return nil, fmt.Errorf("reading %s: %w", v.ConfigFileUsed(), err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Bases == nil {
		cfg.Bases = map[string]string{}
	}
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = DefaultBatch.Workers
	}
	if cfg.Batch.Delimiter == "" {
		cfg.Batch.Delimiter = DefaultBatch.Delimiter
	}

	return &cfg, nil
}

func missingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Base returns the base path registered under name. Viper lowercases map
// keys read from YAML, so a miss falls back to the lowercased name.
func (c *Config) Base(name string) (string, error) {
	if base, ok := c.Bases[name]; ok {
		return base, nil
	}
	if base, ok := c.Bases[strings.ToLower(name)]; ok {
		return base, nil
	}
	if len(c.Bases) == 0 {
		return "", fmt.Errorf("unknown base %q; no bases configured", name)
	}
	known := slices.Sorted(maps.Keys(c.Bases))
	return "", fmt.Errorf("unknown base %q; configured bases: %s", name, strings.Join(known, ", "))
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
