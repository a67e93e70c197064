// Package config loads id3strip settings from defaults and the environment.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ID3STRIP_WORKERS.
const EnvPrefix = "ID3STRIP"

// Config represents the stripper configuration
type Config struct {
	Recursive    bool     `mapstructure:"recursive"`     // walk subdirectories
	DryRun       bool     `mapstructure:"dry_run"`       // report instead of stripping
	Workers      int      `mapstructure:"workers"`       // files processed at once
	Extensions   []string `mapstructure:"extensions"`    // file extensions to process, with dot
	Exclude      []string `mapstructure:"exclude"`       // directory names never entered
	BackupSuffix string   `mapstructure:"backup_suffix"` // keep originals as path+suffix when set
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("recursive", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("extensions", []string{".mp3"})
	v.SetDefault("exclude", []string{".git"})
	v.SetDefault("backup_suffix", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Extensions = normalizeExtensions(cfg.Extensions)

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q: must look like \".mp3\"", ext)
		}
	}
	return nil
}

// MatchesExtension reports whether name has one of the configured
// extensions, ignoring case.
func (c *Config) MatchesExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// normalizeExtensions lowercases extensions and splits comma lists, which
// is how a single environment variable carries several values.
func normalizeExtensions(exts []string) []string {
	var out []string
	for _, e := range exts {
		for _, part := range strings.Split(e, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
