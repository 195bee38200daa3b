// Package config loads the msbt-cat configuration file.
//
// The file may be YAML (.yaml, .yml) or TOML (.toml). Keys absent from the
// file keep their default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/msbt/errs"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level" toml:"level"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" toml:"max_size_mb"`
	MaxAgeDays int    `yaml:"maxAgeDays" toml:"max_age_days"`
	MaxBackups int    `yaml:"maxBackups" toml:"max_backups"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Config is the msbt-cat configuration.
type Config struct {
	Output string    `yaml:"output" toml:"output"`
	Color  bool      `yaml:"color" toml:"color"`
	Sort   bool      `yaml:"sort" toml:"sort"`
	Log    LogConfig `yaml:"log" toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: OutputText,
		Color:  true,
		Sort:   true,
		Log: LogConfig{
			Level:      "error",
			MaxSizeMB:  10,
			MaxAgeDays: 7,
			MaxBackups: 3,
		},
	}
}

// Load reads the configuration file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q in %s", errs.ErrInvalidConfig, undecoded[0].String(), path)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config file extension %q", errs.ErrInvalidConfig, ext)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(filepath.Dir(path), cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("%w: output must be one of text, json, table: %q", errs.ErrInvalidConfig, c.Output)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxAgeDays < 0 || c.Log.MaxBackups < 0 {
		return fmt.Errorf("%w: log rotation limits must not be negative", errs.ErrInvalidConfig)
	}

	return nil
}
