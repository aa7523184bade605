// Package config loads the sesconv settings file. Everything has a
// usable default; a missing file is not an error, and a handful of
// SESCONV_* environment variables override the file for scripting.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all sesconv configuration.
type Config struct {
	Conversion ConversionConfig `yaml:"conversion"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Batch      BatchConfig      `yaml:"batch"`
}

// ConversionConfig selects the unit direction.
type ConversionConfig struct {
	// ToUS converts SI reports back to US customary units. The default
	// direction is US to SI.
	ToUS bool `yaml:"to_us"`
}

// OutputConfig controls where results land.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // output directory; empty means alongside the input
	Format string `yaml:"format"` // snapshot format: json or yaml
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// BatchConfig tunes the parallel runner and watch mode.
type BatchConfig struct {
	Workers    int `yaml:"workers"`     // 0 means one per CPU
	DebounceMS int `yaml:"debounce_ms"` // watch-mode write debounce
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:  OutputConfig{Format: "json"},
		Logging: LoggingConfig{Level: "info"},
		Batch:   BatchConfig{DebounceMS: 250},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults; a malformed file is an error. Environment
// overrides apply last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv applies SESCONV_* overrides.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("SESCONV_TO_US"); ok {
		cfg.Conversion.ToUS = v == "1" || v == "true"
	}
	if v, ok := os.LookupEnv("SESCONV_OUTPUT_DIR"); ok {
		cfg.Output.Dir = v
	}
	if v, ok := os.LookupEnv("SESCONV_FORMAT"); ok {
		cfg.Output.Format = v
	}
	if v, ok := os.LookupEnv("SESCONV_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv("SESCONV_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Batch.Workers = n
		}
	}
}
