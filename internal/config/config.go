// Package config loads itemizer settings from defaults, an optional YAML
// file and ITEMIZER_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/itemizer/internal/extract"
)

// Config holds all runtime settings.
type Config struct {
	// DB is the SQLite path. Empty means the XDG default.
	DB string `yaml:"db"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Extract struct {
		PassageWindow     int `yaml:"passage_window"`
		InstructionMaxLen int `yaml:"instruction_max_len"`
	} `yaml:"extract"`

	HTTP struct {
		Addr            string `yaml:"addr"`
		MaxContentBytes int64  `yaml:"max_content_bytes"`
	} `yaml:"http"`

	Batch struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"batch"`

	// Review.AutoApprove stores High and Medium confidence items as
	// approved. Low confidence items always wait for review.
	Review struct {
		AutoApprove bool `yaml:"auto_approve"`
	} `yaml:"review"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	var cfg Config
	d := extract.DefaultConfig()
	cfg.Log.Level = "info"
	cfg.Extract.PassageWindow = d.PassageWindow
	cfg.Extract.InstructionMaxLen = d.InstructionMaxLen
	cfg.HTTP.Addr = ":8080"
	cfg.HTTP.MaxContentBytes = 64 << 10
	cfg.Batch.Concurrency = 4
	return cfg
}

// Load reads the YAML file at path, if any, over the defaults and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ITEMIZER_DB"); v != "" {
		cfg.DB = v
	}
	if v := os.Getenv("ITEMIZER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ITEMIZER_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"ITEMIZER_PASSAGE_WINDOW", &cfg.Extract.PassageWindow},
		{"ITEMIZER_INSTRUCTION_MAX_LEN", &cfg.Extract.InstructionMaxLen},
		{"ITEMIZER_BATCH_CONCURRENCY", &cfg.Batch.Concurrency},
	}
	for _, e := range ints {
		v := os.Getenv(e.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", e.env, err)
		}
		*e.dst = n
	}

	if v := os.Getenv("ITEMIZER_AUTO_APPROVE"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ITEMIZER_AUTO_APPROVE: %w", err)
		}
		cfg.Review.AutoApprove = b
	}

	if v := os.Getenv("ITEMIZER_MAX_CONTENT_BYTES"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("ITEMIZER_MAX_CONTENT_BYTES: %w", err)
		}
		cfg.HTTP.MaxContentBytes = n
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Extract.PassageWindow <= 0 {
		return fmt.Errorf("extract.passage_window must be positive, got %d", c.Extract.PassageWindow)
	}
	if c.Extract.InstructionMaxLen <= 0 {
		return fmt.Errorf("extract.instruction_max_len must be positive, got %d", c.Extract.InstructionMaxLen)
	}
	if c.Batch.Concurrency <= 0 {
		return fmt.Errorf("batch.concurrency must be positive, got %d", c.Batch.Concurrency)
	}
	if c.HTTP.MaxContentBytes <= 0 {
		return fmt.Errorf("http.max_content_bytes must be positive, got %d", c.HTTP.MaxContentBytes)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// ExtractConfig returns the extractor settings.
func (c Config) ExtractConfig() extract.Config {
	return extract.Config{
		PassageWindow:     c.Extract.PassageWindow,
		InstructionMaxLen: c.Extract.InstructionMaxLen,
	}
}
