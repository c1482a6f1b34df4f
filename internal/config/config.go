package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode            string    `json:"mode"`
	Addr            string    `json:"addr"`
	Seed            *uint64   `json:"seed,omitempty"`
	MaxCells        int       `json:"max_cells"`
	ShutdownTimeout Duration  `json:"shutdown_timeout"`
	Log             LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode:            ModeDevelopment,
		Addr:            ":8080",
		MaxCells:        100 * 100,
		ShutdownTimeout: Duration{30 * time.Second},
		Log: LogConfig{
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load builds the config from defaults, the JSON file at path (if it exists)
// and finally the environment. envFiles are loaded into the environment
// first; missing ones are skipped.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("unable to read config %s: %w", path, err)
		default:
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("unable to parse config %s: %w", path, err)
			}
		}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("unable to load %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if cfg.Mode != ModeDevelopment && cfg.Mode != ModeProduction {
		return cfg, fmt.Errorf("mode must be %q or %q, got %q", ModeDevelopment, ModeProduction, cfg.Mode)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = v
	}
	if v, ok := os.LookupEnv("MINES_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MINES_SEED must be an unsigned integer: %w", err)
		}
		c.Seed = &seed
	}
	if v, ok := os.LookupEnv("MINES_MAX_CELLS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MINES_MAX_CELLS must be an integer: %w", err)
		}
		c.MaxCells = n
	}
	return nil
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Fields() logrus.Fields {
	seed := "random"
	if c.Seed != nil {
		seed = strconv.FormatUint(*c.Seed, 10)
	}
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"seed":             seed,
		"max_cells":        c.MaxCells,
		"shutdown_timeout": c.ShutdownTimeout.Duration.String(),
		"log_file":         c.Log.File,
	}
}
