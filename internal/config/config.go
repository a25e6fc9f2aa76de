package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type Config struct {
	Mode         string `json:"mode"`
	BoardSize    int    `json:"board_size"`
	MineCount    int    `json:"mine_count"`
	Seed         uint64 `json:"seed"`
	Connectivity int    `json:"connectivity"`
	Output       string `json:"output"`
	Debug        bool   `json:"debug"`

	LogFile       string `json:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups"`
	LogMaxAgeDays int    `json:"log_max_age_days"`
}

func Default() *Config {
	return &Config{
		Mode:          ModeDevelopment,
		BoardSize:     15,
		MineCount:     45,
		Connectivity:  8,
		Output:        "text",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"board_size":       c.BoardSize,
		"mine_count":       c.MineCount,
		"seed":             c.Seed,
		"connectivity":     c.Connectivity,
		"output":           c.Output,
		"debug":            c.Debug,
		"log_file":         c.LogFile,
		"log_max_size_mb":  c.LogMaxSizeMB,
		"log_max_backups":  c.LogMaxBackups,
		"log_max_age_days": c.LogMaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

// Validate checks the settings that are not checked by the board itself.
func (c Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output must be one of 'text', 'json' (got %q)", c.Output)
	}
	switch c.Connectivity {
	case 4, 8:
	default:
		return fmt.Errorf("connectivity must be 4 or 8 (got %d)", c.Connectivity)
	}
	return nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// LoadEnv overrides config fields with SWEEPER_* variables that are set.
func LoadEnv(config *Config) error {
	if v, ok := os.LookupEnv("SWEEPER_MODE"); ok {
		config.Mode = v
	}
	if v, ok := os.LookupEnv("SWEEPER_OUTPUT"); ok {
		config.Output = v
	}
	if v, ok := os.LookupEnv("SWEEPER_LOG_FILE"); ok {
		config.LogFile = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"SWEEPER_BOARD_SIZE", &config.BoardSize},
		{"SWEEPER_MINE_COUNT", &config.MineCount},
		{"SWEEPER_CONNECTIVITY", &config.Connectivity},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}

	if v, ok := os.LookupEnv("SWEEPER_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SWEEPER_SEED: %w", err)
		}
		config.Seed = seed
	}
	if v, ok := os.LookupEnv("SWEEPER_DEBUG"); ok {
		config.Debug = v != "0" && v != "false"
	}
	return nil
}

// Load builds a config from defaults, the JSON file at path (skipped when
// path is empty) and the environment, in that order.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := LoadEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}
