package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const (
	appName    = "shelf"
	dbFileName = "shelf.db"

	maxHistorySize = 100
)

type Config struct {
	Database       string   `koanf:"database"`        // sqlite file holding the catalog and session
	LibrarySources []string `koanf:"library_sources"` // paths imported by "shelf import" without arguments
	LogLevel       string   `koanf:"log_level"`       // zerolog level name (default: "info")
	HistorySize    int      `koanf:"history_size"`    // previous-track depth (1-100, default: 100)
	Seed           uint64   `koanf:"seed"`            // shuffle seed, 0 derives one from the clock
}

// Load reads the configuration. With an explicit path only that file is
// read and it must exist; otherwise the user and working directory files
// are merged when present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	configPaths := getConfigPaths()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		configPaths = []string{path}
	}

	for _, p := range configPaths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config %s: %w", p, err)
			}
		}
	}

	cfg := &Config{
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Database == "" {
		dbPath, err := defaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.Database = dbPath
	}
	cfg.Database = expandPath(cfg.Database)

	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/shelf/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func defaultDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetHistorySize returns the history bound with defaults applied.
func (c *Config) GetHistorySize() int {
	if c.HistorySize <= 0 || c.HistorySize > maxHistorySize {
		return maxHistorySize
	}
	return c.HistorySize
}

// GetLogLevel parses LogLevel, falling back to info.
func (c *Config) GetLogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
