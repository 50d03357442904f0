package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"

	"github.com/llehouerou/audiotags"
)

const (
	appName       = "audiotags"
	localFileName = "audiotags.toml"
	envPrefix     = "AUDIOTAGS"
)

type Config struct {
	ArtistSeparator      string `koanf:"artist_separator"       envconfig:"ARTIST_SEPARATOR"`
	ParseMultipleArtists *bool  `koanf:"parse_multiple_artists" envconfig:"PARSE_MULTIPLE_ARTISTS"` // default: true
	DetectFormat         bool   `koanf:"detect_format"          envconfig:"DETECT_FORMAT"`          // sniff content before trusting the extension
	LogLevel             string `koanf:"log_level"              envconfig:"LOG_LEVEL"`              // zap level name (default: "warn")
}

// Load reads the layered TOML files (last wins), then an optional extra
// file, then AUDIOTAGS_* environment overrides.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	// An explicitly named file must exist.
	if extra != "" {
		path := expandPath(extra)
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/audiotags/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./audiotags.toml (pwd, highest priority)
		localFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// TagConfig returns the library configuration with defaults applied.
func (c *Config) TagConfig() audiotags.Config {
	tc := audiotags.DefaultConfig()
	if c.ArtistSeparator != "" {
		tc.ArtistSeparator = c.ArtistSeparator
	}
	if c.ParseMultipleArtists != nil {
		tc.ParseMultipleArtists = *c.ParseMultipleArtists
	}
	return tc
}

// Level returns the configured log level, falling back to warn.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}
