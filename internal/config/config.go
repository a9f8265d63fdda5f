package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"git-visual-rebase/internal/app"
)

const CurrentVersion = 1

const (
	envLogFile  = "GIT_VISUAL_REBASE_LOG"
	envLogLevel = "GIT_VISUAL_REBASE_LOG_LEVEL"
)

type Config struct {
	Version int         `json:"version"`
	Theme   ThemeConfig `json:"theme"`
	Log     LogConfig   `json:"log"`
}

type ThemeConfig struct {
	Active string `json:"active"`
}

// LogConfig controls the session log. An empty File disables logging.
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

func Default() Config {
	return Config{
		Version: CurrentVersion,
		Theme: ThemeConfig{
			Active: "default",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func EnsureDefaults(cfg *Config) {
	if cfg.Version <= 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Theme.Active == "" {
		cfg.Theme.Active = "default"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = Default().Log.Level
	}
}

// ApplyEnv overrides the log settings from the environment.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envLogFile)); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

func Dir() (string, error) {
	return app.ConfigDir()
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func ThemesDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

func Load() (Config, error) {
	cfgPath, err := Path()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(cfg); err != nil {
			return Config{}, err
		}
		ApplyEnv(&cfg)
		return cfg, nil
	}
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	EnsureDefaults(&cfg)
	ApplyEnv(&cfg)
	return cfg, nil
}

func Save(cfg Config) error {
	EnsureDefaults(&cfg)
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	themesDir := filepath.Join(dir, "themes")
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp := filepath.Join(dir, "config.json.tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(dir, "config.json"))
}
