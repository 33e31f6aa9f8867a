package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Environment keys that override the config file.
const (
	EnvCatalog      = "PAINMATCH_CATALOG"
	EnvThreshold    = "PAINMATCH_THRESHOLD"
	EnvContextBoost = "PAINMATCH_CONTEXT_BOOST"
	EnvLogLevel     = "PAINMATCH_LOG_LEVEL"
)

const saveLockTimeout = 5 * time.Second

// Config is the in-memory representation of ~/.painmatch/painmatch.yaml.
type Config struct {
	CatalogPath  string  `yaml:"catalog_path"`
	Threshold    float64 `yaml:"threshold"`
	ContextBoost float64 `yaml:"context_boost"`
	ProductName  string  `yaml:"product_name,omitempty"`
	LogLevel     string  `yaml:"log_level,omitempty"`

	// Source is the file the config was read from, empty when only defaults applied.
	Source string `yaml:"-"`
}

// Dir returns the absolute path to ~/.painmatch/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".painmatch"), nil
}

// ConfigPath returns the absolute path to ~/.painmatch/painmatch.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "painmatch.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:  "filum_features.json",
		Threshold:    0.1,
		ContextBoost: 0.15,
		ProductName:  "Filum.ai",
		LogLevel:     "warn",
	}
}

// NoMatchReason is the message reported when nothing reaches the threshold.
func (c *Config) NoMatchReason() string {
	if strings.TrimSpace(c.ProductName) == "" {
		return "No matching features were found for this specific pain point."
	}
	return fmt.Sprintf("No matching %s features were found for this specific pain point.", c.ProductName)
}

// Validate checks that numeric settings are usable.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0, 1], got %v", c.Threshold)
	}
	if c.ContextBoost < 0 || c.ContextBoost > 1 {
		return fmt.Errorf("context_boost must be within [0, 1], got %v", c.ContextBoost)
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return errors.New("catalog_path must not be empty")
	}
	return nil
}

// Load builds the effective configuration: defaults, then the YAML file at path
// (~/.painmatch/painmatch.yaml when empty), then environment and ~/.painmatch/.env.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		cfg.Source = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	// Expand ~ in CatalogPath at load time.
	cfg.CatalogPath, err = ExpandPath(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, err := GetConfigValue(EnvCatalog); err != nil {
		return err
	} else if v != "" {
		cfg.CatalogPath = v
	}
	if v, err := GetConfigValue(EnvLogLevel); err != nil {
		return err
	} else if v != "" {
		cfg.LogLevel = v
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvThreshold, &cfg.Threshold},
		{EnvContextBoost, &cfg.ContextBoost},
	}
	for _, f := range floats {
		v, err := GetConfigValue(f.key)
		if err != nil {
			return err
		}
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", f.key, v, err)
		}
		*f.dst = n
	}
	return nil
}

// Save marshals cfg and writes it to path while holding <path>.lock.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	unlock, err := lockFile(path+".lock", saveLockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func lockFile(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("config is being written by another process (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
