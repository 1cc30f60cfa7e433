package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel      string
	LogFormat     string
	BaseDir       string
	LibraryPath   string
	OverridesPath string
}

// Load builds the default configuration rooted at ~/.cerealstyle.
// Environment variables CEREALSTYLE_LOG_LEVEL and CEREALSTYLE_LOG_FORMAT
// override the logging defaults.
func Load() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".cerealstyle")

	cfg := &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		BaseDir:       baseDir,
		LibraryPath:   filepath.Join(baseDir, "library.db"),
		OverridesPath: filepath.Join(baseDir, "keywords.yaml"),
	}

	if v := os.Getenv("CEREALSTYLE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CEREALSTYLE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.BaseDir, 0755)
}

// KeywordOverrides extends category scoring keywords. The keyword-to-category
// mapping is configuration data, not part of the scoring contract, so sites
// can steer suggestion without a rebuild. Merged once at startup.
type KeywordOverrides struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadKeywordOverrides reads the overrides file. A missing file is not an
// error; a malformed one is.
func LoadKeywordOverrides(path string) (*KeywordOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read keyword overrides: %w", err)
	}

	var overrides KeywordOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse keyword overrides %s: %w", path, err)
	}
	return &overrides, nil
}
