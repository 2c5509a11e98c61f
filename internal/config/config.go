package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultLocalesDir = "./locales"
	defaultLang       = "bn"
)

type Config struct {
	LocalesDir    string
	DefaultLang   string
	ReferenceLang string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (CI, Docker).
	_ = godotenv.Load()

	cfg := &Config{
		LocalesDir:    os.Getenv("I18N_LOCALES_DIR"),
		DefaultLang:   os.Getenv("I18N_DEFAULT_LANG"),
		ReferenceLang: os.Getenv("I18N_REFERENCE_LANG"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and checks the language tags.
func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		c.LocalesDir = defaultLocalesDir
	}

	if strings.TrimSpace(c.DefaultLang) == "" {
		c.DefaultLang = defaultLang
	}
	if _, err := language.Parse(c.DefaultLang); err != nil {
		return fmt.Errorf("config: I18N_DEFAULT_LANG invalid (%q): %w", c.DefaultLang, err)
	}

	if strings.TrimSpace(c.ReferenceLang) == "" {
		c.ReferenceLang = c.DefaultLang
	}
	if _, err := language.Parse(c.ReferenceLang); err != nil {
		return fmt.Errorf("config: I18N_REFERENCE_LANG invalid (%q): %w", c.ReferenceLang, err)
	}

	return nil
}
