// Package i18n resolves dot-separated key paths against nested translation
// documents that are loaded once at start-up and never modified afterwards.
package i18n

import (
	"log"
)

// DefaultLang is used when Config.DefaultLang is empty.
const DefaultLang = "bn"

// Config 定义 i18n 的基础配置
type Config struct {
	// 默认语言，例如 "bn"
	DefaultLang string

	// Fallback 链，比如：
	// "en-GB": {"en-GB", "en", "bn"}
	// 没有显式配置时按 language.Matcher 匹配，再退回 DefaultLang
	Fallbacks map[string][]string

	// Logger receives missing-key diagnostics. Nil means log.Default().
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.DefaultLang == "" {
		c.DefaultLang = DefaultLang
	}
	if c.Fallbacks == nil {
		c.Fallbacks = make(map[string][]string)
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}
