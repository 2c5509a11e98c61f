// Package locales embeds the app's translation documents.
package locales

import (
	"embed"

	"github.com/foundationapp/i18n"
)

//go:embed *.json
var FS embed.FS

// Load builds a Bundle from the embedded documents. Call it once at start-up
// and pass the Bundle (or a Locale from it) to whatever needs translations.
func Load(cfg i18n.Config) (*i18n.Bundle, error) {
	b := i18n.New(cfg)
	if err := b.LoadFS(FS, "."); err != nil {
		return nil, err
	}
	return b, nil
}
