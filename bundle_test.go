package i18n

import (
	"errors"
	"io"
	"log"
	"reflect"
	"sync"
	"testing"

	"golang.org/x/text/language"
)

func newTestBundle(t *testing.T, cfg Config) *Bundle {
	t.Helper()
	cfg.Logger = log.New(io.Discard, "", 0)
	bundle := New(cfg)
	docs := map[string]map[string]any{
		"bn": {"home": map[string]any{"title": "হোম"}},
		"en": {"home": map[string]any{"title": "Home"}},
	}
	for lang, root := range docs {
		if err := bundle.RegisterDocument(lang, root); err != nil {
			t.Fatalf("RegisterDocument(%s): %v", lang, err)
		}
	}
	return bundle
}

func TestBundle_Document(t *testing.T) {
	t.Run("Document_Exact", func(t *testing.T) {
		bundle := newTestBundle(t, Config{})
		if got := bundle.Document("en").T("home.title"); got != "Home" {
			t.Fatalf("T: %q", got)
		}
	})

	t.Run("Document_Matcher", func(t *testing.T) {
		bundle := newTestBundle(t, Config{})
		doc := bundle.Document("en-GB")
		if doc.Lang() != language.English {
			t.Fatalf("Lang: %v", doc.Lang())
		}
		if got := bundle.Document("bn-BD").T("home.title"); got != "হোম" {
			t.Fatalf("T: %q", got)
		}
	})

	t.Run("Document_DefaultLang", func(t *testing.T) {
		bundle := newTestBundle(t, Config{})
		for _, lang := range []string{"fr", "", "!!"} {
			if got := bundle.Document(lang).Lang(); got != language.Bengali {
				t.Fatalf("Document(%q).Lang: %v", lang, got)
			}
		}
	})

	t.Run("Document_Fallbacks", func(t *testing.T) {
		bundle := newTestBundle(t, Config{
			DefaultLang: "bn",
			Fallbacks:   map[string][]string{"fr": {"fr", "en"}},
		})
		if got := bundle.Document("fr").T("home.title"); got != "Home" {
			t.Fatalf("T: %q", got)
		}
	})

	t.Run("Document_Empty", func(t *testing.T) {
		bundle := New(quietConfig())
		doc := bundle.Document("en")
		if doc == nil {
			t.Fatal("Document: nil")
		}
		if doc.Lang() != language.Bengali {
			t.Fatalf("Lang: %v", doc.Lang())
		}
		if got := doc.Resolve("home.title"); got != "home.title" {
			t.Fatalf("Resolve: %v", got)
		}
	})
}

func TestBundle_RegisterDocument(t *testing.T) {
	t.Run("RegisterDocument_Merge", func(t *testing.T) {
		bundle := newTestBundle(t, Config{})
		before := bundle.Document("en")

		err := bundle.RegisterDocument("en", map[string]any{
			"about": map[string]any{"title": "About"},
		})
		if err != nil {
			t.Fatalf("RegisterDocument: %v", err)
		}

		after := bundle.Document("en")
		if got := after.T("home.title"); got != "Home" {
			t.Fatalf("home.title: %q", got)
		}
		if got := after.T("about.title"); got != "About" {
			t.Fatalf("about.title: %q", got)
		}
		if _, ok := before.Lookup("about.title"); ok {
			t.Fatal("earlier document must not change")
		}
		if got := bundle.Languages(); !reflect.DeepEqual(got, []string{"bn", "en"}) {
			t.Fatalf("Languages: %v", got)
		}
	})

	t.Run("RegisterDocument_BadLanguage", func(t *testing.T) {
		bundle := New(quietConfig())
		if err := bundle.RegisterDocument("!!", map[string]any{}); !errors.Is(err, ErrLanguage) {
			t.Fatalf("RegisterDocument: %v", err)
		}
	})
}

func TestLocale(t *testing.T) {
	t.Run("Locale_SetLang", func(t *testing.T) {
		bundle := newTestBundle(t, Config{})
		locale := bundle.Locale("en")
		if got := locale.T("home.title"); got != "Home" {
			t.Fatalf("T: %q", got)
		}
		locale.SetLang("bn")
		if locale.Lang() != language.Bengali {
			t.Fatalf("Lang: %v", locale.Lang())
		}
		if got := locale.T("home.title"); got != "হোম" {
			t.Fatalf("T: %q", got)
		}
		if got := locale.TOr("home.none", "fallback"); got != "fallback" {
			t.Fatalf("TOr: %q", got)
		}
		if got := locale.Resolve("home.none"); got != "home.none" {
			t.Fatalf("Resolve: %v", got)
		}
		if got, ok := locale.Obj("home.none").(map[string]any); !ok || len(got) != 0 {
			t.Fatalf("Obj: %v", got)
		}
		if _, ok := locale.Lookup("home.title"); !ok {
			t.Fatal("Lookup: not found")
		}
		if locale.Strings("home") != nil || locale.Items("home") != nil {
			t.Fatal("home is a mapping, not a list")
		}
		if locale.Document() != bundle.Document("bn") {
			t.Fatal("Document: not the bundle's document")
		}
	})

	t.Run("Locale_ConcurrentSwitch", func(t *testing.T) {
		bundle := newTestBundle(t, Config{})
		locale := bundle.Locale("bn")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if i%2 == 0 {
						locale.SetLang([]string{"bn", "en"}[j%2])
						continue
					}
					if got := locale.T("home.title"); got != "হোম" && got != "Home" {
						t.Errorf("T: %q", got)
						return
					}
				}
			}(i)
		}
		wg.Wait()
	})
}
