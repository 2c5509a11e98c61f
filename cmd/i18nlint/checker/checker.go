package checker

import (
	"fmt"
	"io"
	"log"
	"slices"
	"sort"

	"github.com/foundationapp/i18n"
)

// Mismatch is a key path that holds a different kind of value than in the
// other locales, e.g. a mapping where a string is expected.
type Mismatch struct {
	Key      string
	Kind     string
	Expected string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s (expected %s)", m.Key, m.Kind, m.Expected)
}

type Result struct {
	Languages      []string
	Reference      string
	MissingKeys    map[string][]string
	RedundantKeys  map[string][]string
	TypeMismatches map[string][]Mismatch
	AllKeys        []string
}

// HasIssues reports whether any locale has missing, redundant or mismatched keys.
func (r *Result) HasIssues() bool {
	for _, arr := range r.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range r.RedundantKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range r.TypeMismatches {
		if len(arr) > 0 {
			return true
		}
	}
	return false
}

// CheckLocales performs:
//  1. key alignment check (missing keys against the union of all locales)
//  2. redundant keys against the reference locale
//  3. type check: the same path must hold the same kind of value everywhere
func CheckLocales(dir, reference string) (*Result, error) {
	bundle := i18n.New(i18n.Config{
		DefaultLang: reference,
		Logger:      log.New(io.Discard, "", 0),
	})
	if err := bundle.LoadDir(dir); err != nil {
		return nil, err
	}

	langs := bundle.Languages()
	if len(langs) == 0 {
		return nil, fmt.Errorf("no locale documents found in %s", dir)
	}

	docs := make(map[string]*i18n.Document, len(langs))
	for _, lang := range langs {
		docs[lang] = bundle.Document(lang)
	}

	ref := bundle.Document(reference)
	refLang := ref.Lang().String()
	if !slices.Contains(langs, refLang) {
		return nil, fmt.Errorf("reference language %q not found in %s", reference, dir)
	}

	langKeys := make(map[string]map[string]struct{})
	leafKind := make(map[string]string)
	for _, lang := range langs {
		kset := make(map[string]struct{})
		for _, k := range docs[lang].Keys() {
			kset[k] = struct{}{}
			if _, ok := leafKind[k]; !ok {
				v, _ := docs[lang].Lookup(k)
				leafKind[k] = i18n.Kind(v)
			}
		}
		langKeys[lang] = kset
	}

	allKeys := make([]string, 0, len(leafKind))
	for k := range leafKind {
		allKeys = append(allKeys, k)
	}
	sort.Strings(allKeys)

	missing := make(map[string][]string)
	redundant := make(map[string][]string)
	mismatches := make(map[string][]Mismatch)

	for _, lang := range langs {
		doc := docs[lang]
		kset := langKeys[lang]
		for _, k := range allKeys {
			if _, ok := kset[k]; ok {
				continue
			}
			if v, ok := doc.Lookup(k); ok {
				mismatches[lang] = append(mismatches[lang], Mismatch{
					Key:      k,
					Kind:     i18n.Kind(v),
					Expected: leafKind[k],
				})
				continue
			}
			missing[lang] = append(missing[lang], k)
		}

		if lang == refLang {
			continue
		}
		for _, k := range doc.Keys() {
			if _, ok := ref.Lookup(k); !ok {
				redundant[lang] = append(redundant[lang], k)
			}
		}
	}

	return &Result{
		Languages:      langs,
		Reference:      refLang,
		MissingKeys:    missing,
		RedundantKeys:  redundant,
		TypeMismatches: mismatches,
		AllKeys:        allKeys,
	}, nil
}
