package i18n

import (
	"sync/atomic"

	"golang.org/x/text/language"
)

// Locale 是绑定了语言的翻译入口
//
// It holds one immutable Document at a time. SetLang replaces the whole
// Document in one step; concurrent readers see either the old or the new one.
type Locale struct {
	bundle *Bundle
	doc    atomic.Pointer[Document]
}

// SetLang switches the locale to the document the bundle picks for lang.
func (l *Locale) SetLang(lang string) {
	l.doc.Store(l.bundle.Document(lang))
}

// Lang returns the language of the active document.
func (l *Locale) Lang() language.Tag {
	return l.doc.Load().Lang()
}

// Document returns the active document.
func (l *Locale) Document() *Document {
	return l.doc.Load()
}

// T 翻译函数：T("home.title")，找不到时返回 key
func (l *Locale) T(key string) string {
	return l.doc.Load().T(key)
}

// TOr returns the translation of key or def.
func (l *Locale) TOr(key, def string) string {
	return l.doc.Load().TOr(key, def)
}

// Resolve returns the raw value at key, or key when missing.
func (l *Locale) Resolve(key string) any {
	return l.doc.Load().Resolve(key)
}

// Obj returns the raw value at prefix, or an empty map when missing.
func (l *Locale) Obj(prefix string) any {
	return l.doc.Load().Obj(prefix)
}

func (l *Locale) Strings(prefix string) []string {
	return l.doc.Load().Strings(prefix)
}

func (l *Locale) Items(prefix string) []map[string]any {
	return l.doc.Load().Items(prefix)
}

func (l *Locale) Lookup(key string) (any, bool) {
	return l.doc.Load().Lookup(key)
}
