package i18n

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// Bundle 是整个 i18n 的核心对象，负责持有所有语言的文档
//
// Documents are registered during start-up. Registering a language again
// builds a new Document; Documents already handed out keep their content.
type Bundle struct {
	mu     sync.RWMutex
	docs   map[language.Tag]*Document
	tags   []language.Tag
	config Config
}

// New 创建一个新的 Bundle
func New(cfg Config) *Bundle {
	return &Bundle{
		docs:   make(map[language.Tag]*Document),
		config: cfg.withDefaults(),
	}
}

// RegisterDocument 注册某个语言的文档
// 同一语言重复注册时按顶层 key 合并，后注册的覆盖
func (b *Bundle) RegisterDocument(lang string, root map[string]any) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrLanguage, lang, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	merged := make(map[string]any, len(root))
	if prev, ok := b.docs[tag]; ok {
		for k, v := range prev.root {
			merged[k] = v
		}
	} else {
		b.tags = append(b.tags, tag)
	}
	for k, v := range root {
		merged[k] = v
	}
	b.docs[tag] = NewDocument(tag, merged, b.config.Logger)
	return nil
}

// Languages returns the registered languages, sorted.
func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]string, 0, len(b.tags))
	for _, tag := range b.tags {
		langs = append(langs, tag.String())
	}
	sort.Strings(langs)
	return langs
}

// Document picks the document for lang. It never returns nil.
//
// Order: explicit Fallbacks for lang, the closest registered language, the
// default language, and finally an empty document in the default language.
func (b *Bundle) Document(lang string) *Document {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if fb, ok := b.config.Fallbacks[lang]; ok && len(fb) > 0 {
		for _, l := range fb {
			if doc := b.exact(l); doc != nil {
				return doc
			}
		}
	} else if lang != "" {
		if doc := b.match(lang); doc != nil {
			return doc
		}
	}

	if doc := b.exact(b.config.DefaultLang); doc != nil {
		return doc
	}
	tag, err := language.Parse(b.config.DefaultLang)
	if err != nil {
		tag = language.Und
	}
	return NewDocument(tag, nil, b.config.Logger)
}

func (b *Bundle) exact(lang string) *Document {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil
	}
	return b.docs[tag]
}

func (b *Bundle) match(lang string) *Document {
	if doc := b.exact(lang); doc != nil {
		return doc
	}
	if len(b.tags) == 0 {
		return nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil
	}
	_, idx, conf := language.NewMatcher(b.tags).Match(tag)
	if conf == language.No {
		return nil
	}
	return b.docs[b.tags[idx]]
}

// Locale 返回一个绑定语言的翻译入口
func (b *Bundle) Locale(lang string) *Locale {
	l := &Locale{bundle: b}
	l.doc.Store(b.Document(lang))
	return l
}
