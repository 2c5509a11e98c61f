package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("i18n: unsupported document format")
	ErrInvalidDocument   = errors.New("i18n: document root must be a mapping")
	ErrLanguage          = errors.New("i18n: invalid language")
)

// Format is the encoding of a translation document on disk.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromExt maps a file extension to its Format.
func FormatFromExt(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

// Parse decodes one translation document. The root must be a mapping.
func Parse(data []byte, format Format) (map[string]any, error) {
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("toml unmarshal: %w", err)
		}
		raw = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if raw == nil {
		// 空文件
		return map[string]any{}, nil
	}
	root, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, ErrInvalidDocument
	}
	return root, nil
}

// LoadFS 从 fsys 的 dir 目录加载所有 `.json/.yaml/.yml/.toml` 文件
// 文件名即语言，例如: locales/bn.json, locales/en.yaml
func (b *Bundle) LoadFS(fsys fs.FS, dir string) error {
	return fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, ok := FormatFromExt(p)
		if !ok {
			return nil
		}
		if err := b.loadFile(fsys, p, format); err != nil {
			return fmt.Errorf("loadFile %s: %w", p, err)
		}
		return nil
	})
}

// LoadDir loads every supported document under dir on the local filesystem.
func (b *Bundle) LoadDir(dir string) error {
	return b.LoadFS(os.DirFS(dir), ".")
}

func (b *Bundle) loadFile(fsys fs.FS, p string, format Format) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return err
	}
	root, err := Parse(data, format)
	if err != nil {
		return err
	}
	lang := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return b.RegisterDocument(lang, root)
}

// MustLoadFS 版本，在初始化阶段直接 panic
func (b *Bundle) MustLoadFS(fsys fs.FS, dir string) {
	if err := b.LoadFS(fsys, dir); err != nil {
		panic(err)
	}
}

// MustLoadDir 版本，在初始化阶段直接 panic
func (b *Bundle) MustLoadDir(dir string) {
	if err := b.LoadDir(dir); err != nil {
		panic(err)
	}
}
