package i18n

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Document is one immutable translation tree for a single language.
//
// Nodes are strings, map[string]any, []any or other decoded scalars. Every
// value handed out by a Document is a deep copy, so callers cannot change the
// shared tree.
type Document struct {
	lang   language.Tag
	root   map[string]any
	logger *log.Logger
}

// NewDocument copies root into a new Document. A nil logger means log.Default().
func NewDocument(lang language.Tag, root map[string]any, logger *log.Logger) *Document {
	if logger == nil {
		logger = log.Default()
	}
	tree, _ := normalize(root).(map[string]any)
	if tree == nil {
		tree = make(map[string]any)
	}
	return &Document{
		lang:   lang,
		root:   tree,
		logger: logger,
	}
}

// Lang returns the language of the document.
func (d *Document) Lang() language.Tag {
	return d.lang
}

// Lookup walks key from the root and reports whether every segment was found.
// It never logs.
func (d *Document) Lookup(key string) (any, bool) {
	v, ok := walk(d.root, key)
	if !ok {
		return nil, false
	}
	return normalize(v), true
}

// Resolve returns the value stored at key, or key itself when any segment is
// missing.
//
// The value is returned as stored: a key that addresses a mapping or a list
// yields that structure, not a string. Use T when a string is required.
func (d *Document) Resolve(key string) any {
	v, ok := d.Lookup(key)
	if !ok {
		d.logger.Printf("i18n: translation key not found: %s", key)
		return key
	}
	return v
}

// T returns the string stored at key. A missing key, or a key whose value is
// not a string, yields key.
func (d *Document) T(key string) string {
	v, ok := walk(d.root, key)
	if !ok {
		d.logger.Printf("i18n: translation key not found: %s", key)
		return key
	}
	s, ok := v.(string)
	if !ok {
		d.logger.Printf("i18n: translation key %s holds %s, not a string", key, Kind(v))
		return key
	}
	return s
}

// TOr returns the string stored at key, or def when key is missing or does
// not hold a string. A translation equal to its own key path is returned
// as is.
func (d *Document) TOr(key, def string) string {
	v, ok := walk(d.root, key)
	if !ok {
		d.logger.Printf("i18n: translation key not found: %s", key)
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// Obj returns whatever is stored at prefix, or an empty map when any segment
// is missing.
func (d *Document) Obj(prefix string) any {
	v, ok := d.Lookup(prefix)
	if !ok {
		d.logger.Printf("i18n: translation object not found: %s", prefix)
		return map[string]any{}
	}
	return v
}

// Strings returns the list of strings stored at prefix. It returns nil when
// prefix is missing or the value is not a list made only of strings.
func (d *Document) Strings(prefix string) []string {
	v, ok := walk(d.root, prefix)
	if !ok {
		d.logger.Printf("i18n: translation object not found: %s", prefix)
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

// Items returns the list of mappings stored at prefix, e.g. grid items or
// initiatives. It returns nil when prefix is missing or the value is not a
// list made only of mappings.
func (d *Document) Items(prefix string) []map[string]any {
	v, ok := walk(d.root, prefix)
	if !ok {
		d.logger.Printf("i18n: translation object not found: %s", prefix)
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		out = append(out, normalize(m).(map[string]any))
	}
	return out
}

// Keys returns the sorted key paths of every leaf. List elements appear as
// index segments, e.g. "home.gridItems.0.title". Empty mappings and lists
// contribute no key.
func (d *Document) Keys() []string {
	var keys []string
	for k, v := range d.root {
		collectKeys(k, v, &keys)
	}
	sort.Strings(keys)
	return keys
}

func collectKeys(path string, v any, keys *[]string) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			collectKeys(path+"."+k, child, keys)
		}
	case []any:
		for i, child := range node {
			collectKeys(path+"."+strconv.Itoa(i), child, keys)
		}
	default:
		*keys = append(*keys, path)
	}
}

// Kind names the shape of a document node: "object", "array", "string",
// "number", "bool" or "null".
func Kind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case nil:
		return "null"
	case int, int64, uint64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// walk descends one segment at a time. Segments match mapping keys exactly;
// on a list a segment must be a canonical index ("0", "12").
func walk(root map[string]any, key string) (any, bool) {
	var cur any = root
	for _, seg := range strings.Split(key, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, ok := listIndex(seg, len(node))
			if !ok {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func listIndex(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != seg {
		return 0, false
	}
	return i, true
}

// normalize deep-copies a decoded node, turning map[any]any (YAML) into
// map[string]any and typed slices into []any.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = normalize(child)
		}
		return out
	case []map[string]any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = normalize(child)
		}
		return out
	case []string:
		out := make([]any, len(node))
		for i, s := range node {
			out[i] = s
		}
		return out
	default:
		return v
	}
}
