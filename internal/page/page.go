package page

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"git.home.luguber.info/inful/tagindex/internal/foundation/errors"
)

// Meta keys with a fixed meaning across the pipeline.
const (
	KeyCreatedAt    = "createdAt"
	KeyTitle        = "title"
	KeyLayout       = "layout"
	KeyHref         = "href"
	KeyHTMLPathName = "htmlPathName"
	KeyPagePathName = "pagePathName"
	KeyDirname      = "dirname"
	KeySourcePath   = "sourcePath"
)

// Page is a single content page: rendered content plus open metadata.
type Page struct {
	Content string         `json:"content" yaml:"content"`
	Meta    map[string]any `json:"meta" yaml:"meta"`
}

// New creates a page. A nil meta map is replaced with an empty one.
func New(content string, meta map[string]any) Page {
	if meta == nil {
		meta = make(map[string]any)
	}
	return Page{Content: content, Meta: meta}
}

// Get returns the meta value stored under key.
func (p Page) Get(key string) (any, bool) {
	if p.Meta == nil {
		return nil, false
	}
	v, ok := p.Meta[key]
	return v, ok
}

// String returns the meta value under key when it is a string.
func (p Page) String(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

// Has reports whether every key is present in Meta.
func (p Page) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := p.Get(k); !ok {
			return false
		}
	}
	return true
}

// WithMeta returns a copy of p whose Meta holds p's entries overlaid with
// extra. p itself is left untouched; Content is carried over as-is.
func (p Page) WithMeta(extra map[string]any) Page {
	meta := make(map[string]any, len(p.Meta)+len(extra))
	maps.Copy(meta, p.Meta)
	maps.Copy(meta, extra)
	return Page{Content: p.Content, Meta: meta}
}

// CreatedAt returns the page's createdAt timestamp. Missing or unparseable
// values yield the zero time, which orders before every real timestamp.
func (p Page) CreatedAt() time.Time {
	v, _ := p.Get(KeyCreatedAt)
	t, _ := ParseTime(v)
	return t
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime converts the shapes a createdAt value takes in front matter or
// host exports into a time.Time. ok is false when v is not a timestamp.
func ParseTime(v any) (t time.Time, ok bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case int:
		return time.Unix(int64(val), 0).UTC(), true
	case int64:
		return time.Unix(val, 0).UTC(), true
	case float64:
		return time.Unix(int64(val), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// FromAny converts a host-supplied page collection into pages. It accepts
// []Page, []map[string]any and []any whose elements are Page values or
// {content, meta} objects. Anything else is a caller contract violation and
// fails with a validation error.
func FromAny(v any) ([]Page, error) {
	switch items := v.(type) {
	case []Page:
		return items, nil
	case []map[string]any:
		out := make([]Page, 0, len(items))
		for i, item := range items {
			p, err := fromObject(i, item)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	case []any:
		out := make([]Page, 0, len(items))
		for i, item := range items {
			p, err := fromElement(i, item)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	default:
		return nil, errors.InvalidInputError("pages must be a sequence of page objects").
			WithContext("got", fmt.Sprintf("%T", v)).
			Build()
	}
}

func fromElement(i int, item any) (Page, error) {
	switch val := item.(type) {
	case Page:
		return val, nil
	case *Page:
		if val != nil {
			return *val, nil
		}
	case map[string]any:
		return fromObject(i, val)
	}
	return Page{}, errors.InvalidInputError("page entry is not an object").
		WithContext("index", i).
		WithContext("got", fmt.Sprintf("%T", item)).
		Build()
}

func fromObject(i int, obj map[string]any) (Page, error) {
	var content string
	if raw, ok := obj["content"]; ok && raw != nil {
		s, isString := raw.(string)
		if !isString {
			return Page{}, errors.InvalidInputError("page content must be a string").
				WithContext("index", i).
				Build()
		}
		content = s
	}

	var meta map[string]any
	if raw, ok := obj["meta"]; ok && raw != nil {
		m, isMap := raw.(map[string]any)
		if !isMap {
			return Page{}, errors.InvalidInputError("page meta must be an object").
				WithContext("index", i).
				Build()
		}
		meta = m
	}
	return New(content, meta), nil
}

// CloneMeta creates a deep copy of a meta map, descending into nested maps
// and slices.
func CloneMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = cloneValue(v)
	}
	return result
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneMeta(val)
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = cloneValue(item)
		}
		return result
	default:
		return v
	}
}
