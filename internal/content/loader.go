// Package content turns a directory of Markdown files, or a page export
// written by a host pipeline, into a page collection.
package content

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"git.home.luguber.info/inful/tagindex/internal/foundation/errors"
	"git.home.luguber.info/inful/tagindex/internal/frontmatter"
	"git.home.luguber.info/inful/tagindex/internal/page"
)

// Loader reads Markdown sources into pages.
type Loader struct {
	md goldmark.Markdown
}

// NewLoader creates a Loader rendering GitHub-flavored Markdown.
func NewLoader() *Loader {
	return &Loader{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// LoadDir loads a Markdown content tree with a default Loader.
func LoadDir(root string) ([]page.Page, error) {
	return NewLoader().LoadDir(root)
}

// LoadDir walks root and loads every .md file in lexical path order.
// Hidden files and directories are skipped.
func (l *Loader) LoadDir(root string) ([]page.Page, error) {
	var pages []page.Page
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		pg, err := l.LoadFile(p, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		pages = append(pages, pg)
		return nil
	})
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to walk content directory").
			WithContext("path", root).
			Build()
	}
	if pages == nil {
		pages = []page.Page{}
	}
	return pages, nil
}

// LoadFile reads one Markdown file. rel is its slash-separated path relative
// to the content root and determines the page's output location.
func (l *Loader) LoadFile(filePath, rel string) (page.Page, error) {
	// #nosec G304 -- filePath comes from walking the configured content root.
	data, err := os.ReadFile(filePath)
	if err != nil {
		return page.Page{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read page").
			WithContext("path", filePath).
			Build()
	}

	doc, err := frontmatter.Parse(data)
	if err != nil {
		return page.Page{}, errors.WrapError(err, errors.CategoryContent, "invalid front matter").
			WithContext("path", rel).
			Build()
	}

	var html bytes.Buffer
	if err := l.md.Convert(doc.Body, &html); err != nil {
		return page.Page{}, errors.WrapError(err, errors.CategoryContent, "failed to render markdown").
			WithContext("path", rel).
			Build()
	}

	return page.New(html.String(), pathMeta(rel).WithMeta(doc.Fields).WithMeta(dateFallback(doc.Fields)).Meta), nil
}

// pathMeta derives location fields from a relative source path. Front
// matter may override any of them.
func pathMeta(rel string) page.Page {
	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}
	htmlPath := "/" + strings.TrimSuffix(rel, path.Ext(rel)) + ".html"
	return page.New("", map[string]any{
		page.KeySourcePath:   rel,
		page.KeyPagePathName: dir,
		page.KeyDirname:      dir,
		page.KeyHTMLPathName: htmlPath,
		page.KeyHref:         htmlPath,
	})
}

// dateFallback uses the conventional "date" field as createdAt when the
// page does not set createdAt itself.
func dateFallback(fields map[string]any) map[string]any {
	if _, ok := fields[page.KeyCreatedAt]; ok {
		return nil
	}
	if date, ok := fields["date"]; ok {
		return map[string]any{page.KeyCreatedAt: date}
	}
	return nil
}

// LoadJSON reads a host page export: a JSON array of {content, meta} objects.
func LoadJSON(filePath string) ([]page.Page, error) {
	// #nosec G304 -- path is supplied by the operator.
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read page export").
			WithContext("path", filePath).
			Build()
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "invalid page export").
			WithContext("path", filePath).
			Build()
	}
	return page.FromAny(raw)
}
