package tags

import (
	"git.home.luguber.info/inful/tagindex/internal/page"
)

// Meta keys written on overview pages.
const (
	KeyTag         = "tag"
	KeyTaggedPages = "taggedPages"
)

// Synthesize builds one overview page per index entry, in index order.
// taggedPages is computed from pages only; the returned overview pages are
// never scanned, so they cannot list each other.
func Synthesize(pages []page.Page, index []Entry, opts Options) []page.Page {
	o := opts.normalized()
	now := o.Now()
	dir := o.dirname()

	out := make([]page.Page, 0, len(index))
	for _, entry := range index {
		meta := page.CloneMeta(o.ExtraMeta)
		if meta == nil {
			meta = make(map[string]any, 9)
		}
		meta[page.KeyLayout] = o.Layout
		meta[page.KeyTitle] = entry.Name
		meta[page.KeyCreatedAt] = now
		meta[page.KeyHTMLPathName] = entry.Href
		meta[page.KeyHref] = entry.Href
		meta[page.KeyPagePathName] = dir
		meta[page.KeyDirname] = dir
		meta[KeyTag] = entry.Name
		meta[KeyTaggedPages] = FindTagged(pages, o, entry.Name)

		out = append(out, page.New("", meta))
	}
	return out
}

// IsOverviewPage reports whether p was produced by Synthesize.
func IsOverviewPage(p page.Page) bool {
	return p.Has(KeyTag, KeyTaggedPages)
}

// Overview returns the tag and listed pages of an overview page.
func Overview(p page.Page) (tag string, tagged []page.Page, ok bool) {
	if !IsOverviewPage(p) {
		return "", nil, false
	}
	tagged, _ = p.Meta[KeyTaggedPages].([]page.Page)
	return p.String(KeyTag), tagged, true
}

// StripOverviewPages returns pages without previously synthesized overview
// pages. The input slice is not modified.
func StripOverviewPages(pages []page.Page) []page.Page {
	out := make([]page.Page, 0, len(pages))
	for _, p := range pages {
		if !IsOverviewPage(p) {
			out = append(out, p)
		}
	}
	return out
}
