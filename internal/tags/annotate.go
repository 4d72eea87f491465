package tags

import (
	"git.home.luguber.info/inful/tagindex/internal/page"
)

// KeyTagLinks is the meta key Annotate writes.
const KeyTagLinks = "tagLinks"

// Link points from a page to the overview page of one of its tags.
type Link struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// Links resolves a raw tag field to links, in field order, duplicates kept.
func Links(raw any, opts Options) []Link {
	o := opts.normalized()
	tokens := Extract(raw, o.Separator)
	links := make([]Link, len(tokens))
	for i, tok := range tokens {
		links[i] = Link{Name: tok, Href: o.Href(tok)}
	}
	return links
}

// Annotate returns copies of pages with tagLinks set in their meta. Pages
// without a tag field, overview pages included, get an empty list.
func Annotate(pages []page.Page, opts Options) []page.Page {
	o := opts.normalized()
	out := make([]page.Page, len(pages))
	for i, p := range pages {
		raw, _ := p.Get(o.TagField)
		out[i] = p.WithMeta(map[string]any{KeyTagLinks: Links(raw, o)})
	}
	return out
}
