package tags

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/tagindex/internal/page"
	"git.home.luguber.info/inful/tagindex/internal/util/sets"
)

// Entry is one tag of the tag cloud.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// BuildIndex collects every distinct tag token across pages, sorted by
// locale collation. Tokens are compared case-sensitively, so "CSS" and
// "css" are separate entries.
func BuildIndex(pages []page.Page, opts Options) []Entry {
	o := opts.normalized()

	seen := sets.New[string]()
	entries := []Entry{}
	for _, p := range pages {
		raw, ok := p.Get(o.TagField)
		if !ok {
			continue
		}
		for _, tok := range Extract(raw, o.Separator) {
			if seen.Add(tok) {
				entries = append(entries, Entry{Name: tok, Href: o.Href(tok)})
			}
		}
	}

	sortEntries(entries, o.Language)
	return entries
}

// sortEntries orders entries by collation key. Distinct names the collator
// considers equal fall back to byte order so the result stays deterministic.
func sortEntries(entries []Entry, lang language.Tag) {
	c := collate.New(lang)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if r := c.CompareString(a.Name, b.Name); r != 0 {
			return r
		}
		return strings.Compare(a.Name, b.Name)
	})
}
