package tags

import (
	"slices"
	"time"

	"git.home.luguber.info/inful/tagindex/internal/page"
)

// FindTagged returns the pages whose extracted tag tokens contain tag,
// newest createdAt first. Membership is exact: "java" does not match a page
// tagged "javascript". Pages with equal timestamps keep their input order;
// pages without a valid createdAt sort last.
func FindTagged(pages []page.Page, opts Options, tag string) []page.Page {
	o := opts.normalized()

	type dated struct {
		page page.Page
		at   time.Time
	}
	var matches []dated
	for _, p := range pages {
		raw, ok := p.Get(o.TagField)
		if !ok {
			continue
		}
		if slices.Contains(Extract(raw, o.Separator), tag) {
			matches = append(matches, dated{page: p, at: p.CreatedAt()})
		}
	}

	slices.SortStableFunc(matches, func(a, b dated) int {
		return b.at.Compare(a.at)
	})

	out := make([]page.Page, len(matches))
	for i, m := range matches {
		out[i] = m.page
	}
	return out
}
