package tags

import (
	"maps"
	"slices"

	"git.home.luguber.info/inful/tagindex/internal/config"
	"git.home.luguber.info/inful/tagindex/internal/page"
)

// App data keys written by AppData.
const (
	KeyTagCloud   = "tagCloud"
	KeyTagsConfig = "tagsConfig"
)

// Pass holds the tag index of one build. Both entry points read the same
// index, so the tag cloud and the overview pages always agree.
// A Pass is not safe for concurrent use.
type Pass struct {
	opts     Options
	authored []page.Page
	index    []Entry
}

// NewPass indexes pages. Overview pages left over from an earlier pass are
// set aside and regenerated by MetaData, so re-running a pass on its own
// output does not duplicate them.
func NewPass(pages []page.Page, opts Options) *Pass {
	o := opts.normalized()
	authored := StripOverviewPages(pages)
	return &Pass{
		opts:     o,
		authored: authored,
		index:    BuildIndex(authored, o),
	}
}

// Index returns a copy of the tag cloud.
func (p *Pass) Index() []Entry {
	return slices.Clone(p.index)
}

// AppData returns a copy of app with tagCloud and tagsConfig added.
// A nil app is treated as empty; app itself is not modified.
func (p *Pass) AppData(app map[string]any) map[string]any {
	out := make(map[string]any, len(app)+2)
	maps.Copy(out, app)
	out[KeyTagCloud] = p.Index()
	out[KeyTagsConfig] = maps.Clone(p.opts.Settings)
	return out
}

// MetaData returns the authored pages followed by one overview page per
// tag, every page annotated with tagLinks.
func (p *Pass) MetaData() []page.Page {
	overviews := Synthesize(p.authored, p.index, p.opts)

	all := make([]page.Page, 0, len(p.authored)+len(overviews))
	all = append(all, p.authored...)
	all = append(all, overviews...)
	return Annotate(all, p.opts)
}

// ComputeAppData is the site-context entry point: it returns app enriched
// with the tag cloud of pages.
func ComputeAppData(app map[string]any, pages []page.Page, cfg *config.Config) map[string]any {
	return NewPass(pages, OptionsFromConfig(cfg)).AppData(app)
}

// ComputeMetaData is the page-collection entry point: it returns the
// annotated pages plus their overview pages. app is accepted for symmetry
// with ComputeAppData and is not read.
func ComputeMetaData(_ map[string]any, pages []page.Page, cfg *config.Config) []page.Page {
	return NewPass(pages, OptionsFromConfig(cfg)).MetaData()
}
