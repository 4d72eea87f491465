package tags

import (
	"maps"
	"strings"
	"time"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/tagindex/internal/config"
)

// Options is the resolved configuration every transform reads.
type Options struct {
	// TagField is the meta key holding a page's raw tag string.
	TagField string
	// OverviewPath is the base path of overview pages, without trailing slash.
	OverviewPath string
	// Layout is attached to every synthesized overview page.
	Layout string
	// Separator splits the raw tag string. It is a literal, not a pattern.
	Separator string
	// ExtraMeta is merged into every overview page before the fixed fields.
	ExtraMeta map[string]any
	// Language selects the collation used to sort the tag index.
	Language language.Tag
	// Now stamps createdAt on overview pages.
	Now func() time.Time
	// Settings is the resolved configuration exposed to templates as tagsConfig.
	Settings map[string]any
}

// DefaultOptions returns Options for the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Defaults())
}

// OptionsFromConfig resolves Options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return Options{
		TagField:     cfg.MetaPropertyName,
		OverviewPath: cfg.TagOverviewPath,
		Layout:       cfg.TagOverviewLayout,
		Separator:    cfg.TagSeparator,
		ExtraMeta:    maps.Clone(cfg.TagOverviewMeta),
		Language:     cfg.Language(),
		Now:          time.Now,
		Settings:     cfg.AsMap(),
	}
}

// normalized fills zero fields with defaults so a literal Options{} is usable.
func (o Options) normalized() Options {
	if o.TagField == "" {
		o.TagField = config.DefaultMetaPropertyName
	}
	if o.Separator == "" {
		o.Separator = config.DefaultTagSeparator
	}
	if o.Layout == "" {
		o.Layout = config.DefaultTagOverviewLayout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Settings == nil {
		o.Settings = map[string]any{}
	}
	return o
}

// Href returns the overview page link for a tag: the overview path, the
// lower-cased tag and an .html suffix.
func (o Options) Href(tag string) string {
	return o.OverviewPath + "/" + strings.ToLower(tag) + ".html"
}

// dirname is the overview path without its leading slash.
func (o Options) dirname() string {
	return strings.TrimPrefix(o.OverviewPath, "/")
}
