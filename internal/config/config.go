// Package config loads the tag aggregation settings from YAML.
//
// A missing configuration file is not an error: Load returns Defaults. Keys
// the package does not know are preserved in Extra so templates can read
// site-specific settings (for example tag_overview_default_image) from the
// resolved configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/tagindex/internal/foundation/errors"
	"git.home.luguber.info/inful/tagindex/internal/logfields"
)

// Default values for every recognized option.
const (
	DefaultMetaPropertyName  = "tags"
	DefaultTagOverviewPath   = "/tags"
	DefaultTagOverviewLayout = "pages/default.pug"
	DefaultTagSeparator      = ","
	DefaultCollation         = "und"
)

// Config represents the tag aggregation configuration.
type Config struct {
	MetaPropertyName  string         `yaml:"meta_property_name"`
	TagOverviewPath   string         `yaml:"tag_overview_path"`
	TagOverviewLayout string         `yaml:"tag_overview_layout"`
	TagSeparator      string         `yaml:"tag_separator"`
	TagOverviewMeta   map[string]any `yaml:"tag_overview_meta,omitempty"`
	CollationLanguage string         `yaml:"collation_language,omitempty"`

	// Extra holds keys not recognized above, untouched.
	Extra map[string]any `yaml:",inline"`
}

// Defaults returns a configuration with every option at its default.
func Defaults() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset options and normalizes the overview path.
func (c *Config) ApplyDefaults() {
	if c.MetaPropertyName == "" {
		c.MetaPropertyName = DefaultMetaPropertyName
	}
	if c.TagOverviewPath == "" {
		c.TagOverviewPath = DefaultTagOverviewPath
	}
	// "/tags/" would otherwise produce "/tags//go.html".
	c.TagOverviewPath = strings.TrimRight(c.TagOverviewPath, "/")
	if c.TagOverviewLayout == "" {
		c.TagOverviewLayout = DefaultTagOverviewLayout
	}
	if c.TagSeparator == "" {
		c.TagSeparator = DefaultTagSeparator
	}
	if c.TagOverviewMeta == nil {
		c.TagOverviewMeta = map[string]any{}
	}
	if c.CollationLanguage == "" {
		c.CollationLanguage = DefaultCollation
	}
}

// Validate checks options that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.CollationLanguage); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid collation_language").
			Fatal().
			WithContext("value", c.CollationLanguage).
			Build()
	}
	return nil
}

// Language returns the parsed collation language, or the root locale when
// the configured value does not parse.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.CollationLanguage)
	if err != nil {
		return language.Und
	}
	return tag
}

// AsMap returns the resolved configuration as the flat key/value map exposed
// to templates. Recognized options win over Extra keys with the same name.
func (c *Config) AsMap() map[string]any {
	out := make(map[string]any, len(c.Extra)+6)
	maps.Copy(out, c.Extra)
	out["meta_property_name"] = c.MetaPropertyName
	out["tag_overview_path"] = c.TagOverviewPath
	out["tag_overview_layout"] = c.TagOverviewLayout
	out["tag_separator"] = c.TagSeparator
	out["tag_overview_meta"] = maps.Clone(c.TagOverviewMeta)
	out["collation_language"] = c.CollationLanguage
	return out
}

// Load loads configuration from the specified file. A missing file yields
// Defaults. Environment variables (including those from .env files) are
// expanded before parsing.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Configuration file not found, using defaults", logfields.Config(configPath))
		return Defaults(), nil
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryAlreadyExists, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Defaults()
	example.TagOverviewLayout = "pages/tag-overview.html"
	example.TagOverviewMeta = map[string]any{"description": "All pages tagged with this topic"}
	example.Extra = map[string]any{"tag_overview_default_image": "/images/default-tag.jpg"}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
