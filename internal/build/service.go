package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/tagindex/internal/config"
	"git.home.luguber.info/inful/tagindex/internal/page"
	"git.home.luguber.info/inful/tagindex/internal/tags"
)

// BuildService is the canonical interface for executing tag builds.
type BuildService interface {
	// Run executes config -> load -> pass and returns the build outcome.
	Run(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

// BuildRequest contains all inputs required to execute a tag build.
type BuildRequest struct {
	// ConfigPath is loaded when Config is nil. A missing file yields defaults.
	ConfigPath string

	// Config, when set, is used as-is instead of loading ConfigPath.
	Config *config.Config

	// ContentDir is a Markdown content tree. Exactly one of ContentDir and
	// PagesFile must be set.
	ContentDir string

	// PagesFile is a JSON page export written by a host pipeline.
	PagesFile string

	// App is the host's app data the tag cloud is merged into. May be nil.
	App map[string]any
}

// BuildResult contains the outcome of a build execution.
type BuildResult struct {
	// BuildID identifies this build in logs.
	BuildID string

	// Status indicates overall build outcome.
	Status BuildStatus

	// App is the app data with tagCloud and tagsConfig added.
	App map[string]any

	// Pages is the annotated page collection, overview pages included.
	Pages []page.Page

	// Tags is the tag cloud shared by App and Pages.
	Tags []tags.Entry

	// SourcePages is the count of pages that were loaded from the input.
	SourcePages int

	// OverviewPages is the count of synthesized tag overview pages.
	OverviewPages int

	// Duration is the total build execution time.
	Duration time.Duration

	// StartTime is when the build started.
	StartTime time.Time

	// EndTime is when the build completed.
	EndTime time.Time
}

// BuildStatus represents the outcome of a build execution.
type BuildStatus string

const (
	// BuildStatusSuccess indicates the build completed successfully.
	BuildStatusSuccess BuildStatus = "success"

	// BuildStatusFailed indicates the build encountered an error.
	BuildStatusFailed BuildStatus = "failed"

	// BuildStatusCancelled indicates the build was cancelled.
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsSuccess returns true if the build completed successfully.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess
}
