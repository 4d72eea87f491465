package build

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/tagindex/internal/config"
	"git.home.luguber.info/inful/tagindex/internal/content"
	"git.home.luguber.info/inful/tagindex/internal/foundation/errors"
	"git.home.luguber.info/inful/tagindex/internal/logfields"
	"git.home.luguber.info/inful/tagindex/internal/metrics"
	"git.home.luguber.info/inful/tagindex/internal/observability"
	"git.home.luguber.info/inful/tagindex/internal/page"
	"git.home.luguber.info/inful/tagindex/internal/tags"
)

// Stage names used for logging and metrics.
const (
	StageConfig   = "config"
	StageLoad     = "load"
	StageIndex    = "index"
	StageMetaData = "metadata"
)

// DefaultBuildService is the standard implementation of BuildService.
type DefaultBuildService struct {
	recorder metrics.Recorder
	log      observability.Logger
	now      func() time.Time
	newID    func() string
	loader   *content.Loader
}

// NewBuildService creates a DefaultBuildService that records no metrics and
// logs through slog.Default.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
		newID:    uuid.NewString,
		loader:   content.NewLoader(),
	}
}

// WithRecorder sets the metrics recorder.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithLogger sets the logger.
func (s *DefaultBuildService) WithLogger(l observability.Logger) *DefaultBuildService {
	s.log = l
	return s
}

// WithClock sets the clock used for build timing and overview page timestamps.
func (s *DefaultBuildService) WithClock(now func() time.Time) *DefaultBuildService {
	if now != nil {
		s.now = now
	}
	return s
}

// WithIDGenerator sets the build ID generator (for testing).
func (s *DefaultBuildService) WithIDGenerator(gen func() string) *DefaultBuildService {
	if gen != nil {
		s.newID = gen
	}
	return s
}

// Run executes the complete build.
func (s *DefaultBuildService) Run(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	start := s.now()
	result := &BuildResult{BuildID: s.newID(), StartTime: start}
	ctx = observability.WithBuildID(ctx, result.BuildID)

	fail := func(status BuildStatus, err error) (*BuildResult, error) {
		result.Status = status
		result.EndTime = s.now()
		result.Duration = result.EndTime.Sub(start)
		outcome := metrics.BuildOutcomeFailed
		if status == BuildStatusCancelled {
			outcome = metrics.BuildOutcomeCanceled
		}
		s.recorder.IncBuildOutcome(outcome)
		s.recorder.ObserveBuildDuration(result.Duration)
		s.log.Error(ctx, "Tag build failed", logfields.Error(err))
		return result, err
	}

	if err := validateRequest(req); err != nil {
		return fail(BuildStatusFailed, err)
	}

	// Stage 1: configuration
	var cfg *config.Config
	err := s.stage(ctx, StageConfig, func(ctx context.Context) error {
		var err error
		cfg, err = s.resolveConfig(req)
		if err == nil {
			s.log.Debug(ctx, "Configuration resolved", logfields.Config(req.ConfigPath))
		}
		return err
	})
	if err != nil {
		return fail(statusFor(err), err)
	}
	opts := tags.OptionsFromConfig(cfg)
	opts.Now = s.now

	// Stage 2: pages
	var pages []page.Page
	err = s.stage(ctx, StageLoad, func(ctx context.Context) error {
		var err error
		pages, err = s.loadPages(req)
		if err == nil {
			s.log.Info(ctx, "Pages loaded", logfields.Pages(len(pages)))
		}
		return err
	})
	if err != nil {
		return fail(statusFor(err), err)
	}

	// Stage 3: tag index
	var pass *tags.Pass
	err = s.stage(ctx, StageIndex, func(ctx context.Context) error {
		pass = tags.NewPass(pages, opts)
		result.Tags = pass.Index()
		s.log.Info(ctx, "Tag cloud built", logfields.Tags(len(result.Tags)))
		return nil
	})
	if err != nil {
		return fail(statusFor(err), err)
	}

	// Stage 4: app data and page metadata
	err = s.stage(ctx, StageMetaData, func(ctx context.Context) error {
		result.App = pass.AppData(req.App)
		result.Pages = pass.MetaData()
		result.OverviewPages = len(result.Pages) - len(tags.StripOverviewPages(result.Pages))
		result.SourcePages = len(result.Pages) - result.OverviewPages
		s.log.Debug(ctx, "Overview pages synthesized", logfields.Overviews(result.OverviewPages))
		return nil
	})
	if err != nil {
		return fail(statusFor(err), err)
	}

	result.Status = BuildStatusSuccess
	result.EndTime = s.now()
	result.Duration = result.EndTime.Sub(start)
	s.recorder.SetTagCount(len(result.Tags))
	s.recorder.SetPageCount(len(result.Pages))
	s.recorder.AddOverviewPages(result.OverviewPages)
	s.recorder.IncBuildOutcome(metrics.BuildOutcomeSuccess)
	s.recorder.ObserveBuildDuration(result.Duration)
	s.log.Info(ctx, "Tag build complete",
		logfields.Tags(len(result.Tags)),
		logfields.Pages(len(result.Pages)),
		logfields.Overviews(result.OverviewPages),
		logfields.DurationMS(float64(result.Duration.Microseconds())/1000))
	return result, nil
}

// stage runs fn as a named stage, recording its duration and result. A
// cancelled context stops the build before the stage starts.
func (s *DefaultBuildService) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		s.recorder.IncStageResult(name, metrics.ResultCanceled)
		return err
	}
	ctx = observability.WithStage(ctx, name)
	start := s.now()
	err := fn(ctx)
	s.recorder.ObserveStageDuration(name, s.now().Sub(start))
	if err != nil {
		s.recorder.IncStageResult(name, metrics.ResultFailed)
		return err
	}
	s.recorder.IncStageResult(name, metrics.ResultSuccess)
	return nil
}

func (s *DefaultBuildService) resolveConfig(req BuildRequest) (*config.Config, error) {
	if req.Config == nil {
		return config.Load(req.ConfigPath)
	}
	cfg := *req.Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *DefaultBuildService) loadPages(req BuildRequest) ([]page.Page, error) {
	if req.ContentDir != "" {
		return s.loader.LoadDir(req.ContentDir)
	}
	return content.LoadJSON(req.PagesFile)
}

func validateRequest(req BuildRequest) error {
	switch {
	case req.ContentDir == "" && req.PagesFile == "":
		return errors.ValidationError("either a content directory or a pages file is required").Build()
	case req.ContentDir != "" && req.PagesFile != "":
		return errors.ValidationError("content directory and pages file are mutually exclusive").
			WithContext("content", req.ContentDir).
			WithContext("pages", req.PagesFile).
			Build()
	}
	return nil
}

func statusFor(err error) BuildStatus {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return BuildStatusCancelled
	}
	return BuildStatusFailed
}
