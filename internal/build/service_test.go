package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/tagindex/internal/config"
	"git.home.luguber.info/inful/tagindex/internal/foundation/errors"
	"git.home.luguber.info/inful/tagindex/internal/metrics"
	"git.home.luguber.info/inful/tagindex/internal/page"
	"git.home.luguber.info/inful/tagindex/internal/tags"
)

type fakeRecorder struct {
	metrics.NoopRecorder
	stages   map[string][]metrics.ResultLabel
	outcomes []metrics.BuildOutcomeLabel
	tagCount int
	pages    int
	overview int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{stages: map[string][]metrics.ResultLabel{}}
}

func (f *fakeRecorder) IncStageResult(stage string, r metrics.ResultLabel) {
	f.stages[stage] = append(f.stages[stage], r)
}
func (f *fakeRecorder) IncBuildOutcome(o metrics.BuildOutcomeLabel) { f.outcomes = append(f.outcomes, o) }
func (f *fakeRecorder) SetTagCount(n int)                           { f.tagCount = n }
func (f *fakeRecorder) SetPageCount(n int)                          { f.pages = n }
func (f *fakeRecorder) AddOverviewPages(n int)                      { f.overview += n }

func writeContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"one.md":   "---\ntitle: One\ntags: go, web\ncreatedAt: \"2024-01-01\"\n---\nfirst\n",
		"two.md":   "---\ntitle: Two\ntags: go\ncreatedAt: \"2024-02-01\"\n---\nsecond\n",
		"three.md": "---\ntitle: Three\n---\nuntagged\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

var buildTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestService(rec metrics.Recorder) *DefaultBuildService {
	return NewBuildService().
		WithRecorder(rec).
		WithClock(func() time.Time { return buildTime }).
		WithIDGenerator(func() string { return "build-1" })
}

func TestRun_ContentDir(t *testing.T) {
	rec := newFakeRecorder()
	svc := newTestService(rec)

	res, err := svc.Run(context.Background(), BuildRequest{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		ContentDir: writeContent(t),
		App:        map[string]any{"siteName": "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "build-1", res.BuildID)
	assert.Equal(t, BuildStatusSuccess, res.Status)
	assert.Equal(t, []tags.Entry{
		{Name: "go", Href: "/tags/go.html"},
		{Name: "web", Href: "/tags/web.html"},
	}, res.Tags)
	assert.Equal(t, 3, res.SourcePages)
	assert.Equal(t, 2, res.OverviewPages)
	assert.Len(t, res.Pages, 5)

	assert.Equal(t, "demo", res.App["siteName"])
	assert.Equal(t, res.Tags, res.App[tags.KeyTagCloud])

	tag, tagged, ok := tags.Overview(res.Pages[3])
	require.True(t, ok)
	assert.Equal(t, "go", tag)
	require.Len(t, tagged, 2)
	assert.Equal(t, "Two", tagged[0].String(page.KeyTitle))
	assert.Equal(t, buildTime, res.Pages[3].Meta[page.KeyCreatedAt])

	assert.Equal(t, []metrics.ResultLabel{metrics.ResultSuccess}, rec.stages[StageConfig])
	assert.Equal(t, []metrics.ResultLabel{metrics.ResultSuccess}, rec.stages[StageMetaData])
	assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeSuccess}, rec.outcomes)
	assert.Equal(t, 2, rec.tagCount)
	assert.Equal(t, 5, rec.pages)
	assert.Equal(t, 2, rec.overview)
}

func TestRun_PagesFileWithInlineConfig(t *testing.T) {
	pagesFile := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(pagesFile, []byte(`[
		{"content": "", "meta": {"title": "A", "keywords": "x| y"}}
	]`), 0o600))

	svc := newTestService(nil)
	res, err := svc.Run(context.Background(), BuildRequest{
		Config:    &config.Config{MetaPropertyName: "keywords", TagSeparator: "|", TagOverviewPath: "/topics/"},
		PagesFile: pagesFile,
	})
	require.NoError(t, err)
	assert.Equal(t, []tags.Entry{
		{Name: "x", Href: "/topics/x.html"},
		{Name: "y", Href: "/topics/y.html"},
	}, res.Tags)
	assert.Equal(t, 1, res.SourcePages)
	assert.Equal(t, 2, res.OverviewPages)
}

func TestRun_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  BuildRequest
	}{
		{name: "no input", req: BuildRequest{}},
		{name: "both inputs", req: BuildRequest{ContentDir: "a", PagesFile: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newFakeRecorder()
			res, err := newTestService(rec).Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
			assert.Equal(t, BuildStatusFailed, res.Status)
			assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeFailed}, rec.outcomes)
		})
	}
}

func TestRun_LoadFailure(t *testing.T) {
	rec := newFakeRecorder()
	res, err := newTestService(rec).Run(context.Background(), BuildRequest{
		PagesFile: filepath.Join(t.TempDir(), "missing.json"),
	})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	assert.Equal(t, BuildStatusFailed, res.Status)
	assert.Equal(t, []metrics.ResultLabel{metrics.ResultFailed}, rec.stages[StageLoad])
	assert.Empty(t, rec.stages[StageIndex])
}

func TestRun_InvalidConfig(t *testing.T) {
	res, err := newTestService(nil).Run(context.Background(), BuildRequest{
		Config:     &config.Config{CollationLanguage: "not a language!"},
		ContentDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Equal(t, BuildStatusFailed, res.Status)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := newFakeRecorder()
	res, err := newTestService(rec).Run(ctx, BuildRequest{ContentDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, BuildStatusCancelled, res.Status)
	assert.Equal(t, []metrics.ResultLabel{metrics.ResultCanceled}, rec.stages[StageConfig])
	assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeCanceled}, rec.outcomes)
}

func TestBuildStatus_IsSuccess(t *testing.T) {
	assert.True(t, BuildStatusSuccess.IsSuccess())
	assert.False(t, BuildStatusFailed.IsSuccess())
	assert.False(t, BuildStatusCancelled.IsSuccess())
}
