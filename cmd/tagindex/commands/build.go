package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/tagindex/internal/build"
	"git.home.luguber.info/inful/tagindex/internal/metrics"
	"git.home.luguber.info/inful/tagindex/internal/page"
	"git.home.luguber.info/inful/tagindex/internal/tags"
)

// Output formats for build results.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	InputFlags `embed:""`

	Format       string `short:"f" help:"Output format (text|json)" enum:"text,json" default:"text"`
	IncludePages bool   `name:"include-pages" help:"Include the annotated page collection in JSON output"`
	Metrics      bool   `help:"Print build metrics in Prometheus text format to stderr"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	opts := BuildOptions{Format: b.Format, IncludePages: b.IncludePages}
	var reg *prom.Registry
	if b.Metrics {
		reg = prom.NewRegistry()
		opts.Recorder = metrics.NewPrometheusRecorder(reg)
	}

	err := RunBuild(context.Background(), stdout, build.BuildRequest{
		ConfigPath: root.Config,
		ContentDir: b.Content,
		PagesFile:  b.Pages,
	}, opts)

	if reg != nil {
		if werr := metrics.WriteText(stderr, reg); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// BuildOptions controls how RunBuild executes and reports.
type BuildOptions struct {
	Format       string
	IncludePages bool
	Recorder     metrics.Recorder
}

// RunBuild executes one build and writes its summary to w.
func RunBuild(ctx context.Context, w io.Writer, req build.BuildRequest, opts BuildOptions) error {
	svc := build.NewBuildService().WithRecorder(opts.Recorder)
	res, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}
	return WriteResult(w, res, opts)
}

// TagSummary is one tag of the build summary.
type TagSummary struct {
	Name  string `json:"name"`
	Href  string `json:"href"`
	Pages int    `json:"pages"`
}

// Summary is the JSON build report.
type Summary struct {
	BuildID       string       `json:"build_id"`
	Tags          []TagSummary `json:"tags"`
	SourcePages   int          `json:"source_pages"`
	OverviewPages int          `json:"overview_pages"`
	DurationMS    float64      `json:"duration_ms"`
	Pages         []page.Page  `json:"pages,omitempty"`
}

// Summarize converts a build result into its report form.
func Summarize(res *build.BuildResult) Summary {
	counts := make(map[string]int, len(res.Tags))
	for _, p := range res.Pages {
		if tag, tagged, ok := tags.Overview(p); ok {
			counts[tag] = len(tagged)
		}
	}

	s := Summary{
		BuildID:       res.BuildID,
		Tags:          make([]TagSummary, 0, len(res.Tags)),
		SourcePages:   res.SourcePages,
		OverviewPages: res.OverviewPages,
		DurationMS:    float64(res.Duration.Microseconds()) / 1000,
	}
	for _, e := range res.Tags {
		s.Tags = append(s.Tags, TagSummary{Name: e.Name, Href: e.Href, Pages: counts[e.Name]})
	}
	return s
}

// WriteResult renders a build result in the requested format.
func WriteResult(w io.Writer, res *build.BuildResult, opts BuildOptions) error {
	s := Summarize(res)

	if opts.Format == FormatJSON {
		if opts.IncludePages {
			s.Pages = res.Pages
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "Tags: %d (%d pages, %d overview pages)\n", len(s.Tags), s.SourcePages, s.OverviewPages)
	if len(s.Tags) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range s.Tags {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", t.Name, t.Pages, t.Href)
	}
	return tw.Flush()
}
