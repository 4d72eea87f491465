package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/tagindex/internal/build"
	"git.home.luguber.info/inful/tagindex/internal/logfields"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	InputFlags `embed:""`

	Format   string        `short:"f" help:"Output format (text|json)" enum:"text,json" default:"text"`
	Debounce time.Duration `help:"Quiet period after the last change before rebuilding" default:"300ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	req := build.BuildRequest{
		ConfigPath: root.Config,
		ContentDir: w.Content,
		PagesFile:  w.Pages,
	}
	return RunWatch(ctx, req, BuildOptions{Format: w.Format}, w.Debounce)
}

// RunWatch builds once, then rebuilds on every settled change to the inputs
// or the configuration file until ctx is done. A failing initial build is
// logged, not fatal, so a broken file can be fixed while watching.
func RunWatch(ctx context.Context, req build.BuildRequest, opts BuildOptions, debounce time.Duration) error {
	rebuild := func(ctx context.Context) error {
		return RunBuild(ctx, stdout, req, opts)
	}
	if err := rebuild(ctx); err != nil {
		slog.Warn("Initial build failed", logfields.Error(err))
	}

	paths := []string{req.ContentDir, req.PagesFile, req.ConfigPath}
	slog.Info("Watching for changes", logfields.Path(firstNonEmpty(req.ContentDir, req.PagesFile)))
	if err := build.Watch(ctx, paths, debounce, rebuild); err != nil {
		return err
	}
	slog.Info("Watch stopped")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
