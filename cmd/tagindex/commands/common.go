package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"tags.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build            BuildCmd            `cmd:"" help:"Run one tag build and print the tag cloud"`
	Watch            WatchCmd            `cmd:"" help:"Rebuild whenever content or configuration changes"`
	PublishTemplates PublishTemplatesCmd `cmd:"" name:"publish-templates" help:"Copy the tag views into the site project for customization"`
	Init             InitCmd             `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// InputFlags selects where pages come from. Exactly one must be set.
type InputFlags struct {
	Content string `short:"d" help:"Markdown content directory" type:"path" xor:"input" required:""`
	Pages   string `short:"p" help:"JSON page export ({content, meta} objects)" type:"path" xor:"input" required:""`
}

// stdout and stderr are swapped in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)
