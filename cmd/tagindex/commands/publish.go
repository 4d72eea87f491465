package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/tagindex/internal/logfields"
	"git.home.luguber.info/inful/tagindex/internal/templates"
)

// PublishTemplatesCmd implements the 'publish-templates' command.
type PublishTemplatesCmd struct {
	Root string `help:"Site project root" default:"." type:"path"`
}

func (p *PublishTemplatesCmd) Run(_ *Global, _ *CLI) error {
	return RunPublishTemplates(p.Root)
}

// RunPublishTemplates installs the tag views into the project at root.
func RunPublishTemplates(root string) error {
	res, err := templates.Publish(root)
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Fprintf(stdout, "Templates already exist at %s. Skipping.\n", res.Destination)
		return nil
	}
	for _, f := range res.Files {
		slog.Debug("Template published", logfields.Template(f))
	}
	fmt.Fprintf(stdout, "Templates copied to: %s\n", res.Destination)
	return nil
}
