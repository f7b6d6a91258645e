package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/jacobconley/mustache-layout/internal/app"
)

// promptScaffoldOptions interactively fills in scaffolding options that
// were not supplied on the command line.
func promptScaffoldOptions(opts *app.ScaffoldOptions) error {
	fmt.Println()
	fmt.Println("Please describe the new project:")
	fmt.Println()

	if opts.SiteName == "" {
		prompt := &survey.Input{
			Message: "Site name",
			Help:    "Declared as the site-wide site_name binding",
		}
		if err := survey.AskOne(prompt, &opts.SiteName,
			survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if opts.Source == "" {
		prompt := &survey.Input{
			Message: "Source directory",
			Default: "pages",
			Help:    "Directory holding the pages to render",
		}
		if err := survey.AskOne(prompt, &opts.Source); err != nil {
			return err
		}
	}

	if opts.Dest == "" {
		prompt := &survey.Input{
			Message: "Destination directory",
			Default: "dist",
			Help:    "Directory the rendered site is written to",
		}
		if err := survey.AskOne(prompt, &opts.Dest); err != nil {
			return err
		}
	}

	if opts.LayoutName == "" {
		prompt := &survey.Input{
			Message: "Layout name",
			Default: "site",
			Help:    "File stem of the starter layout, also its scope key",
		}
		if err := survey.AskOne(prompt, &opts.LayoutName); err != nil {
			return err
		}
	}

	return nil
}
