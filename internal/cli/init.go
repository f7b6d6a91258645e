package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobconley/mustache-layout/internal/app"
	"github.com/jacobconley/mustache-layout/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new layout project",
	Long: `Create a starter project: the configuration file, a layout template
that yields to its pages, and an example page with a TOML variable
sidecar.

Run without flags for interactive prompts, or pass --name to scaffold
non-interactively.

Examples:
  mlayout init
  mlayout init --name "My Site"
  mlayout init --name "My Site" --source pages --dest public --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// Init command flags
var (
	initName   string
	initSource string
	initDest   string
	initLayout string
	initForce  bool
)

func init() {
	// Flags for init
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Site name (skips interactive prompts)")
	initCmd.Flags().StringVarP(&initSource, FlagSource, "s", "", DescSource)
	initCmd.Flags().StringVarP(&initDest, FlagDest, "d", "", DescDest)
	initCmd.Flags().StringVarP(&initLayout, "layout", "l", "", "Name of the starter layout")
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for an existing project first
	if _, err := os.Stat(config.DefaultConfigFile); err == nil && !initForce {
		printInfo("Configuration already exists at " + config.DefaultConfigFile)
		printInfo("(use --force to overwrite)")
		return nil
	}

	opts := app.ScaffoldOptions{
		SiteName:   initName,
		Source:     initSource,
		Dest:       initDest,
		LayoutName: initLayout,
		Force:      initForce,
	}

	// Prompt for anything not supplied on the command line
	if opts.SiteName == "" {
		if err := promptScaffoldOptions(&opts); err != nil {
			return err
		}
	}

	if initForce {
		printWarning("Force mode enabled - will overwrite existing configuration")
	}

	// Call app layer
	written, err := app.Scaffold(opts)

	if err != nil {
		printErrorMsg(fmt.Sprintf("Scaffolding failed: %v", err))
		return err
	}

	for _, path := range written {
		printSuccess("Created: " + path)
	}

	sourceDir := opts.Source
	if sourceDir == "" {
		sourceDir = "pages"
	}
	printInfo("")
	printInfo("Next steps:")
	printInfo("  1. Edit the templates under " + sourceDir + "/")
	printInfo("  2. Run: mlayout build")

	return nil
}
