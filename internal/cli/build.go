package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacobconley/mustache-layout/internal/app"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site through its layout chain",
	Long: `Render every page under the source directory through the configured
layout chain and write the results to the destination directory.

Files ending in .mustache are rendered; files whose name starts with "_"
and .toml variable sidecars are skipped; everything else is copied
through unchanged.

Examples:
  mlayout build
  mlayout build --source pages --dest public
  mlayout build --config site/mlayout.toml`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

// Build command flags
var (
	buildConfig string
	buildSource string
	buildDest   string
)

func init() {
	// Flags for build
	buildCmd.Flags().StringVarP(&buildConfig, FlagConfig, "c", "", DescConfig)
	buildCmd.Flags().StringVarP(&buildSource, FlagSource, "s", "", DescSource)
	buildCmd.Flags().StringVarP(&buildDest, FlagDest, "d", "", DescDest)
}

func runBuild(cmd *cobra.Command, args []string) error {
	printProgress("Building site")

	// Call app layer
	result, err := app.Build(app.BuildOptions{
		ConfigPath: buildConfig,
		Source:     buildSource,
		Dest:       buildDest,
	})

	if err != nil {
		printErrorMsg(fmt.Sprintf("Build failed: %v", err))
		return err
	}

	printSuccess(fmt.Sprintf("Rendered %d page(s), copied %d file(s), skipped %d",
		result.PagesRendered, result.FilesCopied, result.Skipped))
	for _, path := range result.Outputs {
		printDetail(path)
	}

	return nil
}
