package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/peterchambers21/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds every project page and the sitemap",
	Long: `The build command renders the page template once per project in the
projects file, writing projects/<slug>/index.html under the output directory,
and then writes a sitemap listing the site root and every page. Projects
without a slug are skipped with a warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runBuild(cmd.Context(), cmd.OutOrStdout())
		return err
	},
}

func runBuild(ctx context.Context, out io.Writer) (*site.Result, error) {
	b := site.New(appConfig, site.WithOutput(out), site.WithLogger(logger))
	return b.Build(ctx)
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
