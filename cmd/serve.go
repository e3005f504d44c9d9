package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peterchambers21/portfolio/internal/devserver"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then serves the output
directory over HTTP. It watches the template, the projects file and the
content directory, and rebuilds the site whenever one of them changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if _, err := runBuild(cmd.Context(), out); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		addr := fmt.Sprintf(":%d", serverPort)
		fmt.Fprintf(out, "Serving '%s' on http://localhost%s (Ctrl+C to stop)\n", appConfig.OutputDir, addr)

		return devserver.Run(cmd.Context(), devserver.Options{
			Addr: addr,
			Dir:  appConfig.OutputDir,
			WatchPaths: []string{
				appConfig.TemplatePath,
				appConfig.ProjectsFile,
				appConfig.ContentDir,
			},
			Rebuild: func(ctx context.Context) error {
				_, err := runBuild(ctx, out)
				return err
			},
			Debounce: devserver.DefaultDebounce,
			Logger:   logger,
		})
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 5173, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
