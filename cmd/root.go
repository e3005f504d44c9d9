package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peterchambers21/portfolio/internal/config"
	"github.com/peterchambers21/portfolio/internal/ui"
)

var (
	cfgFile   string
	appConfig config.Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Generates static project pages and a sitemap",
	Long: `portfolio reads a list of projects (projects.json) and a page template
(templates/project.html), writes one page per project to
projects/<slug>/index.html and lists them all in sitemap.xml.

Run without a subcommand to build once.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runBuild(cmd.Context(), cmd.OutOrStdout())
		return err
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	def := config.Default()
	v.SetDefault("baseURL", def.BaseURL)
	v.SetDefault("templatePath", def.TemplatePath)
	v.SetDefault("projectsFile", def.ProjectsFile)
	v.SetDefault("outputDir", def.OutputDir)
	v.SetDefault("sitemapPath", def.SitemapPath)
	v.SetDefault("contentDir", def.ContentDir)
	v.SetDefault("logLevel", def.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	usedFile := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		usedFile = v.ConfigFileUsed()
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	appConfig = cfg.Normalize()
	logger = newLogger(appConfig.LogLevel, cmd.ErrOrStderr())

	if usedFile != "" {
		logger.Debug("using config file", "path", usedFile)
	}
	logger.Debug("configuration loaded",
		"baseURL", appConfig.BaseURL,
		"outputDir", appConfig.OutputDir,
		"templatePath", appConfig.TemplatePath,
		"projectsFile", appConfig.ProjectsFile)
	return nil
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
