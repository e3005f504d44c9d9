package config

import (
	"path/filepath"
	"strings"
)

const (
	DefaultBaseURL      = "http://localhost:5173"
	DefaultTemplatePath = "templates/project.html"
	DefaultProjectsFile = "projects.json"
	DefaultOutputDir    = "."
	DefaultSitemapPath  = "sitemap.xml"
	DefaultContentDir   = "content/projects"
	DefaultLogLevel     = "info"

	// ProjectsDir is the directory under OutputDir that holds one
	// subdirectory per project slug. It is also the URL path segment.
	ProjectsDir = "projects"
)

// Config holds everything a build needs to know about where its inputs
// live and where its outputs go.
type Config struct {
	BaseURL      string `mapstructure:"baseURL"`
	TemplatePath string `mapstructure:"templatePath"`
	ProjectsFile string `mapstructure:"projectsFile"`
	OutputDir    string `mapstructure:"outputDir"`
	SitemapPath  string `mapstructure:"sitemapPath"`
	ContentDir   string `mapstructure:"contentDir"`
	LogLevel     string `mapstructure:"logLevel"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		TemplatePath: DefaultTemplatePath,
		ProjectsFile: DefaultProjectsFile,
		OutputDir:    DefaultOutputDir,
		SitemapPath:  DefaultSitemapPath,
		ContentDir:   DefaultContentDir,
		LogLevel:     DefaultLogLevel,
	}
}

// Normalize fills empty fields from Default, strips trailing slashes from
// BaseURL and cleans the filesystem paths.
func (c Config) Normalize() Config {
	def := Default()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.TemplatePath == "" {
		c.TemplatePath = def.TemplatePath
	}
	if c.ProjectsFile == "" {
		c.ProjectsFile = def.ProjectsFile
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.SitemapPath == "" {
		c.SitemapPath = def.SitemapPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	c.TemplatePath = filepath.Clean(c.TemplatePath)
	c.ProjectsFile = filepath.Clean(c.ProjectsFile)
	c.OutputDir = filepath.Clean(c.OutputDir)
	if c.ContentDir != "" {
		c.ContentDir = filepath.Clean(c.ContentDir)
	}
	return c
}

// ProjectPagePath is where the page for slug is written.
func (c Config) ProjectPagePath(slug string) string {
	return filepath.Join(c.OutputDir, ProjectsDir, slug, "index.html")
}

// SitemapFile resolves SitemapPath against OutputDir unless it is absolute.
func (c Config) SitemapFile() string {
	if filepath.IsAbs(c.SitemapPath) {
		return c.SitemapPath
	}
	return filepath.Join(c.OutputDir, c.SitemapPath)
}
