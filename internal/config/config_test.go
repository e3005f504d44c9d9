package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	got := Config{}.Normalize()

	def := Default()
	assert.Equal(t, def.BaseURL, got.BaseURL)
	assert.Equal(t, filepath.Clean(def.TemplatePath), got.TemplatePath)
	assert.Equal(t, def.ProjectsFile, got.ProjectsFile)
	assert.Equal(t, ".", got.OutputDir)
	assert.Equal(t, "sitemap.xml", got.SitemapPath)
	assert.Equal(t, "info", got.LogLevel)
}

func TestNormalizeTrimsBaseURL(t *testing.T) {
	got := Config{BaseURL: "https://example.com//"}.Normalize()
	assert.Equal(t, "https://example.com", got.BaseURL)
}

func TestNormalizeKeepsEmptyContentDir(t *testing.T) {
	got := Config{}.Normalize()
	assert.Empty(t, got.ContentDir)
}

func TestProjectPagePath(t *testing.T) {
	c := Config{OutputDir: "out"}
	assert.Equal(t, filepath.Join("out", "projects", "foo", "index.html"), c.ProjectPagePath("foo"))
}

func TestSitemapFile(t *testing.T) {
	c := Config{OutputDir: "out", SitemapPath: "sitemap.xml"}
	assert.Equal(t, filepath.Join("out", "sitemap.xml"), c.SitemapFile())

	abs := filepath.Join(t.TempDir(), "map.xml")
	c.SitemapPath = abs
	assert.Equal(t, abs, c.SitemapFile())
}
