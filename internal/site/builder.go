// Package site builds the static project pages and the sitemap.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/peterchambers21/portfolio/internal/config"
	"github.com/peterchambers21/portfolio/internal/content"
	"github.com/peterchambers21/portfolio/internal/model"
	"github.com/peterchambers21/portfolio/internal/records"
	"github.com/peterchambers21/portfolio/internal/render"
	"github.com/peterchambers21/portfolio/internal/sitemap"
	"github.com/peterchambers21/portfolio/internal/ui"
)

// Result describes a finished build.
type Result struct {
	// Pages are the paths of the written project pages, in input order.
	Pages []string
	// Skipped counts records without a slug.
	Skipped int
	// URLs are the sitemap entries, starting with the site root.
	URLs []string
	// Sitemap is the path the sitemap was written to.
	Sitemap string
}

// Builder renders every project in the projects file through the page
// template.
type Builder struct {
	cfg      config.Config
	out      io.Writer
	logger   *slog.Logger
	renderer *render.Renderer
	content  *content.Loader
}

// Option configures a Builder.
type Option func(*Builder)

// WithOutput sets where progress lines are printed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Builder) { b.out = w }
}

// WithLogger sets the diagnostic logger. Defaults to a logger that discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// New returns a Builder for cfg.
func New(cfg config.Config, opts ...Option) *Builder {
	cfg = cfg.Normalize()
	b := &Builder{
		cfg:      cfg,
		out:      os.Stdout,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		renderer: render.New(cfg.BaseURL),
		content:  content.NewLoader(cfg.ContentDir),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs a full build. Records without a slug are reported and skipped;
// any other problem aborts the build and is returned.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if err := requireFile(b.cfg.TemplatePath, ErrTemplateNotFound); err != nil {
		return nil, err
	}
	if err := requireFile(b.cfg.ProjectsFile, ErrRecordsNotFound); err != nil {
		return nil, err
	}

	tplBytes, err := os.ReadFile(b.cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template '%s': %w", b.cfg.TemplatePath, err)
	}
	tpl := string(tplBytes)

	projects, err := records.Load(b.cfg.ProjectsFile)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("loaded inputs",
		"template", b.cfg.TemplatePath,
		"projects", b.cfg.ProjectsFile,
		"records", len(projects))

	res := &Result{URLs: []string{b.renderer.Root()}}
	for i, p := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Slug == "" {
			fmt.Fprintln(b.out, ui.Warning("Skipping (missing slug): "+p.DisplayTitle()))
			res.Skipped++
			continue
		}
		if err := validSlug(p.Slug); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		page, err := b.renderPage(tpl, p)
		if err != nil {
			return nil, err
		}
		if err := writeFile(page.OutputPath, []byte(page.HTML)); err != nil {
			return nil, fmt.Errorf("failed to write page for '%s': %w", p.Slug, err)
		}
		b.logger.Debug("wrote page", "slug", page.Slug, "path", page.OutputPath, "bytes", len(page.HTML))
		fmt.Fprintln(b.out, ui.Success(p.Slug+"/index.html"))

		res.Pages = append(res.Pages, page.OutputPath)
		res.URLs = append(res.URLs, page.Canonical)
	}

	res.Sitemap = b.cfg.SitemapFile()
	if err := writeFile(res.Sitemap, sitemap.Render(res.URLs)); err != nil {
		return nil, fmt.Errorf("failed to write sitemap: %w", err)
	}
	b.logger.Debug("wrote sitemap", "path", res.Sitemap, "urls", len(res.URLs))

	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, ui.Summary(fmt.Sprintf("Done. Generated %d page(s).", len(res.Pages))))
	return res, nil
}

func (b *Builder) renderPage(tpl string, p model.Project) (model.Page, error) {
	p, found, err := b.content.Enrich(p)
	if err != nil {
		return model.Page{}, err
	}
	if found {
		b.logger.Debug("applied sidecar", "slug", p.Slug, "path", b.content.Path(p.Slug))
	}
	return model.Page{
		Slug:       p.Slug,
		Canonical:  b.renderer.Canonical(p.Slug),
		OutputPath: b.cfg.ProjectPagePath(p.Slug),
		HTML:       b.renderer.Render(tpl, p),
	}, nil
}

// requireFile returns sentinel wrapped with path when path does not exist.
func requireFile(path string, sentinel error) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", sentinel, path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat '%s': %w", path, err)
	}
	return nil
}

func validSlug(slug string) error {
	if slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return fmt.Errorf("%w: %q must be a single path segment", ErrInvalidSlug, slug)
	}
	return nil
}

// writeFile replaces path with data, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(path), err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	// atomic.WriteFile creates new files 0600; pages are meant to be served.
	return os.Chmod(path, 0644)
}
