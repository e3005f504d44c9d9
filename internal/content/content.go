// Package content enriches project records with optional markdown sidecar
// files.
//
// A sidecar lives at <dir>/<slug>.md. Its frontmatter may fill in any record
// field the projects file left empty, and its body is rendered to HTML for
// the {{content}} placeholder.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/peterchambers21/portfolio/internal/model"
)

// Loader reads sidecars from a single directory.
type Loader struct {
	dir    string
	md     goldmark.Markdown
	titler cases.Caser
}

// NewLoader returns a Loader for dir. An empty dir disables sidecars.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir: dir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
		titler: cases.Title(language.English),
	}
}

// Path returns the sidecar path for slug, or "" when sidecars are disabled.
func (l *Loader) Path(slug string) string {
	if l.dir == "" {
		return ""
	}
	return filepath.Join(l.dir, slug+".md")
}

// Enrich returns p with its sidecar applied. found reports whether a sidecar
// existed. A missing sidecar or sidecar directory is not an error.
func (l *Loader) Enrich(p model.Project) (out model.Project, found bool, err error) {
	path := l.Path(p.Slug)
	if path == "" {
		return p, false, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, false, nil
	}
	if err != nil {
		return p, false, fmt.Errorf("failed to read sidecar '%s': %w", path, err)
	}

	var fm model.Project
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return p, false, fmt.Errorf("failed to parse frontmatter in '%s': %w", path, err)
	}

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return p, false, fmt.Errorf("failed to convert markdown in '%s': %w", path, err)
	}

	p = merge(p, fm)
	p.ContentHTML = buf.String()
	if p.Title == "" {
		p.Title = l.titleFromSlug(p.Slug)
	}
	return p, true, nil
}

// merge fills the empty fields of p from fm. Slug always comes from p.
func merge(p, fm model.Project) model.Project {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&p.Title, fm.Title)
	fill(&p.Description, fm.Description)
	fill(&p.Image, fm.Image)
	fill(&p.Demo, fm.Demo)
	fill(&p.Repo, fm.Repo)
	fill(&p.Date, fm.Date)
	if len(p.Tags) == 0 {
		p.Tags = fm.Tags
	}
	if len(p.Tech) == 0 {
		p.Tech = fm.Tech
	}
	return p
}

func (l *Loader) titleFromSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return l.titler.String(s)
}
