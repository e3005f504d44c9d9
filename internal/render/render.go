package render

import (
	"strings"

	"github.com/peterchambers21/portfolio/internal/config"
	"github.com/peterchambers21/portfolio/internal/model"
)

// Placeholder tokens recognized in a page template.
const (
	TokenTitle       = "{{title}}"
	TokenDescription = "{{description}}"
	TokenImage       = "{{image}}"
	TokenTagsHTML    = "{{tagsHtml}}"
	TokenLinksHTML   = "{{linksHtml}}"
	TokenCanonical   = "{{canonical}}"
	TokenDate        = "{{date}}"
	TokenKeywords    = "{{keywords}}"
	TokenContent     = "{{content}}"
)

// Renderer fills page templates for a site rooted at a base URL.
type Renderer struct {
	baseURL string
}

// New returns a Renderer for baseURL. Trailing slashes are ignored.
func New(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Root is the canonical URL of the site's home page.
func (r *Renderer) Root() string {
	return r.baseURL + "/"
}

// Canonical is the canonical URL of the page for slug.
func (r *Renderer) Canonical(slug string) string {
	return r.baseURL + "/" + config.ProjectsDir + "/" + slug + "/"
}

// Image returns p.Image, or a generated thumbnail when it is empty.
func Image(p model.Project) string {
	if p.Image != "" {
		return p.Image
	}
	return Thumbnail(p.Title)
}

// Render substitutes every placeholder in tpl with its value for p.
// Substitution happens in a single pass, so a value that happens to contain
// a token is left as is.
func (r *Renderer) Render(tpl string, p model.Project) string {
	replacer := strings.NewReplacer(
		TokenTitle, Escape(p.Title),
		TokenDescription, Escape(p.Description),
		TokenImage, Image(p),
		TokenTagsHTML, Chips(p.Labels()),
		TokenLinksHTML, Links(p),
		TokenCanonical, r.Canonical(p.Slug),
		TokenDate, Escape(p.Date),
		TokenKeywords, Keywords(p),
		TokenContent, p.ContentHTML,
	)
	return replacer.Replace(tpl)
}
