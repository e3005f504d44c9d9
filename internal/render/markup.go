package render

import (
	"strings"

	"github.com/peterchambers21/portfolio/internal/model"
)

// Chips renders one tag chip per label, in order.
func Chips(labels []string) string {
	var b strings.Builder
	for _, l := range labels {
		b.WriteString("<span class='tag'>")
		b.WriteString(Escape(l))
		b.WriteString("</span>")
	}
	return b.String()
}

// Links renders the Demo and Code buttons for whichever of p.Demo and p.Repo
// are set. Both open in a new tab without access to the opener.
func Links(p model.Project) string {
	var parts []string
	if p.Demo != "" {
		parts = append(parts, linkButton(p.Demo, "↗ Demo"))
	}
	if p.Repo != "" {
		parts = append(parts, linkButton(p.Repo, "&lt;/&gt; Code"))
	}
	return strings.Join(parts, " ")
}

func linkButton(href, label string) string {
	return "<a class='btn' href='" + Escape(href) + "' target='_blank' rel='noopener'>" + label + "</a>"
}

// Keywords joins tags and tech into a single escaped, comma separated list
// for the keywords meta tag.
func Keywords(p model.Project) string {
	return Escape(strings.Join(p.Labels(), ", "))
}
