package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape makes s safe to embed in an HTML text node or a quoted attribute.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
