// Package sitemap writes sitemaps in the sitemaps.org 0.9 format.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	header    = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// Render returns a sitemap listing urls in the given order.
func Render(urls []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "<urlset xmlns=%q>\n", namespace)
	for _, u := range urls {
		buf.WriteString("  <url><loc>")
		// bytes.Buffer writes never fail.
		_ = xml.EscapeText(&buf, []byte(u))
		buf.WriteString("</loc></url>\n")
	}
	buf.WriteString("</urlset>\n")
	return buf.Bytes()
}
