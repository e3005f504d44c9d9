package sitemap

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type urlset struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

func TestRender(t *testing.T) {
	got := string(Render([]string{"http://localhost:5173/", "http://localhost:5173/projects/a/"}))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>http://localhost:5173/</loc></url>
  <url><loc>http://localhost:5173/projects/a/</loc></url>
</urlset>
`
	assert.Equal(t, want, got)
}

func TestRenderEmpty(t *testing.T) {
	var doc urlset
	require.NoError(t, xml.Unmarshal(Render(nil), &doc))
	assert.Empty(t, doc.URLs)
}

func TestRenderEscapesAndParses(t *testing.T) {
	urls := []string{"https://example.com/", "https://example.com/projects/a&b/"}

	var doc urlset
	require.NoError(t, xml.Unmarshal(Render(urls), &doc))
	require.Len(t, doc.URLs, 2)
	assert.Equal(t, urls[1], doc.URLs[1].Loc)
	assert.Contains(t, string(Render(urls)), "a&amp;b")
}
