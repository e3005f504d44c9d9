package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterchambers21/portfolio/internal/model"
)

func TestChips(t *testing.T) {
	assert.Equal(t, "", Chips(nil))
	assert.Equal(t, "", Chips([]string{}))
	assert.Equal(t,
		"<span class='tag'>x</span><span class='tag'>y</span>",
		Chips([]string{"x", "y"}))
	assert.Equal(t, "<span class='tag'>C&amp;C</span>", Chips([]string{"C&C"}))
}

func TestLinks(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Equal(t, "", Links(model.Project{}))
	})

	t.Run("demo only", func(t *testing.T) {
		got := Links(model.Project{Demo: "https://d.example"})
		assert.Equal(t, 1, strings.Count(got, "<a "))
		assert.Contains(t, got, "href='https://d.example'")
		assert.Contains(t, got, "target='_blank'")
		assert.Contains(t, got, "rel='noopener'")
		assert.Contains(t, got, "Demo")
		assert.NotContains(t, got, "Code")
	})

	t.Run("repo only", func(t *testing.T) {
		got := Links(model.Project{Repo: "https://github.com/x/y"})
		assert.Equal(t, 1, strings.Count(got, "<a "))
		assert.Contains(t, got, "href='https://github.com/x/y'")
		assert.Contains(t, got, "Code")
	})

	t.Run("both in order", func(t *testing.T) {
		got := Links(model.Project{Demo: "https://d.example", Repo: "https://r.example"})
		demo := strings.Index(got, "d.example")
		repo := strings.Index(got, "r.example")
		assert.True(t, demo >= 0 && repo > demo, "demo link must come first: %s", got)
		assert.Contains(t, got, "</a> <a ")
	})

	t.Run("escapes href", func(t *testing.T) {
		got := Links(model.Project{Demo: "https://d.example/?a=1&b='x'"})
		assert.Contains(t, got, "href='https://d.example/?a=1&amp;b=&#x27;x&#x27;'")
	})
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, "", Keywords(model.Project{}))
	assert.Equal(t, "go, cli, cobra",
		Keywords(model.Project{Tags: []string{"go", "cli"}, Tech: []string{"cobra"}}))
	assert.Equal(t, "R&amp;D, &lt;x&gt;",
		Keywords(model.Project{Tags: []string{"R&D"}, Tech: []string{"<x>"}}))
}
