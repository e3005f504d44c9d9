package records

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterchambers21/portfolio/internal/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "projects.json", `[
		{"slug": "a", "title": "A", "tags": ["x", "y"], "tech": ["go"], "demo": "https://d.example"},
		{"title": "NoSlug"},
		{"slug": "b", "image": null, "date": "2024"}
	]`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, model.Project{
		Slug:  "a",
		Title: "A",
		Tags:  []string{"x", "y"},
		Tech:  []string{"go"},
		Demo:  "https://d.example",
	}, got[0])
	assert.Empty(t, got[1].Slug)
	assert.Equal(t, "b", got[2].Slug)
	assert.Empty(t, got[2].Image)
	assert.Equal(t, "2024", got[2].Date)
}

func TestLoadYAMLMatchesJSON(t *testing.T) {
	jsonPath := writeFile(t, "projects.json", `[{"slug":"a","title":"A","tags":["x"],"tech":["go"],"repo":"https://r.example"}]`)
	yamlPath := writeFile(t, "projects.yml", `
- slug: a
  title: A
  tags: [x]
  tech: [go]
  repo: https://r.example
`)

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoadIgnoresContentHTMLField(t *testing.T) {
	path := writeFile(t, "projects.json", `[{"slug":"a","ContentHTML":"<script>"}]`)
	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, got[0].ContentHTML)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":       `[{"slug": "a",]`,
		"not a list":     `{"slug": "a"}`,
		"tags not array": `[{"slug": "a", "tags": "go"}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "projects.json", body))
			assert.Error(t, err)
		})
	}
}
