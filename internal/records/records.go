// Package records loads project records from a JSON or YAML file.
package records

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/peterchambers21/portfolio/internal/model"
)

// Load reads the projects file at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. Either way the document must be
// a list of project objects.
func Load(path string) ([]model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading projects file %s: %w", path, err)
	}

	var projects []model.Project
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &projects)
	default:
		err = json.Unmarshal(data, &projects)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding projects file %s: %w", path, err)
	}
	return projects, nil
}
