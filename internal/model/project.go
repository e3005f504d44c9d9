package model

// Project is a single entry of the projects file. Optional string fields are
// empty when absent.
type Project struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
	Tech        []string `json:"tech" yaml:"tech"`
	Demo        string   `json:"demo" yaml:"demo"`
	Repo        string   `json:"repo" yaml:"repo"`
	Date        string   `json:"date" yaml:"date"`

	// ContentHTML is rendered from the project's markdown sidecar, if any.
	// It never comes from the projects file itself.
	ContentHTML string `json:"-" yaml:"-"`
}

// Labels returns Tags followed by Tech in a fresh slice.
func (p Project) Labels() []string {
	out := make([]string, 0, len(p.Tags)+len(p.Tech))
	out = append(out, p.Tags...)
	return append(out, p.Tech...)
}

// DisplayTitle is the title used in console messages.
func (p Project) DisplayTitle() string {
	if p.Title == "" {
		return "(untitled)"
	}
	return p.Title
}
