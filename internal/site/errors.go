package site

import "errors"

var (
	// ErrTemplateNotFound is returned when the page template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRecordsNotFound is returned when the projects file does not exist.
	ErrRecordsNotFound = errors.New("projects file not found")

	// ErrInvalidSlug is returned for a slug that is not a single path
	// segment, such as "a/b" or "..".
	ErrInvalidSlug = errors.New("invalid slug")
)
