package model

// Page is a rendered project page ready to be written.
type Page struct {
	Slug       string
	Canonical  string
	OutputPath string
	HTML       string
}
