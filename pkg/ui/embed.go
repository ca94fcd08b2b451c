// Package ui provides the embedded page templates and static assets for
// the gallery front end.
//
// Templates are parsed as one set. "index" renders the full page; "hero",
// "gallery", "detail" and "gallery_error" render the regions the client
// script swaps in.
package ui

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ParseTemplates parses every embedded template into one set.
func ParseTemplates() (*template.Template, error) {
	return template.New("ui").ParseFS(templateFS, "templates/*.html")
}

// MustParseTemplates is like ParseTemplates but panics on error. The
// templates are compiled into the binary, so an error is a build defect.
func MustParseTemplates() *template.Template {
	return template.Must(ParseTemplates())
}

// Static returns the static asset tree (app.js, app.css) rooted at its
// own directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
