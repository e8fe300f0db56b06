// Package web holds the admin console's HTML views.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded view. Views are addressed by file name,
// e.g. "login.html".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for use at startup.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
