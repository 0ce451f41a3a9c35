// Package templates embeds the server-rendered pages.
package templates

import (
	"embed"
	"html/template"

	"texinroistot-web/models"
)

//go:embed *.html
var files embed.FS

func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"byline": models.Byline,
	}).ParseFS(files, "*.html")
}
