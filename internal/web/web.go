// Package web holds the embedded HTML templates for the server-rendered UI.
package web

import (
	"embed"
	"html/template"

	"memopad/internal/pkg/htmlutil"
	"memopad/internal/pkg/timeutil"
)

//go:embed templates/*.html
var templateFS embed.FS

func Templates() *template.Template {
	funcs := template.FuncMap{
		"nl2br":   htmlutil.Nl2br,
		"fmttime": timeutil.Format,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
