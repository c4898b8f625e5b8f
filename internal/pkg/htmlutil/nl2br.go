// Package htmlutil renders user-supplied plain text for HTML pages.
package htmlutil

import (
	"html"
	"html/template"
	"strings"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Nl2br escapes s for HTML and converts newlines into <br> markers.
// Escaping happens before the join so crafted content around newlines
// cannot inject markup.
func Nl2br(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(newlineReplacer.Replace(s))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}
