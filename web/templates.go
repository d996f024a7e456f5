// Package web holds the embedded assets served by the browser front end.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
