package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can render the
// built-in markup through their own pipeline or override individual files.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
