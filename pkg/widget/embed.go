package widget

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplateGoogleMap is the template rendered by GoogleMap.Render.
const TemplateGoogleMap = "google_map"

// TemplatesFS exposes the embedded widget templates. Override sets passed via
// WithTemplatesFS only need to contain the templates they replace.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
