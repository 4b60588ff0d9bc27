package template

import (
	"io"
)

// TemplateRenderer is the engine contract the widget and script helpers render
// through. Names without template syntax are looked up in the engine's
// template set; anything containing "{{" or "{%" is parsed as inline source.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	RegisterFunc(name string, fn any) error
	GlobalContext(data any) error
}
