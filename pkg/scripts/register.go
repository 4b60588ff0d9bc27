package scripts

import (
	"encoding/json"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// FuncRegistrar is the part of a template engine Register needs.
type FuncRegistrar interface {
	RegisterFunc(name string, fn any) error
}

// Register exposes the helpers to templates rendered by r:
//
//	{{ gmapi_jsapi() }}
//	{{ gmapi_jsapi(extra_autoload) }}
//	{{ gmapi_jquery() }}
//	{{ gmapi_jquery("init", plugins, "django.jQuery") }}
//
// Each returns a complete <script> element that is not escaped again.
func (h *Helper) Register(r FuncRegistrar) error {
	if err := r.RegisterFunc("gmapi_jsapi", h.jsapiFunc); err != nil {
		return fmt.Errorf("scripts: register gmapi_jsapi: %w", err)
	}
	if err := r.RegisterFunc("gmapi_jquery", h.jqueryFunc); err != nil {
		return fmt.Errorf("scripts: register gmapi_jquery: %w", err)
	}
	return nil
}

func (h *Helper) jsapiFunc(args ...*pongo2.Value) (*pongo2.Value, error) {
	var extra *Autoload
	if len(args) > 0 && !args[0].IsNil() {
		var decoded Autoload
		if err := remarshal(args[0].Interface(), &decoded); err != nil {
			return nil, fmt.Errorf("gmapi_jsapi: extra autoload: %w", err)
		}
		extra = &decoded
	}
	tag, err := h.JSAPI(extra)
	if err != nil {
		return nil, err
	}
	return h.safe(tag)
}

// jqueryFunc takes callback, extra plugins (a string or a list) and the
// existing jQuery reference, all optional and positional.
func (h *Helper) jqueryFunc(args ...*pongo2.Value) (*pongo2.Value, error) {
	var req JQueryRequest
	if len(args) > 0 && !args[0].IsNil() {
		req.Callback = args[0].String()
	}
	if len(args) > 1 && !args[1].IsNil() {
		plugins := args[1]
		if plugins.IsString() {
			req.ExtraPlugins = []string{plugins.String()}
		} else {
			plugins.Iterate(func(_, _ int, key, _ *pongo2.Value) bool {
				req.ExtraPlugins = append(req.ExtraPlugins, fmt.Sprint(key.Interface()))
				return true
			}, func() {})
		}
	}
	if len(args) > 2 && !args[2].IsNil() {
		req.JQuery = args[2].String()
	}
	return h.safe(h.JQuery(req))
}

func (h *Helper) safe(tag ScriptTag) (*pongo2.Value, error) {
	html, err := h.Render(tag)
	if err != nil {
		return nil, err
	}
	return pongo2.AsSafeValue(string(html)), nil
}

func remarshal(in any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
