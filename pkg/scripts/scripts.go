// Package scripts builds the <script> tags that load the Google AJAX API
// loader (with Maps autoloaded), jQuery and the companion plugins.
package scripts

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	rendertemplate "github.com/goliatone/go-gmapi/pkg/render/template"
	"github.com/goliatone/go-gmapi/pkg/render/template/gotemplate"
)

// ScriptTag is either an external script (URL plus encoded Params) or an
// inline Script body.
type ScriptTag struct {
	URL    string
	Params string
	Script string
}

// Src is the full script URL, or "" for inline scripts.
func (t ScriptTag) Src() string {
	if t.URL == "" {
		return ""
	}
	if t.Params == "" {
		return t.URL
	}
	return t.URL + "?" + t.Params
}

// JQueryRequest parametrises Helper.JQuery. Callback is JavaScript source for
// a function (a name or a function expression) run once everything loaded.
// JQuery names an already loaded jQuery instance; when empty jQuery itself is
// loaded through the AJAX API loader.
type JQueryRequest struct {
	Callback     string
	ExtraPlugins []string
	JQuery       string
}

type Helper struct {
	opts      Options
	templates rendertemplate.TemplateRenderer
}

func New(fns ...OptionFn) (*Helper, error) {
	opts := NewOptions(fns...)

	renderer := opts.Renderer
	if renderer == nil {
		var sources []gotemplate.Option
		if opts.Templates != nil {
			sources = append(sources, gotemplate.WithFS(opts.Templates))
		}
		sources = append(sources, gotemplate.WithFS(TemplatesFS()))
		engine, err := gotemplate.New(sources...)
		if err != nil {
			return nil, fmt.Errorf("scripts: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Helper{opts: opts, templates: renderer}, nil
}

// JSAPI returns the loader script tag. The configured autoload modules are
// followed by those in extra.
func (h *Helper) JSAPI(extra *Autoload) (ScriptTag, error) {
	var autoload Autoload
	if h.opts.Autoload != nil {
		autoload.Modules = append(autoload.Modules, h.opts.Autoload.Modules...)
	}
	if extra != nil {
		autoload.Modules = append(autoload.Modules, extra.Modules...)
	}

	params := url.Values{}
	if len(autoload.Modules) > 0 {
		encoded, err := json.Marshal(autoload)
		if err != nil {
			return ScriptTag{}, fmt.Errorf("scripts: encode autoload: %w", err)
		}
		params.Set("autoload", string(encoded))
	}
	if h.opts.Key != "" {
		params.Set("key", h.opts.Key)
	}
	return ScriptTag{URL: h.opts.JSAPIURL, Params: params.Encode()}, nil
}

// JQuery returns an inline script loading jQuery (unless req.JQuery names an
// existing instance), then every plugin through jQuery.getScript. With a
// callback and several plugins a load counter runs the callback after the
// last plugin arrived.
func (h *Helper) JQuery(req JQueryRequest) ScriptTag {
	plugins := append(append([]string{}, h.opts.Plugins...), req.ExtraPlugins...)
	callback := req.Callback

	var plugin strings.Builder
	if len(plugins) > 0 {
		if callback != "" {
			if len(plugins) > 1 {
				fmt.Fprintf(&plugin, "    var i = 1; var j = %d;\n"+
					"    var x = function(){\n"+
					"        if (i++ == j) (%s)();\n"+
					"    };\n", len(plugins), callback)
				callback = ", x"
			} else {
				callback = ", " + callback
			}
		}
		for _, src := range plugins {
			fmt.Fprintf(&plugin, "    jQuery.getScript('%s'%s);\n", src, callback)
		}
	}
	pluginScript := ""
	if len(plugins) > 0 {
		pluginScript = "function(){\n" + plugin.String() + "}"
	}
	onLoad := pluginScript
	if onLoad == "" {
		onLoad = callback
	}

	var script strings.Builder
	switch {
	case req.JQuery == "":
		debug := ""
		if h.opts.Debug {
			debug = ", {uncompressed:true}"
		}
		fmt.Fprintf(&script, "google.load('jquery', '%s'%s);", h.opts.JQueryVersion, debug)
		if onLoad != "" {
			fmt.Fprintf(&script, "\ngoogle.setOnLoadCallback(%s);", onLoad)
		}
	case onLoad != "":
		if req.JQuery != "jQuery" && req.JQuery != "window.jQuery" {
			fmt.Fprintf(&script, "window.jQuery = %s;\n", req.JQuery)
		}
		fmt.Fprintf(&script, "jQuery(%s);", onLoad)
	}
	return ScriptTag{Script: script.String()}
}

// Render returns the HTML for tag.
func (h *Helper) Render(tag ScriptTag) (template.HTML, error) {
	out, err := h.templates.RenderTemplate(TemplateScriptTag, map[string]any{
		"src":    tag.Src(),
		"script": tag.Script,
	})
	if err != nil {
		return "", fmt.Errorf("scripts: render script tag: %w", err)
	}
	return template.HTML(strings.TrimRight(out, "\n")), nil
}
