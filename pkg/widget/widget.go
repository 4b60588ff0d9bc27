// Package widget renders the Google Map form widget: a static preview image
// stacked under a container whose class attribute carries the map
// configuration for the browser runtime.
package widget

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-gmapi/pkg/maps"
	rendertemplate "github.com/goliatone/go-gmapi/pkg/render/template"
	"github.com/goliatone/go-gmapi/pkg/render/template/gotemplate"
)

// ErrPresetNotFound is returned by RenderPreset for an unknown preset name.
var ErrPresetNotFound = errors.New("widget: preset not found")

// Attrs are HTML attributes for the outer container. The pseudo attributes
// "width" and "height" size the map and are not emitted.
type Attrs map[string]string

type GoogleMap struct {
	opts      Options
	templates rendertemplate.TemplateRenderer
}

func New(fns ...OptionFn) (*GoogleMap, error) {
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
			return nil, fmt.Errorf("widget: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &GoogleMap{opts: opts, templates: renderer}, nil
}

// Render returns the widget markup for value. A nil value renders an empty
// map.
func (w *GoogleMap) Render(name string, value *maps.Map, attrs Attrs) (template.HTML, error) {
	if value == nil {
		value = maps.NewMap(maps.MapOptions{})
	}

	final := Attrs{"id": name, "class": "gmap"}
	for key, val := range attrs {
		final[key] = val
	}
	width, err := popDimension(final, "width", DefaultWidth)
	if err != nil {
		return "", err
	}
	height, err := popDimension(final, "height", DefaultHeight)
	if err != nil {
		return "", err
	}
	final["style"] = fmt.Sprintf("position:relative;width:%dpx;height:%dpx;", width, height) + final["style"]

	config, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("widget: encode map: %w", err)
	}

	out, err := w.templates.RenderTemplate(TemplateGoogleMap, map[string]any{
		"attrs":    sortedAttrs(final),
		"config":   string(config),
		"width":    strconv.Itoa(width),
		"height":   strconv.Itoa(height),
		"src":      value.StaticURL(w.opts.StaticURL),
		"fallback": sanitizeFallback(w.opts.Fallback),
	})
	if err != nil {
		return "", fmt.Errorf("widget: render: %w", err)
	}
	return template.HTML(strings.TrimRight(out, "\n")), nil
}

// RenderPreset renders the widget with a fresh map built from the named
// preset.
func (w *GoogleMap) RenderPreset(name, preset string, attrs Attrs) (template.HTML, error) {
	if w.opts.Presets == nil {
		return "", fmt.Errorf("%w: %q (no presets configured)", ErrPresetNotFound, preset)
	}
	m, ok := w.opts.Presets.Map(preset)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPresetNotFound, preset)
	}
	return w.Render(name, m, attrs)
}

// Media lists the scripts a page embedding the widget must load: the Maps
// JavaScript API and the companion jQuery plugin.
func (w *GoogleMap) Media() []string {
	script := "js/jquery.gmapi.min.js"
	if w.opts.Debug {
		script = "js/jquery.gmapi.js"
	}
	return []string{w.opts.MapsURL, MediaPath(w.opts.MediaURL, w.opts.MediaPrefix+script)}
}

// MediaPath resolves path against mediaURL unless it is already absolute.
func MediaPath(mediaURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "/") {
		return path
	}
	return mediaURL + path
}

func popDimension(attrs Attrs, key string, fallback int) (int, error) {
	raw, ok := attrs[key]
	if !ok {
		return fallback, nil
	}
	delete(attrs, key)
	value, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "px"))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("widget: invalid %s %q", key, raw)
	}
	return value, nil
}

func sortedAttrs(attrs Attrs) []map[string]string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, map[string]string{"name": key, "value": attrs[key]})
	}
	return out
}
