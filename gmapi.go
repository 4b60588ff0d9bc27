// Package gmapi builds Google Maps for server-rendered pages: a map object
// model serialized for the browser, Static Maps image URLs, a form widget,
// script tag helpers and a caching geocoder client.
//
// The root package re-exports the types most callers need and a few one-call
// helpers; the subpackages expose the full surface.
package gmapi

import (
	"context"
	"html/template"

	"github.com/goliatone/go-gmapi/pkg/geocoder"
	"github.com/goliatone/go-gmapi/pkg/maps"
	"github.com/goliatone/go-gmapi/pkg/widget"
)

type (
	Map          = maps.Map
	MapOptions   = maps.MapOptions
	Marker       = maps.Marker
	LatLng       = maps.LatLng
	LatLngBounds = maps.LatLngBounds

	// Attrs are the widget container attributes.
	Attrs = widget.Attrs

	GeocodeRequest  = geocoder.Request
	GeocodeResponse = geocoder.Response
)

// NewMap aliases maps.NewMap.
func NewMap(opts MapOptions) *Map {
	return maps.NewMap(opts)
}

// RenderWidget renders m as a map widget named name using a widget built from
// options.
func RenderWidget(name string, m *Map, attrs Attrs, options ...widget.OptionFn) (template.HTML, error) {
	w, err := widget.New(options...)
	if err != nil {
		return "", err
	}
	return w.Render(name, m, attrs)
}

// StaticURL returns the Static Maps image URL for m against the public
// endpoint.
func StaticURL(m *Map) string {
	return m.StaticURL(maps.DefaultStaticURL)
}

// Geocode runs a single request through a client built from options. Callers
// issuing more than one request should keep a geocoder.Client so the cache
// and backoff state are shared.
func Geocode(ctx context.Context, req GeocodeRequest, options ...geocoder.OptionFn) (GeocodeResponse, error) {
	return geocoder.New(options...).Geocode(ctx, req, nil)
}
