package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-gmapi/pkg/maps"
	"github.com/goliatone/go-gmapi/pkg/presets"
)

// mapFlags describe a map either by preset or by its main options.
type mapFlags struct {
	Preset  string   `arg:"--preset" help:"name of a preset to start from"`
	Presets string   `arg:"--presets,env:GMAPI_PRESETS" help:"directory with preset files"`
	Center  string   `arg:"--center" help:"map center as lat,lng"`
	Zoom    *int     `arg:"--zoom" help:"zoom level"`
	MapType string   `arg:"--maptype" help:"roadmap, satellite, hybrid or terrain"`
	Marker  []string `arg:"--marker,separate" help:"marker at lat,lng, repeatable"`
	Color   string   `arg:"--marker-color" help:"color of the --marker markers"`
}

func (f mapFlags) build() (*maps.Map, error) {
	m := maps.NewMap(maps.MapOptions{})
	if f.Preset != "" {
		if f.Presets == "" {
			return nil, usageError("--preset needs --presets")
		}
		store, err := presets.LoadFS(os.DirFS(f.Presets))
		if err != nil {
			return nil, exitError{code: 1, err: err}
		}
		loaded, ok := store.Map(f.Preset)
		if !ok {
			return nil, usageError("unknown preset %q (have %s)", f.Preset, strings.Join(store.Names(), ", "))
		}
		m = loaded
	}

	var opts maps.MapOptions
	if f.Center != "" {
		center, err := maps.ParseLatLng(f.Center)
		if err != nil {
			return nil, usageError("--center: %v", err)
		}
		opts.Center = center
	}
	opts.Zoom = f.Zoom
	if f.MapType != "" {
		id, ok := maps.MapTypeIDByName(f.MapType)
		if !ok {
			return nil, usageError("--maptype: unknown map type %q", f.MapType)
		}
		opts.MapTypeID = &id
	}
	m.SetOptions(opts)

	for _, raw := range f.Marker {
		position, err := maps.ParseLatLng(raw)
		if err != nil {
			return nil, usageError("--marker: %v", err)
		}
		maps.NewMarker(maps.MarkerOptions{Position: position, Color: f.Color, Map: m})
	}
	return m, nil
}

type staticMapCmd struct {
	mapFlags
	Size string `arg:"--size" default:"512x512" help:"image size as WIDTHxHEIGHT"`
}

func (c *staticMapCmd) run(e *env) error {
	m, err := c.build()
	if err != nil {
		return err
	}
	width, height, err := parseSize(c.Size)
	if err != nil {
		return usageError("--size: %v", err)
	}
	m.SetOptions(maps.MapOptions{Size: maps.NewSize(width, height)})
	_, err = fmt.Fprintln(e.stdout, m.StaticURL(e.settings.StaticURL))
	return err
}

func parseSize(raw string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(raw)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", raw)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", raw)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", raw)
	}
	return width, height, nil
}

func parseBounds(raw string) (*maps.LatLngBounds, error) {
	swRaw, neRaw, ok := strings.Cut(raw, "|")
	if !ok {
		return nil, fmt.Errorf("expected south-west|north-east, got %q", raw)
	}
	sw, err := maps.ParseLatLng(swRaw)
	if err != nil {
		return nil, err
	}
	ne, err := maps.ParseLatLng(neRaw)
	if err != nil {
		return nil, err
	}
	return maps.NewLatLngBounds(sw, ne), nil
}
