package presets

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-gmapi/pkg/maps"
)

// Store holds the presets loaded from one or more files.
type Store struct {
	presets map[string]Preset
}

// Preset is one named map definition as written in a preset file.
type Preset struct {
	Name   string         `json:"-" yaml:"-"`
	Source string         `json:"-" yaml:"-"`
	Center []float64      `json:"center,omitempty" yaml:"center,omitempty"`
	Zoom   *int           `json:"zoom,omitempty" yaml:"zoom,omitempty"`
	Type   string         `json:"mapTypeId,omitempty" yaml:"mapTypeId,omitempty"`
	Size   []int          `json:"size,omitempty" yaml:"size,omitempty"`
	Extra  map[string]any `json:"options,omitempty" yaml:"options,omitempty"`

	Markers []MarkerPreset `json:"markers,omitempty" yaml:"markers,omitempty"`
}

type MarkerPreset struct {
	Position []float64 `json:"position" yaml:"position"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Color    string    `json:"color,omitempty" yaml:"color,omitempty"`
	Label    string    `json:"label,omitempty" yaml:"label,omitempty"`
	Size     string    `json:"size,omitempty" yaml:"size,omitempty"`
	Icon     string    `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Build returns a new map for the preset. Options are applied first so the
// dedicated fields win.
func (p Preset) Build() (*maps.Map, error) {
	var opts maps.MapOptions
	if len(p.Extra) > 0 {
		raw, err := json.Marshal(p.Extra)
		if err != nil {
			return nil, fmt.Errorf("presets: %s: encode options: %w", p.Name, err)
		}
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, fmt.Errorf("presets: %s: options: %w", p.Name, err)
		}
	}

	if p.Center != nil {
		center, err := latLng(p.Center)
		if err != nil {
			return nil, fmt.Errorf("presets: %s: center: %w", p.Name, err)
		}
		opts.Center = center
	}
	if p.Zoom != nil {
		opts.Zoom = maps.Int(*p.Zoom)
	}
	if p.Type != "" {
		id, ok := maps.MapTypeIDByName(p.Type)
		if !ok {
			return nil, fmt.Errorf("presets: %s: unknown map type %q", p.Name, p.Type)
		}
		opts.MapTypeID = &id
	}
	if p.Size != nil {
		if len(p.Size) != 2 || p.Size[0] <= 0 || p.Size[1] <= 0 {
			return nil, fmt.Errorf("presets: %s: size must be [width, height], got %v", p.Name, p.Size)
		}
		opts.Size = maps.NewSize(p.Size[0], p.Size[1])
	}

	m := maps.NewMap(opts)
	for idx, mk := range p.Markers {
		position, err := latLng(mk.Position)
		if err != nil {
			return nil, fmt.Errorf("presets: %s: marker %d: %w", p.Name, idx, err)
		}
		markerOpts := maps.MarkerOptions{
			Position: position,
			Title:    mk.Title,
			Color:    mk.Color,
			Label:    mk.Label,
			Size:     mk.Size,
			Map:      m,
		}
		if icon := strings.TrimSpace(mk.Icon); icon != "" {
			markerOpts.Icon = maps.NewMarkerImage(icon)
		}
		maps.NewMarker(markerOpts)
	}
	return m, nil
}

func latLng(pair []float64) (*maps.LatLng, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("expected [lat, lng], got %v", pair)
	}
	return maps.NewLatLng(pair[0], pair[1]), nil
}
