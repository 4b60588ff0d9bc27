package maps

import (
	"encoding/json"
	"strings"
)

// Marker is a point of interest drawn on a Map, equivalent to
// google.maps.Marker. A marker attached to a map is listed in that map's
// markers; the map owns the list, the marker only keeps a back-reference.
type Marker struct {
	opts MarkerOptions
	m    *Map
}

// NewMarker builds a marker. When opts.Map is set the marker is attached to it.
func NewMarker(opts MarkerOptions) *Marker {
	mk := &Marker{}
	mk.SetOptions(opts)
	return mk
}

func (mk *Marker) ClassName() string { return "Marker" }

// SetOptions merges every set field of opts into the marker options.
func (mk *Marker) SetOptions(opts MarkerOptions) {
	if opts.Map != nil {
		mk.SetMap(opts.Map)
	}
	opts.Map = nil
	mk.opts.merge(opts)
}

// Options returns a copy of the current marker options.
func (mk *Marker) Options() MarkerOptions {
	return mk.opts
}

// SetMap moves the marker to m, detaching it from its previous map. A nil map
// only detaches.
func (mk *Marker) SetMap(m *Map) {
	if mk.m != nil {
		mk.m.removeMarker(mk)
	}
	mk.m = m
	if m != nil {
		m.markers = append(m.markers, mk)
	}
}

func (mk *Marker) Map() *Map { return mk.m }

func (mk *Marker) Position() *LatLng { return mk.opts.Position }

func (mk *Marker) Title() string { return mk.opts.Title }

func (mk *Marker) Icon() *MarkerImage { return mk.opts.Icon }

func (mk *Marker) Shadow() *MarkerImage { return mk.opts.Shadow }

func (mk *Marker) Shape() *MarkerShape { return mk.opts.Shape }

func (mk *Marker) Cursor() string { return mk.opts.Cursor }

func (mk *Marker) Clickable() *bool { return mk.opts.Clickable }

func (mk *Marker) Draggable() *bool { return mk.opts.Draggable }

func (mk *Marker) Flat() *bool { return mk.opts.Flat }

func (mk *Marker) Visible() *bool { return mk.opts.Visible }

func (mk *Marker) ZIndex() *int { return mk.opts.ZIndex }

func (mk *Marker) SetPosition(latlng *LatLng) { mk.opts.Position = latlng }

func (mk *Marker) SetTitle(title string) { mk.opts.Title = title }

func (mk *Marker) SetIcon(icon *MarkerImage) { mk.opts.Icon = icon }

func (mk *Marker) SetShadow(shadow *MarkerImage) { mk.opts.Shadow = shadow }

func (mk *Marker) SetShape(shape *MarkerShape) { mk.opts.Shape = shape }

func (mk *Marker) SetCursor(cursor string) { mk.opts.Cursor = cursor }

func (mk *Marker) SetClickable(flag bool) { mk.opts.Clickable = &flag }

func (mk *Marker) SetDraggable(flag bool) { mk.opts.Draggable = &flag }

func (mk *Marker) SetFlat(flag bool) { mk.opts.Flat = &flag }

func (mk *Marker) SetVisible(visible bool) { mk.opts.Visible = &visible }

func (mk *Marker) SetZIndex(zIndex int) { mk.opts.ZIndex = &zIndex }

// String renders the Static Maps marker descriptor, for example
// "size:mid|color:red|label:A|38,-97".
func (mk *Marker) String() string {
	var parts []string
	if mk.opts.Size != "" {
		parts = append(parts, "size:"+mk.opts.Size)
	}
	if mk.opts.Color != "" {
		parts = append(parts, "color:"+mk.opts.Color)
	}
	if mk.opts.Label != "" {
		parts = append(parts, "label:"+mk.opts.Label)
	}
	if mk.opts.Icon != nil {
		parts = append(parts, "icon:"+mk.opts.Icon.URL)
	}
	if mk.opts.Shadow != nil {
		parts = append(parts, "shadow:true")
	}
	if mk.opts.Position != nil {
		parts = append(parts, mk.opts.Position.String())
	}
	return strings.Join(parts, "|")
}

func (mk *Marker) MarshalJSON() ([]byte, error) {
	var opts any
	if !mk.opts.IsZero() {
		opts = mk.opts
	}
	return marshalObject(mk.ClassName(), opts)
}

// UnmarshalJSON restores the marker options. The map back-reference is not
// part of the payload; Map.UnmarshalJSON re-attaches its markers.
func (mk *Marker) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "Marker")
	if err != nil {
		return err
	}
	var opts MarkerOptions
	if _, err := argAt(env.Arg, 0, &opts); err != nil {
		return err
	}
	mk.opts = opts
	return nil
}

var _ json.Unmarshaler = (*Marker)(nil)
