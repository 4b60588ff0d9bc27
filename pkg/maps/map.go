package maps

import (
	"encoding/json"
	"strconv"
)

// DefaultStaticURL is the Static Maps API endpoint used by Map.String.
const DefaultStaticURL = "http://maps.google.com/maps/api/staticmap"

// mapDiv stands in for the DOM node the browser runtime renders into.
const mapDiv = "div"

// Map is a Google Map, equivalent to google.maps.Map.
type Map struct {
	opts    MapOptions
	markers []*Marker
}

func NewMap(opts MapOptions) *Map {
	m := &Map{}
	m.SetOptions(opts)
	return m
}

func (m *Map) ClassName() string { return "Map" }

// SetOptions merges every set field of opts into the map options.
func (m *Map) SetOptions(opts MapOptions) {
	m.opts.merge(opts)
}

// Options returns a copy of the current map options.
func (m *Map) Options() MapOptions {
	return m.opts
}

func (m *Map) Center() *LatLng { return m.opts.Center }

func (m *Map) SetCenter(latlng *LatLng) { m.opts.Center = latlng }

// Zoom returns the zoom level and whether one was set.
func (m *Map) Zoom() (int, bool) {
	if m.opts.Zoom == nil {
		return 0, false
	}
	return *m.opts.Zoom, true
}

func (m *Map) SetZoom(zoom int) { m.opts.Zoom = &zoom }

// MapTypeID returns the map type and whether one was set.
func (m *Map) MapTypeID() (Constant, bool) {
	if m.opts.MapTypeID == nil {
		return Constant{}, false
	}
	return *m.opts.MapTypeID, true
}

func (m *Map) SetMapTypeID(id Constant) { m.opts.MapTypeID = &id }

// Markers returns the markers attached to the map, in attachment order.
func (m *Map) Markers() []*Marker {
	return append([]*Marker(nil), m.markers...)
}

func (m *Map) FitBounds(LatLngBounds) error {
	return unsupported("Map.FitBounds")
}

func (m *Map) Bounds() (*LatLngBounds, error) {
	return nil, unsupported("Map.Bounds")
}

func (m *Map) Div() (string, error) {
	return "", unsupported("Map.Div")
}

func (m *Map) removeMarker(mk *Marker) {
	for idx, candidate := range m.markers {
		if candidate == mk {
			m.markers = append(m.markers[:idx], m.markers[idx+1:]...)
			return
		}
	}
}

// StaticURL renders the map as a Static Maps API image URL rooted at base.
// Parameters follow a fixed order: center, zoom, size, format, language,
// maptype, mobile, visible, one markers entry per marker, then sensor, which
// is always present.
func (m *Map) StaticURL(base string) string {
	var q query
	opts := m.opts
	if opts.Center != nil {
		q.add("center", opts.Center.String())
	}
	if opts.Zoom != nil {
		q.add("zoom", strconv.Itoa(*opts.Zoom))
	}
	if opts.Size != nil {
		q.add("size", opts.Size.String())
	}
	if opts.Format != "" {
		q.add("format", opts.Format)
	}
	if opts.Language != "" {
		q.add("language", opts.Language)
	}
	if opts.MapTypeID != nil {
		q.add("maptype", opts.MapTypeID.String())
	}
	if opts.Mobile != nil {
		q.add("mobile", strconv.FormatBool(*opts.Mobile))
	}
	if opts.Visible != nil {
		visible := make([]string, 0, len(opts.Visible))
		for _, latlng := range opts.Visible {
			if latlng != nil {
				visible = append(visible, latlng.String())
			}
		}
		q.add("visible", joinPipe(visible))
	}
	for _, mk := range m.markers {
		q.add("markers", mk.String())
	}
	q.add("sensor", strconv.FormatBool(opts.Sensor != nil && *opts.Sensor))
	return base + "?" + q.encode()
}

// String is the static image URL against DefaultStaticURL.
func (m *Map) String() string {
	return m.StaticURL(DefaultStaticURL)
}

func (m *Map) MarshalJSON() ([]byte, error) {
	values := []any{mapDiv, nil}
	if !m.opts.IsZero() {
		values[1] = m.opts
	}
	return json.Marshal(struct {
		Cls string    `json:"cls"`
		Arg []any     `json:"arg"`
		Mkr []*Marker `json:"mkr,omitempty"`
	}{Cls: m.ClassName(), Arg: positional(values...), Mkr: m.markers})
}

// UnmarshalJSON restores options and markers, re-attaching every marker to
// the decoded map.
func (m *Map) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "Map")
	if err != nil {
		return err
	}
	var opts MapOptions
	if _, err := argAt(env.Arg, 1, &opts); err != nil {
		return err
	}
	for _, old := range m.markers {
		old.m = nil
	}
	*m = Map{opts: opts}
	for _, raw := range env.Mkr {
		mk := &Marker{}
		if err := json.Unmarshal(raw, mk); err != nil {
			return err
		}
		mk.SetMap(m)
	}
	return nil
}
