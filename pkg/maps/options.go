package maps

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Bool returns a pointer to b, for optional option fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for optional option fields.
func Int(i int) *int { return &i }

// ControlOptions configures one of the map controls.
type ControlOptions struct {
	Position   *Constant  `json:"position,omitempty"`
	Style      *Constant  `json:"style,omitempty"`
	MapTypeIDs []Constant `json:"mapTypeIds,omitempty"`
}

// MapOptions mirrors google.maps.MapOptions. Size, Format, Language, Mobile,
// Visible and Sensor only affect the static preview URL. Extra carries any
// other option verbatim.
type MapOptions struct {
	Center                   *LatLng         `json:"center,omitempty"`
	Zoom                     *int            `json:"zoom,omitempty"`
	MapTypeID                *Constant       `json:"mapTypeId,omitempty"`
	Size                     *Size           `json:"size,omitempty"`
	Format                   string          `json:"format,omitempty"`
	Language                 string          `json:"language,omitempty"`
	Mobile                   *bool           `json:"mobile,omitempty"`
	Visible                  []*LatLng       `json:"visible,omitempty"`
	Sensor                   *bool           `json:"sensor,omitempty"`
	BackgroundColor          string          `json:"backgroundColor,omitempty"`
	DisableDefaultUI         *bool           `json:"disableDefaultUI,omitempty"`
	DisableDoubleClickZoom   *bool           `json:"disableDoubleClickZoom,omitempty"`
	Draggable                *bool           `json:"draggable,omitempty"`
	KeyboardShortcuts        *bool           `json:"keyboardShortcuts,omitempty"`
	MapTypeControl           *bool           `json:"mapTypeControl,omitempty"`
	MapTypeControlOptions    *ControlOptions `json:"mapTypeControlOptions,omitempty"`
	NavigationControl        *bool           `json:"navigationControl,omitempty"`
	NavigationControlOptions *ControlOptions `json:"navigationControlOptions,omitempty"`
	NoClear                  *bool           `json:"noClear,omitempty"`
	ScaleControl             *bool           `json:"scaleControl,omitempty"`
	ScaleControlOptions      *ControlOptions `json:"scaleControlOptions,omitempty"`
	Scrollwheel              *bool           `json:"scrollwheel,omitempty"`
	StreetViewControl        *bool           `json:"streetViewControl,omitempty"`

	Extra map[string]any `json:"-"`
}

// IsZero reports whether no option is set.
func (o MapOptions) IsZero() bool {
	data, err := json.Marshal(o)
	return err == nil && string(data) == "{}"
}

// merge copies every set field of src over o, like a dictionary update.
func (o *MapOptions) merge(src MapOptions) {
	mergePtr(&o.Center, src.Center)
	mergePtr(&o.Zoom, src.Zoom)
	mergePtr(&o.MapTypeID, src.MapTypeID)
	mergePtr(&o.Size, src.Size)
	mergeString(&o.Format, src.Format)
	mergeString(&o.Language, src.Language)
	mergePtr(&o.Mobile, src.Mobile)
	if src.Visible != nil {
		o.Visible = append([]*LatLng(nil), src.Visible...)
	}
	mergePtr(&o.Sensor, src.Sensor)
	mergeString(&o.BackgroundColor, src.BackgroundColor)
	mergePtr(&o.DisableDefaultUI, src.DisableDefaultUI)
	mergePtr(&o.DisableDoubleClickZoom, src.DisableDoubleClickZoom)
	mergePtr(&o.Draggable, src.Draggable)
	mergePtr(&o.KeyboardShortcuts, src.KeyboardShortcuts)
	mergePtr(&o.MapTypeControl, src.MapTypeControl)
	mergePtr(&o.MapTypeControlOptions, src.MapTypeControlOptions)
	mergePtr(&o.NavigationControl, src.NavigationControl)
	mergePtr(&o.NavigationControlOptions, src.NavigationControlOptions)
	mergePtr(&o.NoClear, src.NoClear)
	mergePtr(&o.ScaleControl, src.ScaleControl)
	mergePtr(&o.ScaleControlOptions, src.ScaleControlOptions)
	mergePtr(&o.Scrollwheel, src.Scrollwheel)
	mergePtr(&o.StreetViewControl, src.StreetViewControl)
	o.Extra = mergeExtra(o.Extra, src.Extra)
}

type mapOptionsAlias MapOptions

func (o MapOptions) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(mapOptionsAlias(o), o.Extra)
}

func (o *MapOptions) UnmarshalJSON(data []byte) error {
	var alias mapOptionsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("maps: decode map options: %w", err)
	}
	extra, err := extraFields(data, reflect.TypeOf(alias))
	if err != nil {
		return err
	}
	*o = MapOptions(alias)
	o.Extra = extra
	return nil
}

// MarkerShape defines the clickable region of a marker icon.
type MarkerShape struct {
	Coords []int  `json:"coords"`
	Type   string `json:"type"`
}

// MarkerOptions mirrors google.maps.MarkerOptions. Size, Color and Label only
// affect the static preview descriptor. Setting Map attaches the marker to
// that map.
type MarkerOptions struct {
	Position  *LatLng      `json:"position,omitempty"`
	Title     string       `json:"title,omitempty"`
	Icon      *MarkerImage `json:"icon,omitempty"`
	Shadow    *MarkerImage `json:"shadow,omitempty"`
	Shape     *MarkerShape `json:"shape,omitempty"`
	Cursor    string       `json:"cursor,omitempty"`
	Clickable *bool        `json:"clickable,omitempty"`
	Draggable *bool        `json:"draggable,omitempty"`
	Flat      *bool        `json:"flat,omitempty"`
	Visible   *bool        `json:"visible,omitempty"`
	ZIndex    *int         `json:"zIndex,omitempty"`
	Size      string       `json:"size,omitempty"`
	Color     string       `json:"color,omitempty"`
	Label     string       `json:"label,omitempty"`

	Map   *Map           `json:"-"`
	Extra map[string]any `json:"-"`
}

func (o MarkerOptions) IsZero() bool {
	data, err := json.Marshal(o)
	return err == nil && string(data) == "{}"
}

func (o *MarkerOptions) merge(src MarkerOptions) {
	mergePtr(&o.Position, src.Position)
	mergeString(&o.Title, src.Title)
	mergePtr(&o.Icon, src.Icon)
	mergePtr(&o.Shadow, src.Shadow)
	mergePtr(&o.Shape, src.Shape)
	mergeString(&o.Cursor, src.Cursor)
	mergePtr(&o.Clickable, src.Clickable)
	mergePtr(&o.Draggable, src.Draggable)
	mergePtr(&o.Flat, src.Flat)
	mergePtr(&o.Visible, src.Visible)
	mergePtr(&o.ZIndex, src.ZIndex)
	mergeString(&o.Size, src.Size)
	mergeString(&o.Color, src.Color)
	mergeString(&o.Label, src.Label)
	o.Extra = mergeExtra(o.Extra, src.Extra)
}

type markerOptionsAlias MarkerOptions

func (o MarkerOptions) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(markerOptionsAlias(o), o.Extra)
}

func (o *MarkerOptions) UnmarshalJSON(data []byte) error {
	var alias markerOptionsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("maps: decode marker options: %w", err)
	}
	extra, err := extraFields(data, reflect.TypeOf(alias))
	if err != nil {
		return err
	}
	*o = MarkerOptions(alias)
	o.Extra = extra
	return nil
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergeExtra(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

// marshalWithExtra encodes v and folds extra keys into the resulting object.
// Declared fields win over extra keys with the same name.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, exists := fields[key]; exists {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("maps: encode option %q: %w", key, err)
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}

func extraFields(data []byte, typ reflect.Type) (map[string]any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("maps: decode options: %w", err)
	}
	known := jsonKeys(typ)
	var extra map[string]any
	for key, raw := range fields {
		if _, ok := known[key]; ok {
			continue
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("maps: decode option %q: %w", key, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = value
	}
	return extra, nil
}

var jsonKeyCache sync.Map

func jsonKeys(typ reflect.Type) map[string]struct{} {
	if cached, ok := jsonKeyCache.Load(typ); ok {
		return cached.(map[string]struct{})
	}
	keys := make(map[string]struct{}, typ.NumField())
	for idx := 0; idx < typ.NumField(); idx++ {
		tag := typ.Field(idx).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		keys[name] = struct{}{}
	}
	jsonKeyCache.Store(typ, keys)
	return keys
}
