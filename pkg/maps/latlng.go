package maps

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LatLng is a point in geographical coordinates, equivalent to
// google.maps.LatLng.
type LatLng struct {
	lat    Degree
	lng    Degree
	noWrap *bool
}

// NewLatLng builds a coordinate from latitude and longitude in degrees.
func NewLatLng(lat, lng float64) *LatLng {
	return &LatLng{lat: Degree(lat), lng: Degree(lng)}
}

// ParseLatLng reads the "lat,lng" form used in URLs and on the command line.
func ParseLatLng(s string) (*LatLng, error) {
	latRaw, lngRaw, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("maps: parse latlng %q: expected \"lat,lng\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return nil, fmt.Errorf("maps: parse latlng %q: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return nil, fmt.Errorf("maps: parse latlng %q: %w", s, err)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("maps: parse latlng %q: out of range", s)
	}
	return NewLatLng(lat, lng), nil
}

// WithNoWrap sets the noWrap constructor flag and returns the receiver.
func (l *LatLng) WithNoWrap(noWrap bool) *LatLng {
	l.noWrap = &noWrap
	return l
}

func (l LatLng) ClassName() string { return "LatLng" }

func (l LatLng) Lat() Degree { return l.lat }

func (l LatLng) Lng() Degree { return l.lng }

// NoWrap reports the noWrap flag and whether it was set.
func (l LatLng) NoWrap() (bool, bool) {
	if l.noWrap == nil {
		return false, false
	}
	return *l.noWrap, true
}

func (l LatLng) Equals(other LatLng) bool {
	return l.lat == other.lat && l.lng == other.lng
}

// ToString mirrors LatLng.toString() in the JavaScript API.
func (l LatLng) ToString() string {
	return fmt.Sprintf("(%s, %s)", l.lat, l.lng)
}

// ToURLValue renders "lat,lng" rounded to precision decimals.
func (l LatLng) ToURLValue(precision int) string {
	return l.lat.Format(precision) + "," + l.lng.Format(precision)
}

func (l LatLng) String() string {
	return l.ToURLValue(DefaultPrecision)
}

func (l LatLng) MarshalJSON() ([]byte, error) {
	var noWrap any
	if l.noWrap != nil {
		noWrap = *l.noWrap
	}
	return marshalObject(l.ClassName(), l.lat, l.lng, noWrap)
}

func (l *LatLng) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "LatLng")
	if err != nil {
		return err
	}
	var out LatLng
	if _, err := argAt(env.Arg, 0, &out.lat); err != nil {
		return err
	}
	if _, err := argAt(env.Arg, 1, &out.lng); err != nil {
		return err
	}
	var noWrap bool
	ok, err := argAt(env.Arg, 2, &noWrap)
	if err != nil {
		return err
	}
	if ok {
		out.noWrap = &noWrap
	}
	*l = out
	return nil
}

var _ json.Unmarshaler = (*LatLng)(nil)
