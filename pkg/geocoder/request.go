package geocoder

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-gmapi/pkg/maps"
)

// Request describes one lookup. Set Address for forward geocoding or Location
// for reverse geocoding. Extra carries any other web-service parameter.
type Request struct {
	Address  string
	Location *maps.LatLng
	Bounds   *maps.LatLngBounds
	Region   string
	Language string
	Sensor   *bool
	Extra    url.Values
}

// Values returns the normalized query parameters: the address is trimmed and
// lower-cased, and sensor is always present ("false" unless set).
func (r Request) Values() url.Values {
	values := url.Values{}
	for key, vals := range r.Extra {
		values[key] = append([]string(nil), vals...)
	}
	if address := strings.ToLower(strings.TrimSpace(r.Address)); address != "" {
		values.Set("address", address)
	}
	if r.Location != nil {
		values.Set("latlng", r.Location.String())
	}
	if r.Bounds != nil && r.Bounds.SouthWest() != nil && r.Bounds.NorthEast() != nil {
		values.Set("bounds", r.Bounds.SouthWest().String()+"|"+r.Bounds.NorthEast().String())
	}
	if r.Region != "" {
		values.Set("region", r.Region)
	}
	if r.Language != "" {
		values.Set("language", r.Language)
	}
	values.Set("sensor", strconv.FormatBool(r.Sensor != nil && *r.Sensor))
	return values
}

// Key is the cache key and query string for the request. Equal requests
// produce equal keys.
func (r Request) Key() string {
	return r.Values().Encode()
}
