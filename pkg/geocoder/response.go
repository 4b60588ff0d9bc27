package geocoder

import (
	"encoding/json"

	"github.com/goliatone/go-gmapi/pkg/maps"
)

// Status is the status code reported by the geocoding service.
type Status string

const (
	StatusOK             Status = "OK"
	StatusZeroResults    Status = "ZERO_RESULTS"
	StatusOverQueryLimit Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied  Status = "REQUEST_DENIED"
	StatusInvalidRequest Status = "INVALID_REQUEST"
	StatusUnknownError   Status = "UNKNOWN_ERROR"
)

// Response is the outcome of a lookup. Results are only present when the
// status is OK.
type Response struct {
	Status       Status
	ErrorMessage string
	results      []Result
}

// Results returns the parsed results and whether the lookup produced any
// (status OK).
func (r Response) Results() ([]Result, bool) {
	if r.Status != StatusOK {
		return nil, false
	}
	return r.results, true
}

func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status       Status   `json:"status"`
		ErrorMessage string   `json:"error_message,omitempty"`
		Results      []Result `json:"results,omitempty"`
	}{Status: r.Status, ErrorMessage: r.ErrorMessage, Results: r.results})
}

type Result struct {
	Types              []string           `json:"types,omitempty"`
	FormattedAddress   string             `json:"formatted_address"`
	AddressComponents  []AddressComponent `json:"address_components,omitempty"`
	Geometry           Geometry           `json:"geometry"`
	PartialMatch       bool               `json:"partial_match,omitempty"`
	PlaceID            string             `json:"place_id,omitempty"`
	PlusCode           *PlusCode          `json:"plus_code,omitempty"`
	PostcodeLocalities []string           `json:"postcode_localities,omitempty"`
}

// PlusCode is the open location code of a result.
type PlusCode struct {
	GlobalCode   string `json:"global_code"`
	CompoundCode string `json:"compound_code,omitempty"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types,omitempty"`
}

// Geometry holds the coordinates of a result, converted to map objects.
type Geometry struct {
	Location     maps.LatLng        `json:"location"`
	LocationType string             `json:"location_type,omitempty"`
	Viewport     *maps.LatLngBounds `json:"viewport,omitempty"`
	Bounds       *maps.LatLngBounds `json:"bounds,omitempty"`
}

type wireLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type wireBounds struct {
	Southwest *wireLatLng `json:"southwest"`
	Northeast *wireLatLng `json:"northeast"`
}

type wireResult struct {
	Types             []string           `json:"types"`
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []AddressComponent `json:"address_components"`
	Geometry          struct {
		Location     wireLatLng  `json:"location"`
		LocationType string      `json:"location_type"`
		Viewport     *wireBounds `json:"viewport"`
		Bounds       *wireBounds `json:"bounds"`
	} `json:"geometry"`
	PartialMatch       bool      `json:"partial_match"`
	PlaceID            string    `json:"place_id"`
	PlusCode           *PlusCode `json:"plus_code"`
	PostcodeLocalities []string  `json:"postcode_localities"`
}

type wireResponse struct {
	Status       Status       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Results      []wireResult `json:"results"`
}

func (w wireResponse) results() []Result {
	out := make([]Result, 0, len(w.Results))
	for _, raw := range w.Results {
		out = append(out, Result{
			Types:             raw.Types,
			FormattedAddress:  raw.FormattedAddress,
			AddressComponents: raw.AddressComponents,
			Geometry: Geometry{
				Location:     *raw.Geometry.Location.latLng(),
				LocationType: raw.Geometry.LocationType,
				Viewport:     raw.Geometry.Viewport.bounds(),
				Bounds:       raw.Geometry.Bounds.bounds(),
			},
			PartialMatch:       raw.PartialMatch,
			PlaceID:            raw.PlaceID,
			PlusCode:           raw.PlusCode,
			PostcodeLocalities: raw.PostcodeLocalities,
		})
	}
	return out
}

func (w *wireLatLng) latLng() *maps.LatLng {
	if w == nil {
		return nil
	}
	return maps.NewLatLng(w.Lat, w.Lng)
}

func (w *wireBounds) bounds() *maps.LatLngBounds {
	if w == nil {
		return nil
	}
	return maps.NewLatLngBounds(w.Southwest.latLng(), w.Northeast.latLng())
}
