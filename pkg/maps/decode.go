package maps

import (
	"encoding/json"
	"fmt"
)

// Decode rebuilds the object encoded in data, dispatching on its "cls" (or
// "val" for constants) the way the browser runtime does.
func Decode(data []byte) (Object, error) {
	var head struct {
		Cls string `json:"cls"`
		Val string `json:"val"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("maps: decode: %w", err)
	}
	if head.Cls == "" && head.Val != "" {
		var c Constant
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	}

	var target interface {
		Object
		json.Unmarshaler
	}
	switch head.Cls {
	case "Map":
		target = &Map{}
	case "Marker":
		target = &Marker{}
	case "MarkerImage":
		target = &MarkerImage{}
	case "LatLng":
		target = &LatLng{}
	case "LatLngBounds":
		target = &LatLngBounds{}
	case "Point":
		target = &Point{}
	case "Size":
		target = &Size{}
	default:
		return nil, fmt.Errorf("maps: decode: unknown class %q", head.Cls)
	}
	if err := target.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return target, nil
}
