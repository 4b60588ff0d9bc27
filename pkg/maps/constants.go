package maps

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Constant references a named constant of the JavaScript API, such as
// google.maps.MapTypeId.ROADMAP. The browser runtime resolves it by name.
type Constant struct {
	Class string
	Name  string
}

func (c Constant) ClassName() string { return c.Class }

// Path is the dotted reference relative to google.maps.
func (c Constant) Path() string {
	return c.Class + "." + c.Name
}

// String is the lower-cased constant name, the form used by the Static Maps
// API (maptype=roadmap).
func (c Constant) String() string {
	return strings.ToLower(c.Name)
}

func (c Constant) IsZero() bool {
	return c.Class == "" && c.Name == ""
}

func (c Constant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Val string `json:"val"`
	}{Val: c.Path()})
}

func (c *Constant) UnmarshalJSON(data []byte) error {
	var raw struct {
		Val string `json:"val"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("maps: decode constant: %w", err)
	}
	idx := strings.LastIndex(raw.Val, ".")
	if idx <= 0 || idx == len(raw.Val)-1 {
		return fmt.Errorf("maps: decode constant: malformed reference %q", raw.Val)
	}
	*c = Constant{Class: raw.Val[:idx], Name: raw.Val[idx+1:]}
	return nil
}

// MapTypeID lists google.maps.MapTypeId.
var MapTypeID = struct {
	Hybrid, Roadmap, Satellite, Terrain Constant
}{
	Hybrid:    Constant{"MapTypeId", "HYBRID"},
	Roadmap:   Constant{"MapTypeId", "ROADMAP"},
	Satellite: Constant{"MapTypeId", "SATELLITE"},
	Terrain:   Constant{"MapTypeId", "TERRAIN"},
}

// MapTypeControlStyle lists google.maps.MapTypeControlStyle.
var MapTypeControlStyle = struct {
	Default, DropdownMenu, HorizontalBar Constant
}{
	Default:       Constant{"MapTypeControlStyle", "DEFAULT"},
	DropdownMenu:  Constant{"MapTypeControlStyle", "DROPDOWN_MENU"},
	HorizontalBar: Constant{"MapTypeControlStyle", "HORIZONTAL_BAR"},
}

// NavigationControlStyle lists google.maps.NavigationControlStyle.
var NavigationControlStyle = struct {
	Android, Default, Small, ZoomPan Constant
}{
	Android: Constant{"NavigationControlStyle", "ANDROID"},
	Default: Constant{"NavigationControlStyle", "DEFAULT"},
	Small:   Constant{"NavigationControlStyle", "SMALL"},
	ZoomPan: Constant{"NavigationControlStyle", "ZOOM_PAN"},
}

// ScaleControlStyle lists google.maps.ScaleControlStyle.
var ScaleControlStyle = struct {
	Default Constant
}{
	Default: Constant{"ScaleControlStyle", "DEFAULT"},
}

// ControlPosition lists google.maps.ControlPosition.
var ControlPosition = struct {
	Bottom, BottomLeft, BottomRight, Left, Right, Top, TopLeft, TopRight Constant
}{
	Bottom:      Constant{"ControlPosition", "BOTTOM"},
	BottomLeft:  Constant{"ControlPosition", "BOTTOM_LEFT"},
	BottomRight: Constant{"ControlPosition", "BOTTOM_RIGHT"},
	Left:        Constant{"ControlPosition", "LEFT"},
	Right:       Constant{"ControlPosition", "RIGHT"},
	Top:         Constant{"ControlPosition", "TOP"},
	TopLeft:     Constant{"ControlPosition", "TOP_LEFT"},
	TopRight:    Constant{"ControlPosition", "TOP_RIGHT"},
}

// MapTypeIDByName resolves a map type by its constant name (case-insensitive),
// e.g. "roadmap" or "SATELLITE".
func MapTypeIDByName(name string) (Constant, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "HYBRID":
		return MapTypeID.Hybrid, true
	case "ROADMAP":
		return MapTypeID.Roadmap, true
	case "SATELLITE":
		return MapTypeID.Satellite, true
	case "TERRAIN":
		return MapTypeID.Terrain, true
	default:
		return Constant{}, false
	}
}
