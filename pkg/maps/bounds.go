package maps

import "fmt"

// LatLngBounds is a rectangle in geographical coordinates given by its
// south-west and north-east corners, equivalent to google.maps.LatLngBounds.
type LatLngBounds struct {
	sw *LatLng
	ne *LatLng
}

// NewLatLngBounds builds bounds from its corners. Either corner may be nil.
func NewLatLngBounds(sw, ne *LatLng) *LatLngBounds {
	return &LatLngBounds{sw: sw, ne: ne}
}

func (b LatLngBounds) ClassName() string { return "LatLngBounds" }

func (b LatLngBounds) SouthWest() *LatLng { return b.sw }

func (b LatLngBounds) NorthEast() *LatLng { return b.ne }

// IsEmpty reports whether the bounds lack a south-west corner or are inverted.
func (b LatLngBounds) IsEmpty() bool {
	if b.sw == nil {
		return true
	}
	return b.ne != nil && b.sw.Lat() > b.ne.Lat()
}

// Equals compares both corners. Bounds with a missing corner never match.
func (b LatLngBounds) Equals(other LatLngBounds) bool {
	if b.sw == nil || b.ne == nil || other.sw == nil || other.ne == nil {
		return false
	}
	return b.sw.Equals(*other.sw) && b.ne.Equals(*other.ne)
}

func (b LatLngBounds) ToString() string {
	return fmt.Sprintf("(%s, %s)", corner(b.sw).ToString(), corner(b.ne).ToString())
}

// ToURLValue renders "swLat,swLng,neLat,neLng".
func (b LatLngBounds) ToURLValue(precision int) string {
	return corner(b.sw).ToURLValue(precision) + "," + corner(b.ne).ToURLValue(precision)
}

func (b LatLngBounds) String() string {
	return b.ToURLValue(DefaultPrecision)
}

func (b LatLngBounds) Contains(LatLng) (bool, error) {
	return false, unsupported("LatLngBounds.Contains")
}

func (b *LatLngBounds) Extend(LatLng) error {
	return unsupported("LatLngBounds.Extend")
}

func (b LatLngBounds) Center() (*LatLng, error) {
	return nil, unsupported("LatLngBounds.Center")
}

func (b LatLngBounds) Intersects(LatLngBounds) (bool, error) {
	return false, unsupported("LatLngBounds.Intersects")
}

func (b LatLngBounds) ToSpan() (*LatLng, error) {
	return nil, unsupported("LatLngBounds.ToSpan")
}

func (b *LatLngBounds) Union(LatLngBounds) error {
	return unsupported("LatLngBounds.Union")
}

func (b LatLngBounds) MarshalJSON() ([]byte, error) {
	var sw, ne any
	if b.sw != nil {
		sw = b.sw
	}
	if b.ne != nil {
		ne = b.ne
	}
	return marshalObject(b.ClassName(), sw, ne)
}

func (b *LatLngBounds) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "LatLngBounds")
	if err != nil {
		return err
	}
	var out LatLngBounds
	var sw, ne LatLng
	if ok, err := argAt(env.Arg, 0, &sw); err != nil {
		return err
	} else if ok {
		out.sw = &sw
	}
	if ok, err := argAt(env.Arg, 1, &ne); err != nil {
		return err
	} else if ok {
		out.ne = &ne
	}
	*b = out
	return nil
}

func corner(l *LatLng) LatLng {
	if l == nil {
		return LatLng{}
	}
	return *l
}
