package maps

import (
	"fmt"
	"strconv"
)

// Point is a position on a two-dimensional plane (pixels), equivalent to
// google.maps.Point.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p Point) ClassName() string { return "Point" }

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) ToString() string {
	return fmt.Sprintf("(%s, %s)", formatNumber(p.X), formatNumber(p.Y))
}

func (p Point) String() string {
	return formatNumber(p.X) + "," + formatNumber(p.Y)
}

func (p Point) MarshalJSON() ([]byte, error) {
	return marshalObject(p.ClassName(), p.X, p.Y)
}

func (p *Point) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "Point")
	if err != nil {
		return err
	}
	var out Point
	if _, err := argAt(env.Arg, 0, &out.X); err != nil {
		return err
	}
	if _, err := argAt(env.Arg, 1, &out.Y); err != nil {
		return err
	}
	*p = out
	return nil
}

// Size is a two-dimensional size in pixels (or the given units), equivalent to
// google.maps.Size.
type Size struct {
	Width      int
	Height     int
	WidthUnit  string
	HeightUnit string
}

func NewSize(width, height int) *Size {
	return &Size{Width: width, Height: height}
}

// WithUnits sets the optional CSS units of both dimensions.
func (s *Size) WithUnits(widthUnit, heightUnit string) *Size {
	s.WidthUnit = widthUnit
	s.HeightUnit = heightUnit
	return s
}

func (s Size) ClassName() string { return "Size" }

func (s Size) Equals(other Size) bool {
	return s.Width == other.Width && s.Height == other.Height
}

func (s Size) ToString() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}

// String renders the Static Maps "WxH" form.
func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

func (s Size) MarshalJSON() ([]byte, error) {
	var widthUnit, heightUnit any
	if s.WidthUnit != "" {
		widthUnit = s.WidthUnit
	}
	if s.HeightUnit != "" {
		heightUnit = s.HeightUnit
	}
	return marshalObject(s.ClassName(), s.Width, s.Height, widthUnit, heightUnit)
}

func (s *Size) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "Size")
	if err != nil {
		return err
	}
	var out Size
	var width, height float64
	if _, err := argAt(env.Arg, 0, &width); err != nil {
		return err
	}
	if _, err := argAt(env.Arg, 1, &height); err != nil {
		return err
	}
	out.Width, out.Height = int(width), int(height)
	if _, err := argAt(env.Arg, 2, &out.WidthUnit); err != nil {
		return err
	}
	if _, err := argAt(env.Arg, 3, &out.HeightUnit); err != nil {
		return err
	}
	*s = out
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
