package maps

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals kept when a Degree is rendered.
const DefaultPrecision = 6

// Degree holds a latitude or longitude. It renders with at most
// DefaultPrecision decimals and no trailing zeros, both in URLs and in JSON.
type Degree float64

// Format renders d with at most precision decimals, trimming trailing zeros
// and a dangling decimal point.
func (d Degree) Format(precision int) string {
	if precision <= 0 {
		return cleanZero(strconv.FormatFloat(float64(d), 'f', 0, 64))
	}
	out := strconv.FormatFloat(float64(d), 'f', precision, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	return cleanZero(out)
}

func (d Degree) String() string {
	return d.Format(DefaultPrecision)
}

// MarshalJSON emits the rounded value as a JSON number.
func (d Degree) MarshalJSON() ([]byte, error) {
	f := float64(d)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("maps: degree %v is not a finite number", f)
	}
	return []byte(d.String()), nil
}

func (d *Degree) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("maps: decode degree: %w", err)
	}
	*d = Degree(f)
	return nil
}

func cleanZero(s string) string {
	if s == "-0" {
		return "0"
	}
	return s
}
