package maps

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks geometry operations that only the browser runtime can
// answer (bounds arithmetic, map viewport queries).
var ErrUnsupported = errors.New("unsupported operation")

func unsupported(op string) error {
	return fmt.Errorf("maps: %s: %w", op, ErrUnsupported)
}
