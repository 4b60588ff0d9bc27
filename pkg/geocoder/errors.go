package geocoder

import (
	"errors"
	"fmt"
)

// ErrExhausted signals that the service kept answering OVER_QUERY_LIMIT until
// the retry budget ran out, typically because the daily quota is spent.
var ErrExhausted = errors.New("geocoder: retries exhausted")

type ExhaustedError struct {
	Attempts int
	Blocked  bool
}

func (e *ExhaustedError) Error() string {
	if e.Blocked {
		return "geocoder: service still over query limit after a previous exhaustion; the daily limit may have been exceeded"
	}
	return fmt.Sprintf("geocoder: geocoding failed %d times; the daily limit may have been exceeded", e.Attempts)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// HTTPError reports a non-2xx answer from the geocoding endpoint.
type HTTPError struct {
	Code int
	URL  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("geocoder: unexpected HTTP status %d from %s", e.Code, e.URL)
}

func (e *HTTPError) StatusCode() int { return e.Code }
