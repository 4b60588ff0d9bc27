// Package geocoder resolves addresses to coordinates (and back) through the
// Google Geocoding web service.
//
// Lookups are blocking. Raw response bodies are cached under the normalized
// request key, and OVER_QUERY_LIMIT answers are retried with a growing delay
// held in a Backoff. When retries run out the backoff is marked blocked and
// Geocode returns an *ExhaustedError; while blocked, a lookup that is still
// rate limited fails after a single probe.
package geocoder
