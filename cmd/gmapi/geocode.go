package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-gmapi/pkg/cache"
	"github.com/goliatone/go-gmapi/pkg/geocoder"
	"github.com/goliatone/go-gmapi/pkg/maps"
)

type geocodeCmd struct {
	Address  string `arg:"positional" help:"address to look up; prompted for when neither it nor --latlng is given"`
	LatLng   string `arg:"--latlng" help:"reverse geocode these lat,lng coordinates"`
	Bounds   string `arg:"--bounds" help:"bias results to the viewport south-west|north-east, each lat,lng"`
	Region   string `arg:"--region" help:"region bias as a ccTLD code"`
	Language string `arg:"--language" help:"result language"`
	JSON     bool   `arg:"--json" help:"print the full response as JSON"`
}

func (c *geocodeCmd) request(e *env) (geocoder.Request, error) {
	req := geocoder.Request{Address: c.Address, Region: c.Region, Language: c.Language}
	if c.LatLng != "" {
		location, err := maps.ParseLatLng(c.LatLng)
		if err != nil {
			return req, usageError("--latlng: %v", err)
		}
		req.Location = location
	}
	if c.Bounds != "" {
		bounds, err := parseBounds(c.Bounds)
		if err != nil {
			return req, usageError("--bounds: %v", err)
		}
		req.Bounds = bounds
	}
	if req.Address == "" && req.Location == nil {
		address, err := e.prompt.Input(e.ctx, "Address", "Street address, place name or postal code to geocode")
		if err != nil {
			return req, exitError{code: 1, err: err}
		}
		req.Address = address
	}
	return req, nil
}

func (c *geocodeCmd) run(e *env) error {
	req, err := c.request(e)
	if err != nil {
		return err
	}

	store, err := cache.Open(e.settings.Cache)
	if err != nil {
		return err
	}
	defer func() {
		if err := cache.Close(store); err != nil {
			e.logger.Warn().Err(err).Msg("close geocode cache")
		}
	}()

	client := geocoder.New(e.settings.GeocoderOptions(store, e.logger)...)
	resp, err := client.Geocode(e.ctx, req, nil)
	if err != nil {
		var exhausted *geocoder.ExhaustedError
		if errors.As(err, &exhausted) {
			return exitError{code: 1, err: err}
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}

	results, ok := resp.Results()
	if !ok {
		msg := string(resp.Status)
		if resp.ErrorMessage != "" {
			msg += ": " + resp.ErrorMessage
		}
		return exitError{code: 1, err: fmt.Errorf("no results (%s)", msg)}
	}
	if c.JSON {
		return nil
	}
	for _, result := range results {
		fmt.Fprintf(e.stdout, "%s\t%s\n", result.Geometry.Location.String(), result.FormattedAddress)
	}
	return nil
}
