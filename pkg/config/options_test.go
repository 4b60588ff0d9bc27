package config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-gmapi/components/media"
	"github.com/goliatone/go-gmapi/pkg/cache"
	"github.com/goliatone/go-gmapi/pkg/geocoder"
	"github.com/goliatone/go-gmapi/pkg/scripts"
	"github.com/goliatone/go-gmapi/pkg/widget"
)

func TestScriptOptionsFollowMediaSettings(t *testing.T) {
	s := Defaults()
	s.MediaURL = "/static/"
	s.MediaPrefix = "maps/"
	s.Debug = true

	h, err := scripts.New(s.ScriptOptions()...)
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	script := h.JQuery(scripts.JQueryRequest{}).Script
	if !strings.Contains(script, "jQuery.getScript('/static/maps/js/jquery.gmapi.js');") {
		t.Fatalf("unexpected plugin path in %q", script)
	}
	if !strings.Contains(script, "{uncompressed:true}") {
		t.Fatalf("expected debug jQuery in %q", script)
	}

	s.JQueryPlugins = []string{"/js/custom.js"}
	h, err = scripts.New(s.ScriptOptions()...)
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	if script := h.JQuery(scripts.JQueryRequest{}).Script; !strings.Contains(script, "'/js/custom.js'") {
		t.Fatalf("expected configured plugin in %q", script)
	}
}

func TestWidgetOptionsMedia(t *testing.T) {
	s := Defaults()
	s.MapsURL = "https://maps.example.com/api/js"
	w, err := widget.New(s.WidgetOptions()...)
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}
	got := w.Media()
	if len(got) != 2 || got[0] != s.MapsURL || got[1] != "/media/gmapi/js/jquery.gmapi.min.js" {
		t.Fatalf("unexpected media %v", got)
	}
}

func TestGeocoderOptionsUseSettings(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	s := Defaults()
	s.GeocodeURL = server.URL
	s.Geocoder.UserAgent = "gmapi-test"
	s.Geocoder.Rate = 100

	client := geocoder.New(s.GeocoderOptions(cache.Nop{}, zerolog.Nop())...)
	resp, err := client.Geocode(context.Background(), geocoder.Request{Address: "nowhere"}, nil)
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if resp.Status != geocoder.StatusZeroResults || agent != "gmapi-test" {
		t.Fatalf("unexpected status %q / agent %q", resp.Status, agent)
	}
}

func TestMediaOptionsMountPath(t *testing.T) {
	s := Defaults()
	s.MediaURL = "/assets/"
	got, err := media.MountPath("", s.MediaOptions()...)
	if err != nil {
		t.Fatalf("mount path: %v", err)
	}
	if got != "/assets/gmapi/" {
		t.Fatalf("unexpected mount path %q", got)
	}
}

func TestMediaOptionsExternalPrefix(t *testing.T) {
	s := Defaults()
	s.MediaPrefix = "https://cdn.example.com/gmapi/"
	if _, err := media.MountPath("", s.MediaOptions()...); !errors.Is(err, media.ErrExternalPrefix) {
		t.Fatalf("expected ErrExternalPrefix, got %v", err)
	}
}
