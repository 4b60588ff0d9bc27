package gmapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-gmapi/pkg/geocoder"
	"github.com/goliatone/go-gmapi/pkg/maps"
)

func TestStaticURLUsesPublicEndpoint(t *testing.T) {
	zoom := 3
	m := NewMap(MapOptions{Center: maps.NewLatLng(38, -97), Zoom: &zoom})
	got := StaticURL(m)
	want := maps.DefaultStaticURL + "?center=38,-97&zoom=3&sensor=false"
	if got != want {
		t.Fatalf("unexpected url\nwant: %s\n got: %s", want, got)
	}
}

func TestRenderWidgetWrapsMap(t *testing.T) {
	html, err := RenderWidget("location", nil, Attrs{"width": "320", "height": "200"})
	if err != nil {
		t.Fatalf("render widget: %v", err)
	}
	out := string(html)
	for _, fragment := range []string{`id="location"`, `class="gmap"`, `width="320"`, `&size=320x200`} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in %s", fragment, out)
		}
	}
}

func TestGeocodeOneShot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "paris" {
			t.Errorf("unexpected address %q", got)
		}
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	resp, err := Geocode(context.Background(), GeocodeRequest{Address: "Paris"},
		geocoder.WithBaseURL(server.URL),
		geocoder.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if resp.Status != geocoder.StatusZeroResults {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}
