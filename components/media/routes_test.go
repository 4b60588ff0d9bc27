package media

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestMountPath(t *testing.T) {
	cases := []struct {
		name string
		base string
		fns  []OptionFn
		want string
	}{
		{name: "defaults", want: "/media/gmapi/"},
		{name: "base path", base: "admin/", want: "/admin/media/gmapi/"},
		{name: "custom media url", fns: []OptionFn{WithMediaURL("/static/")}, want: "/static/gmapi/"},
		{name: "absolute prefix", fns: []OptionFn{WithPrefix("/assets/maps")}, want: "/assets/maps/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MountPath(tc.base, tc.fns...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected mount path: %q", got)
			}
		})
	}
}

func TestRegisterRoutes_ExternalPrefixRegistersNothing(t *testing.T) {
	mux := http.NewServeMux()
	for _, fns := range [][]OptionFn{
		{WithPrefix("https://cdn.example.com/gmapi/")},
		{WithMediaURL("http://media.example.com/")},
	} {
		pattern, err := RegisterRoutes(mux, "", fns...)
		if !errors.Is(err, ErrExternalPrefix) {
			t.Fatalf("expected ErrExternalPrefix, got %v", err)
		}
		if pattern != "" {
			t.Fatalf("expected no pattern, got %q", pattern)
		}
	}
}

func TestRegisterRoutes_ServesEmbeddedAssets(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"js/jquery.gmapi.min.js", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "div.gmap:visible") {
		t.Fatalf("expected companion script body")
	}
}

func TestComponent_ServesCustomRoot(t *testing.T) {
	root := fstest.MapFS{
		"js/app.js": &fstest.MapFile{Data: []byte("console.log('map')")},
	}
	c := New(WithRoot(root), WithPrefix("/static/maps/"), WithCacheControl("max-age=60"))

	mux := http.NewServeMux()
	pattern, err := c.RegisterRoutes(mux, "/dev")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pattern != "/dev/static/maps/" {
		t.Fatalf("unexpected pattern %q", pattern)
	}

	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/dev/static/maps/js/app.js")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "console.log('map')" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}
	if got := resp.Header.Get("Cache-Control"); got != "max-age=60" {
		t.Fatalf("unexpected cache control %q", got)
	}
}
