package widget

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gmapi/pkg/maps"
	"github.com/goliatone/go-gmapi/pkg/testsupport"
)

func newWidget(t *testing.T, fns ...OptionFn) *GoogleMap {
	t.Helper()
	w, err := New(fns...)
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}
	return w
}

func TestGoogleMapRender_Golden(t *testing.T) {
	w := newWidget(t)

	cases := []struct {
		name   string
		value  *maps.Map
		golden string
	}{
		{
			name:   "default",
			value:  maps.NewMap(maps.MapOptions{Center: maps.NewLatLng(38, -97), Zoom: maps.Int(3)}),
			golden: "google_map_default.golden",
		},
		{name: "nil value renders empty map", value: nil, golden: "google_map_empty.golden"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := w.Render("location", tc.value, nil)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			testsupport.AssertGoldenString(t, filepath.Join("testdata", tc.golden), string(got))
		})
	}
}

func TestGoogleMapRender_Attributes(t *testing.T) {
	w := newWidget(t)
	m := maps.NewMap(maps.MapOptions{Center: maps.NewLatLng(1, 2)})

	got, err := w.Render("location", m, Attrs{
		"width":  "640",
		"height": "300px",
		"style":  "border:0",
		"class":  "gmap big",
		"data-x": `a"b`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(got)

	wantPrefix := `<div class="gmap big" data-x="a&quot;b" id="location" style="position:relative;width:640px;height:300px;border:0">`
	if !strings.HasPrefix(html, wantPrefix) {
		t.Fatalf("unexpected container\nwant prefix: %s\n got: %s", wantPrefix, html)
	}
	for _, fragment := range []string{
		`style="position:absolute;width:640px;height:300px"`,
		`width="640" height="300" alt="Google Map"`,
		`&size=640x300"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in %s", fragment, html)
		}
	}
	if strings.Contains(html, `<div width=`) || strings.Contains(html, ` height="300px"`) {
		t.Fatalf("width/height attrs must not be emitted on the container: %s", html)
	}
}

func TestGoogleMapRender_InvalidDimension(t *testing.T) {
	w := newWidget(t)
	if _, err := w.Render("location", nil, Attrs{"width": "wide"}); err == nil {
		t.Fatalf("expected error for invalid width")
	}
}

func TestGoogleMapRender_MarkersAndStaticURL(t *testing.T) {
	w := newWidget(t, WithStaticURL("https://static.example.com/map"))
	m := maps.NewMap(maps.MapOptions{Center: maps.NewLatLng(38, -97), Zoom: maps.Int(3)})
	maps.NewMarker(maps.MarkerOptions{Map: m, Position: maps.NewLatLng(38, -97), Color: "red"})

	got, err := w.Render("location", m, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `src="https://static.example.com/map?center=38,-97&amp;zoom=3&amp;markers=color:red|38,-97&amp;sensor=false&size=500x400"`
	if !strings.Contains(string(got), want) {
		t.Fatalf("expected %s in %s", want, got)
	}
	if !strings.Contains(string(got), `&quot;mkr&quot;:[{&quot;cls&quot;:&quot;Marker&quot;`) {
		t.Fatalf("expected markers in the configuration: %s", got)
	}
}

func TestGoogleMapRender_Fallback(t *testing.T) {
	w := newWidget(t, WithFallback(`<a href="http://maps.google.com/">View map</a><script>alert(1)</script><img src=x onerror=y>`))

	got, err := w.Render("location", nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<noscript><a href="http://maps.google.com/" rel="nofollow">View map</a></noscript></div>`
	if !strings.HasSuffix(string(got), want) {
		t.Fatalf("unexpected fallback\nwant suffix: %s\n got: %s", want, got)
	}
}

func TestGoogleMapRender_TemplateOverride(t *testing.T) {
	override := fstest.MapFS{
		"google_map.tpl": &fstest.MapFile{Data: []byte(`<figure data-map="{{ config }}">{{ width }}x{{ height }}</figure>`)},
	}
	w := newWidget(t, WithTemplatesFS(override))

	got, err := w.Render("location", nil, Attrs{"width": "10", "height": "20"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<figure data-map="{&quot;cls&quot;:&quot;Map&quot;,&quot;arg&quot;:[&quot;div&quot;]}">10x20</figure>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestGoogleMapMedia(t *testing.T) {
	cases := []struct {
		name string
		fns  []OptionFn
		want []string
	}{
		{
			name: "defaults",
			want: []string{DefaultMapsURL, "/media/gmapi/js/jquery.gmapi.min.js"},
		},
		{
			name: "debug",
			fns:  []OptionFn{WithDebug(true)},
			want: []string{DefaultMapsURL, "/media/gmapi/js/jquery.gmapi.js"},
		},
		{
			name: "absolute prefix",
			fns:  []OptionFn{WithMedia("/static/", "https://cdn.example.com/gmapi/"), WithMapsURL("https://maps.example.com/js")},
			want: []string{"https://maps.example.com/js", "https://cdn.example.com/gmapi/js/jquery.gmapi.min.js"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, newWidget(t, tc.fns...).Media()); diff != "" {
				t.Fatalf("unexpected media (-want +got):\n%s", diff)
			}
		})
	}
}

type stubPresets map[string]maps.MapOptions

func (s stubPresets) Map(name string) (*maps.Map, bool) {
	opts, ok := s[name]
	if !ok {
		return nil, false
	}
	return maps.NewMap(opts), true
}

func TestGoogleMapRenderPreset(t *testing.T) {
	w := newWidget(t, WithPresets(stubPresets{
		"usa": {Center: maps.NewLatLng(38, -97), Zoom: maps.Int(3)},
	}))

	got, err := w.RenderPreset("location", "usa", nil)
	if err != nil {
		t.Fatalf("render preset: %v", err)
	}
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "google_map_default.golden"))
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	if _, err := w.RenderPreset("location", "mars", nil); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
	if _, err := newWidget(t).RenderPreset("location", "usa", nil); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound without presets, got %v", err)
	}
}

func TestGoogleMapRender_DecodedFixture(t *testing.T) {
	m := testsupport.MustLoadMap(t, filepath.Join("testdata", "usa_map.json"))

	got, err := newWidget(t).Render("location", m, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "google_map_default.golden"))
	if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("decoded map renders differently (-want +got):\n%s", diff)
	}
}
