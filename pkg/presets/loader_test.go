package presets_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gmapi/pkg/maps"
	"github.com/goliatone/go-gmapi/pkg/presets"
)

func TestLoadFS_YAML(t *testing.T) {
	store := loadStore(t, "basic")
	if diff := cmp.Diff([]string{"empty", "usa"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	m, ok := store.Map("usa")
	if !ok {
		t.Fatalf("preset usa not found")
	}

	want := "http://maps.google.com/maps/api/staticmap?center=38,-97&zoom=3&size=512x512&maptype=roadmap" +
		"&markers=color:red|label:A|38,-97" +
		"&markers=icon:http:%2F%2Fexample.com%2Fpin.png|40.7128,-74.006" +
		"&sensor=false"
	if diff := cmp.Diff(want, m.String()); diff != "" {
		t.Fatalf("static url mismatch (-want +got):\n%s", diff)
	}

	opts := m.Options()
	if opts.Scrollwheel == nil || *opts.Scrollwheel {
		t.Fatalf("expected scrollwheel passthrough, got %v", opts.Scrollwheel)
	}
	if opts.Extra["tilt"] != float64(45) {
		t.Fatalf("expected unknown option to be kept, got %#v", opts.Extra)
	}

	markers := m.Markers()
	if len(markers) != 2 || markers[0].Title() != "Center" || markers[1].Map() != m {
		t.Fatalf("unexpected markers: %#v", markers)
	}
}

func TestStoreMapReturnsFreshMaps(t *testing.T) {
	store := loadStore(t, "basic")
	first, _ := store.Map("usa")
	first.SetZoom(9)

	second, _ := store.Map("usa")
	if zoom, _ := second.Zoom(); zoom != 3 {
		t.Fatalf("expected preset to be unaffected by earlier edits, got zoom %d", zoom)
	}
	if first == second {
		t.Fatalf("expected distinct map instances")
	}
}

func TestLoadFS_JSON(t *testing.T) {
	store := loadStore(t, "json")
	m, ok := store.Map("world")
	if !ok {
		t.Fatalf("preset world not found")
	}
	id, ok := m.MapTypeID()
	if !ok || id != maps.MapTypeID.Satellite {
		t.Fatalf("unexpected map type %v", id)
	}
	if _, ok := store.Map("missing"); ok {
		t.Fatalf("expected unknown preset to be absent")
	}
}

func TestLoadFS_DuplicateName(t *testing.T) {
	_, err := presets.LoadFS(subDirFS(t, "duplicate"))
	if err == nil || !strings.Contains(err.Error(), `duplicate preset "home"`) {
		t.Fatalf("expected duplicate preset error, got %v", err)
	}
}

func TestLoadFS_UnknownMapType(t *testing.T) {
	_, err := presets.LoadFS(subDirFS(t, "invalid_type"))
	if err == nil || !strings.Contains(err.Error(), `unknown map type "lunar"`) {
		t.Fatalf("expected map type error, got %v", err)
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := presets.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func loadStore(t *testing.T, name string) *presets.Store {
	t.Helper()
	store, err := presets.LoadFS(subDirFS(t, name))
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return store
}

func subDirFS(t *testing.T, name string) fs.FS {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve caller")
	}
	return os.DirFS(filepath.Join(filepath.Dir(file), "testdata", name))
}
