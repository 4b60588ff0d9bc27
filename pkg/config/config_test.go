package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gmapi/pkg/cache"
	"github.com/goliatone/go-gmapi/pkg/scripts"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Defaults(), got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	path := writeFile(t, "gmapi.yaml", `
media_url: /static/
debug: true
jquery_plugins:
  - /js/a.js
  - /js/b.js
jsapi_autoload:
  modules:
    - name: maps
      version: "3.2"
cache:
  backend: badger
  ttl: 1h
geocoder:
  max_attempts: 5
  delay_step: 50ms
log:
  level: debug
`)
	t.Setenv("GMAPI_GEOCODER_MAX_ATTEMPTS", "7")
	t.Setenv("GMAPI_CACHE_PREFIX", "geo:")
	t.Setenv("GMAPI_LOG_FORMAT", "json")

	got, err := Load(WithFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.MediaURL != "/static/" || !got.Debug {
		t.Fatalf("file values not applied: %+v", got)
	}
	if diff := cmp.Diff([]string{"/js/a.js", "/js/b.js"}, got.JQueryPlugins); diff != "" {
		t.Fatalf("plugins mismatch (-want +got):\n%s", diff)
	}
	wantAutoload := &scripts.Autoload{Modules: []scripts.Module{{Name: "maps", Version: "3.2"}}}
	if diff := cmp.Diff(wantAutoload, got.JSAPIAutoload); diff != "" {
		t.Fatalf("autoload mismatch (-want +got):\n%s", diff)
	}
	wantCache := cache.Settings{Backend: cache.BackendBadger, TTL: time.Hour, Prefix: "geo:"}
	if diff := cmp.Diff(wantCache, got.Cache); diff != "" {
		t.Fatalf("cache mismatch (-want +got):\n%s", diff)
	}
	if got.Geocoder.MaxAttempts != 7 || got.Geocoder.DelayStep != 50*time.Millisecond {
		t.Fatalf("geocoder settings mismatch: %+v", got.Geocoder)
	}
	if got.Log.Level != "debug" || got.Log.Format != "json" {
		t.Fatalf("log settings mismatch: %+v", got.Log)
	}
}

func TestLoadEnvListValue(t *testing.T) {
	t.Setenv("GMAPI_JQUERY_PLUGINS", "/js/one.js, /js/two.js")
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"/js/one.js", "/js/two.js"}, got.JQueryPlugins); diff != "" {
		t.Fatalf("plugins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "GMAPI_JSAPI_KEY"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set in the environment", key)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := writeFile(t, "test.env", key+"=from-dotenv\n")
	got, err := Load(WithEnvFiles(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.JSAPIKey != "from-dotenv" {
		t.Fatalf("expected key from env file, got %q", got.JSAPIKey)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	if _, err := Load(WithFile(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatalf("expected error for missing config file")
	}
	if _, err := Load(WithEnvFiles(filepath.Join(t.TempDir(), "missing.env"))); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
		target error
	}{
		{name: "relative static url", mutate: func(s *Settings) { s.StaticURL = "/staticmap" }},
		{name: "redis without url", mutate: func(s *Settings) { s.Cache.Backend = cache.BackendRedis }},
		{name: "unknown backend", mutate: func(s *Settings) { s.Cache.Backend = "memcached" }, target: cache.ErrUnknownBackend},
		{name: "no attempts", mutate: func(s *Settings) { s.Geocoder.MaxAttempts = 0 }},
		{name: "negative rate", mutate: func(s *Settings) { s.Geocoder.Rate = -1 }},
		{name: "bad log level", mutate: func(s *Settings) { s.Log.Level = "chatty" }},
		{name: "bad log format", mutate: func(s *Settings) { s.Log.Format = "xml" }},
	}
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}
