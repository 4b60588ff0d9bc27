package media

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type statusError struct{ code int }

func (e statusError) Error() string   { return http.StatusText(e.code) }
func (e statusError) StatusCode() int { return e.code }

func TestHandler_RejectsWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/js/jquery.gmapi.js", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/js/jquery.gmapi.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %d bytes", rec.Body.Len())
	}
}

func TestHandler_ServesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "js"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "js", "jquery.gmapi.js"), []byte("local"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	Handler(WithDir(dir)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/jquery.gmapi.js", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "local" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	Handler(WithDir(dir)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/missing.js", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_Guard(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("nope"), want: http.StatusForbidden},
		{name: "status error", err: statusError{code: http.StatusUnauthorized}, want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Handler(WithGuard(func(*http.Request) error { return tc.err }))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/jquery.gmapi.js", nil))
			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
