package testsupport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gmapi/pkg/maps"
)

// MustLoadMap reads a JSON fixture in the {cls, arg} shape and rebuilds the
// map it describes.
func MustLoadMap(t *testing.T, path string) *maps.Map {
	t.Helper()

	m, err := LoadMap(path)
	if err != nil {
		t.Fatalf("load map: %v", err)
	}
	return m
}

// LoadMap returns the decoded map without requiring testing.T, for setup code.
func LoadMap(path string) (*maps.Map, error) {
	if path == "" {
		return nil, errors.New("testsupport: map path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read map: %w", err)
	}
	obj, err := maps.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode map: %w", err)
	}
	m, ok := obj.(*maps.Map)
	if !ok {
		return nil, fmt.Errorf("testsupport: fixture %s holds a %s, not a Map", path, obj.ClassName())
	}
	return m, nil
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

// AssertGoldenString compares got against the golden file at path, refreshing
// the file instead when UPDATE_GOLDENS is set.
func AssertGoldenString(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, got); diff != "" {
		t.Fatalf("golden mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
