package media

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrExternalPrefix is returned by RegisterRoutes when the assets are hosted
// on another origin and there is nothing to serve.
var ErrExternalPrefix = errors.New("media: prefix is an external URL")

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the path the assets are served under, or
// ErrExternalPrefix.
func MountPath(basePath string, fns ...OptionFn) (string, error) {
	return mountPath(basePath, NewOptions(fns...))
}

// RegisterRoutes registers the asset handler under basePath on mux and
// returns the pattern used.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("media: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	pattern, err := mountPath(basePath, opts)
	if err != nil {
		return "", err
	}
	mux.Handle(pattern, http.StripPrefix(pattern, HandlerWithOptions(opts)))
	return pattern, nil
}

func mountPath(basePath string, opts Options) (string, error) {
	prefix := strings.TrimSpace(opts.Prefix)
	if isExternal(prefix) {
		return "", ErrExternalPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = strings.TrimSpace(opts.MediaURL) + prefix
	}
	if isExternal(prefix) {
		return "", ErrExternalPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return prefix, nil
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + prefix, nil
}

func isExternal(prefix string) bool {
	return strings.HasPrefix(prefix, "http://") || strings.HasPrefix(prefix, "https://")
}
