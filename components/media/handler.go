package media

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	gmapi "github.com/goliatone/go-gmapi"
)

type HTTPError interface {
	error
	StatusCode() int
}

// Handler serves the configured root. Paths are relative to the root, so the
// handler is usually wrapped in http.StripPrefix; RegisterRoutes does that.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	files := http.FileServer(http.FS(root(opts)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		if opts.CacheControl != "" {
			w.Header().Set("Cache-Control", opts.CacheControl)
		}
		files.ServeHTTP(w, r)
	})
}

func root(opts Options) fs.FS {
	switch {
	case opts.Dir != "":
		return os.DirFS(opts.Dir)
	case opts.Root != nil:
		return opts.Root
	default:
		return gmapi.AssetsFS()
	}
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if c := httpErr.StatusCode(); c > 0 {
			code = c
		}
	}
	http.Error(w, http.StatusText(code), code)
}
