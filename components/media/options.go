package media

import (
	"io/fs"
	"net/http"
)

const (
	DefaultMediaURL = "/media/"
	DefaultPrefix   = "gmapi/"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	// MediaURL is prepended to relative prefixes.
	MediaURL string
	// Prefix locates the assets below MediaURL. Absolute paths ignore
	// MediaURL; http(s) URLs disable the component.
	Prefix string
	// Root is the served filesystem. Dir, when set, takes precedence. With
	// neither the embedded companion assets are served.
	Root fs.FS
	Dir  string

	CacheControl string
	Guard        GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		MediaURL: DefaultMediaURL,
		Prefix:   DefaultPrefix,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.MediaURL == "" {
		opts.MediaURL = DefaultMediaURL
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return opts
}

func WithMediaURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MediaURL = url
	}
}

func WithPrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Prefix = prefix
	}
}

func WithRoot(root fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Root = root
	}
}

// WithDir serves a directory on disk, e.g. the configured media_root.
func WithDir(dir string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Dir = dir
	}
}

func WithCacheControl(value string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CacheControl = value
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
