package widget

import (
	"io/fs"

	"github.com/goliatone/go-gmapi/pkg/maps"
	rendertemplate "github.com/goliatone/go-gmapi/pkg/render/template"
)

const (
	DefaultWidth       = 500
	DefaultHeight      = 400
	DefaultMapsURL     = "http://maps.google.com/maps/api/js?sensor=false"
	DefaultMediaURL    = "/media/"
	DefaultMediaPrefix = "gmapi/"
)

// PresetSource resolves named map presets.
type PresetSource interface {
	Map(name string) (*maps.Map, bool)
}

type Options struct {
	MapsURL     string
	MediaURL    string
	MediaPrefix string
	StaticURL   string
	Debug       bool
	Fallback    string
	Presets     PresetSource

	Templates fs.FS
	Renderer  rendertemplate.TemplateRenderer
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		MapsURL:     DefaultMapsURL,
		MediaURL:    DefaultMediaURL,
		MediaPrefix: DefaultMediaPrefix,
		StaticURL:   maps.DefaultStaticURL,
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
	if opts.MapsURL == "" {
		opts.MapsURL = DefaultMapsURL
	}
	if opts.MediaPrefix == "" {
		opts.MediaPrefix = DefaultMediaPrefix
	}
	if opts.StaticURL == "" {
		opts.StaticURL = maps.DefaultStaticURL
	}
	return opts
}

// WithMapsURL sets the Maps JavaScript API URL listed by Media.
func WithMapsURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MapsURL = url
	}
}

// WithMedia sets the media URL and the prefix of the companion script below
// it. An absolute prefix ("http://", "https://" or "/") is used as is.
func WithMedia(mediaURL, prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MediaURL = mediaURL
		o.MediaPrefix = prefix
	}
}

// WithStaticURL sets the Static Maps endpoint used for the preview image.
func WithStaticURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.StaticURL = url
	}
}

// WithDebug selects the uncompressed companion script.
func WithDebug(debug bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Debug = debug
	}
}

// WithFallback sets HTML shown inside <noscript>. It is sanitized before
// rendering; only links, emphasis, paragraphs and line breaks survive.
func WithFallback(html string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Fallback = html
	}
}

func WithPresets(presets PresetSource) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Presets = presets
	}
}

// WithTemplatesFS supplies templates searched before the embedded ones.
func WithTemplatesFS(files fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Templates = files
	}
}

// WithTemplateRenderer injects a preconfigured renderer. It must be able to
// resolve TemplateGoogleMap.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}
