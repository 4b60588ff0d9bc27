package scripts

import (
	"io/fs"

	rendertemplate "github.com/goliatone/go-gmapi/pkg/render/template"
)

const (
	DefaultJSAPIURL      = "http://www.google.com/jsapi"
	DefaultJQueryVersion = "1.4"
	DefaultMediaURL      = "/media/"
	DefaultPluginPath    = "gmapi/js/jquery.gmapi"
)

// Module is one entry of the loader's autoload descriptor.
type Module struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Version     string `json:"version,omitempty" yaml:"version" mapstructure:"version"`
	OtherParams string `json:"other_params,omitempty" yaml:"other_params" mapstructure:"other_params"`
	Language    string `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	Callback    string `json:"callback,omitempty" yaml:"callback" mapstructure:"callback"`
}

// Autoload tells the loader which modules to fetch with the loader itself.
type Autoload struct {
	Modules []Module `json:"modules,omitempty" yaml:"modules" mapstructure:"modules"`
}

// DefaultAutoload loads Maps v3.
func DefaultAutoload() Autoload {
	return Autoload{Modules: []Module{{Name: "maps", Version: "3", OtherParams: "sensor=false"}}}
}

type Options struct {
	JSAPIURL      string
	Key           string
	Autoload      *Autoload
	JQueryVersion string
	Plugins       []string
	MediaURL      string
	Debug         bool

	Templates fs.FS
	Renderer  rendertemplate.TemplateRenderer
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	autoload := DefaultAutoload()
	return Options{
		JSAPIURL:      DefaultJSAPIURL,
		Autoload:      &autoload,
		JQueryVersion: DefaultJQueryVersion,
		MediaURL:      DefaultMediaURL,
	}
}

// NewOptions applies fns over the defaults. When no plugin list was given the
// companion script below MediaURL is used, minified unless Debug is set.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.JSAPIURL == "" {
		opts.JSAPIURL = DefaultJSAPIURL
	}
	if opts.JQueryVersion == "" {
		opts.JQueryVersion = DefaultJQueryVersion
	}
	if opts.Plugins == nil {
		suffix := ".min.js"
		if opts.Debug {
			suffix = ".js"
		}
		opts.Plugins = []string{opts.MediaURL + DefaultPluginPath + suffix}
	}
	return opts
}

func WithJSAPIURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.JSAPIURL = url
	}
}

// WithKey sets the loader API key. Maps v3 does not need one.
func WithKey(key string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Key = key
	}
}

// WithAutoload replaces the configured autoload modules. Nil disables
// autoloading.
func WithAutoload(autoload *Autoload) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Autoload = autoload
	}
}

func WithJQueryVersion(version string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.JQueryVersion = version
	}
}

// WithPlugins replaces the plugin list. An empty non-nil slice loads no
// plugins.
func WithPlugins(plugins []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Plugins = append([]string{}, plugins...)
	}
}

func WithMediaURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MediaURL = url
	}
}

// WithDebug loads uncompressed jQuery and the unminified companion script.
func WithDebug(debug bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Debug = debug
	}
}

func WithTemplatesFS(files fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Templates = files
	}
}

func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}
