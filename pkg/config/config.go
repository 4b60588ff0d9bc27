// Package config loads the gmapi settings from defaults, an optional YAML or
// JSON file, .env files and GMAPI_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/goliatone/go-gmapi/pkg/cache"
	"github.com/goliatone/go-gmapi/pkg/geocoder"
	"github.com/goliatone/go-gmapi/pkg/logging"
	"github.com/goliatone/go-gmapi/pkg/maps"
	"github.com/goliatone/go-gmapi/pkg/scripts"
	"github.com/goliatone/go-gmapi/pkg/widget"
)

const EnvPrefix = "GMAPI"

type Settings struct {
	StaticURL     string            `mapstructure:"static_url" json:"static_url" yaml:"static_url"`
	GeocodeURL    string            `mapstructure:"geocode_url" json:"geocode_url" yaml:"geocode_url"`
	MapsURL       string            `mapstructure:"maps_url" json:"maps_url" yaml:"maps_url"`
	JSAPIURL      string            `mapstructure:"jsapi_url" json:"jsapi_url" yaml:"jsapi_url"`
	JSAPIKey      string            `mapstructure:"jsapi_key" json:"jsapi_key" yaml:"jsapi_key"`
	JSAPIAutoload *scripts.Autoload `mapstructure:"jsapi_autoload" json:"jsapi_autoload" yaml:"jsapi_autoload"`
	JQueryVersion string            `mapstructure:"jquery_version" json:"jquery_version" yaml:"jquery_version"`
	JQueryPlugins []string          `mapstructure:"jquery_plugins" json:"jquery_plugins" yaml:"jquery_plugins"`
	MediaURL      string            `mapstructure:"media_url" json:"media_url" yaml:"media_url"`
	MediaPrefix   string            `mapstructure:"media_prefix" json:"media_prefix" yaml:"media_prefix"`
	MediaRoot     string            `mapstructure:"media_root" json:"media_root" yaml:"media_root"`
	Debug         bool              `mapstructure:"debug" json:"debug" yaml:"debug"`

	Cache    cache.Settings    `mapstructure:"cache" json:"cache" yaml:"cache"`
	Geocoder GeocoderSettings  `mapstructure:"geocoder" json:"geocoder" yaml:"geocoder"`
	Log      logging.Settings  `mapstructure:"log" json:"log" yaml:"log"`
}

type GeocoderSettings struct {
	MaxAttempts int           `mapstructure:"max_attempts" json:"max_attempts" yaml:"max_attempts"`
	DelayStep   time.Duration `mapstructure:"delay_step" json:"delay_step" yaml:"delay_step"`
	// Rate caps outgoing lookups per second. Zero disables the limiter.
	Rate      float64       `mapstructure:"rate" json:"rate" yaml:"rate"`
	Burst     int           `mapstructure:"burst" json:"burst" yaml:"burst"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" json:"user_agent" yaml:"user_agent"`
}

type Option func(*loader)

type loader struct {
	file     string
	envFiles []string
	lookup   func(string) (string, bool)
}

// WithFile reads settings from a YAML or JSON file. The file must exist.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = strings.TrimSpace(path)
	}
}

// WithEnvFiles loads the given .env files, which must exist. Without this
// option a .env in the working directory is loaded when present.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		l.envFiles = append(l.envFiles, paths...)
	}
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	autoload := scripts.DefaultAutoload()
	return Settings{
		StaticURL:     maps.DefaultStaticURL,
		GeocodeURL:    geocoder.DefaultBaseURL,
		MapsURL:       widget.DefaultMapsURL,
		JSAPIURL:      scripts.DefaultJSAPIURL,
		JSAPIAutoload: &autoload,
		JQueryVersion: scripts.DefaultJQueryVersion,
		MediaURL:      widget.DefaultMediaURL,
		MediaPrefix:   widget.DefaultMediaPrefix,
		Cache: cache.Settings{
			Backend: cache.BackendMemory,
			Prefix:  "gmapi:geocode:",
		},
		Geocoder: GeocoderSettings{
			MaxAttempts: geocoder.DefaultMaxAttempts,
			DelayStep:   geocoder.DefaultDelayStep,
			Burst:       1,
			Timeout:     geocoder.DefaultTimeout,
			UserAgent:   geocoder.DefaultUserAgent,
		},
		Log: logging.Settings{Level: "info", Format: logging.FormatConsole},
	}
}

// Load resolves the settings and validates them.
func Load(opts ...Option) (Settings, error) {
	l := &loader{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	if len(l.envFiles) > 0 {
		if err := godotenv.Load(l.envFiles...); err != nil {
			return Settings{}, fmt.Errorf("config: load env files: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := newViper()
	if l.file != "" {
		v.SetConfigFile(l.file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", l.file, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	if !v.IsSet("jsapi_autoload") {
		autoload := scripts.DefaultAutoload()
		settings.JSAPIAutoload = &autoload
	}
	settings.JQueryPlugins = splitList(settings.JQueryPlugins)

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	d := Defaults()
	defaults := map[string]any{
		"static_url":            d.StaticURL,
		"geocode_url":           d.GeocodeURL,
		"maps_url":              d.MapsURL,
		"jsapi_url":             d.JSAPIURL,
		"jsapi_key":             d.JSAPIKey,
		"jquery_version":        d.JQueryVersion,
		"jquery_plugins":        []string{},
		"media_url":             d.MediaURL,
		"media_prefix":          d.MediaPrefix,
		"media_root":            d.MediaRoot,
		"debug":                 d.Debug,
		"cache.backend":         d.Cache.Backend,
		"cache.ttl":             d.Cache.TTL,
		"cache.prefix":          d.Cache.Prefix,
		"cache.redis_url":       d.Cache.RedisURL,
		"cache.badger_dir":      d.Cache.BadgerDir,
		"geocoder.max_attempts": d.Geocoder.MaxAttempts,
		"geocoder.delay_step":   d.Geocoder.DelayStep,
		"geocoder.rate":         d.Geocoder.Rate,
		"geocoder.burst":        d.Geocoder.Burst,
		"geocoder.timeout":      d.Geocoder.Timeout,
		"geocoder.user_agent":   d.Geocoder.UserAgent,
		"log.level":             d.Log.Level,
		"log.format":            d.Log.Format,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
		_ = v.BindEnv(key)
	}
	return v
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	for name, raw := range map[string]string{
		"static_url":  s.StaticURL,
		"geocode_url": s.GeocodeURL,
		"maps_url":    s.MapsURL,
		"jsapi_url":   s.JSAPIURL,
	} {
		if err := validateURL(raw); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}

	switch strings.ToLower(s.Cache.Backend) {
	case "", cache.BackendMemory, cache.BackendNone, cache.BackendBadger:
	case cache.BackendRedis:
		if s.Cache.RedisURL == "" {
			return errors.New("config: cache.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("config: cache.backend %q: %w", s.Cache.Backend, cache.ErrUnknownBackend)
	}
	if s.Cache.TTL < 0 {
		return errors.New("config: cache.ttl must not be negative")
	}

	if s.Geocoder.MaxAttempts <= 0 {
		return errors.New("config: geocoder.max_attempts must be positive")
	}
	if s.Geocoder.DelayStep < 0 || s.Geocoder.Timeout < 0 || s.Geocoder.Rate < 0 {
		return errors.New("config: geocoder durations and rate must not be negative")
	}

	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(s.Log.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("config: unknown log.format %q", s.Log.Format)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("expected an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// splitList accepts both YAML lists and a comma separated environment value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
