package config

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/goliatone/go-gmapi/components/media"
	"github.com/goliatone/go-gmapi/pkg/cache"
	"github.com/goliatone/go-gmapi/pkg/geocoder"
	"github.com/goliatone/go-gmapi/pkg/scripts"
	"github.com/goliatone/go-gmapi/pkg/widget"
)

// WidgetOptions configures a widget.GoogleMap from the settings.
func (s Settings) WidgetOptions() []widget.OptionFn {
	return []widget.OptionFn{
		widget.WithMapsURL(s.MapsURL),
		widget.WithStaticURL(s.StaticURL),
		widget.WithMedia(s.MediaURL, s.MediaPrefix),
		widget.WithDebug(s.Debug),
	}
}

// ScriptOptions configures a scripts.Helper. The default plugin is derived
// from the media settings unless jquery_plugins lists others.
func (s Settings) ScriptOptions() []scripts.OptionFn {
	fns := []scripts.OptionFn{
		scripts.WithJSAPIURL(s.JSAPIURL),
		scripts.WithKey(s.JSAPIKey),
		scripts.WithAutoload(s.JSAPIAutoload),
		scripts.WithJQueryVersion(s.JQueryVersion),
		scripts.WithMediaURL(s.MediaURL),
		scripts.WithDebug(s.Debug),
	}
	if len(s.JQueryPlugins) > 0 {
		fns = append(fns, scripts.WithPlugins(s.JQueryPlugins))
	} else {
		fns = append(fns, scripts.WithPlugins([]string{s.pluginPath()}))
	}
	return fns
}

func (s Settings) pluginPath() string {
	name := "js/jquery.gmapi.min.js"
	if s.Debug {
		name = "js/jquery.gmapi.js"
	}
	return widget.MediaPath(s.MediaURL, s.MediaPrefix+name)
}

// GeocoderOptions configures a geocoder.Client around store and logger.
func (s Settings) GeocoderOptions(store cache.Store, logger zerolog.Logger) []geocoder.OptionFn {
	fns := []geocoder.OptionFn{
		geocoder.WithBaseURL(s.GeocodeURL),
		geocoder.WithHTTPClient(&http.Client{Timeout: s.Geocoder.Timeout}),
		geocoder.WithUserAgent(s.Geocoder.UserAgent),
		geocoder.WithCache(store),
		geocoder.WithMaxAttempts(s.Geocoder.MaxAttempts),
		geocoder.WithDelayStep(s.Geocoder.DelayStep),
		geocoder.WithLogger(logger),
	}
	if s.Geocoder.Rate > 0 {
		burst := s.Geocoder.Burst
		if burst <= 0 {
			burst = 1
		}
		fns = append(fns, geocoder.WithLimiter(rate.NewLimiter(rate.Limit(s.Geocoder.Rate), burst)))
	}
	return fns
}

// MediaOptions configures the development media component.
func (s Settings) MediaOptions() []media.OptionFn {
	return []media.OptionFn{
		media.WithMediaURL(s.MediaURL),
		media.WithPrefix(s.MediaPrefix),
		media.WithDir(s.MediaRoot),
	}
}
