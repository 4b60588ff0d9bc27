package geocoder

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/goliatone/go-gmapi/pkg/cache"
	"github.com/goliatone/go-gmapi/pkg/cache/memory"
)

const (
	DefaultBaseURL     = "http://maps.google.com/maps/api/geocode"
	DefaultMaxAttempts = 30
	DefaultDelayStep   = 100 * time.Millisecond
	DefaultTimeout     = 10 * time.Second
	DefaultUserAgent   = "go-gmapi"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	UserAgent   string
	Cache       cache.Store
	Backoff     *Backoff
	MaxAttempts int
	DelayStep   time.Duration
	Limiter     *rate.Limiter
	Logger      zerolog.Logger
	Sleep       SleepFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		BaseURL:     DefaultBaseURL,
		UserAgent:   DefaultUserAgent,
		MaxAttempts: DefaultMaxAttempts,
		DelayStep:   DefaultDelayStep,
		Logger:      zerolog.Nop(),
		Sleep:       sleepContext,
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
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Cache == nil {
		opts.Cache = memory.New()
	}
	if opts.Backoff == nil {
		opts.Backoff = NewBackoff()
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.DelayStep <= 0 {
		opts.DelayStep = DefaultDelayStep
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	return opts
}

// WithBaseURL sets the service root; lookups go to <base>/json.
func WithBaseURL(base string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BaseURL = base
	}
}

func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

func WithUserAgent(agent string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.UserAgent = agent
	}
}

// WithCache sets the response cache. Pass cache.Nop{} to disable caching.
func WithCache(store cache.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Cache = store
	}
}

// WithBackoff shares rate-limit state between clients.
func WithBackoff(backoff *Backoff) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Backoff = backoff
	}
}

func WithMaxAttempts(attempts int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxAttempts = attempts
	}
}

// WithDelayStep sets how much the delay grows after each OVER_QUERY_LIMIT.
func WithDelayStep(step time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DelayStep = step
	}
}

// WithLimiter paces uncached requests in addition to the backoff delay.
func WithLimiter(limiter *rate.Limiter) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Limiter = limiter
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithSleeper(sleep SleepFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sleep = sleep
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
