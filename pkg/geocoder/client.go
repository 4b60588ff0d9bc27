package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/singleflight"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 4 << 20

// Callback receives the results of a successful lookup.
type Callback func(results []Result, status Status)

type Client struct {
	opts  Options
	group singleflight.Group
}

func New(fns ...OptionFn) *Client {
	return &Client{opts: NewOptions(fns...)}
}

// Backoff returns the rate-limit state used by the client.
func (c *Client) Backoff() *Backoff {
	return c.opts.Backoff
}

// Geocode resolves req. On status OK the results are returned (and passed to
// cb when set). Any other status except OVER_QUERY_LIMIT returns a response
// without results and a nil error. Rate-limited lookups are retried up to
// MaxAttempts times; running out returns an *ExhaustedError.
func (c *Client) Geocode(ctx context.Context, req Request, cb Callback) (Response, error) {
	key := req.Key()
	endpoint := strings.TrimRight(c.opts.BaseURL, "/") + "/json?" + key
	backoff := c.opts.Backoff
	logger := c.opts.Logger.With().Str("key", key).Logger()

	attempts := 0
	for attempts < c.opts.MaxAttempts {
		attempts++

		body, cached, err := c.opts.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn().Err(err).Msg("geocode cache read failed")
			cached = false
		}
		if cached {
			logger.Debug().Msg("geocode cache hit")
		} else {
			body, err = c.fetch(ctx, endpoint)
			if err != nil {
				return Response{}, err
			}
		}

		var wire wireResponse
		if err := json.Unmarshal(body, &wire); err != nil {
			return Response{}, fmt.Errorf("geocoder: decode response: %w", err)
		}

		if wire.Status == StatusOverQueryLimit {
			if backoff.Blocked() {
				logger.Error().Msg("geocode still over query limit while blocked")
				return Response{Status: wire.Status}, &ExhaustedError{Attempts: attempts, Blocked: true}
			}
			delay := backoff.Increase(c.opts.DelayStep)
			logger.Warn().Int("attempt", attempts).Dur("delay", delay).Msg("geocode over query limit")
			continue
		}

		if !cached {
			if err := c.opts.Cache.Set(ctx, key, body); err != nil {
				logger.Warn().Err(err).Msg("geocode cache write failed")
			}
		}

		if wire.Status != StatusOK {
			return Response{Status: wire.Status, ErrorMessage: wire.ErrorMessage}, nil
		}

		if backoff.Blocked() {
			backoff.Reset()
		}
		results := wire.results()
		if cb != nil {
			cb(results, wire.Status)
		}
		return Response{Status: wire.Status, results: results}, nil
	}

	backoff.Block()
	logger.Error().Int("attempts", attempts).Msg("geocode retries exhausted")
	return Response{Status: StatusOverQueryLimit}, &ExhaustedError{Attempts: attempts}
}

// fetch waits out the backoff delay and the optional limiter, then performs
// the request. Identical concurrent fetches share one round trip.
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	if !c.opts.Backoff.Blocked() {
		if err := c.opts.Sleep(ctx, c.opts.Backoff.Delay()); err != nil {
			return nil, fmt.Errorf("geocoder: wait: %w", err)
		}
	}
	if c.opts.Limiter != nil {
		if err := c.opts.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("geocoder: rate limiter: %w", err)
		}
	}

	// The shared round trip outlives any single caller; each caller stops
	// waiting on its own context.
	ch := c.group.DoChan(endpoint, func() (any, error) {
		return c.get(context.WithoutCancel(ctx), endpoint)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("geocoder: request: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Code: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("geocoder: read response: %w", err)
	}
	return body, nil
}
