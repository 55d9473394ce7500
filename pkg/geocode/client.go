// Package geocode resolves street addresses to coordinates using the
// OpenStreetMap Nominatim service.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "partnerhub-cli/1.0"
)

// Result is one geocoding answer. Matched is false when the service
// found nothing for the address.
type Result struct {
	Latitude  float64
	Longitude float64
	Display   string
	Matched   bool
}

// Client geocodes free-form addresses.
type Client interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithUserAgent sets the User-Agent header. Nominatim's usage policy
// requires an identifying agent.
func WithUserAgent(ua string) Option {
	return func(c *httpClient) {
		c.userAgent = ua
	}
}

// WithRateLimit overrides the default requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a Nominatim client. The default rate limit honors
// the public instance's one-request-per-second policy.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(1, 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (c *httpClient) Geocode(ctx context.Context, address string) (*Result, error) {
	if address == "" {
		return nil, eris.New("geocode: empty address")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: rate limit")
	}

	params := url.Values{
		"q":               {address},
		"format":          {"json"},
		"limit":           {"1"},
		"countrycodes":    {"br"},
		"accept-language": {"pt-BR"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, eris.Wrap(err, "geocode: parse response")
	}
	if len(results) == 0 {
		return &Result{Matched: false}, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: parse latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: parse longitude")
	}

	return &Result{
		Latitude:  lat,
		Longitude: lon,
		Display:   results[0].DisplayName,
		Matched:   true,
	}, nil
}
