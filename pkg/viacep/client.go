// Package viacep resolves Brazilian postal codes (CEP) through the
// public ViaCEP service.
package viacep

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://viacep.com.br/ws"

// ErrNotFound is returned when the service reports an unknown CEP.
var ErrNotFound = eris.New("viacep: cep not found")

// Client resolves postal codes.
type Client interface {
	Lookup(ctx context.Context, cep string) (*Address, error)
}

// Address is the resolved location for a postal code.
type Address struct {
	CEP        string    `json:"cep"`
	Logradouro string    `json:"logradouro"`
	Bairro     string    `json:"bairro"`
	Localidade string    `json:"localidade"`
	UF         string    `json:"uf"`
	Erro       looseBool `json:"erro"`
}

// looseBool accepts both the bare boolean and the quoted string the
// service has returned over time ("erro": true vs "erro": "true").
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", `"true"`:
		*b = true
	case "false", `"false"`, "null":
		*b = false
	default:
		return eris.Errorf("viacep: unexpected erro value %s", string(data))
	}
	return nil
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the default requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a ViaCEP client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(10, 10),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	clean := digits(cep)
	if len(clean) != 8 {
		return nil, eris.Errorf("viacep: cep must have 8 digits, got %d", len(clean))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "viacep: rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+clean+"/json/", nil)
	if err != nil {
		return nil, eris.Wrap(err, "viacep: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "viacep: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "viacep: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("viacep: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var addr Address
	if err := json.Unmarshal(body, &addr); err != nil {
		return nil, eris.Wrap(err, "viacep: unmarshal response")
	}
	if addr.Erro {
		return nil, ErrNotFound
	}
	return &addr, nil
}

func digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
