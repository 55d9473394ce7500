// Package brasilapi looks up Brazilian company registrations (CNPJ)
// through the public BrasilAPI service.
package brasilapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://brasilapi.com.br/api"

// ErrNotFound is returned when the registry has no record for the
// requested CNPJ. Callers recover from it locally.
var ErrNotFound = eris.New("brasilapi: cnpj not found")

// Client queries the BrasilAPI CNPJ registry.
type Client interface {
	LookupCNPJ(ctx context.Context, cnpj string) (*CNPJRecord, error)
}

// CNPJRecord is the subset of the registry payload the CRM consumes.
type CNPJRecord struct {
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	CEP          string `json:"cep"`
	Logradouro   string `json:"logradouro"`
	Numero       string `json:"numero"`
	Complemento  string `json:"complemento"`
	Bairro       string `json:"bairro"`
	Municipio    string `json:"municipio"`
	UF           string `json:"uf"`
	Email        string `json:"email"`
	DDDTelefone1 string `json:"ddd_telefone_1"`
}

// DisplayName merges trade and legal names the way partner records
// expect: "Fantasia (Razão Social)" when both exist and differ.
func (r CNPJRecord) DisplayName() string {
	if r.NomeFantasia != "" && r.NomeFantasia != r.RazaoSocial {
		return r.NomeFantasia + " (" + r.RazaoSocial + ")"
	}
	return r.RazaoSocial
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

// NewClient creates a BrasilAPI client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(5, 5),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) LookupCNPJ(ctx context.Context, cnpj string) (*CNPJRecord, error) {
	clean := digits(cnpj)
	if len(clean) != 14 {
		return nil, eris.Errorf("brasilapi: cnpj must have 14 digits, got %d", len(clean))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "brasilapi: rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cnpj/v1/"+clean, nil)
	if err != nil {
		return nil, eris.Wrap(err, "brasilapi: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "brasilapi: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "brasilapi: read response")
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		return nil, ErrNotFound
	default:
		return nil, eris.Errorf("brasilapi: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var record CNPJRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, eris.Wrap(err, "brasilapi: unmarshal response")
	}
	return &record, nil
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
