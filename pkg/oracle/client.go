// Package oracle wraps the Anthropic API as the grounded text
// generation backend for prospecting searches and insight summaries.
package oracle

import (
	"context"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	defaultModel     = "claude-sonnet-4-5-20250929"
	defaultMaxTokens = 4096
)

// Grounding selects the retrieval surface backing a search.
type Grounding string

const (
	// GroundingMaps asks for place-data retrieval. The backend has a
	// single search tool, so map grounding is expressed as a retrieval
	// instruction plus the geographic bias.
	GroundingMaps Grounding = "maps"
	// GroundingWeb asks for open-web retrieval.
	GroundingWeb Grounding = "web"
)

// LatLng is a geographic bias for a search.
type LatLng struct {
	Lat float64
	Lng float64
}

// SearchRequest is one grounded search call.
type SearchRequest struct {
	Prompt    string
	Grounding Grounding
	Geo       *LatLng
}

// Citation is a grounding source attached to a search answer.
type Citation struct {
	Kind  Grounding
	Title string
	URI   string
}

// SearchResult is the raw text plus its grounding citations.
type SearchResult struct {
	Text      string
	Citations []Citation
}

// Client defines the oracle operations used by the CLI.
type Client interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	Complete(ctx context.Context, prompt string, temperature *float64) (string, error)
}

// Option configures the client.
type Option func(*sdkClient)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *sdkClient) {
		c.model = model
	}
}

// WithMaxTokens overrides the default response token budget.
func WithMaxTokens(n int64) Option {
	return func(c *sdkClient) {
		c.maxTokens = n
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *sdkClient) {
		c.sdkOpts = append(c.sdkOpts, option.WithBaseURL(url))
	}
}

// sdkClient implements Client using the official anthropic-sdk-go.
type sdkClient struct {
	client    sdk.Client
	model     string
	maxTokens int64
	sdkOpts   []option.RequestOption
}

// NewClient creates an oracle client backed by the SDK.
func NewClient(apiKey string, opts ...Option) Client {
	c := &sdkClient{
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
		sdkOpts:   []option.RequestOption{option.WithAPIKey(apiKey)},
	}
	for _, o := range opts {
		o(c)
	}
	c.client = sdk.NewClient(c.sdkOpts...)
	return c
}

func (c *sdkClient) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if req.Prompt == "" {
		return nil, eris.New("oracle: empty prompt")
	}

	prompt := req.Prompt
	if req.Grounding == GroundingMaps {
		prompt += "\n\nPriorize dados de estabelecimentos e fichas de locais (nome, endereço, telefone) ao pesquisar."
	}
	if req.Geo != nil {
		prompt += fmt.Sprintf("\nConsidere como ponto de referência as coordenadas %.6f, %.6f.", req.Geo.Lat, req.Geo.Lng)
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(prompt))},
		Tools: []sdk.ToolUnionParam{{
			OfWebSearchTool20250305: &sdk.WebSearchTool20250305Param{
				MaxUses: sdk.Int(8),
			},
		}},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, eris.Wrap(err, "oracle: search")
	}

	result := &SearchResult{}
	seen := make(map[string]bool)
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		result.Text += block.Text
		for _, cit := range block.Citations {
			if cit.Type != "web_search_result_location" || seen[cit.URL] {
				continue
			}
			seen[cit.URL] = true
			result.Citations = append(result.Citations, Citation{
				Kind:  req.Grounding,
				Title: cit.Title,
				URI:   cit.URL,
			})
		}
	}

	zap.L().Debug("oracle: search done",
		zap.String("model", string(msg.Model)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
		zap.Int("citations", len(result.Citations)))
	return result, nil
}

func (c *sdkClient) Complete(ctx context.Context, prompt string, temperature *float64) (string, error) {
	if prompt == "" {
		return "", eris.New("oracle: empty prompt")
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(prompt))},
	}
	if temperature != nil {
		params.Temperature = sdk.Float(*temperature)
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", eris.Wrap(err, "oracle: complete")
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}
