package prospect

import (
	"context"

	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/pkg/oracle"
)

// OracleClient adapts a pkg/oracle client to the pipeline's Oracle
// interface.
type OracleClient struct {
	client oracle.Client
}

// NewOracleClient wraps an oracle API client for use by the Searcher.
func NewOracleClient(c oracle.Client) *OracleClient {
	return &OracleClient{client: c}
}

func (o *OracleClient) GroundedSearch(ctx context.Context, prompt string, grounding model.Grounding, geo *model.GeoPoint) (model.OracleResult, error) {
	req := oracle.SearchRequest{
		Prompt:    prompt,
		Grounding: oracle.Grounding(grounding),
	}
	if geo != nil {
		req.Geo = &oracle.LatLng{Lat: geo.Lat, Lng: geo.Lng}
	}

	res, err := o.client.Search(ctx, req)
	if err != nil {
		return model.OracleResult{}, err
	}

	out := model.OracleResult{RawText: res.Text}
	for _, c := range res.Citations {
		out.Citations = append(out.Citations, model.Citation{
			Kind:  model.Grounding(c.Kind),
			Title: c.Title,
			URI:   c.URI,
		})
	}
	return out, nil
}
