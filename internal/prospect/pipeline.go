package prospect

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// Oracle is the grounded text-generation collaborator behind a search.
type Oracle interface {
	GroundedSearch(ctx context.Context, prompt string, grounding model.Grounding, geo *model.GeoPoint) (model.OracleResult, error)
}

// Searcher runs the full prospecting pipeline: prompt construction,
// the oracle call, extraction and classification.
type Searcher struct {
	oracle Oracle
}

// NewSearcher returns a Searcher backed by the given oracle.
func NewSearcher(o Oracle) *Searcher {
	return &Searcher{oracle: o}
}

// Search dispatches one prospecting query and returns the raw oracle
// result alongside the structured leads extracted from it. A transport
// or oracle failure comes back as an error; an empty lead slice with a
// nil error means the search ran and found nothing. No retry is
// attempted.
func (s *Searcher) Search(ctx context.Context, req model.SearchRequest) (model.OracleResult, []model.ParsedLead, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return model.OracleResult{}, nil, err
	}

	res, err := s.oracle.GroundedSearch(ctx, prompt, req.Kind.Grounding(), req.Geo)
	if err != nil {
		return model.OracleResult{}, nil, eris.Wrap(err, "prospect: search failed")
	}

	leads := Extract(res.RawText)
	for i := range leads {
		leads[i] = Classify(leads[i], req.Kind)
	}
	zap.L().Debug("prospect: search complete",
		zap.String("kind", string(req.Kind)),
		zap.Int("leads", len(leads)),
		zap.Int("citations", len(res.Citations)))
	return res, leads, nil
}
