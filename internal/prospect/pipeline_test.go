package prospect

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

type fakeOracle struct {
	result    model.OracleResult
	err       error
	prompt    string
	grounding model.Grounding
	geo       *model.GeoPoint
	calls     int
}

func (f *fakeOracle) GroundedSearch(_ context.Context, prompt string, grounding model.Grounding, geo *model.GeoPoint) (model.OracleResult, error) {
	f.calls++
	f.prompt = prompt
	f.grounding = grounding
	f.geo = geo
	return f.result, f.err
}

func TestSearcherSearch(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{result: model.OracleResult{
		RawText: "Horizonte Imóveis | Av. Paulista, 1000 - Bela Vista - SP | Telefone: (11) 98888-7777\n",
		Citations: []model.Citation{
			{Kind: model.GroundingMaps, Title: "Horizonte Imóveis", URI: "https://maps.example/horizonte"},
		},
	}}
	s := NewSearcher(oracle)

	res, leads, err := s.Search(context.Background(), model.SearchRequest{
		Kind:      model.SearchRegion,
		QueryText: "Bela Vista, São Paulo",
		Geo:       &model.GeoPoint{Lat: -23.56, Lng: -46.65},
	})
	require.NoError(t, err)
	assert.Equal(t, model.GroundingMaps, oracle.grounding)
	require.NotNil(t, oracle.geo)
	assert.Contains(t, oracle.prompt, "Bela Vista, São Paulo")
	require.Len(t, leads, 1)
	assert.Equal(t, "Horizonte Imóveis", leads[0].Name)
	assert.Len(t, res.Citations, 1)
}

func TestSearcherBrokerUsesWebGrounding(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{result: model.OracleResult{
		RawText: "João Silva - CRECI: 12345 - Atua em Curitiba - Telefone: (41) 99999-0000\n",
	}}
	s := NewSearcher(oracle)

	_, leads, err := s.Search(context.Background(), model.SearchRequest{
		Kind:      model.SearchBroker,
		QueryText: "Curitiba",
	})
	require.NoError(t, err)
	assert.Equal(t, model.GroundingWeb, oracle.grounding)
	require.Len(t, leads, 1)
	assert.Equal(t, model.RegistryIndividual, leads[0].RegistryType)
}

// A transport failure must surface as an error, never as an empty
// result that looks like "no leads found".
func TestSearcherOracleFailure(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{err: eris.New("upstream unavailable")}
	s := NewSearcher(oracle)

	_, leads, err := s.Search(context.Background(), model.SearchRequest{
		Kind:      model.SearchCompanyName,
		QueryText: "Horizonte",
	})
	require.Error(t, err)
	assert.Nil(t, leads)
	assert.Equal(t, 1, oracle.calls, "no retry is attempted")
}

func TestSearcherInvalidRequestSkipsOracle(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{}
	s := NewSearcher(oracle)

	_, _, err := s.Search(context.Background(), model.SearchRequest{Kind: model.SearchRegion})
	require.Error(t, err)
	assert.Zero(t, oracle.calls)
}
