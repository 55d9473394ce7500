package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testCompany(name string) model.Company {
	return model.Company{
		Name:           name,
		CNPJ:           "12.345.678/0001-99",
		DocType:        model.DocTypeCNPJ,
		Address:        "Av. Paulista, 1000 - Bela Vista - São Paulo/SP",
		Status:         model.StatusActive,
		HiringManager:  "Equipe Litoral",
		CommissionRate: 5,
		ContactHistory: []model.ContactHistoryEntry{},
		Brokers:        []model.Broker{},
	}
}

func TestSQLiteCompanyCRUD(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateCompany(ctx, testCompany("Horizonte Imóveis"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.RegistrationDate)

	got, err := s.GetCompany(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	created.Notes = "parceria renovada"
	created.Status = model.StatusInactive
	require.NoError(t, s.UpdateCompany(ctx, *created))

	got, err = s.GetCompany(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "parceria renovada", got.Notes)
	assert.Equal(t, model.StatusInactive, got.Status)

	require.NoError(t, s.DeleteCompany(ctx, created.ID))
	_, err = s.GetCompany(ctx, created.ID)
	assert.True(t, eris.Is(err, ErrNotFound))
	assert.True(t, eris.Is(s.DeleteCompany(ctx, created.ID), ErrNotFound))
}

func TestSQLiteListNewestFirst(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCompany(ctx, testCompany("Primeira"))
	require.NoError(t, err)
	_, err = s.CreateCompany(ctx, testCompany("Segunda"))
	require.NoError(t, err)

	companies, err := s.ListCompanies(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Segunda", companies[0].Name)
	assert.Equal(t, "Primeira", companies[1].Name)
}

func TestSQLiteListFilters(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	active := testCompany("Imobiliária São João")
	_, err := s.CreateCompany(ctx, active)
	require.NoError(t, err)

	inactive := testCompany("Costa Azul")
	inactive.Status = model.StatusInactive
	inactive.HiringManager = "Cadastro Público"
	inactive.CNPJ = "98.765.432/0001-11"
	_, err = s.CreateCompany(ctx, inactive)
	require.NoError(t, err)

	// Accent-insensitive name match.
	companies, err := s.ListCompanies(ctx, Filter{Name: "sao joao"})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Imobiliária São João", companies[0].Name)

	companies, err = s.ListCompanies(ctx, Filter{Status: model.StatusInactive})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Costa Azul", companies[0].Name)

	companies, err = s.ListCompanies(ctx, Filter{Document: "98765432"})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Costa Azul", companies[0].Name)

	companies, err = s.ListCompanies(ctx, Filter{HiringManager: "Cadastro Público"})
	require.NoError(t, err)
	require.Len(t, companies, 1)
}

func TestSQLiteReplaceAllPreservesOrder(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCompany(ctx, testCompany("Antiga"))
	require.NoError(t, err)

	restored := []model.Company{testCompany("Nova A"), testCompany("Nova B")}
	restored[0].ID = "id-a"
	restored[1].ID = "id-b"
	require.NoError(t, s.ReplaceAll(ctx, restored))

	companies, err := s.ListCompanies(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Nova A", companies[0].Name)
	assert.Equal(t, "Nova B", companies[1].Name)
}

func TestSQLiteReplaceAllRejectsMissingID(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCompany(ctx, testCompany("Existente"))
	require.NoError(t, err)

	err = s.ReplaceAll(ctx, []model.Company{{Name: "Sem ID"}})
	require.Error(t, err)

	// The existing collection is untouched.
	companies, err := s.ListCompanies(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Existente", companies[0].Name)
}

// Importing the same draft twice creates two independent records.
// Deduplication by name or document is deliberately not performed.
func TestSQLiteImportDoesNotDeduplicate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.CreateCompany(ctx, testCompany("Horizonte Imóveis"))
	require.NoError(t, err)
	b, err := s.CreateCompany(ctx, testCompany("Horizonte Imóveis"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	companies, err := s.ListCompanies(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}

func TestSQLiteRecentSearches(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"Santos", "Curitiba", "Florianópolis", "Niterói", "Recife", "Salvador"} {
		require.NoError(t, s.SaveRecentSearch(ctx, model.RecentSearch{Kind: model.SearchRegion, QueryText: q}))
	}
	// Re-running an old query moves it to the front instead of duplicating.
	require.NoError(t, s.SaveRecentSearch(ctx, model.RecentSearch{Kind: model.SearchRegion, QueryText: "Curitiba"}))

	searches, err := s.ListRecentSearches(ctx)
	require.NoError(t, err)
	require.Len(t, searches, 5)
	assert.Equal(t, "Curitiba", searches[0].QueryText)
	for _, rs := range searches {
		assert.NotEqual(t, "Santos", rs.QueryText, "oldest entry trimmed")
	}
}

func TestSQLiteMapView(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	v, err := s.GetMapView(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)

	want := model.MapView{Center: model.GeoPoint{Lat: -23.5614, Lng: -46.6559}, Zoom: 12}
	require.NoError(t, s.SetMapView(ctx, want))
	require.NoError(t, s.SetMapView(ctx, want)) // upsert

	v, err = s.GetMapView(ctx)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, want, *v)
}
