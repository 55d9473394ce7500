package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sao paulo", Fold("São Paulo"))
	assert.Equal(t, "imobiliaria", Fold("IMOBILIÁRIA"))
	assert.Equal(t, "acores", Fold("Açores"))
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()

	c := model.Company{
		Name:          "Imobiliária São João",
		CNPJ:          "12.345.678/0001-99",
		CRECI:         "54321",
		Status:        model.StatusActive,
		HiringManager: "Equipe Litoral",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter matches", filter: Filter{}, want: true},
		{name: "accent-insensitive name", filter: Filter{Name: "sao joao"}, want: true},
		{name: "name mismatch", filter: Filter{Name: "costa azul"}, want: false},
		{name: "document digits from mask", filter: Filter{Document: "12.345"}, want: true},
		{name: "creci digits", filter: Filter{Document: "54321"}, want: true},
		{name: "document mismatch", filter: Filter{Document: "000000"}, want: false},
		{name: "status match", filter: Filter{Status: model.StatusActive}, want: true},
		{name: "status mismatch", filter: Filter{Status: model.StatusInactive}, want: false},
		{name: "manager match", filter: Filter{HiringManager: "Equipe Litoral"}, want: true},
		{name: "combined", filter: Filter{Name: "joao", Status: model.StatusActive}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filter.Matches(c))
		})
	}
}
