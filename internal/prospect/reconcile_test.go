package prospect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lead model.ParsedLead
		kind model.SearchKind
		want model.RegistryType
	}{
		{
			name: "registry number wins",
			lead: model.ParsedLead{Name: "Imobiliária Central", RegistryNumber: "12345"},
			kind: model.SearchRegion,
			want: model.RegistryIndividual,
		},
		{
			name: "broker search wins",
			lead: model.ParsedLead{Name: "Maria Santos"},
			kind: model.SearchBroker,
			want: model.RegistryIndividual,
		},
		{
			name: "corretor keyword wins",
			lead: model.ParsedLead{Name: "José Corretor de Imóveis"},
			kind: model.SearchRegion,
			want: model.RegistryIndividual,
		},
		{
			name: "ambiguous defaults to company",
			lead: model.ParsedLead{Name: "Horizonte Imóveis"},
			kind: model.SearchRegion,
			want: model.RegistryCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.lead, tt.kind).RegistryType)
		})
	}
}

func TestReconcileCompanyLead(t *testing.T) {
	t.Parallel()

	site := "horizonte.com"
	draft := Reconcile(model.ParsedLead{
		Name:    "Horizonte Imóveis",
		Address: "Av. Paulista, 1000 - Bela Vista - SP",
		Phone:   "(11) 98888-7777",
		Website: &site,
	}, model.SearchRegion)

	assert.Equal(t, "Horizonte Imóveis", draft.Name)
	assert.Equal(t, "Av. Paulista, 1000 - Bela Vista - SP", draft.Address)
	assert.Equal(t, "(11) 98888-7777", draft.Phone)
	assert.Equal(t, "horizonte.com", draft.Website)
	assert.Equal(t, model.DocTypeCNPJ, draft.DocType)
	assert.Empty(t, draft.CNPJ)
	assert.Equal(t, model.StatusInactive, draft.Status)
	assert.Zero(t, draft.BrokerCount)
	assert.InEpsilon(t, 5.0, draft.CommissionRate, 1e-9)
	assert.Equal(t, HiringManagerAILead, draft.HiringManager)
	require.NotNil(t, draft.ContactHistory)
	assert.Empty(t, draft.ContactHistory)
	require.NotNil(t, draft.Brokers)
	assert.Empty(t, draft.Brokers)
	assert.Empty(t, draft.ID, "identifier is assigned on persist")
}

func TestReconcileIndividualDuplicatesDocument(t *testing.T) {
	t.Parallel()

	draft := Reconcile(model.ParsedLead{
		Name:           "João Silva",
		RegistryNumber: "12345",
	}, model.SearchBroker)

	assert.Equal(t, model.DocTypeCRECI, draft.DocType)
	assert.Equal(t, "12345", draft.CRECI)
	assert.Equal(t, "12345", draft.CNPJ)
}

func TestReconcileIdempotent(t *testing.T) {
	t.Parallel()

	lead := model.ParsedLead{
		Name:           "Maria Santos",
		Address:        "Atendimento Local - Centro - Curitiba/PR",
		Phone:          "(41) 98888-1111",
		RegistryNumber: "54321",
	}
	a := Reconcile(lead, model.SearchBroker)
	b := Reconcile(lead, model.SearchBroker)
	assert.Equal(t, a, b)
}
