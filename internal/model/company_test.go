package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		company Company
		want    Document
	}{
		{
			name:    "cnpj record",
			company: Company{CNPJ: "12.345.678/0001-99", DocType: DocTypeCNPJ},
			want:    Document{Type: DocTypeCNPJ, Number: "12.345.678/0001-99"},
		},
		{
			name:    "cpf record uses legacy field",
			company: Company{CNPJ: "123.456.789-00", DocType: DocTypeCPF},
			want:    Document{Type: DocTypeCPF, Number: "123.456.789-00"},
		},
		{
			name:    "creci record surfaces number and uf",
			company: Company{CNPJ: "12345", CRECI: "12345", CreciUF: "SP", DocType: DocTypeCRECI},
			want:    Document{Type: DocTypeCRECI, Number: "12345", UF: "SP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.company.Document())
		})
	}
}

func TestSyncLatestContact(t *testing.T) {
	t.Parallel()

	c := Company{
		ContactHistory: []ContactHistoryEntry{
			{ID: "2", Date: "2026-03-10", Type: ContactWhatsApp, Summary: "follow up", NextContactDate: "2026-03-20"},
			{ID: "1", Date: "2026-01-05", Type: ContactPhone, Summary: "first call"},
		},
	}
	c.SyncLatestContact()
	assert.Equal(t, "2026-03-10", c.LastContactDate)
	assert.Equal(t, string(ContactWhatsApp), c.LastContactType)
	assert.Equal(t, "follow up", c.ContactSummary)
	assert.Equal(t, "2026-03-20", c.NextContactDate)

	c.ContactHistory = nil
	c.SyncLatestContact()
	assert.Empty(t, c.LastContactDate)
	assert.Empty(t, c.LastContactType)
	assert.Empty(t, c.ContactSummary)
	assert.Empty(t, c.NextContactDate)
}

func TestCompanyJSONRoundTrip(t *testing.T) {
	t.Parallel()

	orig := Company{
		ID:                 "c-1",
		Name:               "Imobiliária Horizonte",
		RazaoSocial:        "Horizonte Negócios Imobiliários LTDA",
		CNPJ:               "12.345.678/0001-99",
		DocType:            DocTypeCNPJ,
		CEP:                "01310-100",
		Address:            "Av. Paulista, 1000 - Bela Vista - São Paulo/SP",
		Location:           GeoPoint{Lat: -23.5614, Lng: -46.6559},
		Responsible:        "Maria Souza",
		PartnershipManager: "Carlos Lima",
		HiringManager:      "Equipe Litoral",
		Email:              "contato@horizonte.com.br",
		Phone:              "(11) 99999-8888",
		RegistrationDate:   "2025-11-02",
		BrokerCount:        12,
		CommissionRate:     5,
		Status:             StatusActive,
		ContactHistory: []ContactHistoryEntry{
			{ID: "h-1", Date: "2026-02-01", Type: ContactMeeting, Summary: "renewal meeting"},
		},
		Brokers: []Broker{
			{ID: "b-1", Name: "João Pereira", CRECI: "98765", CreciUF: "SP", Email: "joao@horizonte.com.br"},
		},
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Company
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)

	// Backup consumers rely on these exact key names.
	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	for _, k := range []string{"id", "name", "razaoSocial", "cnpj", "docType", "cep", "address", "location", "registrationDate", "brokerCount", "commissionRate", "contactHistory", "brokers"} {
		assert.Contains(t, keys, k)
	}
}

func TestSearchRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     SearchRequest
		wantErr bool
	}{
		{name: "text present", req: SearchRequest{Kind: SearchCompanyName, QueryText: "Horizonte"}},
		{name: "region with geo bias only", req: SearchRequest{Kind: SearchRegion, Geo: &GeoPoint{Lat: -23.5, Lng: -46.6}}},
		{name: "region without text or geo", req: SearchRequest{Kind: SearchRegion}, wantErr: true},
		{name: "phone without text", req: SearchRequest{Kind: SearchPhone}, wantErr: true},
		{name: "broker with geo but no text", req: SearchRequest{Kind: SearchBroker, Geo: &GeoPoint{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchKindGrounding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GroundingMaps, SearchRegion.Grounding())
	assert.Equal(t, GroundingMaps, SearchCompanyName.Grounding())
	for _, k := range []SearchKind{SearchBroker, SearchPhone, SearchEmail, SearchWebsite} {
		assert.Equal(t, GroundingWeb, k.Grounding())
	}
}
