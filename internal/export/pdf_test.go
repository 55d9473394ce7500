package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

func TestWriteSummaryPDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteSummaryPDF(&buf, []model.Company{
		{Name: "Horizonte Imóveis", Status: model.StatusActive, CommissionRate: 5, BrokerCount: 8},
		{Name: "Atlântica Corretora", Status: model.StatusInactive, CommissionRate: 4.5},
	}, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "output is a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteDossierPDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteDossierPDF(&buf, model.Company{
		Name:             "Horizonte Imóveis",
		Status:           model.StatusActive,
		Responsible:      "Carlos Souza",
		HiringManager:    "Fila de Triagem IA",
		Phone:            "(11) 98888-7777",
		CEP:              "01310-100",
		Address:          "Av. Paulista, 1000 - Bela Vista - São Paulo/SP",
		CommissionRate:   5,
		BrokerCount:      8,
		RegistrationDate: "2026-07-15",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestFormatDateBR(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "15/07/2026", formatDateBR("2026-07-15"))
	assert.Equal(t, "não é data", formatDateBR("não é data"))
	assert.Equal(t, "", formatDateBR(""))
}
