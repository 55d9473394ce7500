package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

func TestWriteCSVHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "output should start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\n")
	assert.Equal(t, "Nome da Empresa,CNPJ/CPF,Telefone,Status,Gestor da Parceria,CRECI,UF CRECI,Último Contato,Data Registro,Equipe", lines[0])
	assert.Equal(t, []string{""}, lines[1:], "empty collection should produce only the header")
}

func TestWriteCSVDoublesInternalQuotes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, []model.Company{{
		Name:   `Imóveis "Premium"`,
		Status: model.StatusActive,
	}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"Imóveis ""Premium"""`)
}

func TestWriteCSVRow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, []model.Company{{
		Name:               "Horizonte Imóveis",
		CNPJ:               "12.345.678/0001-90",
		Phone:              "(11) 98888-7777",
		Status:             model.StatusActive,
		PartnershipManager: "Ana Costa",
		CRECI:              "12345",
		CreciUF:            "SP",
		LastContactDate:    "2026-08-01",
		RegistrationDate:   "2026-07-15",
		BrokerCount:        12,
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`"Horizonte Imóveis","12.345.678/0001-90","(11) 98888-7777","Ativo","Ana Costa","12345","SP","2026-08-01","2026-07-15",12`,
		lines[1])
}
