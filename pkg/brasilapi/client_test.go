package brasilapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCNPJ(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cnpj/v1/12345678000199", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"razao_social": "HORIZONTE NEGOCIOS IMOBILIARIOS LTDA",
			"nome_fantasia": "HORIZONTE IMOVEIS",
			"cep": "01310100",
			"logradouro": "AVENIDA PAULISTA",
			"numero": "1000",
			"bairro": "BELA VISTA",
			"municipio": "SAO PAULO",
			"uf": "SP",
			"email": "contato@horizonte.com.br",
			"ddd_telefone_1": "1133334444"
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	record, err := client.LookupCNPJ(context.Background(), "12.345.678/0001-99")
	require.NoError(t, err)
	assert.Equal(t, "HORIZONTE IMOVEIS (HORIZONTE NEGOCIOS IMOBILIARIOS LTDA)", record.DisplayName())
	assert.Equal(t, "01310100", record.CEP)
	assert.Equal(t, "1133334444", record.DDDTelefone1)
}

func TestLookupCNPJNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.LookupCNPJ(context.Background(), "12345678000199")
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestLookupCNPJRejectsShortInput(t *testing.T) {
	t.Parallel()

	client := NewClient()
	_, err := client.LookupCNPJ(context.Background(), "1234")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	r := CNPJRecord{RazaoSocial: "ALFA LTDA", NomeFantasia: "ALFA LTDA"}
	assert.Equal(t, "ALFA LTDA", r.DisplayName())

	r = CNPJRecord{RazaoSocial: "ALFA LTDA"}
	assert.Equal(t, "ALFA LTDA", r.DisplayName())
}
