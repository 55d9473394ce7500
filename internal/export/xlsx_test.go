package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

func TestWriteXLSXRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteXLSX(&buf, []model.Company{
		{Name: "Horizonte Imóveis", Status: model.StatusActive, BrokerCount: 8},
		{Name: "Atlântica Corretora", Status: model.StatusInactive},
	})
	require.NoError(t, err)

	names, err := ReadXLSXNames(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"Horizonte Imóveis", "Atlântica Corretora"}, names)
}

func TestWriteXLSXEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	names, err := ReadXLSXNames(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, names)
}
