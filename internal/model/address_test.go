package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressCompose(t *testing.T) {
	t.Parallel()

	p := AddressParts{
		Street:       "Av. Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}
	assert.Equal(t, "Av. Paulista, 1000 - Bela Vista - São Paulo/SP", p.Compose())

	p.Complement = "Sala 12"
	assert.Equal(t, "Av. Paulista, 1000 - Sala 12 - Bela Vista - São Paulo/SP", p.Compose())
}

func TestSplitAddress(t *testing.T) {
	t.Parallel()

	p := SplitAddress("Av. Paulista, 1000 - Bela Vista - São Paulo/SP")
	assert.Equal(t, "Av. Paulista", p.Street)
	assert.Equal(t, "1000", p.Number)
	assert.Equal(t, "Bela Vista", p.Neighborhood)
	assert.Equal(t, "São Paulo", p.City)
	assert.Equal(t, "SP", p.State)
}

func TestSplitAddressPartial(t *testing.T) {
	t.Parallel()

	p := SplitAddress("Rua das Flores")
	assert.Equal(t, "Rua das Flores", p.Street)
	assert.Empty(t, p.Number)
	assert.Empty(t, p.City)

	p = SplitAddress("")
	assert.Equal(t, AddressParts{}, p)
}

func TestSplitComposeRoundTrip(t *testing.T) {
	t.Parallel()

	addr := "Rua XV de Novembro, 250 - Centro - Curitiba/PR"
	assert.Equal(t, addr, SplitAddress(addr).Compose())
}
