package brdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11999998888", Digits("(11) 99999-8888"))
	assert.Equal(t, "12345678000199", Digits("12.345.678/0001-99"))
	assert.Empty(t, Digits("sem números"))
}

func TestMaskCNPJ(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"12345678000199", "12.345.678/0001-99"},
		{"12.345.678/0001-99", "12.345.678/0001-99"},
		{"123456", "12.345.6"},
		{"12345678000199999", "12.345.678/0001-99"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskCNPJ(tt.in), "input %q", tt.in)
	}
}

func TestMaskCPF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123.456.789-00", MaskCPF("12345678900"))
	assert.Equal(t, "123.456", MaskCPF("123456"))
	assert.Equal(t, "123.456.789-00", MaskCPF("123456789001234"))
}

func TestMaskDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123.456.789-00", MaskDocument("12345678900"))
	assert.Equal(t, "12.345.678/0001-99", MaskDocument("12345678000199"))
}

func TestMaskCEP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01310-100", MaskCEP("01310100"))
	assert.Equal(t, "01310", MaskCEP("01310"))
	assert.Equal(t, "01310-100", MaskCEP("01310-100-99"))
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"11999998888", "(11) 99999-8888"},
		{"1133334444", "(11) 3333-4444"},
		{"11", "(11"},
		{"113333", "(11) 3333"},
		{"119999988889", "(11) 99999-8888"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskPhone(tt.in), "input %q", tt.in)
	}
}
