// Package brdoc formats and normalizes Brazilian identifiers: CNPJ,
// CPF, CEP and phone numbers. Masks are applied progressively, so
// partial input stays readable while it is typed or imported.
package brdoc

import "strings"

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCNPJ formats up to 14 digits as 00.000.000/0000-00.
func MaskCNPJ(s string) string {
	d := Digits(s)
	if len(d) > 14 {
		d = d[:14]
	}
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCPF formats up to 11 digits as 000.000.000-00.
func MaskCPF(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskDocument masks s as CPF when it has at most 11 digits and as
// CNPJ otherwise, mirroring how mixed legacy document fields render.
func MaskDocument(s string) string {
	if len(Digits(s)) <= 11 {
		return MaskCPF(s)
	}
	return MaskCNPJ(s)
}

// MaskCEP formats up to 8 digits as 00000-000.
func MaskCEP(s string) string {
	d := Digits(s)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskPhone formats up to 11 digits as (00) 0000-0000 or, for mobile
// numbers with the extra ninth digit, (00) 00000-0000.
func MaskPhone(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}
