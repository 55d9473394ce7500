package model

import "strings"

// AddressParts is the decomposed form of the single-line address
// stored on a partner record.
type AddressParts struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// Compose joins the parts into the canonical single-line layout:
// "Logradouro, Número - Bairro - Cidade/UF", with an optional
// complement between number and neighborhood.
func (p AddressParts) Compose() string {
	var b strings.Builder
	b.WriteString(p.Street)
	b.WriteString(", ")
	b.WriteString(p.Number)
	if p.Complement != "" {
		b.WriteString(" - ")
		b.WriteString(p.Complement)
	}
	b.WriteString(" - ")
	b.WriteString(p.Neighborhood)
	b.WriteString(" - ")
	b.WriteString(p.City)
	b.WriteString("/")
	b.WriteString(p.State)
	return b.String()
}

// SplitAddress decomposes a canonical single-line address back into
// its parts. Nonconforming input degrades gracefully: missing
// segments come back empty, never an error.
func SplitAddress(address string) AddressParts {
	var p AddressParts
	parts := strings.Split(address, " - ")
	if len(parts) > 0 {
		main := strings.SplitN(parts[0], ", ", 2)
		p.Street = main[0]
		if len(main) > 1 {
			p.Number = main[1]
		}
	}
	if len(parts) > 1 {
		p.Neighborhood = parts[1]
	}
	if len(parts) > 2 {
		cityUF := strings.SplitN(parts[2], "/", 2)
		p.City = cityUF[0]
		if len(cityUF) > 1 {
			p.State = cityUF[1]
		}
	}
	return p
}
