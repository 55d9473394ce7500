package store

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// foldTransformer strips combining marks so "São" and "Sao" compare
// equal after lowering.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes a string for accent- and case-insensitive matching.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Matches reports whether a partner satisfies the filter. The name
// and document predicates run here rather than in SQL because accent
// folding is not available to either backend.
func (f Filter) Matches(c model.Company) bool {
	if f.Name != "" && !strings.Contains(Fold(c.Name), Fold(f.Name)) {
		return false
	}
	if f.Document != "" {
		want := digits(f.Document)
		if want == "" || !strings.Contains(digits(c.CNPJ)+" "+digits(c.CRECI), want) {
			return false
		}
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.HiringManager != "" && c.HiringManager != f.HiringManager {
		return false
	}
	return true
}

func applyFilter(companies []model.Company, f Filter) []model.Company {
	if f.Name == "" && f.Document == "" && f.Status == "" && f.HiringManager == "" {
		return companies
	}
	out := make([]model.Company, 0, len(companies))
	for _, c := range companies {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
