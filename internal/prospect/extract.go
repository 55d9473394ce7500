package prospect

import (
	"regexp"
	"strings"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// candidateMinLen is the minimum length a raw line must have before it
// is considered a record.
const candidateMinLen = 15

var (
	listMarkerRe = regexp.MustCompile(`^(?:\s*(?:\d+\.|\*|-))+\s*`)
	phoneRe      = regexp.MustCompile(`(?i)(?:telefone|contato|fone|whatsapp):?\s*(\(?\d{2}\)?\s?\d{4,5}-?\d{4})`)
	websiteRe    = regexp.MustCompile(`(?i)(?:website|site|url):?\s*((?:https?://)?(?:www\.)?[\w.-]+\.[a-z]{2,}(?:/[\w.-]*)*)`)
	creciRe      = regexp.MustCompile(`(?i)creci(?:\s?pf)?:\s*(\d+)`)
	nameLabelRe  = regexp.MustCompile(`(?i)^(?:nome|razão social|empresa):\s*`)
	addrLabelRe  = regexp.MustCompile(`(?i)^(?:endereço|local|localização|situa-se em):\s*`)
	legacySplit  = regexp.MustCompile(`\s+-\s+|\s{3,}`)
)

// CandidateLines filters rawText down to the lines worth parsing: long
// enough and carrying at least one structural delimiter.
func CandidateLines(rawText string) []string {
	var out []string
	for _, line := range strings.Split(rawText, "\n") {
		if len(line) > candidateMinLen &&
			(strings.Contains(line, "-") || strings.Contains(line, ":") || strings.Contains(line, "|")) {
			out = append(out, line)
		}
	}
	return out
}

// extractOnce returns the first capture of re in s and s with that
// match removed. Each field pattern is consumed at most once so the
// later structural split does not see it again.
func extractOnce(re *regexp.Regexp, s string) (string, string) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", s
	}
	captured := s[loc[2]:loc[3]]
	return captured, s[:loc[0]] + s[loc[1]:]
}

// ParseLine turns one candidate line into a structured lead. It is
// total: any input yields a lead, falling back to the documented
// placeholder strings when nothing can be identified.
func ParseLine(line string) model.ParsedLead {
	clean := strings.TrimSpace(listMarkerRe.ReplaceAllString(line, ""))

	phone, rest := extractOnce(phoneRe, clean)
	website, rest := extractOnce(websiteRe, rest)
	registry, rest := extractOnce(creciRe, rest)
	rest = strings.TrimSpace(rest)

	var websitePtr *string
	switch strings.ToLower(website) {
	case "", "n/a", "n/d":
	default:
		websitePtr = &website
	}

	name := model.UnknownName
	address := model.UnknownAddress

	switch {
	case strings.Contains(rest, "|"):
		parts := splitTrim(rest, func(s string) []string { return strings.Split(s, "|") })
		if len(parts) > 0 {
			name = nameLabelRe.ReplaceAllString(parts[0], "")
			if len(parts) > 1 {
				address = strings.Join(parts[1:], " - ")
			}
		}
	default:
		parts := splitTrim(rest, func(s string) []string { return legacySplit.Split(s, -1) })
		if len(parts) >= 2 {
			name = parts[0]
			address = strings.Join(parts[1:], " - ")
		} else if comma := strings.Index(rest, ","); comma > 8 {
			name = strings.TrimSpace(rest[:comma])
			address = strings.TrimSpace(rest[comma+1:])
		} else if rest != "" {
			name = rest
		}
	}

	address = strings.TrimSpace(addrLabelRe.ReplaceAllString(address, ""))
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.UnknownName
	}
	if address == "" {
		address = model.UnknownAddress
	}

	registryType := model.RegistryCompany
	if registry != "" {
		registryType = model.RegistryIndividual
	}

	return model.ParsedLead{
		Name:           name,
		Address:        address,
		Phone:          phone,
		RegistryNumber: registry,
		RegistryType:   registryType,
		Website:        websitePtr,
	}
}

// Extract parses every candidate line of an oracle answer, in order.
func Extract(rawText string) []model.ParsedLead {
	lines := CandidateLines(rawText)
	leads := make([]model.ParsedLead, 0, len(lines))
	for _, line := range lines {
		leads = append(leads, ParseLine(line))
	}
	return leads
}

func splitTrim(s string, split func(string) []string) []string {
	var out []string
	for _, p := range split(s) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
