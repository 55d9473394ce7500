package prospect

import (
	"strings"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// Classify finalizes a lead's registry type using the originating
// search kind. A lead is an individual professional if it carries a
// registry number, came from a broker search, or its name mentions
// "corretor". Ambiguous cases stay Company; this is a heuristic, not
// a guarantee.
func Classify(lead model.ParsedLead, kind model.SearchKind) model.ParsedLead {
	if lead.RegistryNumber != "" ||
		kind == model.SearchBroker ||
		strings.Contains(strings.ToLower(lead.Name), "corretor") {
		lead.RegistryType = model.RegistryIndividual
	} else {
		lead.RegistryType = model.RegistryCompany
	}
	return lead
}
