package prospect

import "github.com/partnerhub/partnerhub-cli/internal/model"

// HiringManagerAILead marks records that entered through an AI
// prospecting import. It is forced on every draft, overriding any
// prior value for the field.
const HiringManagerAILead = "Fila de Triagem IA"

// defaultCommissionRate applies to drafts until the partnership is
// negotiated.
const defaultCommissionRate = 5

// Reconcile maps an accepted lead into a draft partner record ready
// for the completion workflow. The draft carries no identifier or
// registration date; those are assigned on persist. Reconciling the
// same lead twice yields structurally identical drafts.
//
// No deduplication against existing partners happens here: every
// import creates a fresh draft even when a same-named record exists.
func Reconcile(lead model.ParsedLead, kind model.SearchKind) model.Company {
	lead = Classify(lead, kind)

	draft := model.Company{
		Name:           lead.Name,
		Address:        lead.Address,
		Phone:          lead.Phone,
		DocType:        model.DocTypeCNPJ,
		Status:         model.StatusInactive,
		BrokerCount:    0,
		CommissionRate: defaultCommissionRate,
		HiringManager:  HiringManagerAILead,
		ContactHistory: []model.ContactHistoryEntry{},
		Brokers:        []model.Broker{},
	}
	if lead.Website != nil {
		draft.Website = *lead.Website
	}
	if lead.RegistryType == model.RegistryIndividual {
		draft.DocType = model.DocTypeCRECI
		draft.CRECI = lead.RegistryNumber
		// Legacy single-document consumers still read this field.
		draft.CNPJ = lead.RegistryNumber
	}
	return draft
}
