package model

import "github.com/rotisserie/eris"

// SearchKind selects a prospecting strategy. The value doubles as the
// identifier persisted with recent searches.
type SearchKind string

const (
	SearchRegion      SearchKind = "region"
	SearchCompanyName SearchKind = "company_name"
	SearchBroker      SearchKind = "broker"
	SearchPhone       SearchKind = "phone"
	SearchEmail       SearchKind = "email"
	SearchWebsite     SearchKind = "website"
)

// Grounding returns the retrieval source the oracle should use for a
// search kind. Place-oriented searches go through maps data, identity
// searches through the open web.
func (k SearchKind) Grounding() Grounding {
	switch k {
	case SearchRegion, SearchCompanyName:
		return GroundingMaps
	default:
		return GroundingWeb
	}
}

// SearchRequest describes one prospecting query.
type SearchRequest struct {
	Kind      SearchKind
	QueryText string
	Geo       *GeoPoint
}

// Validate reports whether the request can be dispatched. A region
// search may omit the query text when a geographic bias is present;
// every other kind requires text.
func (r SearchRequest) Validate() error {
	if r.QueryText != "" {
		return nil
	}
	if r.Kind == SearchRegion && r.Geo != nil {
		return nil
	}
	return eris.New("model: search request requires query text")
}

// Grounding identifies the retrieval source backing an oracle answer.
type Grounding string

const (
	GroundingMaps Grounding = "maps"
	GroundingWeb  Grounding = "web"
)

// Citation is a grounding reference attached to an oracle result.
type Citation struct {
	Kind  Grounding `json:"kind"`
	Title string    `json:"title"`
	URI   string    `json:"uri"`
}

// OracleResult is the raw answer from one grounded search. Treated as
// immutable once produced.
type OracleResult struct {
	RawText   string     `json:"rawText"`
	Citations []Citation `json:"citations"`
}

// RegistryType distinguishes the two kinds of prospect a raw result
// line can describe.
type RegistryType string

const (
	RegistryCompany    RegistryType = "company"
	RegistryIndividual RegistryType = "individual"
)

// Placeholder values used when extraction cannot identify a field.
const (
	UnknownName    = "Nome não identificado"
	UnknownAddress = "Endereço não identificado"
)

// ParsedLead is one structured prospect extracted from oracle text.
// Website is a pointer so absence survives serialization.
type ParsedLead struct {
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	Phone          string       `json:"phone"`
	RegistryNumber string       `json:"registryNumber"`
	RegistryType   RegistryType `json:"registryType"`
	Website        *string      `json:"website,omitempty"`
}

// RecentSearch is one persisted prospecting query, newest first.
type RecentSearch struct {
	Kind      SearchKind `json:"kind"`
	QueryText string     `json:"queryText"`
}
