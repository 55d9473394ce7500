package model

// Status represents the operational state of a partner.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// DocType discriminates which identifier a partner record carries.
type DocType string

const (
	DocTypeCNPJ  DocType = "CNPJ"
	DocTypeCPF   DocType = "CPF"
	DocTypeCRECI DocType = "CRECI"
)

// ContactType classifies a contact-history entry.
type ContactType string

const (
	ContactPhone    ContactType = "Telefone"
	ContactWhatsApp ContactType = "WhatsApp"
	ContactEmail    ContactType = "E-mail"
	ContactMeeting  ContactType = "Reunião"
	ContactVideo    ContactType = "Vídeo"
	ContactVisit    ContactType = "Visita"
	ContactEvent    ContactType = "Evento"
	ContactOther    ContactType = "Outros"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ContactHistoryEntry records a single touchpoint with a partner.
// Entries are kept newest-first.
type ContactHistoryEntry struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"` // YYYY-MM-DD
	Type            ContactType `json:"type"`
	Summary         string      `json:"summary"`
	Details         string      `json:"details,omitempty"`
	NextContactDate string      `json:"nextContactDate,omitempty"`
}

// Broker is an individual professional attached to a partner company.
type Broker struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CRECI   string `json:"creci"`
	CreciUF string `json:"creciUF"`
	Email   string `json:"email"`
}

// Company is a partner record. JSON field names follow the backup
// format, so exported collections restore byte-compatible.
type Company struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	RazaoSocial        string                `json:"razaoSocial,omitempty"`
	CNPJ               string                `json:"cnpj"` // legacy document field, holds CNPJ or CPF
	CRECI              string                `json:"creci,omitempty"`
	CreciUF            string                `json:"creciUF,omitempty"`
	DocType            DocType               `json:"docType"`
	CEP                string                `json:"cep"`
	Address            string                `json:"address"`
	Location           GeoPoint              `json:"location"`
	Responsible        string                `json:"responsible"`
	PartnershipManager string                `json:"partnershipManager"`
	HiringManager      string                `json:"hiringManager"`
	Website            string                `json:"website,omitempty"`
	Email              string                `json:"email"`
	Phone              string                `json:"phone"`
	RegistrationDate   string                `json:"registrationDate"` // YYYY-MM-DD
	BrokerCount        int                   `json:"brokerCount"`
	CommissionRate     float64               `json:"commissionRate"`
	Status             Status                `json:"status"`
	LastContactDate    string                `json:"lastContactDate,omitempty"`
	LastContactType    string                `json:"lastContactType,omitempty"`
	ContactSummary     string                `json:"contactSummary,omitempty"`
	NextContactDate    string                `json:"nextContactDate,omitempty"`
	Notes              string                `json:"notes,omitempty"`
	ContactHistory     []ContactHistoryEntry `json:"contactHistory"`
	Brokers            []Broker              `json:"brokers"`
}

// Document is the tagged view of a partner's identifier. Only the
// fields valid for the tag are populated.
type Document struct {
	Type   DocType
	Number string
	UF     string // CRECI only
}

// Document returns the identifier meaningful for the record's docType.
// CRECI-typed records surface the registry number and UF; CNPJ and CPF
// records surface the legacy document field.
func (c Company) Document() Document {
	if c.DocType == DocTypeCRECI {
		return Document{Type: DocTypeCRECI, Number: c.CRECI, UF: c.CreciUF}
	}
	return Document{Type: c.DocType, Number: c.CNPJ}
}

// IsActive reports whether the partner is operationally active.
func (c Company) IsActive() bool {
	return c.Status == StatusActive
}

// SyncLatestContact copies the newest contact-history entry into the
// denormalized last-contact fields. An empty history clears them.
func (c *Company) SyncLatestContact() {
	if len(c.ContactHistory) == 0 {
		c.LastContactDate = ""
		c.LastContactType = ""
		c.ContactSummary = ""
		c.NextContactDate = ""
		return
	}
	latest := c.ContactHistory[0]
	c.LastContactDate = latest.Date
	c.LastContactType = string(latest.Type)
	c.ContactSummary = latest.Summary
	c.NextContactDate = latest.NextContactDate
}

// DashboardStats aggregates network-level indicators.
type DashboardStats struct {
	TotalCompanies   int `json:"totalCompanies"`
	TotalBrokers     int `json:"totalBrokers"`
	AvgBrokers       int `json:"avgBrokers"`
	ActivePercentage int `json:"activePercentage"`
}

// MapView is the persisted map camera position.
type MapView struct {
	Center GeoPoint `json:"center"`
	Zoom   int      `json:"zoom"`
}
