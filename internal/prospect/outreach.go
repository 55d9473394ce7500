package prospect

import (
	"net/url"
	"os"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/partnerhub/partnerhub-cli/internal/brdoc"
	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// OutreachTemplates holds the WhatsApp first-contact messages. Each
// entry is a text/template body receiving the lead as dot.
type OutreachTemplates struct {
	Broker  string `yaml:"broker"`
	Company string `yaml:"company"`
	Generic string `yaml:"generic"`
}

// DefaultOutreachTemplates returns the stock messages.
func DefaultOutreachTemplates() OutreachTemplates {
	return OutreachTemplates{
		Broker:  "Olá {{.Name}}, vi seu perfil profissional e gostaria de entender melhor sobre parcerias.",
		Company: "Olá {{.Name}}, vi sua atuação em {{.Address}} e gostaria de conversar sobre uma possível parceria estratégica com o PartnerHub.",
		Generic: "Olá, gostaria de informações sobre parcerias.",
	}
}

// LoadOutreachTemplates reads templates from a YAML file. Missing
// entries fall back to the defaults.
func LoadOutreachTemplates(path string) (OutreachTemplates, error) {
	t := DefaultOutreachTemplates()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, eris.Wrapf(err, "prospect: read outreach templates %s", path)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, eris.Wrapf(err, "prospect: parse outreach templates %s", path)
	}
	if t.Broker == "" || t.Company == "" || t.Generic == "" {
		defaults := DefaultOutreachTemplates()
		if t.Broker == "" {
			t.Broker = defaults.Broker
		}
		if t.Company == "" {
			t.Company = defaults.Company
		}
		if t.Generic == "" {
			t.Generic = defaults.Generic
		}
	}
	return t, nil
}

// Message picks and renders the first-contact text for a lead.
// Brokers get the profile approach, companies with a usable address
// get the location approach, everything else the generic one.
func (t OutreachTemplates) Message(lead model.ParsedLead, kind model.SearchKind) (string, error) {
	lead = Classify(lead, kind)

	body := t.Generic
	switch {
	case lead.RegistryType == model.RegistryIndividual:
		body = t.Broker
	case lead.Address != "" && lead.Address != model.UnknownAddress:
		body = t.Company
	}

	tmpl, err := template.New("outreach").Parse(body)
	if err != nil {
		return "", eris.Wrap(err, "prospect: parse outreach message")
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, lead); err != nil {
		return "", eris.Wrap(err, "prospect: render outreach message")
	}
	return b.String(), nil
}

// WhatsAppURL builds a wa.me deeplink for a Brazilian phone number,
// prefixing the 55 country code when absent.
func WhatsAppURL(phone, message string) (string, error) {
	digits := brdoc.Digits(phone)
	if digits == "" {
		return "", eris.New("prospect: no phone number for outreach")
	}
	if len(digits) <= 11 {
		digits = "55" + digits
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message), nil
}
