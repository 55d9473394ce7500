package export

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// WriteBackup serializes the entire collection as indented JSON. The
// output of WriteBackup is the only format ParseBackup accepts, and a
// write-then-parse round trip reproduces the collection exactly.
func WriteBackup(w io.Writer, companies []model.Company) error {
	if companies == nil {
		companies = []model.Company{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(companies); err != nil {
		return eris.Wrap(err, "export: write backup")
	}
	return nil
}

// ParseBackup validates and decodes a JSON backup. The payload must be
// an array, and every record must carry an id and a name; anything else
// is rejected so a bad file never replaces good data.
func ParseBackup(data []byte) ([]model.Company, error) {
	var companies []model.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, eris.Wrap(err, "export: parse backup")
	}
	for i, c := range companies {
		if c.ID == "" {
			return nil, eris.Errorf("export: parse backup: record %d has no id", i)
		}
		if c.Name == "" {
			return nil, eris.Errorf("export: parse backup: record %d has no name", i)
		}
	}
	if companies == nil {
		companies = []model.Company{}
	}
	return companies, nil
}
