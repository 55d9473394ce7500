// Package export renders partner collections into the artifact formats
// consumed outside the system: CSV, fixed-width TXT, XLSX, JSON backup,
// and PDF reports.
package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// csvHeader is fixed. Downstream spreadsheets key on these column
// names, so the header is written verbatim rather than generated.
const csvHeader = "Nome da Empresa,CNPJ/CPF,Telefone,Status,Gestor da Parceria,CRECI,UF CRECI,Último Contato,Data Registro,Equipe"

// utf8BOM makes Excel detect the encoding instead of assuming latin-1.
const utf8BOM = "\ufeff"

// WriteCSV renders the collection as UTF-8 CSV with a byte-order mark.
// String fields are always quoted, with internal quotes doubled; the
// broker count is written bare.
func WriteCSV(w io.Writer, companies []model.Company) error {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, c := range companies {
		fields := []string{
			quoteCSV(c.Name),
			quoteCSV(c.CNPJ),
			quoteCSV(c.Phone),
			quoteCSV(string(c.Status)),
			quoteCSV(c.PartnershipManager),
			quoteCSV(c.CRECI),
			quoteCSV(c.CreciUF),
			quoteCSV(c.LastContactDate),
			quoteCSV(c.RegistrationDate),
			strconv.Itoa(c.BrokerCount),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return eris.Wrap(err, "export: write csv")
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
