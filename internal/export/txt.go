package export

import (
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

const txtSeparatorWidth = 100

// Column widths for the fixed-width ledger. The manager column is last
// and unpadded.
const (
	txtNameWidth   = 30
	txtDocWidth    = 20
	txtPhoneWidth  = 16 // "(00) 00000-0000" plus a separator space
	txtStatusWidth = 10
)

// WriteTXT renders the collection as a human-readable fixed-width
// ledger. Columns are space-padded; no delimiter characters are used,
// so the file prints cleanly on any terminal.
func WriteTXT(w io.Writer, companies []model.Company, now time.Time) error {
	var b strings.Builder

	sep := strings.Repeat("-", txtSeparatorWidth)
	b.WriteString("LISTA DE PARCEIROS - PORTAL PARTNERHUB\n")
	b.WriteString("Exportado em: " + now.Format("02/01/2006 15:04:05") + "\n")
	b.WriteString(sep + "\n")
	b.WriteString(padRight("NOME", txtNameWidth) + padRight("DOCUMENTO", txtDocWidth) +
		padRight("TELEFONE", txtPhoneWidth) + padRight("STATUS", txtStatusWidth) + "GESTOR DA PARCERIA\n")
	b.WriteString(sep + "\n")

	for _, c := range companies {
		manager := c.PartnershipManager
		if manager == "" {
			manager = "N/A"
		}
		b.WriteString(padRight(c.Name, txtNameWidth) + padRight(c.CNPJ, txtDocWidth) +
			padRight(c.Phone, txtPhoneWidth) + padRight(string(c.Status), txtStatusWidth) + manager + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return eris.Wrap(err, "export: write txt")
	}
	return nil
}

// padRight pads to width in runes, always leaving at least one space
// after values that overflow their column.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}
