package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

var xlsxColumns = []string{
	"Nome da Empresa", "CNPJ/CPF", "Telefone", "Status", "Gestor da Parceria",
	"CRECI", "UF CRECI", "Último Contato", "Data Registro", "Equipe",
}

// WriteXLSX renders the collection as a single-sheet workbook with the
// same columns as the CSV export.
func WriteXLSX(w io.Writer, companies []model.Company) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Parceiros")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range xlsxColumns {
		header.AddCell().SetString(col)
	}

	for _, c := range companies {
		row := sheet.AddRow()
		for _, v := range []string{
			c.Name, c.CNPJ, c.Phone, string(c.Status), c.PartnershipManager,
			c.CRECI, c.CreciUF, c.LastContactDate, c.RegistrationDate,
		} {
			row.AddCell().SetString(v)
		}
		row.AddCell().SetInt(c.BrokerCount)
	}

	if err := file.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}

// ReadXLSXNames returns the partner names found in a workbook written
// by WriteXLSX. Used to sanity-check an exported file without opening
// a spreadsheet application.
func ReadXLSXNames(data []byte) ([]string, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "export: open xlsx")
	}
	if len(file.Sheets) == 0 {
		return nil, eris.New("export: xlsx has no sheets")
	}

	var names []string
	for i, row := range file.Sheets[0].Rows {
		if i == 0 || len(row.Cells) == 0 {
			continue
		}
		names = append(names, row.Cells[0].String())
	}
	return names, nil
}
