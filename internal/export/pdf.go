package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// Brand palette carried across every report.
var (
	colorBrand  = [3]int{37, 99, 235}
	colorInk    = [3]int{30, 41, 59}
	colorMuted  = [3]int{148, 163, 184}
	colorActive = [3]int{22, 163, 74}
	colorIdle   = [3]int{100, 116, 139}
)

func newReport() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	return pdf, tr
}

func reportHeader(pdf *gofpdf.Fpdf, tr func(string) string, subtitle string) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.Text(14, 20, "PartnerHub")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	pdf.Text(14, 30, tr(subtitle))
}

// WriteSummaryPDF renders the consolidated partner report: a header
// with network totals, then one table row per partner.
func WriteSummaryPDF(w io.Writer, companies []model.Company, now time.Time) error {
	pdf, tr := newReport()
	reportHeader(pdf, tr, "Relatório Consolidado de Parceiros")

	active := 0
	for _, c := range companies {
		if c.IsActive() {
			active++
		}
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.Text(14, 37, tr("Emitido em: "+now.Format("02/01/2006 15:04:05")))
	pdf.Text(14, 42, tr(fmt.Sprintf("Total de Parceiros: %d (%d Ativos)", len(companies), active)))

	headers := []string{"Imobiliária", "Resp. Interno", "Gestor da Parceria", "Telefone", "Status", "Comissão", "Equipe"}
	widths := []float64{38, 28, 30, 28, 18, 20, 20}

	pdf.SetY(48)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	for _, c := range companies {
		cells := []string{
			c.Name,
			c.Responsible,
			orNA(c.PartnershipManager),
			c.Phone,
			string(c.Status),
			fmt.Sprintf("%g%%", c.CommissionRate),
			fmt.Sprintf("%d corretores", c.BrokerCount),
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return eris.Wrap(err, "export: write summary pdf")
	}
	return nil
}

// WriteDossierPDF renders the individual partner dossier: identity
// banner, then management and agreement sections as labeled pairs.
func WriteDossierPDF(w io.Writer, c model.Company) error {
	pdf, tr := newReport()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.Text(14, 20, "PartnerHub")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.Text(14, 28, tr("PRONTUÁRIO TÉCNICO E COMERCIAL INDIVIDUAL"))

	pdf.SetFillColor(248, 250, 252)
	pdf.SetDrawColor(226, 232, 240)
	pdf.Rect(14, 35, 182, 25, "FD")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	pdf.Text(20, 48, tr(strings.ToUpper(c.Name)))
	pdf.SetFont("Helvetica", "", 10)
	if c.IsActive() {
		pdf.SetTextColor(colorActive[0], colorActive[1], colorActive[2])
	} else {
		pdf.SetTextColor(colorIdle[0], colorIdle[1], colorIdle[2])
	}
	pdf.Text(20, 54, tr("STATUS ATUAL: "+strings.ToUpper(string(c.Status))))

	y := sectionTitle(pdf, tr, 75, "01. GESTÃO E RESPONSÁVEIS")
	y = labeledPairs(pdf, tr, y, [][4]string{
		{"Resp. Operacional:", c.Responsible, "Gestor da Parceria:", orNotInformed(c.PartnershipManager)},
		{"Gestor Hub:", c.HiringManager, "Email:", c.Email},
		{"Telefone:", c.Phone, "Início Parceria:", formatDateBR(c.RegistrationDate)},
	})

	y = sectionTitle(pdf, tr, y+10, "02. ACORDO E LOCALIZAÇÃO")
	labeledPairs(pdf, tr, y, [][4]string{
		{"Taxa Comissão:", fmt.Sprintf("%g%%", c.CommissionRate), "Equipe:", fmt.Sprintf("%d corretores", c.BrokerCount)},
		{"CEP:", c.CEP, "Endereço:", c.Address},
	})

	if err := pdf.Output(w); err != nil {
		return eris.Wrap(err, "export: write dossier pdf")
	}
	return nil
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, y float64, title string) float64 {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.Text(14, y, tr(title))
	pdf.SetDrawColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.Line(14, y+2, 70, y+2)
	return y + 8
}

func labeledPairs(pdf *gofpdf.Fpdf, tr func(string) string, y float64, rows [][4]string) float64 {
	widths := []float64{40, 50, 40, 50}
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	for _, row := range rows {
		pdf.SetY(y)
		pdf.SetX(14)
		for i, v := range row {
			style := ""
			if i%2 == 0 {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 9)
			pdf.CellFormat(widths[i], 6, tr(v), "", 0, "L", false, 0, "")
		}
		y += 7
	}
	return y
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNotInformed(s string) string {
	if s == "" {
		return "Não informado"
	}
	return s
}

// formatDateBR turns a stored YYYY-MM-DD date into DD/MM/YYYY, passing
// anything unparseable through unchanged.
func formatDateBR(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
