package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// geoBoundsPad widens the partner bounding box so markers never sit on
// its edge, matching the map viewport the report describes.
const geoBoundsPad = 0.2

// PartnerBounds computes the geographic bounding box of all located
// partners. Records at the zero coordinate are treated as ungeocoded
// and skipped. The second return is false when nothing is located.
func PartnerBounds(companies []model.Company) (*geom.Bounds, bool) {
	bounds := geom.NewBounds(geom.XY)
	located := 0
	for _, c := range companies {
		if c.Location.Lat == 0 && c.Location.Lng == 0 {
			continue
		}
		bounds = bounds.Extend(geom.NewPointFlat(geom.XY, []float64{c.Location.Lng, c.Location.Lat}))
		located++
	}
	if located == 0 {
		return nil, false
	}
	return bounds, true
}

// PadBounds grows each side of the box by frac of its span. Degenerate
// spans (a single partner) get a fixed margin so the box stays usable
// as a viewport.
func PadBounds(bounds *geom.Bounds, frac float64) *geom.Bounds {
	spanX := bounds.Max(0) - bounds.Min(0)
	spanY := bounds.Max(1) - bounds.Min(1)
	padX := spanX * frac
	padY := spanY * frac
	if padX == 0 {
		padX = frac
	}
	if padY == 0 {
		padY = frac
	}
	padded := geom.NewBounds(geom.XY)
	return padded.Set(bounds.Min(0)-padX, bounds.Min(1)-padY, bounds.Max(0)+padX, bounds.Max(1)+padY)
}

// WriteGeoPDF renders the geographic presence report: the padded
// coverage box of the located partners, then a per-partner table with
// the city extracted from each address.
func WriteGeoPDF(w io.Writer, companies []model.Company) error {
	pdf, tr := newReport()
	reportHeader(pdf, tr, "Relatório de Presença Geográfica")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	if bounds, ok := PartnerBounds(companies); ok {
		padded := PadBounds(bounds, geoBoundsPad)
		pdf.Text(14, 38, tr(fmt.Sprintf("Área de cobertura: %.4f, %.4f a %.4f, %.4f",
			padded.Min(1), padded.Min(0), padded.Max(1), padded.Max(0))))
	} else {
		pdf.Text(14, 38, tr("Nenhum parceiro geolocalizado."))
	}

	headers := []string{"Imobiliária", "Documento", "Localização", "Status", "Comissão"}
	widths := []float64{50, 40, 46, 22, 24}

	pdf.SetY(45)
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
			c.CNPJ,
			addressLocality(c.Address),
			string(c.Status),
			fmt.Sprintf("%g%%", c.CommissionRate),
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return eris.Wrap(err, "export: write geo pdf")
	}
	return nil
}

// addressLocality takes the last " - " segment of a composed address,
// which holds "Cidade/UF" for records built by the standard composer.
func addressLocality(address string) string {
	parts := strings.Split(address, " - ")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return "N/A"
	}
	return last
}
