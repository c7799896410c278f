package planilla

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMarginX   = 14.0
	pdfTitleY    = 18.0
	pdfSubtitleY = 26.0
	pdfTableY    = 38.0
	pdfRowHeight = 7.0
)

// column x offsets for Employee, ContractType, WorkedHours,
// TheoreticalHours and Balance
var pdfColumns = []float64{pdfMarginX, 84, 124, 152, 182}

// PDF renders the report on an A4 landscape page. Every fragment is placed
// at absolute coordinates and long tables run past the bottom edge.
func PDF(r Report) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pdfMarginX, pdfTitleY, tr(r.Title))

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.Text(pdfMarginX, pdfSubtitleY, tr(r.Subtitle))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, h := range csvHeader {
		pdf.Text(pdfColumns[i], pdfTableY, h)
	}
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pdfMarginX, pdfTableY+2, 283, pdfTableY+2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	y := pdfTableY + pdfRowHeight
	for _, row := range r.Rows {
		cells := []string{
			tr(row.Name),
			tr(row.ContractType.Label()),
			formatHours(row.WorkedHours),
			formatHours(row.TheoreticalHours),
			formatHours(row.Balance),
		}
		for i, text := range cells {
			pdf.Text(pdfColumns[i], y, text)
		}
		y += pdfRowHeight
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(pdfColumns[0], y+2, "Total")
	pdf.Text(pdfColumns[2], y+2, formatHours(r.Totals.WorkedHours))
	pdf.Text(pdfColumns[3], y+2, formatHours(r.Totals.TheoreticalHours))
	pdf.Text(pdfColumns[4], y+2, formatHours(r.Totals.Balance))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
