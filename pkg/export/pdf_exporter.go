package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth = 277.0 // A4 landscape minus margins
	pdfLineH     = 5.0
)

// PDFExporter renders datasets into a printable landscape table.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ContentType is the MIME type of the rendered output.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Extension is the file extension of the rendered output.
func (e *PDFExporter) Extension() string { return "pdf" }

// Render creates a PDF with the dataset title and a bordered table. Long
// cells wrap within their column.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if err := data.check(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(data.Title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	colWidth := pdfPageWidth / float64(len(data.Headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(225, 240, 245)
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range data.Rows {
		lines := 1
		for _, cell := range row {
			if n := len(pdf.SplitLines([]byte(tr(cell)), colWidth-2)); n > lines {
				lines = n
			}
		}
		height := float64(lines) * pdfLineH
		if pdf.GetY()+height > 198 {
			pdf.AddPage()
		}
		x, y := pdf.GetXY()
		for i, cell := range row {
			pdf.Rect(x+float64(i)*colWidth, y, colWidth, height, "D")
			pdf.SetXY(x+float64(i)*colWidth, y)
			pdf.MultiCell(colWidth, pdfLineH, tr(cell), "", "L", false)
		}
		pdf.SetXY(x, y+height)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
