// Package report renders stored appliance records into a paginated PDF
// summary document.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"wattcompare-backend/internal/model"
)

// Filename is the attachment name used when the report is downloaded.
const Filename = "WattCompare_Report.pdf"

// A4 layout in points: title near the top, one line per record, break to a
// new page once the cursor runs past the bottom margin.
const (
	titleY      = 42.0
	firstLineY  = 72.0
	lineStep    = 20.0
	bottomLimit = 742.0
)

// Generator renders appliance records into a PDF document.
type Generator struct{}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces the full report as PDF bytes. With zero records the output
// is a valid single-page document containing only the title line.
func (g *Generator) Render(appliances []model.Appliance) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(200, titleY, "WattCompare Report")
	pdf.SetFont("Helvetica", "", 12)

	y := firstLineY
	for _, a := range appliances {
		pdf.Text(50, y, recordLine(a))
		y += lineStep
		if y > bottomLimit {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 12)
			y = titleY
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func recordLine(a model.Appliance) string {
	energy := "n/a"
	if a.EnergyKwh != nil {
		energy = fmt.Sprintf("%.2f", *a.EnergyKwh)
	}
	return fmt.Sprintf("Name: %s | Energy: %s kWh | Price: Rs %.2f | Rate: Rs %.2f/kWh",
		a.Name, energy, a.Price, a.EnergyRate)
}
