// Package export writes cutting plans and thermal results to PDF, Excel and
// DXF files, plus QR-coded panel labels for the workshop.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/InsuCut/internal/model"
)

// panelColor represents an RGB color for a placed panel.
type panelColor struct {
	R, G, B int
}

var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF of the cutting plan. Each stock sheet is rendered
// on its own page with a scaled layout diagram, followed by a summary page
// with the purchase cost table. When a conduction result is given, the
// summary page also carries the thermal solution.
func ExportPDF(path string, plan model.CutPlan, conduction *model.ConductionResult) error {
	bins := plan.Bins()
	if len(bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, bin := range bins {
		pdf.AddPage()
		renderBinPage(pdf, bin, i+1, len(bins))
	}

	pdf.AddPage()
	renderSummaryPage(pdf, plan, conduction)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws a single stock sheet on the current PDF page.
func renderBinPage(pdf *fpdf.Fpdf, bin model.BinLayout, num, total int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet %d/%d: %s (%.0f x %.0f mm)", num, total, bin.Variant, bin.Width, bin.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Material: %s | Panels: %d | Used area: %.0f mm² | Efficiency: %.1f%%",
		bin.Material, len(bin.Placements), bin.UsedArea(), bin.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/bin.Width, drawHeight/bin.Height)
	canvasW := bin.Width * scale
	canvasH := bin.Height * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Sheet background
	pdf.SetFillColor(235, 230, 220)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range bin.Placements {
		col := panelColors[i%len(panelColors)]
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale
		pw := p.Width * scale
		ph := p.Height * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Label only if rectangle is large enough
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Panel.Name
			dims := fmt.Sprintf("%.0fx%.0f", p.Panel.Length, p.Panel.Width)
			if p.Rotated {
				dims += " R"
			}

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, bin, offsetX, offsetY, canvasW, canvasH)
	drawPanelLegend(pdf, bin, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the sheet rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, bin model.BinLayout, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", bin.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the sheet, rotated)
	heightLabel := fmt.Sprintf("%.0f mm", bin.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPanelLegend renders a compact legend of placed panels below the sheet.
func drawPanelLegend(pdf *fpdf.Fpdf, bin model.BinLayout, startY float64) {
	if len(bin.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Panels placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range bin.Placements {
		col := panelColors[i%len(panelColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", p.Panel.Name, p.Panel.Length, p.Panel.Width)
		if p.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the purchase summary table and, when available, the
// conduction solution.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.CutPlan, conduction *model.ConductionResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Purchase", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{55, 75, 28, 22, 28, 28}
	headers := []string{"Material", "Stock Variant", "Thickness", "Sheets", "Unit Price", "Subtotal"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, u := range plan.Usage {
		unit := "unknown"
		subtotal := "-"
		if u.UnitPrice != nil {
			unit = fmt.Sprintf("%.2f", *u.UnitPrice)
		}
		if u.Subtotal != nil {
			subtotal = fmt.Sprintf("%.2f", *u.Subtotal)
		}
		row := []string{
			u.Material,
			u.Variant,
			fmt.Sprintf("%.0f mm", u.Thickness),
			fmt.Sprintf("%d", u.Bins),
			unit,
			subtotal,
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	totalLine := fmt.Sprintf("Total: %d sheets, cost %.2f", plan.TotalBins, plan.TotalCost)
	if !plan.PriceComplete {
		totalLine += " (incomplete: some prices unknown)"
	}
	pdf.CellFormat(220, 6, totalLine, "", 0, "L", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(220, 5, fmt.Sprintf("Overall material efficiency: %.1f%%", plan.TotalEfficiency()), "", 0, "L", false, 0, "")
	y += 10

	if conduction != nil {
		renderConductionBlock(pdf, *conduction, y)
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by InsuCut - Insulation Design Calculator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderConductionBlock prints the converged thermal solution.
func renderConductionBlock(pdf *fpdf.Fpdf, res model.ConductionResult, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Thermal Solution", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Heat Flux", fmt.Sprintf("%.2f W/m²", res.HeatFlux)},
		{"Total Resistance", fmt.Sprintf("%.4f m²K/W", res.TotalResistance)},
		{"Iterations", fmt.Sprintf("%d", res.Iterations)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	pdf.SetXY(marginLeft+5, y)
	line := "Interface temperatures:"
	for _, temp := range res.InterfaceTemps {
		line += fmt.Sprintf(" %.1f°C", temp)
	}
	pdf.CellFormat(250, 6, line, "", 0, "L", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
