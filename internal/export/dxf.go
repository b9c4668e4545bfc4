package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/InsuCut/internal/model"
)

// dxfSheetGap is the horizontal spacing between sheet outlines in mm.
const dxfSheetGap = 200.0

// ExportDXF writes the cutting plan as a single DXF drawing. Sheets are laid
// out side by side along the X axis, each with its outline on the SHEETS
// layer, panel rectangles on PANELS and panel names on LABELS, so the file
// can drive a CNC or be checked in any CAD viewer.
func ExportDXF(path string, plan model.CutPlan) error {
	bins := plan.Bins()
	if len(bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("SHEETS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}
	var offsetX float64
	for _, bin := range bins {
		if err := drawRect(d, offsetX, 0, bin.Width, bin.Height); err != nil {
			return err
		}
		offsetX += bin.Width + dxfSheetGap
	}

	if _, err := d.AddLayer("PANELS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}
	offsetX = 0
	for _, bin := range bins {
		for _, p := range bin.Placements {
			if err := drawRect(d, offsetX+p.X, p.Y, p.Width, p.Height); err != nil {
				return err
			}
		}
		offsetX += bin.Width + dxfSheetGap
	}

	if _, err := d.AddLayer("LABELS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}
	offsetX = 0
	for binIdx, bin := range bins {
		title := fmt.Sprintf("Sheet %d: %s", binIdx+1, bin.Variant)
		if _, err := d.Text(title, offsetX, bin.Height+30, 0, 25); err != nil {
			return fmt.Errorf("failed to add text: %w", err)
		}
		for _, p := range bin.Placements {
			height := textHeight(p.Width, p.Height)
			if height <= 0 {
				continue
			}
			if _, err := d.Text(p.Panel.Name, offsetX+p.X+5, p.Y+p.Height/2, 0, height); err != nil {
				return fmt.Errorf("failed to add text: %w", err)
			}
		}
		offsetX += bin.Width + dxfSheetGap
	}

	return d.SaveAs(path)
}

// drawRect adds the four edges of an axis-aligned rectangle on the current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	edges := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return fmt.Errorf("failed to add line: %w", err)
		}
	}
	return nil
}

// textHeight picks a label height that fits the panel, or 0 for tiny panels.
func textHeight(w, h float64) float64 {
	min := w
	if h < min {
		min = h
	}
	switch {
	case min > 300:
		return 40
	case min > 100:
		return 20
	case min > 40:
		return 10
	default:
		return 0
	}
}
