package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/InsuCut/internal/model"
)

// ExportExcel writes the cutting plan to an .xlsx workbook with a cut list
// sheet, a placement sheet and a purchase summary. When a conduction result
// is given, a thermal sheet is added with the layer-by-layer solution.
func ExportExcel(path string, plan model.CutPlan, conduction *model.ConductionResult) error {
	if len(plan.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	cutList := f.GetSheetName(0)
	if err := f.SetSheetName(cutList, "Cut List"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeCutList(f, "Cut List", plan); err != nil {
		return err
	}

	if _, err := f.NewSheet("Placements"); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writePlacements(f, "Placements", plan); err != nil {
		return err
	}

	if _, err := f.NewSheet("Purchase"); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writePurchase(f, "Purchase", plan); err != nil {
		return err
	}

	if conduction != nil {
		if _, err := f.NewSheet("Thermal"); err != nil {
			return fmt.Errorf("failed to add sheet: %w", err)
		}
		if err := writeThermal(f, "Thermal", *conduction); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeRow sets one spreadsheet row starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell value: %w", err)
		}
	}
	return nil
}

func writeCutList(f *excelize.File, sheet string, plan model.CutPlan) error {
	header := []interface{}{"Panel", "Material", "Layer", "Face", "Length (mm)", "Width (mm)", "Thickness (mm)"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, p := range plan.Placements {
		row := []interface{}{
			p.Panel.Name, p.Panel.Material, p.Panel.Layer, p.Panel.Face.String(),
			p.Panel.Length, p.Panel.Width, p.Panel.Thickness,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePlacements(f *excelize.File, sheet string, plan model.CutPlan) error {
	header := []interface{}{"Sheet", "Variant", "Panel", "X (mm)", "Y (mm)", "Packed W (mm)", "Packed H (mm)", "Rotated"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	row := 2
	for binIdx, bin := range plan.Bins() {
		for _, p := range bin.Placements {
			values := []interface{}{
				binIdx + 1, p.Variant, p.Panel.Name, p.X, p.Y, p.Width, p.Height, p.Rotated,
			}
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writePurchase(f *excelize.File, sheet string, plan model.CutPlan) error {
	header := []interface{}{"Material", "Variant", "Thickness (mm)", "Sheets", "Unit Price", "Subtotal"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, u := range plan.Usage {
		var unit, subtotal interface{} = "unknown", "-"
		if u.UnitPrice != nil {
			unit = *u.UnitPrice
		}
		if u.Subtotal != nil {
			subtotal = *u.Subtotal
		}
		row := []interface{}{u.Material, u.Variant, u.Thickness, u.Bins, unit, subtotal}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	totalRow := len(plan.Usage) + 3
	totalLabel := "Total"
	if !plan.PriceComplete {
		totalLabel = "Total (incomplete: some prices unknown)"
	}
	if err := writeRow(f, sheet, totalRow, []interface{}{totalLabel, "", "", plan.TotalBins, "", plan.TotalCost}); err != nil {
		return err
	}
	return writeRow(f, sheet, totalRow+1, []interface{}{"Efficiency (%)", plan.TotalEfficiency()})
}

func writeThermal(f *excelize.File, sheet string, res model.ConductionResult) error {
	rows := [][]interface{}{
		{"Heat Flux (W/m²)", res.HeatFlux},
		{"Total Resistance (m²K/W)", res.TotalResistance},
		{"Iterations", res.Iterations},
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+1, r); err != nil {
			return err
		}
	}

	if err := writeRow(f, sheet, 5, []interface{}{"Layer", "Avg Temp (°C)", "k (W/mK)", "T hot side (°C)", "T cold side (°C)"}); err != nil {
		return err
	}
	for i := range res.LayerAvgTemps {
		row := []interface{}{
			i + 1, res.LayerAvgTemps[i], res.LayerConductivities[i],
			res.InterfaceTemps[i], res.InterfaceTemps[i+1],
		}
		if err := writeRow(f, sheet, i+6, row); err != nil {
			return err
		}
	}
	return nil
}
