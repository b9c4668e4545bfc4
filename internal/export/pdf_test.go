package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/InsuCut/internal/model"
)

// buildTestPlan creates a realistic two-sheet cut plan for testing.
func buildTestPlan() model.CutPlan {
	price := 32.5
	sub := 32.5
	return model.CutPlan{
		Placements: []model.Placement{
			{
				Panel:   model.Panel{ID: "p1", Name: "L1 Top", Layer: 1, Face: model.FaceTop, Material: "Rock Wool", Length: 1000, Width: 800, Thickness: 50},
				Variant: "Rock Wool 1220x2440x50", Bin: 0,
				X: 0, Y: 0, Width: 1000, Height: 800,
				BinWidth: 1220, BinHeight: 2440,
			},
			{
				Panel:   model.Panel{ID: "p2", Name: "L1 Front", Layer: 1, Face: model.FaceFront, Material: "Rock Wool", Length: 500, Width: 800, Thickness: 50},
				Variant: "Rock Wool 1220x2440x50", Bin: 0,
				X: 0, Y: 800, Width: 500, Height: 800,
				BinWidth: 1220, BinHeight: 2440,
			},
			{
				Panel:   model.Panel{ID: "p3", Name: "L2 Top", Layer: 2, Face: model.FaceTop, Material: "CalSil", Length: 900, Width: 700, Thickness: 25},
				Variant: "CalSil 1000x800x25", Bin: 1,
				X: 0, Y: 0, Width: 700, Height: 900, Rotated: true,
				BinWidth: 1000, BinHeight: 800,
			},
		},
		Usage: []model.MaterialUsage{
			{Material: "CalSil", Variant: "CalSil 1000x800x25", Thickness: 25, Bins: 1},
			{Material: "Rock Wool", Variant: "Rock Wool 1220x2440x50", Thickness: 50, Bins: 1, UnitPrice: &price, Subtotal: &sub},
		},
		TotalBins:     2,
		TotalCost:     32.5,
		PriceComplete: false,
	}
}

func buildTestConduction() *model.ConductionResult {
	return &model.ConductionResult{
		HeatFlux:            80,
		TotalResistance:     2.25,
		Iterations:          1,
		InterfaceTemps:      []float64{200, 100, 60, 28},
		LayerAvgTemps:       []float64{150, 80},
		LayerConductivities: []float64{0.04, 0.05},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.pdf")

	err := ExportPDF(path, buildTestPlan(), buildTestConduction())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages (2 sheets + summary) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.CutPlan{}, nil)
	if err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}

func TestExportPDF_WithoutConduction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_thermal.pdf")

	err := ExportPDF(path, buildTestPlan(), nil)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_ManyPanels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_panels.pdf")

	// Generate more panels than colors to test color cycling
	var plan model.CutPlan
	for i := 0; i < 20; i++ {
		plan.Placements = append(plan.Placements, model.Placement{
			Panel: model.Panel{
				ID:       fmt.Sprintf("p%d", i),
				Name:     fmt.Sprintf("Panel %d", i+1),
				Layer:    1,
				Material: "Rock Wool",
				Length:   100, Width: 80, Thickness: 50,
			},
			Variant: "Rock Wool 1220x2440x50",
			Bin:     0,
			X:       float64((i % 5) * 110),
			Y:       float64((i / 5) * 90),
			Width:   100, Height: 80,
			Rotated:  i%3 == 0,
			BinWidth: 1220, BinHeight: 2440,
		})
	}
	plan.Usage = []model.MaterialUsage{{Material: "Rock Wool", Variant: "Rock Wool 1220x2440x50", Thickness: 50, Bins: 1}}
	plan.TotalBins = 1

	err := ExportPDF(path, plan, nil)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
