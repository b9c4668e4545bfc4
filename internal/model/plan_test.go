package model

import (
	"math"
	"testing"
)

func TestNewPanelNaming(t *testing.T) {
	p := NewPanel(2, FaceFront, "Rock Wool", 500, 400, 50)
	if p.Name != "L2 Front" {
		t.Errorf("expected name 'L2 Front', got %q", p.Name)
	}
	if p.ID == "" {
		t.Error("expected generated ID")
	}
	if p.Area() != 500*400 {
		t.Errorf("expected area %.0f, got %.0f", 500.0*400.0, p.Area())
	}
}

func TestFaceStrings(t *testing.T) {
	if len(Faces) != 6 {
		t.Fatalf("expected 6 faces, got %d", len(Faces))
	}
	seen := map[string]bool{}
	for _, f := range Faces {
		s := f.String()
		if s == "Unknown" {
			t.Errorf("face %d has no name", f)
		}
		if seen[s] {
			t.Errorf("duplicate face name %q", s)
		}
		seen[s] = true
	}
}

func TestCutPlanBinsGrouping(t *testing.T) {
	mk := func(material string, bin int, l, b float64) Placement {
		return Placement{
			Panel:     NewPanel(1, FaceTop, material, l, b, 50),
			Variant:   material + " sheet",
			Bin:       bin,
			Width:     l,
			Height:    b,
			BinWidth:  1000,
			BinHeight: 600,
		}
	}
	plan := CutPlan{Placements: []Placement{
		mk("A", 0, 400, 300),
		mk("A", 0, 200, 100),
		mk("A", 1, 500, 500),
		mk("B", 2, 300, 300),
	}}

	bins := plan.Bins()
	if len(bins) != 3 {
		t.Fatalf("expected 3 bins, got %d", len(bins))
	}
	if len(bins[0].Placements) != 2 {
		t.Errorf("expected 2 placements on first bin, got %d", len(bins[0].Placements))
	}

	wantUsed := 400*300.0 + 200*100.0
	if math.Abs(bins[0].UsedArea()-wantUsed) > 1e-9 {
		t.Errorf("expected used area %.0f, got %.0f", wantUsed, bins[0].UsedArea())
	}
	wantEff := wantUsed / (1000 * 600) * 100
	if math.Abs(bins[0].Efficiency()-wantEff) > 1e-9 {
		t.Errorf("expected efficiency %.2f, got %.2f", wantEff, bins[0].Efficiency())
	}
}

func TestCutPlanTotalEfficiencyEmpty(t *testing.T) {
	var plan CutPlan
	if plan.TotalEfficiency() != 0 {
		t.Error("empty plan should have zero efficiency")
	}
}

func TestAppConfigApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultKerfWidth = 6.5
	cfg.DefaultTolerance = 0.1

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.KerfWidth != 6.5 || s.Tolerance != 0.1 {
		t.Errorf("config defaults not applied: %+v", s)
	}
}
