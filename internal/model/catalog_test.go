package model

import (
	"errors"
	"testing"
)

func testCatalog() Catalog {
	p := 10.0
	return Catalog{Materials: []Material{
		{
			Name: "Rock Wool",
			Samples: []MaterialSample{
				{Temperature: 50, Conductivity: 0.040},
				{Temperature: 100, Conductivity: 0.047},
			},
			Variants: []StockVariant{
				{Name: "Slab 50", Thickness: 50, Length: 1000, Width: 600, Price: &p},
				{Name: "Slab 80", Thickness: 80, Length: 1000, Width: 600},
				{Name: "Slab 100", Thickness: 100, Length: 1000, Width: 600},
			},
		},
		{
			Name: "Broken",
			Variants: []StockVariant{
				{Name: "NoThickness", Thickness: 0, Length: 1000, Width: 600},
			},
		},
		{
			Name: "NoSize",
			Variants: []StockVariant{
				{Name: "Sized 0x0", Thickness: 25, Length: 0, Width: 0},
			},
		},
	}}
}

func TestResolveVariantNearestThickness(t *testing.T) {
	c := testCatalog()
	v, err := c.ResolveVariant("Rock Wool", 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != "Slab 80" {
		t.Errorf("expected Slab 80 for 70mm, got %s", v.Name)
	}
}

func TestResolveVariantTieBreakKeepsFirst(t *testing.T) {
	c := testCatalog()
	// 65mm is equidistant between 50 and 80; the first encountered wins.
	v, err := c.ResolveVariant("Rock Wool", 65)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != "Slab 50" {
		t.Errorf("expected first variant on tie, got %s", v.Name)
	}
}

func TestResolveVariantUnknownMaterial(t *testing.T) {
	c := testCatalog()
	_, err := c.ResolveVariant("Unobtainium", 50)
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if le.Material != "Unobtainium" {
		t.Errorf("error should name the material, got %q", le.Material)
	}
}

func TestResolveVariantNoUsableThickness(t *testing.T) {
	c := testCatalog()
	_, err := c.ResolveVariant("Broken", 50)
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected LookupError, got %v", err)
	}
}

func TestResolveVariantNoUsableSize(t *testing.T) {
	c := testCatalog()
	_, err := c.ResolveVariant("NoSize", 25)
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected LookupError, got %v", err)
	}
}

func TestResolveVariantUnknownPrice(t *testing.T) {
	c := testCatalog()
	v, err := c.ResolveVariant("Rock Wool", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Price != nil {
		t.Error("expected nil price for variant without pricing")
	}
}

func TestDefaultCatalogResolves(t *testing.T) {
	c := DefaultCatalog()
	for _, name := range c.MaterialNames() {
		if _, err := c.ResolveVariant(name, 50); err != nil {
			t.Errorf("default catalog material %q should resolve: %v", name, err)
		}
	}
}
