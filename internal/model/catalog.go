package model

import (
	"fmt"
	"math"
)

// LookupError reports a material or stock variant that could not be resolved
// from the catalog, or whose registered data is unusable.
type LookupError struct {
	Material string
	Reason   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("material %q: %s", e.Material, e.Reason)
}

// Catalog is a read-only snapshot of the material database, passed explicitly
// into every core call. Callers must not mutate it while a call is in flight.
type Catalog struct {
	Materials []Material `json:"materials"`
}

// FindMaterial returns a pointer to the material with the given name, or nil.
func (c *Catalog) FindMaterial(name string) *Material {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// MaterialNames returns the catalog material names in catalog order.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		names[i] = m.Name
	}
	return names
}

// ResolveVariant picks the purchasable stock variant of the given material
// whose thickness is closest to the required panel thickness. Ties keep the
// variant encountered first in catalog order. It returns a LookupError when
// the material is unknown, has no variants with a usable thickness, or the
// chosen variant lacks usable sheet dimensions.
func (c *Catalog) ResolveVariant(material string, thickness float64) (StockVariant, error) {
	mat := c.FindMaterial(material)
	if mat == nil {
		return StockVariant{}, &LookupError{Material: material, Reason: "not found in catalog"}
	}
	if len(mat.Variants) == 0 {
		return StockVariant{}, &LookupError{Material: material, Reason: "no stock variants registered"}
	}

	best := -1
	bestDiff := math.Inf(1)
	for i, v := range mat.Variants {
		if v.Thickness <= 0 {
			continue
		}
		diff := math.Abs(v.Thickness - thickness)
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	if best < 0 {
		return StockVariant{}, &LookupError{Material: material, Reason: "no variant with a usable thickness"}
	}

	chosen := mat.Variants[best]
	if chosen.Length <= 0 || chosen.Width <= 0 {
		return StockVariant{}, &LookupError{
			Material: material,
			Reason:   fmt.Sprintf("variant %q has no usable sheet size", chosen.Name),
		}
	}
	return chosen, nil
}

func price(v float64) *float64 { return &v }

// DefaultCatalog returns a catalog populated with common industrial
// insulation materials and their purchasable sheet sizes.
func DefaultCatalog() Catalog {
	return Catalog{
		Materials: []Material{
			NewMaterial("Rock Wool",
				[]MaterialSample{
					{Temperature: 50, Conductivity: 0.040},
					{Temperature: 100, Conductivity: 0.047},
					{Temperature: 200, Conductivity: 0.065},
					{Temperature: 300, Conductivity: 0.088},
				},
				[]StockVariant{
					NewStockVariant("Rock Wool Slab 1000x600x50", 50, 1000, 600, price(12.50)),
					NewStockVariant("Rock Wool Slab 1000x600x80", 80, 1000, 600, price(19.20)),
					NewStockVariant("Rock Wool Slab 1000x600x100", 100, 1000, 600, price(23.90)),
				}),
			NewMaterial("Calcium Silicate",
				[]MaterialSample{
					{Temperature: 100, Conductivity: 0.065},
					{Temperature: 200, Conductivity: 0.072},
					{Temperature: 300, Conductivity: 0.082},
					{Temperature: 400, Conductivity: 0.095},
				},
				[]StockVariant{
					NewStockVariant("CalSil Board 1000x500x25", 25, 1000, 500, price(21.00)),
					NewStockVariant("CalSil Board 1000x500x50", 50, 1000, 500, price(36.50)),
				}),
			NewMaterial("Ceramic Fiber",
				[]MaterialSample{
					{Temperature: 200, Conductivity: 0.060},
					{Temperature: 400, Conductivity: 0.110},
					{Temperature: 600, Conductivity: 0.190},
				},
				[]StockVariant{
					NewStockVariant("Ceramic Blanket 3660x610x13", 13, 3660, 610, price(48.00)),
					NewStockVariant("Ceramic Blanket 3660x610x25", 25, 3660, 610, price(74.00)),
				}),
			NewMaterial("PIR Foam",
				[]MaterialSample{
					{Temperature: 10, Conductivity: 0.022},
					{Temperature: 25, Conductivity: 0.024},
					{Temperature: 50, Conductivity: 0.027},
				},
				[]StockVariant{
					NewStockVariant("PIR Board 2400x1200x50", 50, 2400, 1200, price(38.00)),
					NewStockVariant("PIR Board 2400x1200x100", 100, 2400, 1200, nil),
				}),
		},
	}
}
