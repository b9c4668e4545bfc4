// Package engine turns a required panel list into a cost-aware cutting plan:
// panels are grouped by material and thickness, matched to a purchasable
// stock variant, and packed onto as many identical sheets as the heuristic
// needs.
package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/InsuCut/internal/model"
)

// PackingError reports a panel list for which no cutting plan can be
// produced.
type PackingError struct {
	Panel  string // offending panel name, empty for list-level failures
	Reason string
}

func (e *PackingError) Error() string {
	if e.Panel == "" {
		return fmt.Sprintf("packing infeasible: %s", e.Reason)
	}
	return fmt.Sprintf("packing infeasible: panel %q %s", e.Panel, e.Reason)
}

// Optimizer runs the 2D packing and cost calculation.
type Optimizer struct {
	Kerf float64 // saw kerf in mm, added on both axes of every packed panel
}

func New(kerf float64) *Optimizer {
	return &Optimizer{Kerf: kerf}
}

// panelGroup holds the panels sharing one (material, thickness) pair.
type panelGroup struct {
	material  string
	thickness float64
	panels    []model.Panel
}

// Pack lays the required panels onto stock sheets resolved from the catalog.
// Sheets of a group are an unbounded supply of the chosen variant's size; the
// realized bin count is whatever the best-short-side-fit heuristic needs.
// Panels may rotate 90°. Materials whose variant has no known price are
// listed in the usage summary but excluded from the numeric total, which is
// then flagged incomplete.
func (o *Optimizer) Pack(catalog *model.Catalog, panels []model.Panel) (model.CutPlan, error) {
	if o.Kerf < 0 {
		return model.CutPlan{}, fmt.Errorf("%w: kerf must be >= 0, got %g", model.ErrInvalidInput, o.Kerf)
	}
	if len(panels) == 0 {
		return model.CutPlan{}, &PackingError{Reason: "no panels to pack"}
	}
	for _, p := range panels {
		if p.Material == "" {
			return model.CutPlan{}, fmt.Errorf("%w: panel %q has no material", model.ErrInvalidInput, p.Name)
		}
		if p.Length <= 0 || p.Width <= 0 {
			return model.CutPlan{}, fmt.Errorf("%w: panel %q has non-positive size %gx%g mm",
				model.ErrInvalidInput, p.Name, p.Length, p.Width)
		}
	}

	groups := groupPanels(panels)

	plan := model.CutPlan{PriceComplete: true}
	for _, g := range groups {
		variant, err := catalog.ResolveVariant(g.material, g.thickness)
		if err != nil {
			return model.CutPlan{}, err
		}
		if variant.Length <= 0 || variant.Width <= 0 {
			return model.CutPlan{}, &PackingError{
				Reason: fmt.Sprintf("variant %q has non-positive sheet size", variant.Name),
			}
		}

		placements, bins, err := o.packGroup(g, variant)
		if err != nil {
			return model.CutPlan{}, err
		}
		// Bin indices are plan-global: packGroup numbers its sheets from 0,
		// so offset by the sheets earlier groups already claimed. Two groups
		// resolving to the same variant must not collide on one bin index.
		for i := range placements {
			placements[i].Bin += plan.TotalBins
		}
		plan.Placements = append(plan.Placements, placements...)
		plan.TotalBins += bins

		usage := model.MaterialUsage{
			Material:  g.material,
			Variant:   variant.Name,
			Thickness: variant.Thickness,
			Bins:      bins,
			UnitPrice: variant.Price,
		}
		if variant.Price != nil {
			subtotal := *variant.Price * float64(bins)
			usage.Subtotal = &subtotal
			plan.TotalCost += subtotal
		} else {
			plan.PriceComplete = false
		}
		plan.Usage = append(plan.Usage, usage)
	}

	if len(plan.Placements) == 0 {
		return model.CutPlan{}, &PackingError{Reason: "no placements produced"}
	}
	return plan, nil
}

// groupPanels splits the panel list by (material, required thickness),
// ordered by material name then thickness for deterministic output.
func groupPanels(panels []model.Panel) []panelGroup {
	type key struct {
		material  string
		thickness float64
	}
	index := make(map[key]int)
	var groups []panelGroup
	for _, p := range panels {
		k := key{p.Material, p.Thickness}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, panelGroup{material: p.Material, thickness: p.Thickness})
		}
		groups[i].panels = append(groups[i].panels, p)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].material != groups[j].material {
			return groups[i].material < groups[j].material
		}
		return groups[i].thickness < groups[j].thickness
	})
	return groups
}

// packGroup packs one material group across an unbounded sequence of sheets
// of the chosen variant's size. Panels are placed largest-area first; each
// panel goes to the open bin and orientation with the best short-side fit,
// and a new bin opens only when no open bin can take it.
func (o *Optimizer) packGroup(g panelGroup, variant model.StockVariant) ([]model.Placement, int, error) {
	binW, binH := variant.Length, variant.Width

	ordered := make([]model.Panel, len(g.panels))
	copy(ordered, g.panels)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area() > ordered[j].Area()
	})

	var bins []*binPacker
	var placements []model.Placement

	for _, panel := range ordered {
		bestBin := -1
		bestRotated := false
		var bestShort, bestLong float64

		for bi, bp := range bins {
			for _, rotated := range []bool{false, true} {
				w, h := panel.Length, panel.Width
				if rotated {
					w, h = h, w
				}
				short, long, ok := bp.score(w, h)
				if !ok {
					continue
				}
				if bestBin < 0 || short < bestShort || (short == bestShort && long < bestLong) {
					bestBin, bestRotated = bi, rotated
					bestShort, bestLong = short, long
				}
			}
		}

		if bestBin < 0 {
			bp := newBinPacker(binW, binH, o.Kerf)
			_, _, okN := bp.score(panel.Length, panel.Width)
			_, _, okR := bp.score(panel.Width, panel.Length)
			if !okN && !okR {
				return nil, 0, &PackingError{
					Panel: panel.Name,
					Reason: fmt.Sprintf("(%gx%g mm) exceeds stock sheet %q (%gx%g mm) in both orientations",
						panel.Length, panel.Width, variant.Name, binW, binH),
				}
			}
			bestBin = len(bins)
			bestRotated = !okN
			bins = append(bins, bp)
		}

		w, h := panel.Length, panel.Width
		if bestRotated {
			w, h = h, w
		}
		ok, x, y := bins[bestBin].insert(w, h)
		if !ok {
			// score said it fits, insert on the same state must succeed
			return nil, 0, &PackingError{Panel: panel.Name, Reason: "lost its reserved space"}
		}

		// Rotation is detected by comparing the packed footprint against the
		// requested size; a square panel never reports rotated.
		rotated := w != panel.Length

		placements = append(placements, model.Placement{
			Panel:     panel,
			Variant:   variant.Name,
			Bin:       bestBin,
			X:         x,
			Y:         y,
			Width:     w + o.Kerf,
			Height:    h + o.Kerf,
			Rotated:   rotated,
			BinWidth:  binW,
			BinHeight: binH,
		})
	}

	return placements, len(bins), nil
}
