package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Face identifies one of the six sides of the rectangular enclosure.
type Face int

const (
	FaceTop Face = iota
	FaceBottom
	FaceFront
	FaceBack
	FaceRight
	FaceLeft
)

// Faces lists all six faces in build order.
var Faces = []Face{FaceTop, FaceBottom, FaceFront, FaceBack, FaceRight, FaceLeft}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "Top"
	case FaceBottom:
		return "Bottom"
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	case FaceRight:
		return "Right"
	case FaceLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Dimensions is an (L, B, H) box dimension triple in mm.
type Dimensions struct {
	L float64 `json:"l"`
	B float64 `json:"b"`
	H float64 `json:"h"`
}

// BoxMode selects how the input dimension triple of a build is interpreted.
type BoxMode string

const (
	BoxOuter BoxMode = "outer" // given triple is the outer envelope
	BoxInner BoxMode = "inner" // given triple is the inner cavity
)

// Panel is one rectangular face plate of a single insulation layer.
type Panel struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Layer     int     `json:"layer"` // 1-based layer index
	Face      Face    `json:"face"`
	Material  string  `json:"material"`
	Length    float64 `json:"length"`    // mm
	Width     float64 `json:"width"`     // mm
	Thickness float64 `json:"thickness"` // mm, equals the layer thickness
}

// NewPanel creates a Panel with a generated ID and a "L<n> <Face>" name.
func NewPanel(layer int, face Face, material string, length, width, thickness float64) Panel {
	return Panel{
		ID:        uuid.New().String()[:8],
		Name:      fmt.Sprintf("L%d %s", layer, face),
		Layer:     layer,
		Face:      face,
		Material:  material,
		Length:    length,
		Width:     width,
		Thickness: thickness,
	}
}

// Area returns the panel face area in square mm.
func (p Panel) Area() float64 {
	return p.Length * p.Width
}

// BuildResult holds the derived geometry of a layered rectangular enclosure:
// both dimension triples and the six panels of every layer.
type BuildResult struct {
	Outer  Dimensions `json:"outer"`
	Inner  Dimensions `json:"inner"`
	Panels []Panel    `json:"panels"`
}

// ConductionResult holds the converged steady-state solution of the
// multi-layer conduction solver.
type ConductionResult struct {
	HeatFlux            float64   `json:"heat_flux"`        // W/m²
	TotalResistance     float64   `json:"total_resistance"` // m²K/W
	Iterations          int       `json:"iterations"`
	InterfaceTemps      []float64 `json:"interface_temps"`      // n+1 values, °C
	LayerAvgTemps       []float64 `json:"layer_avg_temps"`      // n values, °C
	LayerConductivities []float64 `json:"layer_conductivities"` // n values, W/mK
}

// Placement is one packed panel on one stock-sheet instance.
type Placement struct {
	Panel     Panel   `json:"panel"`
	Variant   string  `json:"variant"` // chosen stock variant name
	Bin       int     `json:"bin"`     // 0-based sheet index, unique across the whole plan
	X         float64 `json:"x"`       // mm from the bin's left edge
	Y         float64 `json:"y"`       // mm from the bin's top edge
	Width     float64 `json:"width"`   // packed width incl. kerf, mm
	Height    float64 `json:"height"`  // packed height incl. kerf, mm
	Rotated   bool    `json:"rotated"`
	BinWidth  float64 `json:"bin_width"`  // mm
	BinHeight float64 `json:"bin_height"` // mm
}

// MaterialUsage is the per-material purchasing summary of a cut plan.
type MaterialUsage struct {
	Material  string   `json:"material"`
	Variant   string   `json:"variant"`
	Thickness float64  `json:"thickness"` // chosen variant thickness, mm
	Bins      int      `json:"bins"`
	UnitPrice *float64 `json:"unit_price,omitempty"` // nil = unknown
	Subtotal  *float64 `json:"subtotal,omitempty"`   // nil when the price is unknown
}

// CutPlan is the full result of packing a panel list onto stock sheets.
// TotalCost sums only the usage rows with a known price; PriceComplete
// reports whether every row contributed, so an incomplete total is never
// mistaken for the full purchase cost.
type CutPlan struct {
	Placements    []Placement     `json:"placements"`
	Usage         []MaterialUsage `json:"usage"`
	TotalBins     int             `json:"total_bins"`
	TotalCost     float64         `json:"total_cost"`
	PriceComplete bool            `json:"price_complete"`
}

// BinLayout groups the placements of one physical stock sheet, for rendering
// and export.
type BinLayout struct {
	Material   string
	Variant    string
	Index      int // the placements' plan-global bin index
	Width      float64
	Height     float64
	Placements []Placement
}

// UsedArea returns the total panel area placed on the bin (kerf excluded).
func (b BinLayout) UsedArea() float64 {
	var total float64
	for _, p := range b.Placements {
		total += p.Panel.Area()
	}
	return total
}

// Efficiency returns the bin's material usage percentage.
func (b BinLayout) Efficiency() float64 {
	area := b.Width * b.Height
	if area == 0 {
		return 0
	}
	return b.UsedArea() / area * 100.0
}

// Bins groups the plan's placements into per-sheet layouts, ordered by
// material group and bin index. Bin indices are unique across the plan, so
// the index alone identifies the physical sheet.
func (cp CutPlan) Bins() []BinLayout {
	index := make(map[int]int)
	var bins []BinLayout
	for _, p := range cp.Placements {
		i, ok := index[p.Bin]
		if !ok {
			i = len(bins)
			index[p.Bin] = i
			bins = append(bins, BinLayout{
				Material: p.Panel.Material,
				Variant:  p.Variant,
				Index:    p.Bin,
				Width:    p.BinWidth,
				Height:   p.BinHeight,
			})
		}
		bins[i].Placements = append(bins[i].Placements, p)
	}
	return bins
}

// TotalEfficiency returns the overall material usage percentage across all bins.
func (cp CutPlan) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range cp.Bins() {
		used += b.UsedArea()
		total += b.Width * b.Height
	}
	if total == 0 {
		return 0
	}
	return used / total * 100.0
}
