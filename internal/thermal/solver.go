package thermal

import (
	"fmt"
	"math"

	"github.com/piwi3910/InsuCut/internal/model"
)

// ConvergenceError reports a solve that exhausted its iteration budget
// without the layer-average temperatures settling within tolerance.
type ConvergenceError struct {
	Iterations int
	LastDelta  float64 // °C
	Tolerance  float64 // °C
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("conduction solve did not converge after %d iterations (last delta %.3f°C, tolerance %.3f°C)",
		e.Iterations, e.LastDelta, e.Tolerance)
}

// Input describes one steady-state conduction problem: the layered wall and
// its boundary conditions.
type Input struct {
	Layers []model.Layer
	TLeft  float64 // hot face temperature, °C
	TInf   float64 // far-field ambient temperature, °C
	HConv  float64 // convective coefficient on the cold face, W/m²K, > 0
}

// Solve runs the fixed-point multi-layer heat-flux solver.
//
// Each layer carries one representative conductivity per iteration, which
// linearizes the wall into a series-resistance circuit:
//
//	R_i = t_i / k_i, R_total = ΣR_i + 1/h, q = (T_left − T_inf) / R_total.
//
// Interface temperatures follow from walking the circuit left to right. Each
// layer is then discretized at 1 mm resolution, the conductivity curve is
// queried at every sub-point, and the sub-point means become the layer's next
// temperature and conductivity estimate. The solve converges when no layer's
// average temperature moved more than the tolerance between successive
// network evaluations; a temperature-independent material therefore converges
// on the first counted iteration. Exceeding the iteration cap returns a
// ConvergenceError, never a partial result.
func Solve(catalog *model.Catalog, in Input, settings model.SolveSettings) (model.ConductionResult, error) {
	n := len(in.Layers)
	if n == 0 {
		return model.ConductionResult{}, fmt.Errorf("%w: at least one layer required", model.ErrInvalidInput)
	}
	if in.HConv <= 0 {
		return model.ConductionResult{}, fmt.Errorf("%w: convective coefficient must be > 0, got %g", model.ErrInvalidInput, in.HConv)
	}
	if settings.Tolerance <= 0 {
		return model.ConductionResult{}, fmt.Errorf("%w: tolerance must be > 0, got %g", model.ErrInvalidInput, settings.Tolerance)
	}
	if settings.MaxIterations < 1 {
		return model.ConductionResult{}, fmt.Errorf("%w: max iterations must be >= 1, got %d", model.ErrInvalidInput, settings.MaxIterations)
	}

	thickM := make([]float64, n)   // thicknesses in meters
	curves := make([]Curve, n)     // fitted k(T) per layer
	k := make([]float64, n)        // current conductivity estimate, W/mK
	avgT := make([]float64, n)     // current layer-average temperature, °C
	subPts := make([]int, n)       // 1 mm sub-points per layer

	for i, layer := range in.Layers {
		if layer.Thickness <= 0 {
			return model.ConductionResult{}, fmt.Errorf("%w: layer %d thickness must be > 0, got %g mm",
				model.ErrInvalidInput, i+1, layer.Thickness)
		}
		material := catalog.FindMaterial(layer.Material)
		if material == nil {
			return model.ConductionResult{}, &model.LookupError{Material: layer.Material, Reason: "not found in catalog"}
		}
		curve, err := FitConductivity(material.Samples)
		if err != nil {
			return model.ConductionResult{}, fmt.Errorf("layer %d (%s): %w", i+1, layer.Material, err)
		}
		curves[i] = curve
		thickM[i] = layer.Thickness / 1000.0
		k[i] = meanConductivity(material.Samples)
		avgT[i] = in.TLeft
		pts := int(math.Round(layer.Thickness))
		if pts < 1 {
			pts = 1
		}
		subPts[i] = pts
	}

	resist := make([]float64, n)
	iface := make([]float64, n+1)

	// network evaluates the series-resistance circuit for the current
	// conductivity estimates.
	network := func() (rTotal, q float64) {
		rTotal = 1.0 / in.HConv
		for i := range resist {
			resist[i] = thickM[i] / k[i]
			rTotal += resist[i]
		}
		q = (in.TLeft - in.TInf) / rTotal
		iface[0] = in.TLeft
		for i := 0; i < n; i++ {
			iface[i+1] = iface[i] - q*resist[i]
		}
		return rTotal, q
	}

	// refine re-estimates each layer's average temperature and conductivity
	// from its 1 mm sub-points, returning the largest temperature change.
	refine := func() (maxDelta float64) {
		for i := 0; i < n; i++ {
			pts := subPts[i]
			var sumT, sumK float64
			for j := 0; j < pts; j++ {
				frac := (float64(j) + 0.5) / float64(pts)
				tLocal := iface[i] + (iface[i+1]-iface[i])*frac
				sumT += tLocal
				sumK += curves[i].At(tLocal)
			}
			newT := sumT / float64(pts)
			newK := sumK / float64(pts)
			if delta := math.Abs(newT - avgT[i]); delta > maxDelta {
				maxDelta = delta
			}
			avgT[i] = newT
			k[i] = newK
		}
		return maxDelta
	}

	// Warm start: evaluate once from the seeded conductivities so the first
	// counted iteration measures the change the k(T) feedback produces.
	network()
	refine()

	lastDelta := math.Inf(1)
	for iter := 1; iter <= settings.MaxIterations; iter++ {
		rTotal, q := network()
		delta := refine()
		if delta <= settings.Tolerance {
			result := model.ConductionResult{
				HeatFlux:            q,
				TotalResistance:     rTotal,
				Iterations:          iter,
				InterfaceTemps:      append([]float64(nil), iface...),
				LayerAvgTemps:       append([]float64(nil), avgT...),
				LayerConductivities: append([]float64(nil), k...),
			}
			return result, nil
		}
		lastDelta = delta
	}

	return model.ConductionResult{}, &ConvergenceError{
		Iterations: settings.MaxIterations,
		LastDelta:  lastDelta,
		Tolerance:  settings.Tolerance,
	}
}
