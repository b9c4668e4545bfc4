// Package thermal implements the steady-state multi-layer conduction solver
// and the temperature-dependent conductivity model it consumes.
package thermal

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/piwi3910/InsuCut/internal/model"
)

// Curve is a fitted k(T) polynomial. Queries outside the sampled temperature
// range are clamped to the nearest sampled temperature before evaluation, so
// the polynomial is never extrapolated into unphysical (e.g. negative)
// conductivities.
type Curve struct {
	coeffs     []float64 // ascending powers of T
	tMin, tMax float64
}

// At evaluates the fitted conductivity at the given temperature in °C.
func (c Curve) At(temp float64) float64 {
	if temp < c.tMin {
		temp = c.tMin
	}
	if temp > c.tMax {
		temp = c.tMax
	}
	k := 0.0
	pow := 1.0
	for _, cf := range c.coeffs {
		k += cf * pow
		pow *= temp
	}
	return k
}

// FitConductivity fits a conductivity curve to the given samples. Samples are
// sorted by temperature and samples sharing an exact temperature are merged
// by averaging their conductivity. The fit degree follows the number of
// distinct temperatures: one sample gives a constant, two give a line, three
// or more give a least-squares quadratic (insulation k(T) grows
// superlinearly, which a quadratic captures well over the working range).
func FitConductivity(samples []model.MaterialSample) (Curve, error) {
	if len(samples) == 0 {
		return Curve{}, fmt.Errorf("%w: no conductivity samples", model.ErrInvalidInput)
	}

	merged := mergeSamples(samples)
	curve := Curve{
		tMin: merged[0].Temperature,
		tMax: merged[len(merged)-1].Temperature,
	}

	switch len(merged) {
	case 1:
		curve.coeffs = []float64{merged[0].Conductivity}
		return curve, nil
	case 2:
		coeffs, err := polyfit(merged, 1)
		if err != nil {
			return Curve{}, err
		}
		curve.coeffs = coeffs
		return curve, nil
	default:
		coeffs, err := polyfit(merged, 2)
		if err != nil {
			return Curve{}, err
		}
		curve.coeffs = coeffs
		return curve, nil
	}
}

// InterpolateK resolves one conductivity per query temperature from the given
// sample table. It fails with a validation error when the table is empty.
func InterpolateK(samples []model.MaterialSample, queries []float64) ([]float64, error) {
	curve, err := FitConductivity(samples)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(queries))
	for i, q := range queries {
		out[i] = curve.At(q)
	}
	return out, nil
}

// mergeSamples sorts samples by temperature and averages the conductivity of
// samples sharing an exact temperature.
func mergeSamples(samples []model.MaterialSample) []model.MaterialSample {
	sorted := make([]model.MaterialSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Temperature < sorted[j].Temperature
	})

	var merged []model.MaterialSample
	for i := 0; i < len(sorted); {
		j := i
		sum := 0.0
		for j < len(sorted) && sorted[j].Temperature == sorted[i].Temperature {
			sum += sorted[j].Conductivity
			j++
		}
		merged = append(merged, model.MaterialSample{
			Temperature:  sorted[i].Temperature,
			Conductivity: sum / float64(j-i),
		})
		i = j
	}
	return merged
}

// polyfit solves the least-squares polynomial fit of the given degree over
// the merged samples, returning coefficients in ascending powers.
func polyfit(samples []model.MaterialSample, degree int) ([]float64, error) {
	rows := len(samples)
	a := mat.NewDense(rows, degree+1, nil)
	b := mat.NewDense(rows, 1, nil)
	for i, s := range samples {
		pow := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, pow)
			pow *= s.Temperature
		}
		b.Set(i, 0, s.Conductivity)
	}

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		return nil, fmt.Errorf("conductivity fit failed: %w", err)
	}

	coeffs := make([]float64, degree+1)
	for j := range coeffs {
		coeffs[j] = sol.At(j, 0)
	}
	return coeffs, nil
}

// meanConductivity returns the arithmetic mean of the measured conductivity
// values, used to seed the solver before any temperature profile exists.
func meanConductivity(samples []model.MaterialSample) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s.Conductivity
	}
	return sum / float64(len(samples))
}
