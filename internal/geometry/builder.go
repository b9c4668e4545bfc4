// Package geometry derives the exact panel dimensions of a rectangular
// enclosure built from nested insulation layers. Each layer clads the shell
// left by the layers before it with six rectangular panels.
package geometry

import (
	"fmt"

	"github.com/piwi3910/InsuCut/internal/model"
)

// InfeasibleError reports an envelope too small for the requested layer
// stack. Layer is 1-based; Layer 0 means the envelope itself is infeasible
// before any face was derived.
type InfeasibleError struct {
	Layer  int
	Face   model.Face
	Detail string
}

func (e *InfeasibleError) Error() string {
	if e.Layer == 0 {
		return fmt.Sprintf("geometry infeasible: %s", e.Detail)
	}
	return fmt.Sprintf("geometry infeasible at layer %d (%s): %s", e.Layer, e.Face, e.Detail)
}

// Build computes the complementary dimension triple and the full per-layer
// panel list for a layered rectangular box.
//
// The given (L, B, H) triple is interpreted per mode: with BoxOuter it is the
// outer envelope and the inner cavity must remain positive after subtracting
// twice the total layer thickness per axis; with BoxInner it is the cavity
// and the envelope grows outward. Layer 1 is the outermost shell. Every
// derived panel edge must be strictly positive.
func Build(layers []model.Layer, mode model.BoxMode, dims model.Dimensions) (model.BuildResult, error) {
	if len(layers) == 0 {
		return model.BuildResult{}, fmt.Errorf("%w: at least one layer required", model.ErrInvalidInput)
	}
	total := 0.0
	for i, layer := range layers {
		if layer.Thickness < 0 {
			return model.BuildResult{}, fmt.Errorf("%w: layer %d thickness must be >= 0, got %g mm",
				model.ErrInvalidInput, i+1, layer.Thickness)
		}
		total += layer.Thickness
	}

	var outer, inner model.Dimensions
	switch mode {
	case model.BoxOuter:
		outer = dims
		inner = model.Dimensions{L: dims.L - 2*total, B: dims.B - 2*total, H: dims.H - 2*total}
		if inner.L <= 0 || inner.B <= 0 || inner.H <= 0 {
			return model.BuildResult{}, &InfeasibleError{
				Detail: fmt.Sprintf("outer envelope %gx%gx%g mm leaves no cavity for %g mm of insulation per side",
					dims.L, dims.B, dims.H, total),
			}
		}
	case model.BoxInner:
		if dims.L <= 0 || dims.B <= 0 || dims.H <= 0 {
			return model.BuildResult{}, fmt.Errorf("%w: inner dimensions must be > 0, got %gx%gx%g mm",
				model.ErrInvalidInput, dims.L, dims.B, dims.H)
		}
		inner = dims
		outer = model.Dimensions{L: dims.L + 2*total, B: dims.B + 2*total, H: dims.H + 2*total}
	default:
		return model.BuildResult{}, fmt.Errorf("%w: unknown box mode %q", model.ErrInvalidInput, mode)
	}

	result := model.BuildResult{Outer: outer, Inner: inner}

	cumBefore := 0.0
	for i, layer := range layers {
		num := i + 1
		cumThrough := cumBefore + layer.Thickness

		// Each face pair clads a different band of the shell: top/bottom sit
		// on the envelope left by the previous layers, front/back and
		// right/left fit between the panels already placed this layer.
		faceDims := []struct {
			face model.Face
			l, b float64
		}{
			{model.FaceTop, outer.L - 2*cumBefore, outer.B - 2*cumBefore},
			{model.FaceBottom, outer.L - 2*cumBefore, outer.B - 2*cumBefore},
			{model.FaceFront, outer.H - 2*cumThrough, outer.B - 2*cumBefore},
			{model.FaceBack, outer.H - 2*cumThrough, outer.B - 2*cumBefore},
			{model.FaceRight, outer.L - 2*cumThrough, outer.H - 2*cumThrough},
			{model.FaceLeft, outer.L - 2*cumThrough, outer.H - 2*cumThrough},
		}

		for _, fd := range faceDims {
			if fd.l <= 0 || fd.b <= 0 {
				return model.BuildResult{}, &InfeasibleError{
					Layer:  num,
					Face:   fd.face,
					Detail: fmt.Sprintf("panel would be %gx%g mm", fd.l, fd.b),
				}
			}
			result.Panels = append(result.Panels, model.NewPanel(num, fd.face, layer.Material, fd.l, fd.b, layer.Thickness))
		}

		cumBefore = cumThrough
	}

	return result, nil
}
