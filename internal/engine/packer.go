package engine

// binPacker places kerf-inflated rectangles onto a single stock sheet. It
// keeps a maximal-rectangles free list: every insertion splits all
// overlapping free rectangles around the placed piece, which leaves larger
// free strips than pure guillotine splitting and lets rotated panels use
// areas spanning earlier cuts.
type binPacker struct {
	freeRects []rect
	kerf      float64
}

type rect struct {
	x, y, w, h float64
}

func newBinPacker(width, height, kerf float64) *binPacker {
	return &binPacker{
		freeRects: []rect{{0, 0, width, height}},
		kerf:      kerf,
	}
}

// score returns the best-short-side-fit score for a piece of size w x h:
// the smaller leftover of the tightest free rectangle, with the larger
// leftover as tie-break. ok is false when the piece fits nowhere.
func (bp *binPacker) score(w, h float64) (short, long float64, ok bool) {
	wk := w + bp.kerf
	hk := h + bp.kerf

	for _, r := range bp.freeRects {
		if wk > r.w+0.001 || hk > r.h+0.001 {
			continue
		}
		leftW := r.w - wk
		leftH := r.h - hk
		s, l := leftW, leftH
		if s > l {
			s, l = l, s
		}
		if !ok || s < short || (s == short && l < long) {
			short, long, ok = s, l, true
		}
	}
	return short, long, ok
}

// insert places a piece of size w x h at the free rectangle with the best
// short-side fit. Returns success and the placement position.
func (bp *binPacker) insert(w, h float64) (bool, float64, float64) {
	wk := w + bp.kerf
	hk := h + bp.kerf

	bestIdx := -1
	var bestShort, bestLong float64
	for i, r := range bp.freeRects {
		if wk > r.w+0.001 || hk > r.h+0.001 {
			continue
		}
		leftW := r.w - wk
		leftH := r.h - hk
		s, l := leftW, leftH
		if s > l {
			s, l = l, s
		}
		if bestIdx < 0 || s < bestShort || (s == bestShort && l < bestLong) {
			bestIdx = i
			bestShort, bestLong = s, l
		}
	}
	if bestIdx < 0 {
		return false, 0, 0
	}

	chosen := bp.freeRects[bestIdx]
	placed := rect{x: chosen.x, y: chosen.y, w: wk, h: hk}
	bp.splitAroundPlacement(placed)
	return true, chosen.x, chosen.y
}

// splitAroundPlacement removes all free rects overlapping the placed rect
// and generates maximal sub-rects from the non-overlapping portions, then
// prunes rects fully contained in another.
func (bp *binPacker) splitAroundPlacement(placed rect) {
	var newRects []rect

	for _, r := range bp.freeRects {
		if !rectsOverlap(r, placed) {
			newRects = append(newRects, r)
			continue
		}

		// Left strip (full height of the original rect)
		if placed.x > r.x+0.001 {
			newRects = append(newRects, rect{x: r.x, y: r.y, w: placed.x - r.x, h: r.h})
		}
		// Right strip
		if placed.x+placed.w < r.x+r.w-0.001 {
			newRects = append(newRects, rect{
				x: placed.x + placed.w, y: r.y,
				w: (r.x + r.w) - (placed.x + placed.w), h: r.h,
			})
		}
		// Top strip (full width of the original rect)
		if placed.y > r.y+0.001 {
			newRects = append(newRects, rect{x: r.x, y: r.y, w: r.w, h: placed.y - r.y})
		}
		// Bottom strip
		if placed.y+placed.h < r.y+r.h-0.001 {
			newRects = append(newRects, rect{
				x: r.x, y: placed.y + placed.h,
				w: r.w, h: (r.y + r.h) - (placed.y + placed.h),
			})
		}
	}

	bp.freeRects = pruneContained(newRects)
}

// rectsOverlap returns true if two rectangles overlap (not just touch).
func rectsOverlap(a, b rect) bool {
	return a.x < b.x+b.w-0.001 && a.x+a.w > b.x+0.001 &&
		a.y < b.y+b.h-0.001 && a.y+a.h > b.y+0.001
}

// pruneContained removes any rect fully contained within another.
func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i != j && containsRect(b, a) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

// containsRect returns true if outer fully contains inner.
func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x+0.001 && outer.y <= inner.y+0.001 &&
		outer.x+outer.w >= inner.x+inner.w-0.001 &&
		outer.y+outer.h >= inner.y+inner.h-0.001
}
