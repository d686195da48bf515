package layout

import "math"

// roundLayout snaps a computed layout onto the device pixel grid implied by
// PointScaleFactor, per spec.md §4.11. An item opts out of grid snapping by
// setting EnableTextRounding to false on its style (kept at sub-pixel
// precision for hosts doing their own glyph-level rounding); the container
// box and every other item's box round unconditionally.
func roundLayout(out *LayoutOutput, scale float32, items []*itemState) {
	if scale <= 0 {
		scale = 1
	}

	out.Width = roundToGrid(out.Width, scale)
	out.Height = roundToGrid(out.Height, scale)
	out.Baseline = roundToGrid(out.Baseline, scale)

	for i := range out.Children {
		c := &out.Children[i]
		if i < len(items) && items[i] != nil && !items[i].style.EnableTextRounding {
			continue
		}

		left := roundToGrid(c.Left, scale)
		top := roundToGrid(c.Top, scale)
		right := roundToGrid(c.Left+c.Width, scale)
		bottom := roundToGrid(c.Top+c.Height, scale)

		c.Left = left
		c.Top = top
		c.Width = maxf(right-left, 0)
		c.Height = maxf(bottom-top, 0)
	}
}

// roundToGrid rounds v to the nearest 1/scale unit, half away from zero so
// negative coordinates round symmetrically with positive ones (spec.md §9's
// resolved open question on negative-coordinate rounding).
func roundToGrid(v, scale float32) float32 {
	if !IsDefined(v) {
		return v
	}
	return float32(math.Round(float64(v)*float64(scale)) / float64(scale))
}
