package layout

// resolveCrossAxis gives every in-flow item a cross size and baseline, then
// derives each line's cross size, per spec.md §4.7 and §4.9 (baseline).
func resolveCrossAxis(cs *calcState) error {
	for _, line := range cs.lines {
		for _, it := range line.items {
			if err := sizeItemCross(cs, it); err != nil {
				return err
			}
			if needsBaseline(cs, it) {
				if err := computeItemBaseline(cs, it); err != nil {
					return err
				}
			}
		}

		var lineCross float32
		for _, it := range line.items {
			outer := it.crossSize + it.crossMarginSum()
			if needsBaseline(cs, it) {
				ascent := it.baseline
				descent := it.crossSize - it.baseline
				if line.maxBaseline < ascent {
					line.maxBaseline = ascent
				}
				outer = maxf(outer, ascent+descent)
			}
			lineCross = maxf(lineCross, outer)
		}
		line.crossSize = lineCross
	}

	// A single line in an exactly-sized container fills the whole cross
	// space, regardless of its content (spec.md §4.7 step 4).
	if len(cs.lines) == 1 && cs.crossMode == modeExact {
		cs.lines[0].crossSize = maxf(cs.lines[0].crossSize, cs.availableInnerCross)
	}

	// Stretch items whose cross dimension is auto grow to fill their line.
	for _, line := range cs.lines {
		for _, it := range line.items {
			if resolvedAlign(it.style, cs.container) != AlignStretch {
				continue
			}
			if !crossDim(it.style, cs.isRow).IsAuto() {
				continue
			}
			// An aspect ratio already fixed the cross size from the main size.
			if hasDefiniteAspectRatio(it.style) {
				continue
			}
			target := line.crossSize - it.crossMarginSum()
			lo := crossMinDim(it.style, cs.isRow).Resolve(cs.availableInnerCross)
			hi := crossMaxDim(it.style, cs.isRow).Resolve(cs.availableInnerCross)
			it.crossSize = clampf(target, lo, hi)
		}
	}

	return nil
}

func needsBaseline(cs *calcState, it *itemState) bool {
	return cs.isRow && resolvedAlign(it.style, cs.container) == AlignBaseline
}

// sizeItemCross computes an item's hypothetical cross size before stretch
// is applied, per spec.md §4.7 steps 1-3.
func sizeItemCross(cs *calcState, it *itemState) error {
	style := it.style

	if v := crossDim(style, cs.isRow).Resolve(cs.availableInnerCross); IsDefined(v) {
		it.crossSize = clampCrossSize(cs, it, v)
		return nil
	}

	if hasDefiniteAspectRatio(style) && IsDefined(it.mainSize) {
		var derived float32
		if cs.isRow {
			derived = it.mainSize / style.AspectRatio
		} else {
			derived = it.mainSize * style.AspectRatio
		}
		it.crossSize = clampCrossSize(cs, it, derived)
		return nil
	}

	var minMain, maxMain, minCross, maxCross float32
	if IsDefined(it.mainSize) {
		minMain, maxMain = it.mainSize, it.mainSize
	} else {
		minMain, maxMain = 0, cs.availableInnerMain
	}
	minCross, maxCross = 0, cs.availableInnerCross

	var out MeasureOutput
	var err error
	if cs.isRow {
		out, err = measureChild(it, minMain, maxMain, minCross, maxCross, cs.ownerWidth, undefined, cs.obs)
		if err == nil {
			it.crossSize = clampCrossSize(cs, it, out.Height)
		}
	} else {
		out, err = measureChild(it, minCross, maxCross, minMain, maxMain, cs.ownerWidth, undefined, cs.obs)
		if err == nil {
			it.crossSize = clampCrossSize(cs, it, out.Width)
		}
	}
	return err
}

func clampCrossSize(cs *calcState, it *itemState, v float32) float32 {
	lo := crossMinDim(it.style, cs.isRow).Resolve(cs.availableInnerCross)
	hi := crossMaxDim(it.style, cs.isRow).Resolve(cs.availableInnerCross)
	return clampf(v, lo, hi)
}

func computeItemBaseline(cs *calcState, it *itemState) error {
	if it.style.BaselineFunc != nil {
		var w, h float32
		if cs.isRow {
			w, h = it.mainSize, it.crossSize
		} else {
			w, h = it.crossSize, it.mainSize
		}
		it.baseline = it.style.BaselineFunc(it.style.MeasureData, w, h)
		return nil
	}
	it.baseline = it.crossSize
	return nil
}

// finalizeContainerSize fixes the container's outer main/cross size once
// content is known, for the axes whose bound wasn't exact (spec.md §4.12
// step 7: content-based sizing for at-most/undefined containers).
func finalizeContainerSize(cs *calcState, minMain, maxMain, minCross, maxCross, pbMain, pbCross float32) {
	if cs.mainMode != modeExact {
		var contentMain float32
		for _, line := range cs.lines {
			var sum float32
			for _, it := range line.items {
				sum += it.mainSize + it.mainMarginSum()
			}
			contentMain = maxf(contentMain, sum)
		}
		cs.mainValue = clampf(contentMain+pbMain, minMain, maxMain)
	}

	if cs.crossMode != modeExact {
		var contentCross float32
		for _, line := range cs.lines {
			contentCross += line.crossSize
		}
		cs.crossValue = clampf(contentCross+pbCross, minCross, maxCross)
	}

	cs.innerMain = maxf(cs.mainValue-pbMain, 0)
	cs.innerCross = maxf(cs.crossValue-pbCross, 0)
}
