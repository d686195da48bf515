package layout

// computeFlexBasisPass resolves each in-flow item's computedFlexBasis,
// per spec.md §4.4.
func computeFlexBasisPass(cs *calcState, inFlow []*itemState) error {
	singleFlexShortcut := cs.mainMode == modeExact && len(inFlow) == 1 && inFlow[0].isFlexible()

	for _, it := range inFlow {
		if singleFlexShortcut {
			// "When exactly one in-flow child has both flexGrow>0 and
			// flexShrink>0 and the container is measured exactly on the
			// main axis, its flex basis is shortcut to 0" (spec.md §4.4).
			it.computedFlexBasis = 0
			continue
		}

		basis, err := flexBasisCandidate(cs, it)
		if err != nil {
			return err
		}

		lowerBound := paddingAndBorderAlongMainAxis(it, cs)
		it.computedFlexBasis = maxf(basis, lowerBound)
	}
	return nil
}

// paddingAndBorderAlongMainAxis is the lower clamp bound named in spec.md
// §4.4 step 2. FlexItemStyle has no padding/border of its own (spec.md §3 —
// only containers carry padding/border); a leaf's floor is therefore 0.
func paddingAndBorderAlongMainAxis(it *itemState, cs *calcState) float32 {
	return 0
}

func flexBasisCandidate(cs *calcState, it *itemState) (float32, error) {
	style := it.style

	// 1. Explicit flex-basis (not Auto), resolved against the main-axis
	// available size.
	if !style.FlexBasis.IsAuto() && !style.FlexBasis.IsUndefined() {
		if v := style.FlexBasis.Resolve(cs.availableInnerMain); IsDefined(v) {
			return v, nil
		}
	}

	// 2. Definite main-axis style dimension.
	md := mainDim(style, cs.isRow)
	if v := md.Resolve(cs.availableInnerMain); IsDefined(v) {
		return v, nil
	}

	// 3. Derive from aspect ratio when the cross-axis style dim is definite.
	if hasDefiniteAspectRatio(style) {
		cd := crossDim(style, cs.isRow)
		if cv := cd.Resolve(cs.availableInnerCross); IsDefined(cv) {
			if cs.isRow {
				return cv * style.AspectRatio, nil
			}
			return cv / style.AspectRatio, nil
		}
	}

	// 4. Intrinsic sizing via measurement.
	minMain, maxMain := float32(0), cs.availableInnerMain
	minCross, maxCross := float32(0), cs.availableInnerCross
	var out MeasureOutput
	var err error
	if cs.isRow {
		out, err = measureChild(it, minMain, maxMain, minCross, maxCross, cs.ownerWidth, undefined, cs.obs)
	} else {
		out, err = measureChild(it, minCross, maxCross, minMain, maxMain, cs.ownerWidth, undefined, cs.obs)
	}
	if err != nil {
		return 0, err
	}

	if cs.isRow {
		return out.Width, nil
	}
	return out.Height, nil
}
