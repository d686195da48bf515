package layout

// buildLines assigns each in-flow item a lineIndex and groups them into
// cs.lines, per spec.md §4.5.
func buildLines(cs *calcState, inFlow []*itemState) {
	cs.lines = nil

	wrap := cs.container.FlexWrap != NoWrap
	available := cs.availableInnerMain

	var current *flexLine
	startNewLine := func() {
		current = &flexLine{}
		cs.lines = append(cs.lines, current)
	}
	startNewLine()

	lineIdx := 0
	for _, it := range inFlow {
		lo := mainMinDim(it.style, cs.isRow).Resolve(cs.availableInnerMain)
		hi := mainMaxDim(it.style, cs.isRow).Resolve(cs.availableInnerMain)
		it.flexBase = clampf(it.computedFlexBasis, lo, hi)
		outerBasis := it.flexBase + it.mainMarginSum()

		if wrap && len(current.items) > 0 && IsDefined(available) &&
			current.sizeConsumed+outerBasis > available+0.00001 {
			lineIdx++
			startNewLine()
		}

		it.lineIndex = lineIdx
		current.items = append(current.items, it)
		current.sizeConsumed += outerBasis
		if it.growFactor > 0 {
			current.totalFlexGrow += it.growFactor
		}
		it.shrinkScaled = it.shrinkFactor * it.computedFlexBasis
		if it.shrinkFactor > 0 {
			current.totalFlexShrinkScaled += it.shrinkScaled
		}
	}
}
