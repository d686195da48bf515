package layout

// resolveFlexibleLengths distributes free space on every line, per spec.md §4.6.
func resolveFlexibleLengths(cs *calcState) error {
	for _, line := range cs.lines {
		resolveLine(cs, line)
	}
	return nil
}

// lineAvailableMain is the main-axis space a line distributes into.
// For an exact container it is the full inner main size. For an
// at-most/undefined container there is no extra space beyond content: the
// line sizes to its own consumed content, clamped to the at-most bound
// when that would force a shrink (spec.md §9's general content-sizing rule,
// applied consistently with the driver's step 7 clamp).
func lineAvailableMain(cs *calcState, line *flexLine) float32 {
	switch cs.mainMode {
	case modeExact:
		return cs.availableInnerMain
	case modeAtMost:
		return minf(cs.availableInnerMain, line.sizeConsumed)
	default:
		return line.sizeConsumed
	}
}

func resolveLine(cs *calcState, line *flexLine) {
	avail := lineAvailableMain(cs, line)

	// Items start at their flex-basis; margins are outside this quantity.
	for _, it := range line.items {
		it.mainSize = it.flexBase
		it.frozen = !it.isFlexible() && it.growFactor == 0 && it.shrinkFactor == 0
	}

	consumed := func() float32 {
		var sum float32
		for _, it := range line.items {
			sum += it.mainSize + it.mainMarginSum()
		}
		return sum
	}

	remaining := avail - consumed()
	if !IsDefined(remaining) {
		return
	}

	growing := remaining > 0
	shrinking := remaining < 0
	if !growing && !shrinking {
		return
	}

	// Iterative clamp-and-freeze loop (spec.md §4.6): distribute remaining
	// space proportionally among unfrozen items, clamp each to [min,max],
	// freeze any item that got clamped, and repeat against the reduced
	// remaining space and factor totals until nothing more freezes.
	for {
		var totalGrow, totalShrinkScaled float32
		var unfrozen []*itemState
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			if growing && it.growFactor <= 0 {
				it.frozen = true
				continue
			}
			if shrinking && it.shrinkFactor <= 0 {
				it.frozen = true
				continue
			}
			unfrozen = append(unfrozen, it)
			totalGrow += it.growFactor
			totalShrinkScaled += it.shrinkScaled
		}

		if len(unfrozen) == 0 {
			break
		}

		remaining = avail - consumed()
		if remaining == 0 {
			break
		}
		if growing && remaining <= 0 {
			break
		}
		if shrinking && remaining >= 0 {
			break
		}

		var anyClamped bool
		for _, it := range unfrozen {
			var target float32
			if growing {
				if totalGrow <= 0 {
					continue
				}
				target = it.mainSize + remaining*it.growFactor/totalGrow
			} else {
				if totalShrinkScaled <= 0 {
					continue
				}
				target = it.mainSize + remaining*it.shrinkScaled/totalShrinkScaled
			}

			lo := mainMinDim(it.style, cs.isRow).Resolve(cs.availableInnerMain)
			hi := mainMaxDim(it.style, cs.isRow).Resolve(cs.availableInnerMain)
			clamped := clampf(target, lo, hi)

			it.mainSize = clamped
			if clamped != target {
				it.frozen = true
				anyClamped = true
			}
		}

		if !anyClamped {
			break
		}
	}
}
