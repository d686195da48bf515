package layout

// justifyAndAlign places every line along the cross axis (align-content),
// then places every item within its line along both axes (justify-content,
// align-items/align-self), per spec.md §4.8.
//
// Main-axis positions are tracked as abstract offsets from the content
// box's flow-start edge, then converted to the physical left/top returned
// in ChildLayout via mainAbstractToPhysical. This keeps the
// reverse-direction math (row-reverse, column-reverse, and RTL row) in one
// place instead of re-deriving it per alignment mode. Cross-axis positions
// are computed directly in physical coordinates by alignLineItems.
func justifyAndAlign(cs *calcState) {
	placeLines(cs)
	for _, line := range cs.lines {
		justifyLine(cs, line)
		alignLineItems(cs, line)
	}
}

func placeLines(cs *calcState) {
	n := len(cs.lines)
	if n == 0 {
		return
	}

	var total float32
	for _, l := range cs.lines {
		total += l.crossSize
	}
	free := cs.innerCross - total
	if !IsDefined(free) || free < 0 {
		free = 0
	}

	if cs.container.AlignContent == AlignStretch && free > 0 {
		extra := free / float32(n)
		for _, l := range cs.lines {
			l.crossSize += extra
		}
		free = 0
	}

	var start, gap float32
	switch cs.container.AlignContent {
	case AlignFlexEnd:
		start = free
	case AlignCenter:
		start = free / 2
	case AlignSpaceBetween:
		if n > 1 {
			gap = free / float32(n-1)
		}
	case AlignSpaceAround:
		gap = free / float32(n)
		start = gap / 2
	case AlignSpaceEvenly:
		gap = free / float32(n+1)
		start = gap
	default: // FlexStart, Stretch (already absorbed), Baseline, Auto
		start = 0
	}

	pos := start
	for _, l := range cs.lines {
		l.crossPos = pos
		pos += l.crossSize + gap
	}

	if cs.container.FlexWrap == WrapReverse {
		for _, l := range cs.lines {
			l.crossPos = cs.innerCross - l.crossPos - l.crossSize
		}
	}
}

func justifyLine(cs *calcState, line *flexLine) {
	n := len(line.items)
	if n == 0 {
		return
	}

	var occupied float32
	autoSlots := 0
	for _, it := range line.items {
		occupied += it.mainSize + it.mainMarginSum()
		if it.mainMarginIsAutoLeading {
			autoSlots++
		}
		if it.mainMarginIsAutoTrailing {
			autoSlots++
		}
	}

	free := cs.innerMain - occupied
	if !IsDefined(free) {
		free = 0
	}

	autoShare := make([]float32, n)
	if autoSlots > 0 && free > 0 {
		share := free / float32(autoSlots)
		for i, it := range line.items {
			if it.mainMarginIsAutoLeading {
				autoShare[i] += share
			}
			if it.mainMarginIsAutoTrailing {
				autoShare[i] += share
			}
		}
		free = 0
	}

	var start, gap float32
	switch {
	case free > 0:
		switch cs.container.JustifyContent {
		case JustifyFlexEnd:
			start = free
		case JustifyCenter:
			start = free / 2
		case JustifySpaceBetween:
			if n > 1 {
				gap = free / float32(n-1)
			} else {
				start = 0
			}
		case JustifySpaceAround:
			gap = free / float32(n)
			start = gap / 2
		case JustifySpaceEvenly:
			gap = free / float32(n+1)
			start = gap
		}
	case free < 0:
		switch cs.container.JustifyContent {
		case JustifyFlexEnd:
			start = free
		case JustifyCenter:
			start = free / 2
		}
	}

	pos := start
	for i, it := range line.items {
		lead := it.mainMarginLeading
		if it.mainMarginIsAutoLeading {
			lead = autoShare[i]
		}
		trail := it.mainMarginTrailing
		if it.mainMarginIsAutoTrailing {
			trail = autoShare[i]
		}

		pos += lead
		abstractLeading := pos
		it.mainPos = mainAbstractToPhysical(cs, abstractLeading, it.mainSize)
		pos += it.mainSize + trail + gap
	}
}

// mainAbstractToPhysical converts an offset measured from the content box's
// flow-start edge into the physical left (row) / top (column) coordinate
// used in ChildLayout, honoring row-reverse/column-reverse/RTL-row flow.
func mainAbstractToPhysical(cs *calcState, abstractLeading, size float32) float32 {
	lead := cs.paddingBorderMainLeading
	if isReverseAxis2(cs.dir) {
		return lead + (cs.innerMain - abstractLeading - size)
	}
	return lead + abstractLeading
}

func isReverseAxis2(dir direction) bool {
	return dir == dirRowReverse || dir == dirColumnReverse
}

func alignLineItems(cs *calcState, line *flexLine) {
	for _, it := range line.items {
		align := resolvedAlign(it.style, cs.container)
		var offset float32
		switch align {
		case AlignFlexEnd:
			offset = line.crossSize - it.crossSize - it.crossMarginTrailing
		case AlignCenter:
			offset = it.crossMarginLeading + (line.crossSize-it.crossSize-it.crossMarginSum())/2
		case AlignBaseline:
			offset = it.crossMarginLeading
			if needsBaseline(cs, it) {
				offset += line.maxBaseline - it.baseline
			}
		default: // FlexStart, Stretch, SpaceBetween/Around/Evenly (meaningless here), Auto
			offset = it.crossMarginLeading
		}
		it.crossPos = cs.paddingBorderCrossLeading + line.crossPos + offset
	}
}
