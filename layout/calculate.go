package layout

// calcState threads the per-call working data through the layout passes
// described in spec.md §4.12. It is never retained past one Calculate call.
type calcState struct {
	container FlexBoxStyle
	dir       direction
	isRow     bool
	textDir   TextDirection

	items []*itemState // all children, input order
	obs   MeasureObserver

	paddingBorderMainLeading, paddingBorderMainTrailing   float32
	paddingBorderCrossLeading, paddingBorderCrossTrailing float32

	ownerWidth float32

	mainMode, crossMode sizingMode
	mainValue, crossValue float32 // outer size, when mode != modeUndefined

	availableInnerMain, availableInnerCross float32 // undefined if unbounded

	lines []*flexLine

	innerMain, innerCross float32 // final resolved inner sizes, after content-based sizing
}

// flexLine groups the items placed between two wrap breaks (spec.md §4.5).
type flexLine struct {
	items                  []*itemState
	totalFlexGrow          float32
	totalFlexShrinkScaled  float32
	sizeConsumed           float32
	crossSize              float32
	crossPos               float32
	maxBaseline            float32
}

// Calculate runs the flexbox layout algorithm over container and children,
// given the four bound constraints and the owning node's width (spec.md §6).
// minWidth==maxWidth (within tolerance) means "exact"; +Inf/NaN on a max
// bound means "unbounded".
func Calculate(container FlexBoxStyle, children []FlexItemStyle, minWidth, maxWidth, minHeight, maxHeight, ownerWidth float32, opts ...Option) (LayoutOutput, error) {
	cfg := calcConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	if container.PointScaleFactor <= 0 {
		container.PointScaleFactor = 1
	}

	cs := &calcState{
		container:  container,
		textDir:    resolveTextDirection(container.Direction),
		ownerWidth: ownerWidth,
		obs:        cfg.observer,
	}
	cs.isRow = isRowAxis(container.FlexDirection)
	cs.dir = resolveDirection(container.FlexDirection, cs.textDir)

	// Step 1: container padding/border on both axes. Percentages on every
	// edge resolve against ownerWidth, matching CSS's containing-block-width
	// rule for padding/border percentages (spec.md §9 open question on
	// percentage resolution; this is the concrete choice made here).
	padTop := computedEdgeValue(container.Padding, EdgeTop, PointDim(0)).ResolveMargin(ownerWidth)
	padRight := computedEdgeValue(container.Padding, EdgeRight, PointDim(0)).ResolveMargin(ownerWidth)
	padBottom := computedEdgeValue(container.Padding, EdgeBottom, PointDim(0)).ResolveMargin(ownerWidth)
	padLeft := computedEdgeValue(container.Padding, EdgeLeft, PointDim(0)).ResolveMargin(ownerWidth)
	// A negative resolved padding is a contract violation: it becomes undefined
	// and so contributes nothing.
	for _, p := range []*float32{&padTop, &padRight, &padBottom, &padLeft} {
		if *p < 0 {
			*p = undefined
		}
	}
	borTop := computedEdgeValue(container.Border, EdgeTop, PointDim(0)).ResolveMargin(ownerWidth)
	borRight := computedEdgeValue(container.Border, EdgeRight, PointDim(0)).ResolveMargin(ownerWidth)
	borBottom := computedEdgeValue(container.Border, EdgeBottom, PointDim(0)).ResolveMargin(ownerWidth)
	borLeft := computedEdgeValue(container.Border, EdgeLeft, PointDim(0)).ResolveMargin(ownerWidth)

	if cs.isRow {
		cs.paddingBorderMainLeading = orZero(padLeft) + orZero(borLeft)
		cs.paddingBorderMainTrailing = orZero(padRight) + orZero(borRight)
		cs.paddingBorderCrossLeading = orZero(padTop) + orZero(borTop)
		cs.paddingBorderCrossTrailing = orZero(padBottom) + orZero(borBottom)
	} else {
		cs.paddingBorderMainLeading = orZero(padTop) + orZero(borTop)
		cs.paddingBorderMainTrailing = orZero(padBottom) + orZero(borBottom)
		cs.paddingBorderCrossLeading = orZero(padLeft) + orZero(borLeft)
		cs.paddingBorderCrossTrailing = orZero(padRight) + orZero(borRight)
	}

	var minMain, maxMain, minCross, maxCross float32
	if cs.isRow {
		minMain, maxMain, minCross, maxCross = minWidth, maxWidth, minHeight, maxHeight
	} else {
		minMain, maxMain, minCross, maxCross = minHeight, maxHeight, minWidth, maxWidth
	}

	cs.mainValue, cs.mainMode = axisSizing(minMain, maxMain)
	cs.crossValue, cs.crossMode = axisSizing(minCross, maxCross)

	pbMain := cs.paddingBorderMainLeading + cs.paddingBorderMainTrailing
	pbCross := cs.paddingBorderCrossLeading + cs.paddingBorderCrossTrailing

	cs.availableInnerMain = innerFromOuter(cs.mainValue, cs.mainMode, pbMain)
	cs.availableInnerCross = innerFromOuter(cs.crossValue, cs.crossMode, pbCross)

	// Build working item state, skipping nothing yet: display:none items
	// still occupy a slot so output stays in input order (spec.md §3).
	cs.items = make([]*itemState, len(children))
	for i, style := range children {
		cs.items[i] = newItemState(style, i)
	}

	referenceMain := cs.availableInnerMain
	referenceCross := cs.availableInnerCross
	for _, it := range cs.items {
		it.resolveMargins(cs.dir, cs.isRow, cs.textDir, referenceMain, referenceCross)
	}

	if len(children) == 0 {
		return cs.layoutEmpty(minMain, maxMain, minCross, maxCross, pbMain, pbCross)
	}

	inFlow := inFlowItems(cs.items)

	if err := computeFlexBasisPass(cs, inFlow); err != nil {
		return LayoutOutput{}, err
	}

	buildLines(cs, inFlow)

	if err := resolveFlexibleLengths(cs); err != nil {
		return LayoutOutput{}, err
	}

	if err := resolveCrossAxis(cs); err != nil {
		return LayoutOutput{}, err
	}

	finalizeContainerSize(cs, minMain, maxMain, minCross, maxCross, pbMain, pbCross)

	justifyAndAlign(cs)

	if err := layoutAbsoluteChildren(cs); err != nil {
		return LayoutOutput{}, err
	}

	out := collectOutput(cs)
	roundLayout(&out, container.PointScaleFactor, cs.items)
	return out, nil
}

func resolveTextDirection(d TextDirection) TextDirection {
	if d == Inherit {
		return LTR
	}
	return d
}

// innerFromOuter subtracts padding+border from an outer axis value when the
// outer value is known (exact or at-most); an undefined/unbounded axis has
// an undefined inner size too (spec.md §4.12 step 2).
func innerFromOuter(outer float32, mode sizingMode, pb float32) float32 {
	if mode == modeUndefined {
		return undefined
	}
	v := outer - pb
	if v < 0 {
		v = 0
	}
	return v
}

func inFlowItems(items []*itemState) []*itemState {
	out := make([]*itemState, 0, len(items))
	for _, it := range items {
		if it.style.Display == DisplayNone {
			continue
		}
		if it.style.PositionType == PositionAbsolute {
			continue
		}
		out = append(out, it)
	}
	return out
}

// layoutEmpty implements the boundary case of spec.md §8:
// "An empty children vector yields LayoutOutput with container size equal
// to max(paddingAndBorder, minBounds) clamped to maxBounds."
func (cs *calcState) layoutEmpty(minMain, maxMain, minCross, maxCross, pbMain, pbCross float32) (LayoutOutput, error) {
	mainOuter := clampf(maxf(pbMain, orZero(minMain)), minMain, maxMain)
	crossOuter := clampf(maxf(pbCross, orZero(minCross)), minCross, maxCross)

	var width, height float32
	if cs.isRow {
		width, height = mainOuter, crossOuter
	} else {
		width, height = crossOuter, mainOuter
	}

	out := LayoutOutput{Width: width, Height: height, Baseline: undefined, Children: nil}
	roundLayout(&out, cs.container.PointScaleFactor, nil)
	return out, nil
}

func collectOutput(cs *calcState) LayoutOutput {
	var width, height float32
	if cs.isRow {
		width, height = cs.mainValue, cs.crossValue
	} else {
		width, height = cs.crossValue, cs.mainValue
	}

	children := make([]ChildLayout, len(cs.items))
	for i, it := range cs.items {
		if it.style.Display == DisplayNone {
			children[i] = ChildLayout{}
			continue
		}
		var left, top, w, h float32
		if cs.isRow {
			left, top, w, h = it.mainPos, it.crossPos, it.mainSize, it.crossSize
		} else {
			left, top, w, h = it.crossPos, it.mainPos, it.crossSize, it.mainSize
		}
		children[i] = ChildLayout{Left: left, Top: top, Width: w, Height: h, Result: it.lastResult}
	}

	baseline := containerBaseline(cs)

	return LayoutOutput{Width: width, Height: height, Baseline: baseline, Children: children}
}

func containerBaseline(cs *calcState) float32 {
	for _, it := range cs.items {
		if it.style.Display == DisplayNone || it.style.PositionType == PositionAbsolute {
			continue
		}
		if resolvedAlign(it.style, cs.container) == AlignBaseline {
			return it.baseline
		}
	}
	return undefined
}
