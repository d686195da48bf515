package layout

// itemState is per-child scratch state for one Calculate invocation. It is
// allocated for the duration of the call and never persisted (spec.md
// §3 "Lifecycle").
type itemState struct {
	style FlexItemStyle
	index int
	cache *measureCache

	mainMarginLeading, mainMarginTrailing   float32
	crossMarginLeading, crossMarginTrailing float32
	mainMarginIsAutoLeading                 bool
	mainMarginIsAutoTrailing                bool

	computedFlexBasis float32
	flexBase          float32 // computedFlexBasis clamped to [minMain, maxMain], content-box, no margin

	lineIndex int

	mainSize      float32
	crossSize     float32
	frozen        bool
	growFactor    float32
	shrinkFactor  float32
	shrinkScaled  float32 // flexShrink * computedFlexBasis

	mainPos  float32
	crossPos float32
	baseline float32

	lastResult any
}

func newItemState(style FlexItemStyle, index int) *itemState {
	return &itemState{
		style:        style,
		index:        index,
		cache:        &measureCache{},
		growFactor:   maxf32(style.FlexGrow, 0),
		shrinkFactor: maxf32(style.FlexShrink, 0),
	}
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// resolveMargins fills in the item's main/cross leading/trailing margins
// against the container's resolved axes (spec.md §4.1: Auto margin resolves
// to 0 for sizing, Auto *distribution* is handled later by justify).
func (it *itemState) resolveMargins(mainDirResolved direction, isRow bool, textDir TextDirection, referenceMain, referenceCross float32) {
	mLead := mainLeadingEdge(mainDirResolved)
	mTrail := mainTrailingEdge(mainDirResolved)
	cLead := crossLeadingEdge(isRow, textDir)
	cTrail := crossTrailingEdge(isRow, textDir)

	leadMarginDim := computedEdgeValue(it.style.Margin, mLead, PointDim(0))
	trailMarginDim := computedEdgeValue(it.style.Margin, mTrail, PointDim(0))
	it.mainMarginIsAutoLeading = leadMarginDim.IsAuto()
	it.mainMarginIsAutoTrailing = trailMarginDim.IsAuto()
	it.mainMarginLeading = leadMarginDim.ResolveMargin(referenceMain)
	it.mainMarginTrailing = trailMarginDim.ResolveMargin(referenceMain)

	it.crossMarginLeading = computedEdgeValue(it.style.Margin, cLead, PointDim(0)).ResolveMargin(referenceCross)
	it.crossMarginTrailing = computedEdgeValue(it.style.Margin, cTrail, PointDim(0)).ResolveMargin(referenceCross)
}

func (it *itemState) mainMarginSum() float32 {
	return orZero(it.mainMarginLeading) + orZero(it.mainMarginTrailing)
}

func (it *itemState) crossMarginSum() float32 {
	return orZero(it.crossMarginLeading) + orZero(it.crossMarginTrailing)
}

func (it *itemState) isFlexible() bool {
	return it.style.Display == DisplayFlex && it.growFactor > 0 && it.shrinkFactor > 0
}
