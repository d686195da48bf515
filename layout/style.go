package layout

// Direction is the flex-direction property: which axis is "main" and which
// way it runs.
type Direction uint8

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

// TextDirection is the container's inheriting writing direction.
type TextDirection uint8

const (
	Inherit TextDirection = iota
	LTR
	RTL
)

// Wrap is the flex-wrap property.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapNormal
	WrapReverse
)

// Justify is the justify-content property: distribution along the main axis.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align is shared by align-items, align-self, and align-content; not every
// value is meaningful for every one of those three (e.g. AlignSpaceBetween
// only applies to AlignContent).
type Align uint8

const (
	AlignAuto Align = iota // only meaningful as AlignSelf: "inherit from container"
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

// Overflow is carried on FlexBoxStyle but not read by the layout passes:
// stretch under an undefined cross space fills the line's content cross size
// whatever its value, and no clipping, scrolling, or visibility collapse is
// implemented (explicitly out of scope, spec.md §1).
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// PositionType is the flex-item positioning mode.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Display controls whether an item participates in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// FlexBoxStyle holds the immutable style of a flex container (spec.md §3).
type FlexBoxStyle struct {
	Direction        TextDirection
	FlexDirection    Direction
	JustifyContent   Justify
	AlignContent     Align
	AlignItems       Align
	FlexWrap         Wrap
	Overflow         Overflow
	Padding          Edges
	Border           Edges
	PointScaleFactor float32
}

// DefaultFlexBoxStyle returns the CSS Flexbox initial values.
func DefaultFlexBoxStyle() FlexBoxStyle {
	return FlexBoxStyle{
		Direction:        Inherit,
		FlexDirection:    Row,
		JustifyContent:   JustifyFlexStart,
		AlignContent:     AlignStretch,
		AlignItems:       AlignStretch,
		FlexWrap:         NoWrap,
		Overflow:         OverflowVisible,
		Padding:          NewEdges(),
		Border:           NewEdges(),
		PointScaleFactor: 1,
	}
}

// MeasureOutput is what a MeasureFunc produces for one item.
type MeasureOutput struct {
	Width, Height float32
	Baseline      float32 // may be undefined
	Result        any     // opaque, host-owned, carried through untouched
}

// MeasureFunc is the host callback invoked to size a leaf's content.
// It must return finite Width/Height within [minW,maxW]x[minH,maxH]; it may
// be called multiple times with different bounds (spec.md §6).
type MeasureFunc func(measureData any, minW, maxW, minH, maxH, ownerW, ownerH float32) (MeasureOutput, error)

// BaselineFunc computes the baseline offset of an item already sized to w,h.
type BaselineFunc func(measureData any, w, h float32) float32

// FlexItemStyle holds the immutable style of one flex item (spec.md §3).
type FlexItemStyle struct {
	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension // may be AutoDim()

	Width, Height             Dimension
	MinWidth, MinHeight       Dimension
	MaxWidth, MaxHeight       Dimension

	Margin   Edges
	Position Edges

	AlignSelf    Align
	PositionType PositionType
	AspectRatio  float32 // >0 definite, NaN undefined

	Display Display

	EnableTextRounding bool

	MeasureData     any
	MeasureFunc     MeasureFunc
	BaselineFunc    BaselineFunc
}

// DefaultFlexItemStyle returns the CSS Flexbox initial values for an item.
func DefaultFlexItemStyle() FlexItemStyle {
	return FlexItemStyle{
		FlexGrow:     0,
		FlexShrink:   1,
		FlexBasis:    AutoDim(),
		Width:        AutoDim(),
		Height:       AutoDim(),
		MinWidth:     UndefinedDim(),
		MinHeight:    UndefinedDim(),
		MaxWidth:     UndefinedDim(),
		MaxHeight:    UndefinedDim(),
		Margin:       NewEdges(),
		Position:     NewEdges(),
		AlignSelf:          AlignAuto,
		PositionType:       PositionRelative,
		AspectRatio:        undefined,
		Display:            DisplayFlex,
		EnableTextRounding: true,
	}
}

// resolvedAlign returns item's effective align-self: its own AlignSelf,
// unless that is AlignAuto, in which case the container's AlignItems.
func resolvedAlign(item FlexItemStyle, container FlexBoxStyle) Align {
	if item.AlignSelf == AlignAuto {
		return container.AlignItems
	}
	return item.AlignSelf
}

// hasDefiniteAspectRatio reports whether item declares a usable aspect ratio.
func hasDefiniteAspectRatio(item FlexItemStyle) bool {
	return IsDefined(item.AspectRatio) && item.AspectRatio > 0
}
