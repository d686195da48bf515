package binding

import "github.com/gridspan/flexlayout/layout"

// EncodeItemStyle flattens style into a tagged (key, values...) buffer,
// omitting every property equal to layout.DefaultFlexItemStyle().
func EncodeItemStyle(style layout.FlexItemStyle) []float32 {
	def := layout.DefaultFlexItemStyle()
	buf := make([]float32, 0, 16)

	if style.FlexGrow != def.FlexGrow {
		buf = append(buf, float32(KeyFlexGrow), style.FlexGrow)
	}
	if style.FlexShrink != def.FlexShrink {
		buf = append(buf, float32(KeyFlexShrink), style.FlexShrink)
	}
	buf = encodeDim(buf, style.FlexBasis, KeyFlexBasis, KeyFlexBasisPercent, KeyFlexBasisAuto)
	buf = encodeDim(buf, style.Width, KeyWidth, KeyWidthPercent, KeyWidthAuto)
	buf = encodeDim(buf, style.Height, KeyHeight, KeyHeightPercent, KeyHeightAuto)
	buf = encodeMinMaxDim(buf, style.MinWidth, KeyMinWidth, KeyMinWidthPercent)
	buf = encodeMinMaxDim(buf, style.MaxWidth, KeyMaxWidth, KeyMaxWidthPercent)
	buf = encodeMinMaxDim(buf, style.MinHeight, KeyMinHeight, KeyMinHeightPercent)
	buf = encodeMinMaxDim(buf, style.MaxHeight, KeyMaxHeight, KeyMaxHeightPercent)

	if style.AlignSelf != def.AlignSelf {
		buf = append(buf, float32(KeyAlignSelf), float32(style.AlignSelf))
	}
	if style.PositionType != def.PositionType {
		buf = append(buf, float32(KeyPositionType), float32(style.PositionType))
	}
	if layout.IsDefined(style.AspectRatio) {
		buf = append(buf, float32(KeyAspectRatio), style.AspectRatio)
	}
	if style.Display != def.Display {
		buf = append(buf, float32(KeyDisplay), float32(style.Display))
	}

	buf = encodeEdges(buf, style.Margin, KeyMargin, KeyMarginPercent, KeyMarginAuto, true)
	buf = encodeEdges(buf, style.Position, KeyPosition, KeyPositionPercent, 0, false)

	if style.MeasureFunc != nil {
		buf = append(buf, float32(KeyHasMeasureFunction))
	}
	if style.BaselineFunc != nil {
		buf = append(buf, float32(KeyHasBaselineFunction))
	}
	// Unlike Litho's ENABLE_TEXT_ROUNDING (present means on, default off),
	// this package's default is on, so presence here means it was turned
	// off for this item - the tag name keeps the "off" meaning explicit.
	if !style.EnableTextRounding {
		buf = append(buf, float32(KeyDisableTextRounding))
	}

	return buf
}

// encodeDim handles a Dimension that supports Auto (FlexBasis, Width,
// Height): Auto is the implicit default and is never written.
func encodeDim(buf []float32, d layout.Dimension, pointKey, percentKey, autoKey ItemKey) []float32 {
	switch {
	case d.IsAuto():
		return buf
	case d.Unit == layout.UnitPercent:
		if layout.IsDefined(d.Value) {
			buf = append(buf, float32(percentKey), d.Value)
		}
		return buf
	case d.Unit == layout.UnitPoint:
		if layout.IsDefined(d.Value) {
			buf = append(buf, float32(pointKey), d.Value)
		}
		return buf
	default:
		return buf
	}
}

// encodeMinMaxDim handles a Dimension with no Auto state (Min/Max
// width/height): the implicit default is Undefined.
func encodeMinMaxDim(buf []float32, d layout.Dimension, pointKey, percentKey ItemKey) []float32 {
	if d.IsUndefined() {
		return buf
	}
	if d.Unit == layout.UnitPercent {
		buf = append(buf, float32(percentKey), d.Value)
	} else {
		buf = append(buf, float32(pointKey), d.Value)
	}
	return buf
}

// encodeEdges walks every physical/shorthand edge slot and emits a tag
// for each one explicitly set. hasAuto is false when the edge set (e.g.
// Position) has no auto concept, in which case an Auto slot is skipped.
func encodeEdges(buf []float32, edges layout.Edges, pointKey, percentKey, autoKey ItemKey, hasAuto bool) []float32 {
	for side := layout.Edge(0); int(side) < len(edges); side++ {
		d := edges[side]
		switch {
		case d.IsAuto():
			if hasAuto {
				buf = append(buf, float32(autoKey), float32(side))
			}
		case d.Unit == layout.UnitPercent && layout.IsDefined(d.Value):
			buf = append(buf, float32(percentKey), float32(side), d.Value)
		case d.Unit == layout.UnitPoint && layout.IsDefined(d.Value):
			buf = append(buf, float32(pointKey), float32(side), d.Value)
		}
	}
	return buf
}

// EncodeBoxStyle flattens style into a tagged buffer, omitting every
// property equal to layout.DefaultFlexBoxStyle().
func EncodeBoxStyle(style layout.FlexBoxStyle) []float32 {
	def := layout.DefaultFlexBoxStyle()
	buf := make([]float32, 0, 16)

	if style.Direction != def.Direction {
		buf = append(buf, float32(KeyTextDirection), float32(style.Direction))
	}
	if style.FlexDirection != def.FlexDirection {
		buf = append(buf, float32(KeyFlexDirection), float32(style.FlexDirection))
	}
	if style.JustifyContent != def.JustifyContent {
		buf = append(buf, float32(KeyJustifyContent), float32(style.JustifyContent))
	}
	if style.AlignContent != def.AlignContent {
		buf = append(buf, float32(KeyAlignContent), float32(style.AlignContent))
	}
	if style.AlignItems != def.AlignItems {
		buf = append(buf, float32(KeyAlignItems), float32(style.AlignItems))
	}
	if style.FlexWrap != def.FlexWrap {
		buf = append(buf, float32(KeyFlexWrap), float32(style.FlexWrap))
	}
	if style.Overflow != def.Overflow {
		buf = append(buf, float32(KeyOverflow), float32(style.Overflow))
	}
	buf = encodeBoxEdges(buf, style.Padding, KeyPadding, KeyPaddingPercent)
	buf = encodeBoxEdges(buf, style.Border, KeyBorder, KeyBorderPercent)
	if style.PointScaleFactor != def.PointScaleFactor {
		buf = append(buf, float32(KeyPointScaleFactor), style.PointScaleFactor)
	}

	return buf
}

func encodeBoxEdges(buf []float32, edges layout.Edges, pointKey, percentKey BoxKey) []float32 {
	for side := layout.Edge(0); int(side) < len(edges); side++ {
		d := edges[side]
		switch {
		case d.Unit == layout.UnitPercent && layout.IsDefined(d.Value):
			buf = append(buf, float32(percentKey), float32(side), d.Value)
		case d.Unit == layout.UnitPoint && layout.IsDefined(d.Value):
			buf = append(buf, float32(pointKey), float32(side), d.Value)
		}
	}
	return buf
}

// EncodeOutput flattens a computed LayoutOutput into container
// width/height/baseline followed by 4 floats (Left, Top, Width, Height)
// per child in input order. The opaque per-child Result is host-owned
// and is not carried across this boundary.
func EncodeOutput(out layout.LayoutOutput) []float32 {
	buf := make([]float32, 0, 3+4*len(out.Children))
	buf = append(buf, out.Width, out.Height, out.Baseline)
	for _, c := range out.Children {
		buf = append(buf, c.Left, c.Top, c.Width, c.Height)
	}
	return buf
}
