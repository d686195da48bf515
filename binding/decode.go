package binding

import (
	"errors"
	"fmt"

	"github.com/gridspan/flexlayout/layout"
)

// ErrTruncatedBuffer is wrapped by the error returned when a buffer ends
// in the middle of a tag's expected arity.
var ErrTruncatedBuffer = errors.New("binding: truncated buffer")

// ErrUnknownKey is wrapped by the error returned when a buffer contains a
// key ordinal this version of the package does not recognize.
var ErrUnknownKey = errors.New("binding: unknown key")

// DecodeError reports where in a buffer decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("binding: decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeItemStyle parses buf into a FlexItemStyle, starting from
// layout.DefaultFlexItemStyle() and overlaying each tag in turn. Tags
// that carry a function presence marker (HAS_MEASURE_FUNCTION,
// HAS_BASELINE_FUNCTION) are informational only: a buffer cannot carry
// an actual Go func value, so those two keys are accepted and skipped.
func DecodeItemStyle(buf []float32) (layout.FlexItemStyle, error) {
	style := layout.DefaultFlexItemStyle()

	i := 0
	for i < len(buf) {
		key := ItemKey(buf[i])
		if rem := len(buf) - i; rem < key.arity() {
			return style, &DecodeError{Offset: i, Err: ErrTruncatedBuffer}
		}

		switch key {
		case KeyFlex:
			// FLEX is a shorthand Litho expands into grow/shrink/basis at
			// write time; this package's callers set those three directly,
			// so FLEX is accepted for interoperability but folds into grow.
			style.FlexGrow = buf[i+1]
		case KeyFlexGrow:
			style.FlexGrow = buf[i+1]
		case KeyFlexShrink:
			style.FlexShrink = buf[i+1]
		case KeyFlexBasis:
			style.FlexBasis = layout.PointDim(buf[i+1])
		case KeyFlexBasisPercent:
			style.FlexBasis = layout.PercentDim(buf[i+1])
		case KeyFlexBasisAuto:
			style.FlexBasis = layout.AutoDim()
		case KeyWidth:
			style.Width = layout.PointDim(buf[i+1])
		case KeyWidthPercent:
			style.Width = layout.PercentDim(buf[i+1])
		case KeyWidthAuto:
			style.Width = layout.AutoDim()
		case KeyMinWidth:
			style.MinWidth = layout.PointDim(buf[i+1])
		case KeyMinWidthPercent:
			style.MinWidth = layout.PercentDim(buf[i+1])
		case KeyMaxWidth:
			style.MaxWidth = layout.PointDim(buf[i+1])
		case KeyMaxWidthPercent:
			style.MaxWidth = layout.PercentDim(buf[i+1])
		case KeyHeight:
			style.Height = layout.PointDim(buf[i+1])
		case KeyHeightPercent:
			style.Height = layout.PercentDim(buf[i+1])
		case KeyHeightAuto:
			style.Height = layout.AutoDim()
		case KeyMinHeight:
			style.MinHeight = layout.PointDim(buf[i+1])
		case KeyMinHeightPercent:
			style.MinHeight = layout.PercentDim(buf[i+1])
		case KeyMaxHeight:
			style.MaxHeight = layout.PointDim(buf[i+1])
		case KeyMaxHeightPercent:
			style.MaxHeight = layout.PercentDim(buf[i+1])
		case KeyAlignSelf:
			style.AlignSelf = layout.Align(buf[i+1])
		case KeyPositionType:
			style.PositionType = layout.PositionType(buf[i+1])
		case KeyAspectRatio:
			style.AspectRatio = buf[i+1]
		case KeyDisplay:
			style.Display = layout.Display(buf[i+1])
		case KeyMargin:
			style.Margin = style.Margin.Set(layout.Edge(buf[i+1]), layout.PointDim(buf[i+2]))
		case KeyMarginPercent:
			style.Margin = style.Margin.Set(layout.Edge(buf[i+1]), layout.PercentDim(buf[i+2]))
		case KeyMarginAuto:
			style.Margin = style.Margin.Set(layout.Edge(buf[i+1]), layout.AutoDim())
		case KeyPosition:
			style.Position = style.Position.Set(layout.Edge(buf[i+1]), layout.PointDim(buf[i+2]))
		case KeyPositionPercent:
			style.Position = style.Position.Set(layout.Edge(buf[i+1]), layout.PercentDim(buf[i+2]))
		case KeyHasMeasureFunction, KeyHasBaselineFunction:
			// informational only, see doc comment above.
		case KeyDisableTextRounding:
			style.EnableTextRounding = false
		default:
			return style, &DecodeError{Offset: i, Err: ErrUnknownKey}
		}

		i += key.arity()
	}

	return style, nil
}

// DecodeBoxStyle parses buf into a FlexBoxStyle, starting from
// layout.DefaultFlexBoxStyle() and overlaying each tag in turn.
func DecodeBoxStyle(buf []float32) (layout.FlexBoxStyle, error) {
	style := layout.DefaultFlexBoxStyle()

	i := 0
	for i < len(buf) {
		key := BoxKey(buf[i])
		if rem := len(buf) - i; rem < key.arity() {
			return style, &DecodeError{Offset: i, Err: ErrTruncatedBuffer}
		}

		switch key {
		case KeyTextDirection:
			style.Direction = layout.TextDirection(buf[i+1])
		case KeyFlexDirection:
			style.FlexDirection = layout.Direction(buf[i+1])
		case KeyJustifyContent:
			style.JustifyContent = layout.Justify(buf[i+1])
		case KeyAlignContent:
			style.AlignContent = layout.Align(buf[i+1])
		case KeyAlignItems:
			style.AlignItems = layout.Align(buf[i+1])
		case KeyFlexWrap:
			style.FlexWrap = layout.Wrap(buf[i+1])
		case KeyOverflow:
			style.Overflow = layout.Overflow(buf[i+1])
		case KeyPadding:
			style.Padding = style.Padding.Set(layout.Edge(buf[i+1]), layout.PointDim(buf[i+2]))
		case KeyPaddingPercent:
			style.Padding = style.Padding.Set(layout.Edge(buf[i+1]), layout.PercentDim(buf[i+2]))
		case KeyBorder:
			style.Border = style.Border.Set(layout.Edge(buf[i+1]), layout.PointDim(buf[i+2]))
		case KeyBorderPercent:
			style.Border = style.Border.Set(layout.Edge(buf[i+1]), layout.PercentDim(buf[i+2]))
		case KeyPointScaleFactor:
			style.PointScaleFactor = buf[i+1]
		default:
			return style, &DecodeError{Offset: i, Err: ErrUnknownKey}
		}

		i += key.arity()
	}

	return style, nil
}
