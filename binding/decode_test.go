package binding

import (
	"errors"
	"testing"

	"github.com/gridspan/flexlayout/layout"
)

func TestEncodeDecodeItemStyle_RoundTrip(t *testing.T) {
	tests := map[string]layout.FlexItemStyle{
		"all defaults": layout.DefaultFlexItemStyle(),
		"grow and shrink": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.FlexGrow = 2
			s.FlexShrink = 0
			return s
		}(),
		"fixed width and height": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.Width = layout.PointDim(100)
			s.Height = layout.PercentDim(50)
			return s
		}(),
		"min and max clamps": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.MinWidth = layout.PointDim(10)
			s.MaxWidth = layout.PercentDim(90)
			return s
		}(),
		"align self and position type": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.AlignSelf = layout.AlignCenter
			s.PositionType = layout.PositionAbsolute
			return s
		}(),
		"aspect ratio": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.AspectRatio = 1.5
			return s
		}(),
		"margin mixed auto and point": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.Margin = s.Margin.Set(layout.EdgeLeft, layout.AutoDim()).
				Set(layout.EdgeTop, layout.PointDim(4))
			return s
		}(),
		"position insets": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.Position = s.Position.Set(layout.EdgeRight, layout.PointDim(8))
			return s
		}(),
		"display none": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.Display = layout.DisplayNone
			return s
		}(),
		"text rounding disabled": func() layout.FlexItemStyle {
			s := layout.DefaultFlexItemStyle()
			s.EnableTextRounding = false
			return s
		}(),
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			buf := EncodeItemStyle(want)
			got, err := DecodeItemStyle(buf)
			if err != nil {
				t.Fatalf("DecodeItemStyle: %v", err)
			}

			// MeasureFunc/BaselineFunc are not carried across the buffer;
			// zero them on both sides before comparing.
			want.MeasureFunc = nil
			want.BaselineFunc = nil
			got.MeasureFunc = nil
			got.BaselineFunc = nil

			if !itemStylesEqual(got, want) {
				t.Errorf("round trip mismatch:\n got  = %+v\n want = %+v", got, want)
			}
		})
	}
}

func TestEncodeItemStyle_OmitsDefaults(t *testing.T) {
	buf := EncodeItemStyle(layout.DefaultFlexItemStyle())
	if len(buf) != 0 {
		t.Errorf("expected empty buffer for all-default style, got %v", buf)
	}
}

func TestDecodeItemStyle_TruncatedBuffer(t *testing.T) {
	buf := []float32{float32(KeyMargin), float32(layout.EdgeLeft)} // missing the value slot
	_, err := DecodeItemStyle(buf)
	if err == nil {
		t.Fatal("expected error for truncated buffer")
	}
	if !errors.Is(err, ErrTruncatedBuffer) {
		t.Errorf("errors.Is(err, ErrTruncatedBuffer) = false, err = %v", err)
	}
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("errors.As failed to find *DecodeError in %v", err)
	}
	if decErr.Offset != 0 {
		t.Errorf("Offset = %d, want 0", decErr.Offset)
	}
}

func TestDecodeItemStyle_UnknownKey(t *testing.T) {
	buf := []float32{255, 0}
	_, err := DecodeItemStyle(buf)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("errors.Is(err, ErrUnknownKey) = false, err = %v", err)
	}
}

func TestEncodeDecodeBoxStyle_RoundTrip(t *testing.T) {
	tests := map[string]layout.FlexBoxStyle{
		"all defaults": layout.DefaultFlexBoxStyle(),
		"column with padding": func() layout.FlexBoxStyle {
			s := layout.DefaultFlexBoxStyle()
			s.FlexDirection = layout.Column
			s.Padding = s.Padding.Set(layout.EdgeAll, layout.PointDim(2))
			return s
		}(),
		"justify and align": func() layout.FlexBoxStyle {
			s := layout.DefaultFlexBoxStyle()
			s.JustifyContent = layout.JustifySpaceBetween
			s.AlignItems = layout.AlignCenter
			s.AlignContent = layout.AlignFlexEnd
			return s
		}(),
		"wrap reverse and rtl": func() layout.FlexBoxStyle {
			s := layout.DefaultFlexBoxStyle()
			s.FlexWrap = layout.WrapReverse
			s.Direction = layout.RTL
			return s
		}(),
		"scaled border": func() layout.FlexBoxStyle {
			s := layout.DefaultFlexBoxStyle()
			s.Border = s.Border.Set(layout.EdgeTop, layout.PercentDim(5))
			s.PointScaleFactor = 2
			return s
		}(),
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			buf := EncodeBoxStyle(want)
			got, err := DecodeBoxStyle(buf)
			if err != nil {
				t.Fatalf("DecodeBoxStyle: %v", err)
			}
			if got != want {
				t.Errorf("round trip mismatch:\n got  = %+v\n want = %+v", got, want)
			}
		})
	}
}

func TestEncodeOutput(t *testing.T) {
	out := layout.LayoutOutput{
		Width: 100, Height: 50, Baseline: 12,
		Children: []layout.ChildLayout{
			{Left: 0, Top: 0, Width: 20, Height: 10},
			{Left: 20, Top: 0, Width: 80, Height: 50},
		},
	}

	buf := EncodeOutput(out)
	want := []float32{100, 50, 12, 0, 0, 20, 10, 20, 0, 80, 50}
	if len(buf) != len(want) {
		t.Fatalf("len(buf) = %d, want %d", len(buf), len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

// itemStylesEqual compares every field relevant to round-tripping; it
// exists because FlexItemStyle holds func fields, which make the struct
// incomparable with ==, and an undefined AspectRatio is NaN, which never
// equals itself.
func itemStylesEqual(a, b layout.FlexItemStyle) bool {
	return a.FlexGrow == b.FlexGrow &&
		a.FlexShrink == b.FlexShrink &&
		a.FlexBasis == b.FlexBasis &&
		a.Width == b.Width &&
		a.Height == b.Height &&
		a.MinWidth == b.MinWidth &&
		a.MinHeight == b.MinHeight &&
		a.MaxWidth == b.MaxWidth &&
		a.MaxHeight == b.MaxHeight &&
		a.Margin == b.Margin &&
		a.Position == b.Position &&
		a.AlignSelf == b.AlignSelf &&
		a.PositionType == b.PositionType &&
		sameFloat(a.AspectRatio, b.AspectRatio) &&
		a.Display == b.Display &&
		a.EnableTextRounding == b.EnableTextRounding
}

func sameFloat(a, b float32) bool {
	if !layout.IsDefined(a) && !layout.IsDefined(b) {
		return true
	}
	return a == b
}
