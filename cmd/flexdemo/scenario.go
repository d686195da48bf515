package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/gridspan/flexlayout/layout"
)

// Scenario is the TOML shape of one demo layout tree: a root container
// plus its items, each of which may itself carry a nested container and
// its own items (the core stays single-level; nesting is composed here,
// the way a host embedding the core is expected to).
type Scenario struct {
	Box   BoxConfig    `toml:"box"`
	Items []ItemConfig `toml:"items"`
}

// BoxConfig is the TOML form of a FlexBoxStyle plus the bounds Calculate
// is invoked with for the root.
type BoxConfig struct {
	Width            *float32 `toml:"width"`
	Height           *float32 `toml:"height"`
	Direction        string   `toml:"direction"`
	FlexDirection    string   `toml:"flex_direction"`
	JustifyContent   string   `toml:"justify_content"`
	AlignContent     string   `toml:"align_content"`
	AlignItems       string   `toml:"align_items"`
	FlexWrap         string   `toml:"flex_wrap"`
	Overflow         string   `toml:"overflow"`
	Padding          float32  `toml:"padding"`
	Border           float32  `toml:"border"`
	PointScaleFactor float32  `toml:"point_scale_factor"`
}

// ItemConfig is the TOML form of one FlexItemStyle. Pointer fields
// distinguish "not set in the file" from "explicitly zero".
type ItemConfig struct {
	Label       string       `toml:"label"`
	Width       *float32     `toml:"width"`
	Height      *float32     `toml:"height"`
	FlexGrow    float32      `toml:"flex_grow"`
	FlexShrink  *float32     `toml:"flex_shrink"`
	FlexBasis   *float32     `toml:"flex_basis"`
	MinWidth    *float32     `toml:"min_width"`
	MaxWidth    *float32     `toml:"max_width"`
	MinHeight   *float32     `toml:"min_height"`
	MaxHeight   *float32     `toml:"max_height"`
	AlignSelf   string       `toml:"align_self"`
	AspectRatio *float32     `toml:"aspect_ratio"`
	Margin      float32      `toml:"margin"`
	Box         *BoxConfig   `toml:"box"`
	Items       []ItemConfig `toml:"items"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flexdemo: read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("flexdemo: parse scenario %s: %w", path, err)
	}
	return &s, nil
}

var directionByName = map[string]layout.TextDirection{
	"inherit": layout.Inherit,
	"ltr":     layout.LTR,
	"rtl":     layout.RTL,
}

var flexDirectionByName = map[string]layout.Direction{
	"row":             layout.Row,
	"row-reverse":     layout.RowReverse,
	"column":          layout.Column,
	"column-reverse":  layout.ColumnReverse,
}

var justifyByName = map[string]layout.Justify{
	"flex-start":    layout.JustifyFlexStart,
	"flex-end":      layout.JustifyFlexEnd,
	"center":        layout.JustifyCenter,
	"space-between": layout.JustifySpaceBetween,
	"space-around":  layout.JustifySpaceAround,
	"space-evenly":  layout.JustifySpaceEvenly,
}

var alignByName = map[string]layout.Align{
	"auto":          layout.AlignAuto,
	"flex-start":    layout.AlignFlexStart,
	"flex-end":      layout.AlignFlexEnd,
	"center":        layout.AlignCenter,
	"stretch":       layout.AlignStretch,
	"baseline":      layout.AlignBaseline,
	"space-between": layout.AlignSpaceBetween,
	"space-around":  layout.AlignSpaceAround,
	"space-evenly":  layout.AlignSpaceEvenly,
}

var wrapByName = map[string]layout.Wrap{
	"nowrap":       layout.NoWrap,
	"wrap":         layout.WrapNormal,
	"wrap-reverse": layout.WrapReverse,
}

var overflowByName = map[string]layout.Overflow{
	"visible": layout.OverflowVisible,
	"hidden":  layout.OverflowHidden,
	"scroll":  layout.OverflowScroll,
}

// toBoxStyle converts a BoxConfig into a FlexBoxStyle, starting from the
// package defaults and overlaying whatever the file set. An empty string
// field means "leave the default".
func toBoxStyle(c BoxConfig) layout.FlexBoxStyle {
	style := layout.DefaultFlexBoxStyle()

	if d, ok := directionByName[c.Direction]; ok {
		style.Direction = d
	}
	if d, ok := flexDirectionByName[c.FlexDirection]; ok {
		style.FlexDirection = d
	}
	if j, ok := justifyByName[c.JustifyContent]; ok {
		style.JustifyContent = j
	}
	if a, ok := alignByName[c.AlignContent]; ok {
		style.AlignContent = a
	}
	if a, ok := alignByName[c.AlignItems]; ok {
		style.AlignItems = a
	}
	if w, ok := wrapByName[c.FlexWrap]; ok {
		style.FlexWrap = w
	}
	if o, ok := overflowByName[c.Overflow]; ok {
		style.Overflow = o
	}
	if c.Padding != 0 {
		style.Padding = style.Padding.Set(layout.EdgeAll, layout.PointDim(c.Padding))
	}
	if c.Border != 0 {
		style.Border = style.Border.Set(layout.EdgeAll, layout.PointDim(c.Border))
	}
	if c.PointScaleFactor != 0 {
		style.PointScaleFactor = c.PointScaleFactor
	}
	return style
}

// toItemStyle converts an ItemConfig into a FlexItemStyle. Items that
// nest a Box and further Items get a MeasureFunc that recursively calls
// layout.Calculate over their own subtree; leaf items with a Label get a
// MeasureFunc reporting the label's cell width and one line of height.
func toItemStyle(c ItemConfig) layout.FlexItemStyle {
	style := layout.DefaultFlexItemStyle()

	if c.Width != nil {
		style.Width = layout.PointDim(*c.Width)
	}
	if c.Height != nil {
		style.Height = layout.PointDim(*c.Height)
	}
	style.FlexGrow = c.FlexGrow
	if c.FlexShrink != nil {
		style.FlexShrink = *c.FlexShrink
	}
	if c.FlexBasis != nil {
		style.FlexBasis = layout.PointDim(*c.FlexBasis)
	}
	if c.MinWidth != nil {
		style.MinWidth = layout.PointDim(*c.MinWidth)
	}
	if c.MaxWidth != nil {
		style.MaxWidth = layout.PointDim(*c.MaxWidth)
	}
	if c.MinHeight != nil {
		style.MinHeight = layout.PointDim(*c.MinHeight)
	}
	if c.MaxHeight != nil {
		style.MaxHeight = layout.PointDim(*c.MaxHeight)
	}
	if a, ok := alignByName[c.AlignSelf]; ok {
		style.AlignSelf = a
	}
	if c.AspectRatio != nil {
		style.AspectRatio = *c.AspectRatio
	}
	if c.Margin != 0 {
		style.Margin = style.Margin.Set(layout.EdgeAll, layout.PointDim(c.Margin))
	}

	switch {
	case c.Box != nil:
		nested := toBoxStyle(*c.Box)
		nestedItems := make([]layout.FlexItemStyle, len(c.Items))
		for i, child := range c.Items {
			nestedItems[i] = toItemStyle(child)
		}
		style.MeasureData = nestedScenario{box: nested, items: nestedItems}
		style.MeasureFunc = measureNested
	case c.Label != "":
		style.MeasureData = c.Label
		style.MeasureFunc = measureLabel
	}

	return style
}

// nestedScenario is the MeasureData for an item that is itself a flex
// container; it is resolved by measureNested, below.
type nestedScenario struct {
	box   layout.FlexBoxStyle
	items []layout.FlexItemStyle
}

// measureNested runs a full nested Calculate call bounded by the space
// the parent offered, and carries the nested LayoutOutput through as the
// MeasureOutput's Result so the renderer can draw the subtree without
// recomputing it.
func measureNested(data any, minW, maxW, minH, maxH, ownerW, ownerH float32) (layout.MeasureOutput, error) {
	ns := data.(nestedScenario)
	out, err := layout.Calculate(ns.box, ns.items, minW, maxW, minH, maxH, ownerW)
	if err != nil {
		return layout.MeasureOutput{}, err
	}
	return layout.MeasureOutput{Width: out.Width, Height: out.Height, Baseline: layout.Undefined(), Result: out}, nil
}

// measureLabel reports a leaf's intrinsic size as its label's character
// count by one line, clamped into the offered bounds.
func measureLabel(data any, minW, maxW, minH, maxH, ownerW, ownerH float32) (layout.MeasureOutput, error) {
	label := data.(string)
	w := float32(utf8.RuneCountInString(label))
	h := float32(1)
	if layout.IsDefined(maxW) && w > maxW {
		w = maxW
	}
	if layout.IsDefined(minW) && w < minW {
		w = minW
	}
	if layout.IsDefined(maxH) && h > maxH {
		h = maxH
	}
	if layout.IsDefined(minH) && h < minH {
		h = minH
	}
	return layout.MeasureOutput{Width: w, Height: h, Baseline: layout.Undefined(), Result: label}, nil
}
