package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridspan/flexlayout/layout"
)

var (
	styleRect  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTree renders out as an indented box tree, walking in parallel
// with the Scenario that produced it so each node can show its source
// label; nested containers are recovered from the MeasureOutput.Result
// stashed by measureNested rather than being recomputed.
func RenderTree(scenario *Scenario, out layout.LayoutOutput) string {
	var b strings.Builder
	b.WriteString(styleLabel.Render("root") + " " + rectString(0, 0, out.Width, out.Height) + "\n")
	renderChildren(&b, scenario.Items, out.Children, 1)
	return b.String()
}

func renderChildren(b *strings.Builder, items []ItemConfig, children []layout.ChildLayout, depth int) {
	indent := strings.Repeat("  ", depth)
	for i, child := range children {
		name := fmt.Sprintf("item[%d]", i)
		if i < len(items) && items[i].Label != "" {
			name = items[i].Label
		}

		b.WriteString(indent + styleLabel.Render(name) + " " + rectString(child.Left, child.Top, child.Width, child.Height) + "\n")

		if nested, ok := child.Result.(layout.LayoutOutput); ok && i < len(items) && items[i].Box != nil {
			renderChildren(b, items[i].Items, nested.Children, depth+1)
		}
	}
}

func rectString(left, top, width, height float32) string {
	return styleRect.Render(fmt.Sprintf("(%.0f,%.0f) %.0fx%.0f", left, top, width, height))
}

// RenderSummary prints a one-line count used by bench.
func RenderSummary(out layout.LayoutOutput, elapsed string) string {
	return fmt.Sprintf("%s container=%.0fx%.0f children=%d %s",
		styleLabel.Render("layout"), out.Width, out.Height, len(out.Children), styleDim.Render(elapsed))
}
