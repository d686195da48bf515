package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridspan/flexlayout/layout"
)

func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Run a scenario and print its computed box tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			scenario, err := LoadScenario(path)
			if err != nil {
				return err
			}

			c.Tracer.Begin(path)
			out, err := calculateScenario(scenario, c.Tracer)
			c.Tracer.End(path, err)
			if err != nil {
				return err
			}

			fmt.Fprint(c.Out, RenderTree(scenario, out))
			return nil
		},
	}
}

// calculateScenario runs Calculate over a scenario's root box, bounding
// it exactly when the file gave a width/height and leaving it unbounded
// (content-driven) otherwise.
func calculateScenario(scenario *Scenario, obs layout.MeasureObserver) (layout.LayoutOutput, error) {
	box := toBoxStyle(scenario.Box)
	items := make([]layout.FlexItemStyle, len(scenario.Items))
	for i, item := range scenario.Items {
		items[i] = toItemStyle(item)
	}

	minW, maxW := boundsFor(scenario.Box.Width)
	minH, maxH := boundsFor(scenario.Box.Height)

	return layout.Calculate(box, items, minW, maxW, minH, maxH, maxW, layout.WithObserver(obs))
}

func boundsFor(v *float32) (min, max float32) {
	if v == nil {
		return layout.Undefined(), layout.Undefined()
	}
	return *v, *v
}
