package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridspan/flexlayout/binding"
)

func (c *CLI) dumpCommand() *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "dump <scenario.toml>",
		Short: "Dump a scenario's styles and computed output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			scenario, err := LoadScenario(path)
			if err != nil {
				return err
			}

			if flat {
				return dumpFlat(c, scenario)
			}
			return dumpTree(c, scenario)
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "dump as binding-encoded float32 buffers instead of a box tree")
	return cmd
}

func dumpTree(c *CLI, scenario *Scenario) error {
	out, err := calculateScenario(scenario, c.Tracer)
	if err != nil {
		return err
	}
	fmt.Fprint(c.Out, RenderTree(scenario, out))
	return nil
}

// dumpFlat prints the binding-encoded box style, every item style, and
// the computed output as flat float32 buffers, one per line.
func dumpFlat(c *CLI, scenario *Scenario) error {
	boxBuf := binding.EncodeBoxStyle(toBoxStyle(scenario.Box))
	fmt.Fprintf(c.Out, "box: %v\n", boxBuf)

	for i, item := range scenario.Items {
		itemBuf := binding.EncodeItemStyle(toItemStyle(item))
		fmt.Fprintf(c.Out, "item[%d]: %v\n", i, itemBuf)
	}

	out, err := calculateScenario(scenario, c.Tracer)
	if err != nil {
		return err
	}

	outBuf := binding.EncodeOutput(out)
	fmt.Fprintf(c.Out, "output: %v\n", outBuf)
	return nil
}
