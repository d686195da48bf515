package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) benchCommand() *cobra.Command {
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench <scenario.toml>",
		Short: "Repeatedly run a scenario and report elapsed time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			scenario, err := LoadScenario(path)
			if err != nil {
				return err
			}

			c.Tracer.Begin(path)
			start := time.Now()
			for i := 0; i < repeat; i++ {
				if _, err := calculateScenario(scenario, c.Tracer); err != nil {
					c.Tracer.End(path, err)
					return err
				}
			}
			elapsed := time.Since(start)
			c.Tracer.End(path, nil)

			out, err := calculateScenario(scenario, nil)
			if err != nil {
				return err
			}

			perRun := elapsed
			if repeat > 0 {
				perRun = elapsed / time.Duration(repeat)
			}
			fmt.Fprintln(c.Out, RenderSummary(out, fmt.Sprintf("%d runs, %s total, %s/run", repeat, elapsed.Round(time.Microsecond), perRun.Round(time.Microsecond))))
			return nil
		},
	}

	cmd.Flags().IntVar(&repeat, "repeat", 100, "number of times to re-run the layout")
	return cmd
}
