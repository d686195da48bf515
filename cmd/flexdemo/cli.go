// Command flexdemo drives flexlayout.Calculate from TOML scenario files,
// printing the resulting box tree (or dumping it as a flat float buffer
// for inspection) without needing a real terminal host to embed the
// engine in.
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridspan/flexlayout/internal/tracing"
)

// Log levels re-exported for main's flag wiring.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by every subcommand.
type CLI struct {
	Out     io.Writer
	Tracer  *tracing.Tracer
	Verbose bool
}

// New creates a CLI writing diagnostics to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Out:    w,
		Tracer: tracing.New(w, level),
	}
}

// SetLogLevel updates the underlying tracer's verbosity.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Tracer = tracing.New(c.Out, level)
}

// RootCommand builds the flexdemo cobra tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "flexdemo",
		Short:        "flexdemo runs flex layout scenarios from TOML files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if c.Verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
		},
	}

	root.PersistentFlags().BoolVarP(&c.Verbose, "verbose", "v", false, "enable verbose measurement tracing")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.benchCommand())

	return root
}

func main() {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
