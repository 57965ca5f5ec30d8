// Command morpho builds dotprops representations from skeleton files, maps
// physical units into neuron coordinate space, and plots stored clouds.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "morpho",
		Short:         "dotprops and unit tools for neuron geometry",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newDotpropsCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newPlotCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
