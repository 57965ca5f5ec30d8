package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborlab/morpho/units"
)

func newConvertCmd() *cobra.Command {
	var (
		spaceStr string
		onError  string
	)

	cmd := &cobra.Command{
		Use:   `convert "<quantity>"`,
		Short: "map a physical quantity into a coordinate space",
		Long: `Convert a quantity such as "1 nanometer" into the native units of a
coordinate space described by its scale, e.g. --space "8 nanometer" for an
8nm-per-voxel volume.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := units.Parse(args[0])
			if err != nil {
				return err
			}
			space, err := units.Parse(spaceStr)
			if err != nil {
				return err
			}
			v, err := units.ToSpace(q, units.FixedSpace(space), units.OnError(onError))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			return nil
		},
	}

	cmd.Flags().StringVar(&spaceStr, "space", "", `target space units, e.g. "8 nanometer"`)
	cmd.Flags().StringVar(&onError, "on-error", "raise", `"raise" or "ignore" for dimensionless targets`)
	_ = cmd.MarkFlagRequired("space")
	return cmd
}
