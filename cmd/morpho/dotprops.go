package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arborlab/morpho/batch"
	"github.com/arborlab/morpho/dotprops"
	"github.com/arborlab/morpho/internal/morphodb"
	"github.com/arborlab/morpho/neuron"
	"github.com/arborlab/morpho/units"
)

func newDotpropsCmd() *cobra.Command {
	var (
		k          int
		resample   float64
		resampleIn string
		unitsStr   string
		dbPath     string
		parallel   bool
		cores      int
		chunkSize  int
	)

	cmd := &cobra.Command{
		Use:   "dotprops <file.swc> [file.swc ...]",
		Short: "build dotprops from SWC skeleton files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u units.Quantity
			if unitsStr != "" {
				var err error
				if u, err = units.Parse(unitsStr); err != nil {
					return err
				}
			}

			skeletons := make([]*neuron.Skeleton, 0, len(args))
			for _, path := range args {
				s, err := readSWC(path, u)
				if err != nil {
					return err
				}
				skeletons = append(skeletons, s)
			}

			buildOpts := dotprops.Options{K: k, Resample: resample, ResampleIn: resampleIn}
			fn := func(s *neuron.Skeleton, _ batch.Args) (any, error) {
				return dotprops.Build(dotprops.FromSkeleton(s), buildOpts)
			}

			opts := batch.DefaultOptions()
			opts.Desc = "Dotprops"
			opts.Combine = neuron.List(nil)
			opts.ChunkSize = chunkSize
			if parallel {
				opts.Parallel = true
				opts.Pool = batch.WorkerPool(cores)
			}

			proc, err := batch.New(skeletons, fn, opts)
			if err != nil {
				return err
			}
			res, err := proc.Run(nil)
			if err != nil {
				return err
			}
			list, ok := res.(neuron.List)
			if !ok {
				return errors.Newf("unexpected result type %T", res)
			}

			store, err := morphodb.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, n := range list {
				dp := n.(*neuron.Dotprops)
				if err := store.Save(dp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tk=%d\tpoints=%d\n",
					dp.ID(), dp.Name(), dp.K, dp.Len())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&k, "k", 20, "nearest neighbours per tangent (0 uses skeleton edges)")
	cmd.Flags().Float64Var(&resample, "resample", 0, "resample resolution in native units (0 disables)")
	cmd.Flags().StringVar(&resampleIn, "resample-in", "", `resample resolution as a unit string, e.g. "1 micron"`)
	cmd.Flags().StringVar(&unitsStr, "units", "", `units per coordinate, e.g. "8 nanometer"`)
	cmd.Flags().StringVar(&dbPath, "db", "morpho.db", "output SQLite database")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "build across worker goroutines")
	cmd.Flags().IntVar(&cores, "cores", 0, "worker count for --parallel (0 = half the CPUs)")
	cmd.Flags().IntVar(&chunkSize, "chunksize", 1, "items per parallel work chunk")
	return cmd
}
