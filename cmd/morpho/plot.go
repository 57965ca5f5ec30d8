package main

import (
	"image/color"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arborlab/morpho/internal/morphodb"
)

func newPlotCmd() *cobra.Command {
	var (
		dbPath string
		id     string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "render a stored dotprops cloud to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := morphodb.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			dp, err := store.Load(id)
			if err != nil {
				return err
			}

			xys := make(plotter.XYs, dp.Len())
			for i, pt := range dp.Points {
				xys[i].X = pt[0]
				xys[i].Y = pt[1]
			}

			p := plot.New()
			p.Title.Text = dp.Name()
			p.X.Label.Text = "x"
			p.Y.Label.Text = "y"

			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return err
			}
			// Shade each point by its confidence: blue isotropic, red linear.
			alpha := dp.Alpha
			sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
				a := 0.0
				if i < len(alpha) {
					a = alpha[i]
				}
				return draw.GlyphStyle{
					Color:  color.RGBA{R: uint8(40 + 215*a), G: 40, B: uint8(255 - 215*a), A: 255},
					Radius: vg.Points(1.2),
					Shape:  draw.CircleGlyph{},
				}
			}
			p.Add(sc)

			return p.Save(8*vg.Inch, 8*vg.Inch, out)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "morpho.db", "SQLite database to read")
	cmd.Flags().StringVar(&id, "id", "", "dotprops ID to plot")
	cmd.Flags().StringVar(&out, "out", "dotprops.png", "output PNG path")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
