package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// centerCommand creates the center command, which fits the layout into
// the canvas with a 100 pixel margin on every side.
func (c *CLI) centerCommand() *cobra.Command {
	var width, height float64
	var output string

	cmd := &cobra.Command{
		Use:   "center [file]",
		Short: "Fit the layout into the canvas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := graphFileArg(args)
			b, err := c.loadGraph(path)
			if err != nil {
				return err
			}

			if width == 0 {
				width = c.cfg.Render.Width
			}
			if height == 0 {
				height = c.cfg.Render.Height
			}
			bounds := geom.Rect{
				Min: geom.Point{X: 100, Y: 100},
				Max: geom.Point{X: width - 100, Y: height - 100},
			}
			b.Engine().FitToBounds(b.Graph(), bounds)

			if output == "" {
				output = path
			}
			if err := snapshot.WriteFile(b.Graph(), output); err != nil {
				return err
			}

			printSuccess("Centered into %.0fx%.0f", width, height)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "canvas width (defaults to config)")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height (defaults to config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to input)")
	return cmd
}
