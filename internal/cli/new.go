package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/planar"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// newCommand creates the new command, which writes a snapshot seeded
// with the initial triangle.
func (c *CLI) newCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a graph seeded with the initial triangle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := graphFileArg(args)
			if !force && fileExists(path) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			b := c.newBuilder(planar.New())
			b.StartTriangle()
			if err := snapshot.WriteFile(b.Graph(), path); err != nil {
				return err
			}

			g := b.Graph()
			c.Logger.Debug("seeded graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())
			printSuccess("Created %s", path)
			printStats(g.VertexCount(), g.EdgeCount(), false)
			printNextStep("Grow it", fmt.Sprintf("%s grow %s --count 10", appName, path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
