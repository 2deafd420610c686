package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// addCommand creates the add command, which inserts a vertex on a
// chosen periphery segment.
func (c *CLI) addCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "add <file> <start> <end>",
		Short: "Insert a vertex on the periphery segment from start to end",
		Long: `Insert a vertex connected to every periphery vertex on the clockwise
run from start to end. Both endpoints must lie on the periphery and be
adjacent along it. Reversing the endpoints selects the complementary
run around the hull.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("start vertex %q is not an integer", args[1])
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("end vertex %q is not an integer", args[2])
			}

			b, err := c.loadGraph(args[0])
			if err != nil {
				return err
			}

			id, err := b.AddManualVertex(start, end)
			if err != nil {
				return err
			}

			if output == "" {
				output = args[0]
			}
			if err := snapshot.WriteFile(b.Graph(), output); err != nil {
				return err
			}

			g := b.Graph()
			v, _ := g.Vertex(id)
			printSuccess("Inserted vertex %d at (%.1f, %.1f)", id, v.Pos.X, v.Pos.Y)
			printStats(g.VertexCount(), g.EdgeCount(), false)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to input)")
	return cmd
}
