package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// growCommand creates the grow command, which inserts vertices on
// random periphery segments and writes the result back.
func (c *CLI) growCommand() *cobra.Command {
	var count int
	var output string

	cmd := &cobra.Command{
		Use:   "grow [file]",
		Short: "Insert vertices on random periphery segments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			path := graphFileArg(args)
			b, err := c.loadGraph(path)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			sp := newSpinner(cmd.Context(), fmt.Sprintf("inserting 0/%d", count))
			sp.Start()
			for i := range count {
				if err := cmd.Context().Err(); err != nil {
					sp.Stop()
					return err
				}
				id, err := b.AddRandomVertex()
				if err != nil {
					sp.StopWithError(fmt.Sprintf("insert %d failed", i+1))
					return err
				}
				c.Logger.Debug("inserted", "vertex", id)
				sp.SetMessage(fmt.Sprintf("inserting %d/%d", i+1, count))
			}
			sp.Stop()

			if err := b.Validate(); err != nil {
				return fmt.Errorf("graph integrity after growth: %w", err)
			}

			if output == "" {
				output = path
			}
			if err := snapshot.WriteFile(b.Graph(), output); err != nil {
				return err
			}

			g := b.Graph()
			p.done(fmt.Sprintf("Inserted %d vertices", count))
			printStats(g.VertexCount(), g.EdgeCount(), false)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of vertices to insert")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to input)")
	return cmd
}
