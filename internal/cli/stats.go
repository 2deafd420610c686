package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command, which prints graph size,
// periphery, and edge length statistics.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print graph statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := graphFileArg(args)
			b, err := c.loadGraph(path)
			if err != nil {
				return err
			}
			g := b.Graph()

			fmt.Println(StyleTitle.Render(path))
			printNewline()
			printKeyValue("Vertices", StyleNumber.Render(fmt.Sprintf("%d", g.VertexCount())))
			printKeyValue("Edges", StyleNumber.Render(fmt.Sprintf("%d", g.EdgeCount())))
			printKeyValue("Next vertex ID", fmt.Sprintf("%d", g.NextID()))
			printKeyValue("Periphery", formatPeriphery(g.Periphery()))

			st := g.EdgeLengthStats()
			printNewline()
			printKeyValue("Edge length", fmt.Sprintf("%.2f ± %.2f", st.Mean, st.StdDev))
			printKeyValue("Shortest", fmt.Sprintf("%.2f", st.Min))
			printKeyValue("Longest", fmt.Sprintf("%.2f", st.Max))

			if err := b.Validate(); err != nil {
				printNewline()
				printWarning("integrity: %v", err)
				return nil
			}
			printNewline()
			printDetail("integrity ok")
			return nil
		},
	}
}

// formatPeriphery renders the clockwise periphery as "3 → 1 → 2".
func formatPeriphery(ids []int) string {
	if len(ids) == 0 {
		return "(none)"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}
