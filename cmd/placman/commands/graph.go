package commands

import (
	"fmt"

	"github.com/battlesnakeio/placman/board"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "prints the segment table and checks its wiring",
	RunE: func(c *cobra.Command, args []string) error {
		g, err := board.Default()
		if err != nil {
			return err
		}
		out := c.OutOrStdout()
		fmt.Fprintf(out, "%-4s %-8s %-8s %-14s %-14s\n", "id", "start", "end", "left l/s/r", "right l/s/r")
		for _, s := range g.Segments() {
			fmt.Fprintf(out, "%-4d %-8s %-8s %-14s %-14s\n",
				s.ID, s.Start, s.End,
				neighbors(g, s.ID, board.SideLeft),
				neighbors(g, s.ID, board.SideRight))
		}
		b := g.Bounds()
		fmt.Fprintf(out, "%d segments, %dx%d, wiring ok\n", g.Len(), b.X, b.Y)
		return nil
	},
}

func neighbors(g *board.Graph, id board.SegmentID, side board.Side) string {
	return fmt.Sprintf("%d/%d/%d",
		g.Next(id, side, board.SteerLeft),
		g.Next(id, side, board.SteerStraight),
		g.Next(id, side, board.SteerRight))
}
