package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/grid"
)

type neighborJSON struct {
	Direction string   `json:"direction"`
	Angle     float64  `json:"angle"`
	Cell      cellJSON `json:"cell"`
}

func newNeighborsCmd(a *app) *cobra.Command {
	var direction string
	cmd := &cobra.Command{
		Use:   "neighbors <cell>",
		Short: "List the edge neighbors of a cell",
		Long: `Neighbors lists every direction defined at the cell with the adjacent
cell in that direction and the screen angle of the step, in degrees.

Example:
  gridctl --kind hex neighbors 0,0
  gridctl --kind triangle neighbors 1,0 --direction N`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fail(a.runNeighbors(cmd, args[0], direction))
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "only the neighbor in this direction, e.g. NE")
	return cmd
}

func (a *app) runNeighbors(cmd *cobra.Command, arg, direction string) error {
	c, err := a.cell(arg)
	if err != nil {
		return err
	}

	dirs := a.grid.Directions(c)
	if direction != "" {
		d, err := grid.ParseDirection(direction)
		if err != nil {
			return err
		}
		if !dirs.Contains(d) {
			return fmt.Errorf("%s cell %v has no %v neighbor (defined: %v)", a.grid.Kind(), c, d, dirs)
		}
		dirs = grid.DirectionSet(0).With(d)
	}

	var out []neighborJSON
	for d := range dirs.All() {
		n, _ := a.grid.Neighbor(c, d)
		angle, _ := grid.DirectionAngle(a.grid, c, d)
		out = append(out, neighborJSON{
			Direction: d.String(),
			Angle:     math.Round(angle*180/math.Pi*1e6) / 1e6,
			Cell:      toCellJSON(n),
		})
	}
	return a.emit(cmd, out, func(w io.Writer) {
		for _, n := range out {
			fmt.Fprintf(w, "%-9s (%d,%d)\n", n.Direction, n.Cell[0], n.Cell[1])
		}
	})
}
