package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/grid"
)

func newWithinCmd(a *app) *cobra.Command {
	var ring bool
	cmd := &cobra.Command{
		Use:   "within <cell> <radius>",
		Short: "List the cells at most radius steps from a cell",
		Long: `Within lists, in sorted order, every cell at most radius neighbor steps
from the center cell. With --ring only cells exactly radius steps away are
listed.

Example:
  gridctl --kind hex within 0,0 2
  gridctl --kind hex within 0,0 3 --ring`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fail(a.runWithin(cmd, args, ring))
		},
	}
	cmd.Flags().BoolVar(&ring, "ring", false, "only cells exactly radius steps away")
	return cmd
}

func (a *app) runWithin(cmd *cobra.Command, args []string, ring bool) error {
	center, err := a.cell(args[0])
	if err != nil {
		return err
	}
	radius, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("radius %q: %w", args[1], err)
	}
	if radius < 0 {
		return fmt.Errorf("radius must not be negative, got %d", radius)
	}

	var shape *grid.HashShape[grid.Coord]
	if ring {
		shape = grid.Ring(a.grid, center, radius)
	} else {
		shape = grid.Within(a.grid, center, radius)
	}
	cells := shape.Sorted()
	return a.emit(cmd, toCellsJSON(cells), func(w io.Writer) {
		printCells(w, cells)
	})
}
