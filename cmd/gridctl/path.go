package main

import (
	"io"
	"slices"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <a> <b>",
		Short: "List the cells on a straight line between two cells",
		Long: `Path prints the cells from a to b inclusive, one neighbor step apart,
following the straight segment between the two cell centers.

Example:
  gridctl path 0,0 3,2
  gridctl --kind hex --json path "(-2,1)" 3,0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fail(a.runPath(cmd, args))
		},
	}
}

func (a *app) runPath(cmd *cobra.Command, args []string) error {
	from, err := a.cell(args[0])
	if err != nil {
		return err
	}
	to, err := a.cell(args[1])
	if err != nil {
		return err
	}
	cells := slices.Collect(a.grid.Path(from, to))
	return a.emit(cmd, toCellsJSON(cells), func(w io.Writer) {
		printCells(w, cells)
	})
}
