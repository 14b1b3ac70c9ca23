package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type centerJSON struct {
	Center   pointJSON   `json:"center"`
	Vertices []pointJSON `json:"vertices"`
}

func newCenterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "center <cell>",
		Short: "Print the screen center and corners of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fail(a.runCenter(cmd, args[0]))
		},
	}
}

func (a *app) runCenter(cmd *cobra.Command, arg string) error {
	c, err := a.cell(arg)
	if err != nil {
		return err
	}
	center := a.grid.ToScreen(c)
	vs := a.grid.Vertices(c)

	out := centerJSON{Center: toPointJSON(center)}
	for _, v := range vs {
		out.Vertices = append(out.Vertices, toPointJSON(v))
	}
	return a.emit(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "center   %v\n", center)
		for i, v := range vs {
			fmt.Fprintf(w, "vertex %d %v\n", i, v)
		}
	})
}
