package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Count the neighbor steps between two cells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fail(a.runDistance(cmd, args))
		},
	}
}

func (a *app) runDistance(cmd *cobra.Command, args []string) error {
	from, err := a.cell(args[0])
	if err != nil {
		return err
	}
	to, err := a.cell(args[1])
	if err != nil {
		return err
	}
	d := a.grid.Distance(from, to)
	return a.emit(cmd, map[string]int{"distance": d}, func(w io.Writer) {
		fmt.Fprintln(w, d)
	})
}
