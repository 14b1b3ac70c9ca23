package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newLocateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <x,y>",
		Short: "Find the cell containing a screen point",
		Long: `Locate prints the cell that contains the screen point. Points on a shared
edge or corner resolve the same way every time.

Example:
  gridctl --kind hex --size 16 locate 40,12
  gridctl locate "(-0.5,3)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fail(a.runLocate(cmd, args[0]))
		},
	}
}

func (a *app) runLocate(cmd *cobra.Command, arg string) error {
	p, err := parsePoint(arg)
	if err != nil {
		return err
	}
	c, ok := a.grid.FromScreen(p)
	if !ok {
		return fmt.Errorf("point %v has no cell: it is outside the grid bounds or out of range", p)
	}
	return a.emit(cmd, map[string]cellJSON{"cell": toCellJSON(c)}, func(w io.Writer) {
		fmt.Fprintln(w, c)
	})
}
