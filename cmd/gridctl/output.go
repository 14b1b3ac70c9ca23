package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/grid"
)

// cellJSON is a cell address in JSON output: [x,y], [q,r] or [col,row].
type cellJSON [2]int

func toCellJSON(c grid.Coord) cellJSON {
	a, b := c.Pair()
	return cellJSON{a, b}
}

func toCellsJSON(cells []grid.Coord) []cellJSON {
	out := make([]cellJSON, len(cells))
	for i, c := range cells {
		out[i] = toCellJSON(c)
	}
	return out
}

// pointJSON is a screen point in JSON output.
type pointJSON [2]float64

func toPointJSON(p grid.Point) pointJSON {
	return pointJSON{p.X, p.Y}
}

// cell parses a cell argument for the configured grid kind.
func (a *app) cell(s string) (grid.Coord, error) {
	return grid.ParseCoord(a.settings.Kind, s)
}

// emit writes v as indented JSON when --json is set, and calls text
// otherwise.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.settings.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		return nil
	}
	text(w)
	return nil
}

func printCells(w io.Writer, cells []grid.Coord) {
	for _, c := range cells {
		fmt.Fprintln(w, c)
	}
}
