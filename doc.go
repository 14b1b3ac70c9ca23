// Package grid provides geometry for square, hexagonal and triangular
// tilings behind one set of operations.
//
// # Overview
//
// Each tiling has its own cell address type and grid type:
//
//   - [SquareCoord] and [SquareGrid]
//   - [HexCoord] (axial) and [HexGrid], flat-top or pointy-top
//   - [TriCoord] and [TriGrid]
//
// All three grids implement [Topology]: neighbors by compass [Direction],
// step distance, conversion between cells and screen points, straight
// paths, and tessellation of a rectangle into the cells that cover it.
// [New] returns a [Grid] over the tagged [Coord] when the tiling is only
// known at run time.
//
// # Quick Start
//
//	import "github.com/gogpu/grid"
//
//	g, err := grid.NewHex(16, grid.WithOrientation(grid.PointyTop))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, _ := g.FromScreen(grid.Pt(40, 12))
//	east, _ := g.Neighbor(c, grid.East)
//	for cell := range g.Path(c, grid.Hx(5, -2)) {
//	    fmt.Println(cell)
//	}
//	visible := g.Cells(grid.R(0, 0, 640, 480), grid.Intersecting)
//
// # Coordinate System
//
// Screen space is y-up:
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is East, increasing counter-clockwise
//
// The cell size of every tiling is its edge length.
//
// FromScreen resolves points on a shared edge or corner by one fixed rule
// per tiling. Values within 1e-9 of a cell boundary count as on it.
//   - Square and triangle: the cell on the positive side of every lattice
//     line wins (larger column, row or lane).
//   - Hex: cube rounding; the component with the largest rounding error is
//     recomputed, with ties going to Q, then R.
//
// # Shapes
//
// [Shape] and [ShapeContainer] describe sets of cells and cell-to-value
// maps. [HashShape] and [HashContainer] work for every tiling;
// [DenseContainer] stores a rectangular block of square cells in a slice.
package grid

// Version is the current version of the library.
const Version = "0.1.0"
