package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/internal/telemetry"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// app carries the state shared by one command invocation.
type app struct {
	configFile string
	settings   settings
	grid       grid.Grid
	span       trace.Span
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridctl",
		Short: "Query square, hex and triangle grids",
		Long: `gridctl answers geometry questions about a grid: neighbors, distances,
straight paths, which cell holds a screen point, and which cells cover a
rectangle.

Grid parameters come from flags, then GRIDCTL_* environment variables,
then gridctl.yaml in the current directory or $HOME/.config/gridctl.

Cells are written "a,b" or "(a,b)": (x,y) on square grids, axial (q,r) on
hex grids and (col,row) on triangle grids. Use the parenthesized form for
negative values.

Example:
  gridctl --kind hex --orientation pointy neighbors 0,0
  gridctl --kind square distance 0,0 3,2
  gridctl --kind triangle --size 10 locate "(-4.5,12)"
  gridctl tessellate 0,0,4,3 --json`,
		Version:       grid.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			a.finish(nil)
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configFile, "config", "", "config file (default: gridctl.yaml in . or $HOME/.config/gridctl)")
	f.String(keyKind, defaultKind, "grid kind: square, hex or triangle")
	f.Float64(keySize, defaultSize, "cell edge length")
	f.String(keyOrientation, defaultOrientation, "hex orientation: flat or pointy")
	f.String(keyMetric, defaultMetric, "square metric: chebyshev or manhattan")
	f.String(keyOrigin, "", `screen position of cell (0,0), "x,y"`)
	f.String(keyBounds, "", `screen bounds, "x0,y0,x1,y1"`)
	f.Int(keyWorkers, 1, "goroutines used for tessellation")
	f.Bool(keyJSON, false, "output as JSON")
	f.BoolP(keyVerbose, "v", false, "log grid operations to stderr")

	root.AddCommand(
		newNeighborsCmd(a),
		newDistanceCmd(a),
		newPathCmd(a),
		newLocateCmd(a),
		newCenterCmd(a),
		newTessellateCmd(a),
		newWithinCmd(a),
	)
	return root
}

// setup resolves the configuration, builds the grid and opens the command
// span.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := loadConfig(a.configFile, cmd)
	if err != nil {
		return err
	}
	s, err := readSettings(v)
	if err != nil {
		return err
	}
	a.settings = s

	if s.Verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		grid.SetLogger(slog.New(h))
	}

	ctx, span := telemetry.Tracer("cli").Start(cmd.Context(), "gridctl "+cmd.Name(),
		trace.WithAttributes(
			attribute.String("grid.kind", s.Kind.String()),
			attribute.Float64("grid.size", s.Size),
			attribute.Int("grid.workers", s.Workers),
		),
	)
	cmd.SetContext(ctx)
	a.span = span

	g, err := grid.New(s.Kind, s.Size, s.options()...)
	if err != nil {
		a.finish(err)
		return fmt.Errorf("build grid: %w", err)
	}
	a.grid = g
	return nil
}

// finish ends the command span and restores the silent logger.
func (a *app) finish(err error) {
	if a.span != nil {
		if err != nil {
			a.span.RecordError(err)
			a.span.SetStatus(codes.Error, err.Error())
		}
		a.span.End()
		a.span = nil
	}
	if a.settings.Verbose {
		grid.SetLogger(nil)
	}
}

// fail closes the invocation with err. Cobra skips the post-run hook when
// a command fails, so failing commands finish here.
func (a *app) fail(err error) error {
	if err != nil {
		a.finish(err)
	}
	return err
}
