// Package main provides gridctl, a command line front end to the grid
// package: neighbor lookup, distances, paths, point location and
// tessellation on square, hex and triangle grids.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gogpu/grid/internal/telemetry"
)

func main() {
	// Local development keeps tracing settings in .env; a missing file is
	// fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	cfg, err := telemetry.LoadConfig()
	if err != nil {
		log.Printf("Warning: telemetry config: %v", err)
	}
	shutdown, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if code != exitSuccess {
		// Deferred calls do not run after os.Exit.
		if shutdown != nil {
			_ = shutdown(ctx)
		}
		os.Exit(code)
	}
}

// run executes one gridctl invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "gridctl:", err)
		return exitUserError
	}
	return exitSuccess
}
