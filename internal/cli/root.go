// Package cli implements the acopath command-line interface.
//
// The CLI is a thin collaborator around the antsystem engine: it loads a
// topology document, runs the colony, and reports the result. It carries
// no algorithmic logic of its own.
//
// Commands:
//   - route: approximate a low-cost path between two nodes of a topology
//     file, optionally alongside the exact Dijkstra baseline.
//
// Logging goes to stderr through charmbracelet/log; --verbose (-v) switches
// to debug level. Engine parameters resolve flag → env (ACOPATH_*) →
// acopath.yaml → built-in defaults via viper.
package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const rootLongDescription = `acopath approximates a good path between two nodes of a directed,
positively-weighted graph using Ant Colony Optimization (Ant System).

Repeated randomized walks reinforce cheap edges through a shared pheromone
signal and let poor edges decay; the reported route is the best complete
tour any ant found, not a proven shortest path. Use --exact to print the
Dijkstra baseline next to it.`

// Execute builds the command tree and runs it under ctx.
// It is the only entry point main needs.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "acopath",
		Short:        "Approximate graph paths with Ant Colony Optimization",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRouteCmd())

	return root.ExecuteContext(ctx)
}

// newLogger creates a stderr logger with "HH:MM:SS.ms" timestamps filtered
// at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the context-key type for this package; a distinct type prevents
// collisions with other packages.
type ctxKey int

// loggerKey is the context key carrying the CLI logger.
const loggerKey ctxKey = 0

// withLogger returns a child context carrying l.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to the
// package default so commands always log somewhere sensible.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}

	return charmlog.Default()
}
