// Command pathviz animates A* searches on square grids.
//
//	pathviz run    – build a board from flags or a map file, search once and
//	                 print the board (optionally every intermediate frame).
//	pathviz window – interactive editor: click to place Start, End and
//	                 barriers, Space to search.
//
// Logging is configured through PATHVIZ_LOG_LEVEL (debug|info|warn|error) and
// PATHVIZ_LOG_FORMAT (text|json); records go to stderr.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd(newLogger(os.Stderr, os.Getenv)).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pathviz",
		Short:   "Watch A* find its way across a grid",
		Version: version,
		Long: `pathviz runs an incremental A* search on a square grid of cells and shows
every step: cells waiting in the frontier, cells already expanded and,
finally, the shortest route between Start and End.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRunCmd(logger),
		newWindowCmd(logger),
	)

	return rootCmd
}
