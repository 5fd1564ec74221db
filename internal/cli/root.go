// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's Cube A* solver",
	Long: `cubesolver - scramble and solve a 3x3 Rubik's Cube with heuristic-guided
best-first search.

The solver works on the U/D/R/L move subgroup, optionally consulting an
OpenAI-backed oracle for heuristic estimates, and records solve attempts
to a local SQLite database.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
