package commands

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arcsat/arcsat/pkg/csp"
)

var (
	// Global flags
	verbose bool

	// Heuristic and inference toggles, all on by default. Disable with
	// e.g. --mrv=false.
	useMRV        bool
	useDegree     bool
	useLCV        bool
	useAC3        bool
	ac3Preprocess bool
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arcsat",
		Short: "arcsat - finite-domain constraint satisfaction solver",
		Long: `arcsat solves binary constraint satisfaction problems with
backtracking search, the MRV/degree/LCV heuristics, and AC-3 arc
consistency.

Problems are described in YAML files; two encoders are built in:
  solve-map    graph/map coloring
  solve-board  rectangle packing (circuit-board layout)`,
		Version:       csp.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&useMRV, "mrv", true, "use the minimum-remaining-values heuristic")
	rootCmd.PersistentFlags().BoolVar(&useDegree, "degree", true, "break MRV ties by unassigned-neighbor degree")
	rootCmd.PersistentFlags().BoolVar(&useLCV, "lcv", true, "order values least-constraining first")
	rootCmd.PersistentFlags().BoolVar(&useAC3, "ac3", true, "run AC-3 after every assignment")
	rootCmd.PersistentFlags().BoolVar(&ac3Preprocess, "preprocess", true, "run one full AC-3 pass before search")

	rootCmd.AddCommand(newSolveMapCommand())
	rootCmd.AddCommand(newSolveBoardCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// newLogger builds the CLI's console logger, honoring --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// solveOptions assembles csp.Options from the persistent flags.
func solveOptions(log zerolog.Logger, st *csp.Stats) csp.Options {
	return csp.Options{
		UseMRV:        useMRV,
		UseDegree:     useDegree,
		UseLCV:        useLCV,
		UseAC3:        useAC3,
		AC3Preprocess: ac3Preprocess,
		Logger:        &log,
		Stats:         st,
	}
}
