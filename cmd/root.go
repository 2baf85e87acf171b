package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/gradebook"
	"github.com/designchallenge/gradebook/internal/store"
)

// dotEnvFile, when present in the working directory, supplies
// GRADEBOOK_* variables not already set in the environment.
const dotEnvFile = ".env"

// needInput is printed, instead of failing, when a document argument has
// an extension no reader handles.
const needInput = "Need a JSON file!"

// newRootCmd builds the command tree. Each call returns fresh commands so
// flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gradebook",
		Short: "Gradebook toolkit for the classroom design challenge",
		Long: "gradebook generates synthetic gradebooks, renders them as SVG tables, " +
			"prints per-student summaries and keeps snapshots in a local database.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogger(cmd.ErrOrStderr(), verbose)
			return loadDotEnv(dotEnvFile)
		},
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADEBOOK_DB env var)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newTableCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newStoreCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(log)
	return log
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRADEBOOK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadInput reads the gradebook named by path. When the extension is not
// readable it prints needInput and returns a nil gradebook with no error.
func loadInput(cmd *cobra.Command, path string) (*gradebook.Gradebook, error) {
	if format, ok := gradebook.FormatFor(path); !ok || !format.Readable() {
		fmt.Fprintln(cmd.OutOrStdout(), needInput)
		return nil, nil
	}

	gb, err := gradebook.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load gradebook: %w", err)
	}
	slog.Debug("loaded gradebook", "path", path,
		"students", len(gb.Students), "assignments", len(gb.Assignments))
	return gb, nil
}

// loadDotEnv loads path if it exists. Variables already in the environment
// win over the file.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	slog.Debug("loaded environment file", "path", path)
	return nil
}
