package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/generator"
	"github.com/designchallenge/gradebook/internal/gradebook"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic gradebook",
		Long: "generate builds a random gradebook of strong and weak students, or with " +
			"--dummy a fixed fixture. The result goes to --output (json, yaml or csv " +
			"by extension) or to stdout as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, _ := cmd.Flags().GetInt("students")
			assignments, _ := cmd.Flags().GetInt("assignments")
			out, _ := cmd.Flags().GetString("output")

			var (
				gb  *gradebook.Gradebook
				err error
			)
			if dummy, _ := cmd.Flags().GetBool("dummy"); dummy {
				posts, _ := cmd.Flags().GetInt("posts")
				gb, err = generator.Dummy(students, assignments, posts)
			} else {
				gb, err = generateRandom(cmd, students, assignments)
			}
			if err != nil {
				return fmt.Errorf("generate gradebook: %w", err)
			}

			if out == "" {
				return gradebook.WriteJSON(cmd.OutOrStdout(), gb)
			}
			if err := gradebook.SaveFile(out, gb); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote gradebook %s\n", out)
			return nil
		},
	}

	cmd.Flags().Bool("dummy", false, "Build the deterministic fixture instead of random data")
	cmd.Flags().Int("students", generator.DefaultDummyCount, "Number of students")
	cmd.Flags().Int("assignments", generator.DefaultDummyCount, "Number of assignments")
	cmd.Flags().StringSlice("assignment-names", nil, "Explicit assignment names (overrides --assignments)")
	cmd.Flags().Int("posts", generator.DefaultDummyCount, "Posts per grade (with --dummy)")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 seeds from the clock; overrides GRADEBOOK_SEED)")
	cmd.Flags().String("config", "", "Generator settings file (.yaml, .json or .toml)")
	cmd.Flags().String("names", "", "Name list file, one \"First Last\" per line (overrides GRADEBOOK_NAMES env var)")
	cmd.Flags().StringP("output", "o", "", "Output file (.json, .yaml, .yml or .csv)")
	return cmd
}

func generateRandom(cmd *cobra.Command, students, assignments int) (*gradebook.Gradebook, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := generator.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}

	spec := generator.Count(assignments)
	if names, _ := cmd.Flags().GetStringSlice("assignment-names"); len(names) > 0 {
		spec = generator.Names(names...)
	}

	slog.Debug("generating gradebook", "students", students, "seed", cfg.Seed)
	return generator.New(cfg).Generate(students, spec, resolveNames(cmd))
}

// resolveNames picks the name list: --names flag, then GRADEBOOK_NAMES env
// var, then the list built into the binary.
func resolveNames(cmd *cobra.Command) generator.NameSource {
	if p, _ := cmd.Flags().GetString("names"); p != "" {
		return generator.FileNames(p)
	}
	if p := os.Getenv("GRADEBOOK_NAMES"); p != "" {
		return generator.FileNames(p)
	}
	return generator.EmbeddedNames()
}
