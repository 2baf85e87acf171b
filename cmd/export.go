package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <input> <output>",
		Short: "Convert a gradebook between JSON, YAML and CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gb, err := loadInput(cmd, args[0])
			if err != nil || gb == nil {
				return err
			}
			if err := gradebook.SaveFile(args[1], gb); err != nil {
				return fmt.Errorf("export gradebook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote gradebook %s\n", args[1])
			return nil
		},
	}
}
