package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/gradebook"
	"github.com/designchallenge/gradebook/internal/render"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <gradebook.json>",
		Short: "Render a gradebook as an SVG table next to the input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gb, err := loadInput(cmd, args[0])
			if err != nil || gb == nil {
				return err
			}

			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				out = gradebook.ReplaceExt(args[0], ".svg")
			}

			var ids render.Counter
			if err := render.WriteFile(out, gb, &ids); err != nil {
				return fmt.Errorf("render table: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote SVG file %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "SVG path (default: input name with .svg)")
	return cmd
}
