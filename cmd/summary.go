package cmd

import (
	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/summary"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <gradebook.json>",
		Short: "Print each student's robust mean score and late count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gb, err := loadInput(cmd, args[0])
			if err != nil || gb == nil {
				return err
			}
			return summary.Write(cmd.OutOrStdout(), gb)
		},
	}
}
