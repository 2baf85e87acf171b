package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/app"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <gradebook.json>",
		Short: "Browse a gradebook in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gb, err := loadInput(cmd, args[0])
			if err != nil || gb == nil {
				return err
			}
			return app.Run(filepath.Base(args[0]), gb)
		},
	}
}
