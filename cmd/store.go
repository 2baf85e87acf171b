package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/designchallenge/gradebook/internal/gradebook"
	"github.com/designchallenge/gradebook/internal/store"
)

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep gradebook snapshots in the local database",
	}
	cmd.AddCommand(newStoreSaveCmd())
	cmd.AddCommand(newStoreListCmd())
	cmd.AddCommand(newStoreLoadCmd())
	cmd.AddCommand(newStoreDeleteCmd())
	return cmd
}

// openStore opens the database named by --db or the environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func newStoreSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <gradebook.json>",
		Short: "Save a gradebook file as a new snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gb, err := loadInput(cmd, args[0])
			if err != nil || gb == nil {
				return err
			}

			label, _ := cmd.Flags().GetString("label")
			if label == "" {
				label = filepath.Base(args[0])
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.Save(cmd.Context(), label, gb)
			if err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
			return nil
		},
	}
	cmd.Flags().String("label", "", "Snapshot label (default: file name)")
	return cmd
}

func newStoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list snapshots: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(w, "No snapshots found.")
				return nil
			}

			fmt.Fprintf(w, "%-36s  %-19s  %s\n", "ID", "Saved", "Label")
			fmt.Fprintln(w, strings.Repeat("─", 80))
			for _, r := range records {
				fmt.Fprintf(w, "%-36s  %-19s  %s\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Label)
			}
			return nil
		},
	}
}

func newStoreLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <id> <output>",
		Short: "Write a snapshot to a JSON, YAML or CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			gb, err := s.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load snapshot: %w", err)
			}
			if err := gradebook.SaveFile(args[1], gb); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote gradebook %s\n", args[1])
			return nil
		},
	}
}

func newStoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
			return nil
		},
	}
}
