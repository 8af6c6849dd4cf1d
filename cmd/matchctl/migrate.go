package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()

				results, err := m.Up(cmd.Context())
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
				}
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()

				r, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %05d %s\n", r.Source.Version, r.Source.Path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()

				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%05d %-8s %-19s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return nil
			},
		},
	)
	return cmd
}
