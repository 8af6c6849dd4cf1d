package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/app"
)

func newNotifyPendingCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "notify-pending",
		Short: "Send notifications for matches that were never notified",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withComponents(cmd.Context(), e, func(c *app.Components) error {
				n, err := c.Matching.NotifyPending(cmd.Context(), limit)
				fmt.Fprintf(cmd.OutOrStdout(), "attempted=%d\n", n)
				return err
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 500, "maximum matches to attempt")
	return cmd
}
