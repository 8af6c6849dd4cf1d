package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/app"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
)

func newRescoreCmd(e *env) *cobra.Command {
	var (
		category    string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Re-run scoring and promotion for every active report",
		Long: "Re-runs candidate generation, scoring and promotion for every active report,\n" +
			"for example after thresholds or weights change. Matches created here are\n" +
			"notified like any other.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := matching.RescoreInput{Concurrency: concurrency}
			if category != "" {
				c := domain.Category(category)
				in.Category = &c
			}
			if in.Concurrency == 0 {
				in.Concurrency = e.cfg.Matching.RescoreConcurrency
			}

			return withComponents(cmd.Context(), e, func(c *app.Components) error {
				res, err := c.Matching.Rescore(cmd.Context(), in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"reports=%d failed=%d candidates_created=%d candidates_updated=%d matches_promoted=%d\n",
					res.Reports, res.Failed, res.CandidatesCreated, res.CandidatesUpdated, res.MatchesPromoted,
				)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only rescore this category (PEOPLE, PETS, PERSONAL_BELONGINGS)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "reports scored in parallel (default from config)")
	return cmd
}
