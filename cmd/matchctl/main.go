// Command matchctl runs operational tasks against the matching database:
// migrations, bulk re-scoring, the pending-notification sweep and issuing
// development tokens.
//
// Configuration is read the same way as the server (CONFIG_PATH + env).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/app"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/config"
)

// env is populated by the root command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Operational tasks for the lost and found matching engine",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newRescoreCmd(e),
		newNotifyPendingCmd(e),
		newIssueTokenCmd(e),
	)
	return root
}

// withComponents wires the services, runs fn and tears everything down.
func withComponents(ctx context.Context, e *env, fn func(c *app.Components) error) error {
	c, err := app.Build(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer c.Close()

	c.Dispatcher.Start(ctx)
	return fn(c)
}
