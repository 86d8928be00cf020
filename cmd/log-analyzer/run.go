package main

import (
	"os"
	"os/signal"
	"syscall"

	"log-analyzer/internal/renderers"

	"github.com/spf13/cobra"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var printTable bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyze the latest log file once and write its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := root.newApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := application.RunOnce(ctx)
			if err != nil {
				return err
			}
			if !result.Ran {
				logger := application.Logger()
				logger.Info().Str("reason", result.Reason).Msg("nothing to do")
				return nil
			}
			if printTable {
				return renderers.NewTableRenderer().Render(cmd.OutOrStdout(), result.Rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printTable, "print", false, "print the report rows as a table to stdout")
	return cmd
}
