package main

import (
	"fmt"

	"log-analyzer/internal/app"
	"log-analyzer/internal/shared/configs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "log-analyzer",
		Short:         "Builds per-URL request time reports from nginx access logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile == "" {
				return nil
			}
			if err := godotenv.Load(opts.envFile); err != nil {
				return fmt.Errorf("failed to load env file %s: %w", opts.envFile, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the YAML config file (defaults and LOG_ANALYZER_* env vars apply when empty)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file loaded before the config")

	cmd.AddCommand(newRunCmd(opts), newServeCmd(opts))
	return cmd
}

func (o *rootOptions) newApp() (*app.App, error) {
	cfg, err := configs.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	application, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return application, nil
}
