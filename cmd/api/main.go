package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"taskBoard/internal/app"
	"taskBoard/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		dev        bool
		demo       bool
	)

	cmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Личная доска задач в памяти с HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dev") {
				cfg.Logging.Development = dev
			}
			if cmd.Flags().Changed("demo") {
				cfg.Seed.Demo = demo
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(cfg).Init(ctx)
			if err != nil {
				return fmt.Errorf("запуск приложения: %w", err)
			}
			return application.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "путь к config.yml")
	cmd.Flags().BoolVar(&dev, "dev", false, "цветной логгер для разработки")
	cmd.Flags().BoolVar(&demo, "demo", false, "заполнить доску демо-данными")

	cmd.SetContext(context.Background())
	return cmd
}
