package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"filmshelf/internal/export"
	"filmshelf/internal/session"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "filmshelf",
		Short:         "Personal movie collection manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newUsersCommand(ctx))

	return rootCmd
}

func runInteractive(cmdCtx *commandContext) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}

	store, err := cmdCtx.openStore()
	if err != nil {
		return fmt.Errorf("open collection store: %w", err)
	}
	defer store.Close()

	meta, err := cmdCtx.metadataClient()
	if err != nil {
		return fmt.Errorf("build metadata client: %w", err)
	}

	exporter, err := export.New(cfg.Paths.ExportDir, logger)
	if err != nil {
		return fmt.Errorf("build exporter: %w", err)
	}

	styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	controller := session.New(store, meta, exporter, logger,
		session.WithStyledOutput(styled),
	)
	return controller.Run(context.Background())
}
