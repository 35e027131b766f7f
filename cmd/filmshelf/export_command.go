package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filmshelf/internal/export"
	"filmshelf/internal/library"
)

func newExportCommand(cmdCtx *commandContext) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate static collection pages without entering the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			exporter, err := export.New(cfg.Paths.ExportDir, logger)
			if err != nil {
				return fmt.Errorf("build exporter: %w", err)
			}

			ctx := context.Background()
			users, err := store.ListUsers(ctx)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}

			targets := users
			if username != "" {
				targets = nil
				for _, user := range users {
					if user.Username == username {
						targets = []library.User{user}
						break
					}
				}
				if targets == nil {
					return fmt.Errorf("user %q not found", username)
				}
			}
			if len(targets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users to export.")
				return nil
			}

			for _, user := range targets {
				movies, err := store.ListMovies(ctx, user.ID)
				if err != nil {
					return fmt.Errorf("list movies for %s: %w", user.Username, err)
				}
				path, err := exporter.Generate(&user, movies)
				if err != nil {
					return fmt.Errorf("generate page for %s: %w", user.Username, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Export a single user's collection")
	return cmd
}
