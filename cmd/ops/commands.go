package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"acredge/internal/bootstrap"
	"acredge/pkg/config"
	"acredge/pkg/logger"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ops",
		Short:         "Maintenance tasks for the listing backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReindexCommand(), newStatsCommand(), newOrphansCommand())
	return root
}

// withApp loads configuration and connects before running fn.
func withApp(ctx context.Context, fn func(*bootstrap.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Configure(cfg.Environment)

	if err := cfg.Validate(); err != nil {
		return err
	}

	app, err := bootstrap.New(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(app)
}

func newReindexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Push every live property into the search index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(app *bootstrap.App) error {
				n, err := app.Property.Reindex(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "indexed %d properties\n", n)
				return nil
			})
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print admin dashboard counts as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(app *bootstrap.App) error {
				stats, err := app.Dashboard.AdminStats(cmd.Context())
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			})
		},
	}
}

func newOrphansCommand() *cobra.Command {
	var (
		folder string
		id     string
		remove bool
	)

	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "List media under FOLDER/ID that no document references",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(app *bootstrap.App) error {
				orphans, err := app.MediaAudit.Orphans(cmd.Context(), folder, id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, u := range orphans {
					fmt.Fprintln(out, u)
				}
				if !remove || len(orphans) == 0 {
					fmt.Fprintf(out, "%d orphaned objects\n", len(orphans))
					return nil
				}

				n, err := app.MediaAudit.Remove(cmd.Context(), folder, orphans)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "deleted %d of %d orphaned objects\n", n, len(orphans))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "media folder, e.g. ProjectImages")
	cmd.Flags().StringVar(&id, "id", "", "owning document id")
	cmd.Flags().BoolVar(&remove, "delete", false, "delete the orphaned objects")
	cmd.MarkFlagRequired("folder")
	cmd.MarkFlagRequired("id")
	return cmd
}
