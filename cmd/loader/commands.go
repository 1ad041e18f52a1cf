// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/ekphrasis/internal/core/painting"
	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/core/poem"
	"github.com/taibuivan/ekphrasis/internal/ingest"
	"github.com/taibuivan/ekphrasis/internal/loader"
	"github.com/taibuivan/ekphrasis/internal/platform/config"
	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
	"github.com/taibuivan/ekphrasis/internal/platform/migration"
	pgstore "github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

const appName = "ekphrasis-loader"

// settings collects the persistent flags; they override the environment.
type settings struct {
	debug   bool
	dataDir string
	migrate bool
}

// rootCommand creates the loader command tree.
func rootCommand() *cobra.Command {
	flags := &settings{}

	rootCmd := &cobra.Command{
		Use:           "loader",
		Short:         "Load the painting and poem datasets into PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the dataset files (overrides DATA_DIR)")
	rootCmd.PersistentFlags().BoolVar(&flags.migrate, "migrate", true, "Apply the embedded schema before loading")

	rootCmd.AddCommand(
		paintingsCommand(flags),
		poemsCommand(flags),
		pairingsCommand(flags),
		allCommand(flags),
		countCommand(flags),
		clearCommand(flags),
	)
	return rootCmd
}

func paintingsCommand(flags *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "paintings",
		Short: "Reload the painting table from the painting TSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *loader.App) error {
				_, err := app.Paintings(ctx)
				return err
			})
		},
	}
}

func poemsCommand(flags *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "poems",
		Short: "Reload the poem table from both poem collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *loader.App) error {
				_, err := app.Poems(ctx)
				return err
			})
		},
	}
}

func pairingsCommand(flags *settings) *cobra.Command {
	var truncate bool

	cmd := &cobra.Command{
		Use:       "pairings <emotion|clip|object>",
		Short:     "Load one pairing source",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"emotion", "clip", "object"},
		RunE: func(cmd *cobra.Command, args []string) error {
			basis, err := parseBasis(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), flags, func(ctx context.Context, app *loader.App) error {
				source, err := app.Source(basis)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("truncate") {
					source.Truncate = truncate
				}

				_, err = app.Pairings(ctx, source)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&truncate, "truncate", false, "Clear the pairing table first (default per source: emotion and clip true, object false)")
	return cmd
}

func allCommand(flags *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Reload paintings, poems and every pairing source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *loader.App) error {
				_, err := app.All(ctx)
				return err
			})
		},
	}
}

func countCommand(flags *settings) *cobra.Command {
	return &cobra.Command{
		Use:       "count <table>",
		Short:     "Print the number of rows in a table",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: schema.Tables(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *loader.App) error {
				total, err := app.Count(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), total)
				return nil
			})
		},
	}
}

func clearCommand(flags *settings) *cobra.Command {
	return &cobra.Command{
		Use:       "clear [table]",
		Short:     "Truncate one table, or all of them",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: schema.Tables(),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := ""
			if len(args) == 1 {
				table = args[0]
			}

			return withApp(cmd.Context(), flags, func(ctx context.Context, app *loader.App) error {
				_, err := app.Clear(ctx, table)
				return err
			})
		},
	}
}

func parseBasis(arg string) (pairing.Basis, error) {
	switch strings.ToLower(arg) {
	case "emotion":
		return pairing.BasisEmotion, nil
	case "clip":
		return pairing.BasisCLIP, nil
	case "object":
		return pairing.BasisObject, nil
	}
	return "", fmt.Errorf("unknown pairing source %q", arg)
}

// withApp loads configuration, connects to PostgreSQL and runs fn. Failures
// are logged before being returned.
func withApp(ctx context.Context, flags *settings, fn func(context.Context, *loader.App) error) error {
	cfg, err := config.LoadLoader()
	if err != nil {
		newLogger(true).Error("startup_failure", slog.String("context", "load configuration"), slog.Any("error", err))
		return err
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}

	log := newLogger(flags.debug || cfg.Debug)
	slog.SetDefault(log)

	if flags.migrate {
		if err := migration.RunUp(cfg.DatabaseURL, log); err != nil {
			log.Error("startup_failure", slog.String("context", "run migrations"), slog.Any("error", err))
			return err
		}
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, pgstore.LoaderOptions, log)
	if err != nil {
		log.Error("startup_failure", slog.String("context", "connect to postgres"), slog.Any("error", err))
		return err
	}
	defer pool.Close()

	catalog := ingest.NewCatalogLoader(painting.NewPostgresRepository(pool), poem.NewPostgresRepository(pool), log)
	ingestor := ingest.NewPairingIngestor(ingest.NewPostgresKeyResolver(pool), pairing.NewPostgresRepository(pool), log)
	app := loader.New(cfg, catalog, ingestor, pgstore.NewTables(pool), log)

	if err := fn(ctx, app); err != nil {
		log.Error("load_failed", slog.Any("error", err))
		return err
	}
	return nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", appName))
}
