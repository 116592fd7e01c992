package main

import (
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/spf13/cobra"
)

var equidistantCmd = &cobra.Command{
	Use:   "equidistant",
	Short: "Resample every trading day on the interval grid and write its log returns",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := runContext(cmd.Context(), cfg)

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		manifest, err := a.Repository.Discovery.Discover(ctx, cfg.Pipeline.ExtractedDir())
		if err != nil {
			a.Logger.ErrorContext(ctx, err, logger.NewField("action", "discover"))
			return err
		}

		record, err := a.Usecase.EquidistantUsecase.Run(ctx, manifest)
		if err != nil {
			return err
		}

		cmd.Printf("equidistant returns written to %s (%d diagnostics entries)\n", cfg.Pipeline.EquidistantDir(), record.Total())
		return nil
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Write the closing-price log returns of every trading day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := runContext(cmd.Context(), cfg)

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		manifest, err := a.Repository.Discovery.Discover(ctx, cfg.Pipeline.ExtractedDir())
		if err != nil {
			a.Logger.ErrorContext(ctx, err, logger.NewField("action", "discover"))
			return err
		}

		series, err := a.Usecase.DailyUsecase.Run(ctx, manifest)
		if err != nil {
			return err
		}

		cmd.Printf("%d daily returns written to %s\n", len(series.Points), cfg.Pipeline.DailyOutputPath())
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Concatenate the equidistant day files into one dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := runContext(cmd.Context(), cfg)

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		path, err := a.Usecase.MergeUsecase.Run(ctx)
		if err != nil {
			return err
		}

		cmd.Printf("merged dataset written to %s\n", path)
		return nil
	},
}
