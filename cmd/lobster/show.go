package main

import (
	"fmt"
	"io"
	"time"

	diagnosticsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/filesystem"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
	"github.com/spf13/cobra"
)

var showDate string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print what earlier runs stored",
}

var showDiagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Print the diagnostics of the last equidistant run at --interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showDiagnostics(cmd.OutOrStdout(), cfg.Pipeline)
	},
}

var showReturnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Print the equidistant returns of one day stored in QuestDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.QuestDB.Enabled {
			return fmt.Errorf("show returns reads QuestDB, set QUESTDB_ENABLED=true")
		}

		date, err := time.Parse(util.DateLayout, showDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", showDate, err)
		}
		iv, err := cfg.Pipeline.ResamplingInterval()
		if err != nil {
			return err
		}

		ctx := runContext(cmd.Context(), cfg)
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		points, err := a.Repository.ReturnsRepository.GetDay(ctx, cfg.Pipeline.Ticker, iv.Label(), date)
		if err != nil {
			a.Logger.ErrorContext(ctx, err, logger.NewField("action", "get_day"), logger.NewField("date", showDate))
			return err
		}

		printReturns(cmd.OutOrStdout(), points)
		return nil
	},
}

func init() {
	showReturnsCmd.Flags().StringVar(&showDate, "date", "", "trading date, YYYY-MM-DD")
	_ = showReturnsCmd.MarkFlagRequired("date")

	showCmd.AddCommand(showDiagnosticsCmd, showReturnsCmd)
}

func showDiagnostics(w io.Writer, pipeline config.PipelineConfig) error {
	iv, err := pipeline.ResamplingInterval()
	if err != nil {
		return err
	}

	record, err := filesystem.NewDiagnosticsStore(pipeline.SupplementaryDir()).Load(iv.Label())
	if err != nil {
		return err
	}

	printDiagnostics(w, record)
	return nil
}

func printDiagnostics(w io.Writer, record *diagnosticsv1.Record) {
	for _, category := range record.Categories() {
		fmt.Fprintf(w, "%s (%d)\n", category.Name, len(category.Entries))
		for _, entry := range category.Entries {
			fmt.Fprintf(w, "  %s\n", entry)
		}
	}
}

// printReturns writes one "<timestamp>,<log return>" line per point, leaving
// missing returns empty like the day files do.
func printReturns(w io.Writer, points []returnsv1.ReturnPoint) {
	for _, p := range points {
		fmt.Fprintf(w, "%s,%s\n", p.Timestamp.Format(util.TimestampLayout), filesystem.FormatValue(p.LogReturn))
	}
}
