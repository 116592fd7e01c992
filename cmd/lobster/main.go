package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	intervals "github.com/lorenzolucchese/tailriskmanagement/pkg/interval"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	ticker   string
	interval string
	dataDir  string
)

var rootCmd = &cobra.Command{
	Use:   "lobster",
	Short: "Turn LOBSTER order-book captures into log return series",
	Long: `lobster reads the per-day order-book and message files of a ticker and
produces equidistant microprice log returns, closing-price daily log returns
and a merged dataset of the equidistant returns.

Configuration is read from the environment (and an optional .env file).
The persistent flags override the PIPELINE_* variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentPreRunE = loadConfig
	rootCmd.PersistentFlags().StringVar(&ticker, "ticker", "", "ticker to process (PIPELINE_TICKER)")
	rootCmd.PersistentFlags().StringVar(&interval, "interval", "",
		"resampling interval: "+strings.Join(intervals.GetAllIntervalNames(), ", ")+", Nmin or any Go duration (PIPELINE_INTERVAL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "root data directory (PIPELINE_DATA_DIR)")

	rootCmd.AddCommand(equidistantCmd, dailyCmd, mergeCmd, showCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("ticker") {
		loaded.Pipeline.Ticker = ticker
	}
	if flags.Changed("interval") {
		loaded.Pipeline.Interval = interval
	}
	if flags.Changed("data-dir") {
		loaded.Pipeline.DataDir = dataDir
	}

	if err := loaded.Pipeline.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}
