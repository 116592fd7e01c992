package main

import (
	"context"

	"github.com/lorenzolucchese/tailriskmanagement/internal/bootstrap"
	kafkaReturns "github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/kafka/returns"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// app is a bootstrapped pipeline together with the clients it owns.
type app struct {
	bootstrap.Bootstrap
	db questdb.QuestDBClient
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
}

// runContext tags ctx with a fresh run id and the ticker of the run.
func runContext(ctx context.Context, cfg *config.Config) context.Context {
	ctx = util.WithRunID(ctx, "")
	return util.WithTicker(ctx, cfg.Pipeline.Ticker)
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{}
	bootstrapConfig := bootstrap.BoostrapConfig{
		Config: cfg,
		Logger: log,
	}

	if cfg.QuestDB.Enabled {
		client, err := questdb.NewClient(ctx, cfg.QuestDB.Config)
		if err != nil {
			log.ErrorContext(ctx, err, logger.NewField("action", "init_db"))
			return nil, err
		}

		health := client.CheckHealth(ctx)
		log.InfoContext(ctx, "questdb connected",
			logger.NewField("healthy", health.IsHealthy()),
			logger.NewField("response_time", health.ResponseTime.String()),
		)

		a.db = client
		bootstrapConfig.QuestDB = client
	}

	if cfg.Kafka.Enabled {
		bootstrapConfig.Kafka = kafkaReturns.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	b := &bootstrap.Bootstrap{}
	initialized, err := b.Init(bootstrapConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	a.Bootstrap = initialized

	return a, nil
}

func (a *app) close() {
	if err := a.Bootstrap.Close(); err != nil && a.Logger != nil {
		a.Logger.Error(err, logger.NewField("action", "close_kafka"))
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}
