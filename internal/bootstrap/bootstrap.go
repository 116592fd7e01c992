package bootstrap

import (
	kafkaReturns "github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/kafka/returns"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
)

// Bootstrap wires the infrastructure and usecases of a pipeline run.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	Repository Repository
	Config     *config.Config

	// QuestDB and Kafka are nil when their sink is disabled.
	QuestDB questdb.QuestDBClient
	Kafka   kafkaReturns.MessageWriter
}

// BoostrapConfig is the config for the bootstrap.
type BoostrapConfig struct {
	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Kafka   kafkaReturns.MessageWriter
	Logger  logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(cfg BoostrapConfig) (Bootstrap, error) {
	b.Config = cfg.Config
	b.QuestDB = cfg.QuestDB
	b.Kafka = cfg.Kafka
	b.Logger = cfg.Logger

	b.registerRepository()
	if err := b.registerUsecase(); err != nil {
		return Bootstrap{}, err
	}

	return *b, nil
}

// Close flushes the Kafka publisher, if any. The QuestDB client is owned by
// the caller.
func (b *Bootstrap) Close() error {
	if b.Repository.ReturnsPublisher == nil {
		return nil
	}
	return b.Repository.ReturnsPublisher.Close()
}
