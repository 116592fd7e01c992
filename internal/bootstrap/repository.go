package bootstrap

import (
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/message"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook"
	returnsDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday"
	"github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/filesystem"
	kafkaReturns "github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/kafka/returns"
	"github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/lobster"
	"github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/metrics"
	questdbReturns "github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/questdb/returns"
)

// Repository holds the infrastructure of a run.
type Repository struct {
	Discovery        tradingday.Discoverer
	OrderBookReader  orderbook.Reader
	MessageReader    message.Reader
	SeriesWriter     *filesystem.SeriesWriter
	DiagnosticsStore *filesystem.DiagnosticsStore
	Merger           *filesystem.Merger
	Metrics          *metrics.Recorder

	// optional sinks
	ReturnsRepository questdbReturns.ReturnsRepository
	ReturnsPublisher  *kafkaReturns.Publisher
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	pipeline := b.Config.Pipeline

	b.Repository.Discovery = lobster.NewDiscovery(b.Logger)
	b.Repository.OrderBookReader = lobster.NewOrderBookReader()
	b.Repository.MessageReader = lobster.NewMessageReader()
	b.Repository.SeriesWriter = filesystem.NewSeriesWriter(pipeline.EquidistantDir(), pipeline.DailyOutputPath())
	b.Repository.DiagnosticsStore = filesystem.NewDiagnosticsStore(pipeline.SupplementaryDir())
	b.Repository.Merger = filesystem.NewMerger()
	b.Repository.Metrics = metrics.NewRecorder(b.Config.Metrics, b.Logger)

	if b.QuestDB != nil {
		b.Repository.ReturnsRepository = questdbReturns.NewRepository(b.QuestDB)
	}
	if b.Kafka != nil {
		b.Repository.ReturnsPublisher = kafkaReturns.NewPublisher(b.Kafka, b.Logger)
	}
}

// daySinks lists the sinks of the equidistant series, the csv writer first.
func (b *Bootstrap) daySinks() []returnsDomain.Sink {
	sinks := []returnsDomain.Sink{b.Repository.SeriesWriter}
	if b.Repository.ReturnsRepository != nil {
		sinks = append(sinks, b.Repository.ReturnsRepository)
	}
	if b.Repository.ReturnsPublisher != nil {
		sinks = append(sinks, b.Repository.ReturnsPublisher)
	}
	return sinks
}

// dailySinks lists the sinks of the closing-price series.
func (b *Bootstrap) dailySinks() []returnsDomain.DailySink {
	sinks := []returnsDomain.DailySink{b.Repository.SeriesWriter}
	if b.Repository.ReturnsRepository != nil {
		sinks = append(sinks, b.Repository.ReturnsRepository)
	}
	return sinks
}
