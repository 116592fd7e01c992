package returns

import (
	"context"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher publishes day return series to a Kafka topic.
type Publisher struct {
	writer MessageWriter
	logger logger.Interface
}

// NewWriter creates a kafka writer hashing keys onto partitions so that
// reruns of a day land on the same partition.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// NewPublisher creates a new Publisher.
func NewPublisher(writer MessageWriter, log logger.Interface) *Publisher {
	return &Publisher{
		writer: writer,
		logger: log,
	}
}

// StoreDay publishes the series as a single message keyed by symbol and date.
func (p *Publisher) StoreDay(ctx context.Context, series *v1.DaySeries) error {
	payload := NewDayMessage(series, util.GetRunID(ctx))

	value, err := payload.ToBytes()
	if err != nil {
		return errors.TracerFromError(err)
	}

	msg := kafka.Message{
		Key:   payload.Key(),
		Value: value,
		Headers: []kafka.Header{
			{Key: "interval", Value: []byte(payload.Interval)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.NewField("key", string(msg.Key)),
			logger.NewField("points", len(payload.Points)),
		)
		return errors.NewErrorDetailsWithObject("failed to publish day returns", string(errors.GeneralPublisherError), string(msg.Key), err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
