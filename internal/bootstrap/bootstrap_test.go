package bootstrap

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	questdbMock "github.com/lorenzolucchese/tailriskmanagement/pkg/questdb/mock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopWriter struct{ closed bool }

func (w *nopWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error { return nil }
func (w *nopWriter) Close() error {
	w.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Pipeline: config.PipelineConfig{
			Ticker:       "SPY",
			Interval:     "1m",
			DataDir:      "data",
			SessionOpen:  "09:30",
			SessionClose: "16:00",
			Workers:      1,
		},
		Metrics: config.MetricsConfig{Job: "lobster"},
	}
}

func TestBootstrap_Init(t *testing.T) {
	testCases := []struct {
		name      string
		withDB    bool
		withKafka bool
		assertFn  func(t *testing.T, b Bootstrap)
	}{
		{
			name: "filesystem only",
			assertFn: func(t *testing.T, b Bootstrap) {
				assert.Nil(t, b.Repository.ReturnsRepository)
				assert.Nil(t, b.Repository.ReturnsPublisher)
				assert.Len(t, b.daySinks(), 1)
				assert.Len(t, b.dailySinks(), 1)
				assert.NoError(t, b.Close())
			},
		},
		{
			name:      "every sink",
			withDB:    true,
			withKafka: true,
			assertFn: func(t *testing.T, b Bootstrap) {
				assert.NotNil(t, b.Repository.ReturnsRepository)
				assert.NotNil(t, b.Repository.ReturnsPublisher)
				assert.Len(t, b.daySinks(), 3)
				assert.Len(t, b.dailySinks(), 2)

				require.NoError(t, b.Close())
				assert.True(t, b.Kafka.(*nopWriter).closed)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := BoostrapConfig{Config: testConfig(), Logger: logger.NewNop()}
			if tc.withDB {
				cfg.QuestDB = questdbMock.NewMockQuestDBClient(ctrl)
			}
			if tc.withKafka {
				cfg.Kafka = &nopWriter{}
			}

			b := &Bootstrap{}
			initialized, err := b.Init(cfg)
			require.NoError(t, err)

			assert.NotNil(t, initialized.Usecase.EquidistantUsecase)
			assert.NotNil(t, initialized.Usecase.DailyUsecase)
			assert.NotNil(t, initialized.Usecase.MergeUsecase)
			tc.assertFn(t, initialized)
		})
	}
}

func TestBootstrap_InitInvalidInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Pipeline.Interval = "-1m"

	_, err := (&Bootstrap{}).Init(BoostrapConfig{Config: cfg, Logger: logger.NewNop()})
	assert.Error(t, err)
}
