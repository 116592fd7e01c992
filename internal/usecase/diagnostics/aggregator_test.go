package diagnostics

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/mock"
	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_Add(t *testing.T) {
	a := NewAggregator(nil)

	a.AddSkippedOrderBook("undated_orderbook.csv")
	a.Add(v1.DayReport{Date: "2020-01-02", EmptyIntervals: "2020-01-02: 3", Written: true})
	a.Add(v1.DayReport{Date: "2020-01-03", SkippedMessage: "x_message.csv"})
	a.Add(v1.DayReport{Date: "2020-01-06", Misaligned: "a | b: 1 != 2"})
	a.Add(v1.DayReport{Date: "2020-01-07", NonCanonicalSession: "s - e", Rejected: "2020-01-07: too short", EmptyIntervals: "2020-01-07: 1"})

	record := a.Record()
	assert.Equal(t, []string{"undated_orderbook.csv"}, record.SkippedOrderBooks)
	assert.Equal(t, []string{"x_message.csv"}, record.SkippedMessages)
	assert.Equal(t, []string{"2020-01-02: 3", "2020-01-07: 1"}, record.EmptyIntervals)
	assert.Equal(t, []string{"s - e"}, record.NonCanonicalSessions)
	assert.Equal(t, []string{"a | b: 1 != 2"}, record.Misaligned)
	assert.Equal(t, []string{"2020-01-07: too short"}, record.RejectedDays)
	assert.Equal(t, 1, a.Written())

	record.EmptyIntervals[0] = "mutated"
	assert.Equal(t, "2020-01-02: 3", a.Record().EmptyIntervals[0])
}

func TestAggregator_Persist(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(store *mock.MockStore)
		assertFn func(t *testing.T, record *v1.Record, err error)
	}{
		{
			name: "success",
			mockFn: func(store *mock.MockStore) {
				store.EXPECT().Save(gomock.Any(), "1min", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, record *v1.Record) error {
						assert.Equal(t, []string{"2020-01-02: 3"}, record.EmptyIntervals)
						assert.Empty(t, record.Misaligned)
						assert.NotNil(t, record.Misaligned)
						return nil
					})
			},
			assertFn: func(t *testing.T, record *v1.Record, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, record.Total())
			},
		},
		{
			name: "store failure",
			mockFn: func(store *mock.MockStore) {
				store.EXPECT().Save(gomock.Any(), "1min", gomock.Any()).Return(errors.New("disk full"))
			},
			assertFn: func(t *testing.T, record *v1.Record, err error) {
				assert.ErrorContains(t, err, "disk full")
				assert.Nil(t, record)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock.NewMockStore(ctrl)
			tc.mockFn(store)

			a := NewAggregator(store)
			a.Add(v1.DayReport{EmptyIntervals: "2020-01-02: 3"})

			record, err := a.Persist(context.Background(), "1min")
			tc.assertFn(t, record, err)
		})
	}
}
