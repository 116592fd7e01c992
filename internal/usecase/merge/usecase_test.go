package merge

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/merge/mock"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsecase_Run(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(merger *mock.MockMerger)
		assertFn func(t *testing.T, path string, err error)
	}{
		{
			name: "success",
			mockFn: func(merger *mock.MockMerger) {
				merger.EXPECT().Merge(gomock.Any(), "in", "1min_*.csv", "out.csv").Return(3, nil)
			},
			assertFn: func(t *testing.T, path string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "out.csv", path)
			},
		},
		{
			name: "nothing to merge",
			mockFn: func(merger *mock.MockMerger) {
				merger.EXPECT().Merge(gomock.Any(), "in", "1min_*.csv", "out.csv").Return(0, nil)
			},
			assertFn: func(t *testing.T, path string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "out.csv", path)
			},
		},
		{
			name: "merge failure",
			mockFn: func(merger *mock.MockMerger) {
				merger.EXPECT().Merge(gomock.Any(), "in", "1min_*.csv", "out.csv").Return(0, errors.New("permission denied"))
			},
			assertFn: func(t *testing.T, path string, err error) {
				assert.Empty(t, path)
				assert.EqualError(t, err, "permission denied")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			merger := mock.NewMockMerger(ctrl)
			tc.mockFn(merger)

			path, err := NewUsecase(merger, "in", "1min_*.csv", "out.csv", logger.NewNop()).Run(context.Background())
			tc.assertFn(t, path, err)
		})
	}
}
