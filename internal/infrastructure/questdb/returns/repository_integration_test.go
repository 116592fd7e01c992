//go:build integration

package returns

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	helper *questdb.TestHelper
	repo   ReturnsRepository
	ctx    context.Context
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.ctx = util.WithRunID(context.Background(), "integration")

	migrationsPath, err := filepath.Abs("../../../../migrations/questdb")
	require.NoError(suite.T(), err)

	suite.helper = questdb.NewTestHelperWithMigrations(suite.T(), migrationsPath)
	suite.repo = NewRepository(suite.helper.GetClient())
}

func (suite *RepositoryTestSuite) TestStoreDayRoundTrip() {
	series := daySeries(3)
	series.Points[2].LogReturn = math.NaN()

	require.NoError(suite.T(), suite.repo.StoreDay(suite.ctx, series))

	// WAL tables apply committed rows asynchronously.
	var points []v1.ReturnPoint
	require.Eventually(suite.T(), func() bool {
		var err error
		points, err = suite.repo.GetDay(suite.ctx, "SPY", "1min", day)
		return err == nil && len(points) == 3
	}, 30*time.Second, 250*time.Millisecond)

	assert.Equal(suite.T(), series.Points[0].Timestamp, points[0].Timestamp)
	assert.InDelta(suite.T(), series.Points[1].LogReturn, points[1].LogReturn, 1e-15)
	assert.True(suite.T(), math.IsNaN(points[2].LogReturn))
}

func (suite *RepositoryTestSuite) TestStoreDayIsIdempotent() {
	series := daySeries(2)
	series.Date = day.AddDate(0, 0, 1)
	for i := range series.Points {
		series.Points[i].Timestamp = series.Points[i].Timestamp.AddDate(0, 0, 1)
	}

	require.NoError(suite.T(), suite.repo.StoreDay(suite.ctx, series))
	require.NoError(suite.T(), suite.repo.StoreDay(suite.ctx, series))

	require.Eventually(suite.T(), func() bool {
		points, err := suite.repo.GetDay(suite.ctx, "SPY", "1min", series.Date)
		return err == nil && len(points) == 2
	}, 30*time.Second, 250*time.Millisecond)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
