package strategy

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/mocks"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type PrepareTestSuite struct {
	suite.Suite
	bars     []types.DailyBar
	identity types.Identity
}

func TestPrepareSuite(t *testing.T) {
	suite.Run(t, new(PrepareTestSuite))
}

func (suite *PrepareTestSuite) SetupTest() {
	suite.bars = mocks.LinearBars(testStart, 40, 10, 0.1, 500)
	suite.identity = types.Identity{Code: "600036", Date: optional.None[time.Time]()}
}

func (suite *PrepareTestSuite) TestValidateBars() {
	suite.NoError(validateBars(suite.bars))
	suite.NoError(validateBars(nil))

	suite.bars[0].Volume = 0
	suite.NoError(validateBars(suite.bars), "zero volume is a valid trading day")
}

func (suite *PrepareTestSuite) TestResolveCutoff() {
	explicit := optional.Some(suite.bars[10].Date)
	reference := optional.Some(suite.bars[20].Date)

	suite.True(resolveCutoff(suite.identity, optional.None[time.Time]()).IsNone())

	suite.identity.Date = reference
	suite.Equal(suite.bars[20].Date, resolveCutoff(suite.identity, optional.None[time.Time]()).Unwrap())
	suite.Equal(suite.bars[10].Date, resolveCutoff(suite.identity, explicit).Unwrap())
}

func (suite *PrepareTestSuite) TestNoCutoffKeepsEverything() {
	bars, err := prepareSeries(suite.identity, suite.bars, optional.None[time.Time](), 30)
	suite.Require().NoError(err)
	suite.Len(bars, 40)
}

func (suite *PrepareTestSuite) TestCutoffIsInclusive() {
	bars, err := prepareSeries(suite.identity, suite.bars, optional.Some(suite.bars[34].Date), 30)
	suite.Require().NoError(err)
	suite.Len(bars, 35)
	suite.Equal(suite.bars[34].Date, bars[34].Date)
}

func (suite *PrepareTestSuite) TestCutoffComparesCalendarDays() {
	shanghai := time.FixedZone("CST", 8*3600)
	d := suite.bars[31].Date
	cutoff := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, shanghai)

	bars, err := prepareSeries(suite.identity, suite.bars, optional.Some(cutoff), 30)
	suite.Require().NoError(err)
	suite.Len(bars, 32)
}

func (suite *PrepareTestSuite) TestCutoffOnNonTradingDay() {
	// The first bar is Monday 2024-01-01; the Saturday after bar 4 has no bar.
	saturday := suite.bars[4].Date.AddDate(0, 0, 1)
	suite.Equal(time.Saturday, saturday.Weekday())

	bars, err := prepareSeries(suite.identity, suite.bars, optional.Some(saturday), 3)
	suite.Require().NoError(err)
	suite.Len(bars, 5)
}

func (suite *PrepareTestSuite) TestCutoffBeforeFirstBar() {
	_, err := prepareSeries(suite.identity, suite.bars, optional.Some(testStart.AddDate(0, 0, -1)), 3)
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *PrepareTestSuite) TestInsufficientData() {
	_, err := prepareSeries(suite.identity, suite.bars, optional.Some(suite.bars[28].Date), 30)
	suite.Require().Error(err)

	var insufficient *errors.InsufficientDataError
	suite.Require().True(errors.As(err, &insufficient))
	suite.Equal(30, insufficient.Required)
	suite.Equal(29, insufficient.Actual)
	suite.Equal("600036", insufficient.Symbol)
}

func (suite *PrepareTestSuite) TestDoesNotModifyInput() {
	original := append([]types.DailyBar(nil), suite.bars...)

	_, err := prepareSeries(suite.identity, suite.bars, optional.Some(suite.bars[35].Date), 30)
	suite.Require().NoError(err)
	suite.Equal(original, suite.bars)
}
