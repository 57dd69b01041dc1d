package scanner

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/strategy"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/mocks"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func series(code string, bars []types.DailyBar) types.Series {
	return types.Series{
		Identity: types.Identity{Code: code, Date: optional.Some(bars[len(bars)-1].Date)},
		Bars:     bars,
	}
}

type ScannerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	source  *mocks.MockDataSource
	library *mocks.MockLibrary
	scanner *Scanner
}

func TestScannerSuite(t *testing.T) {
	suite.Run(t, new(ScannerTestSuite))
}

func (suite *ScannerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.source = mocks.NewMockDataSource(suite.ctrl)
	suite.library = mocks.NewMockLibrary(suite.ctrl)
	suite.scanner = NewScanner(suite.source, strategy.NewEvaluator(suite.library, nil), Config{Workers: 3}, nil)

	// Moving averages at half the input put ma30 under a rising close and vol_ma20
	// under volume, so the baseline passes exactly when closes rise by more than 20%.
	half := func(in []float64, _ int) ([]float64, error) {
		out := make([]float64, len(in))
		for i, v := range in {
			out[i] = v / 2
		}

		return out, nil
	}

	suite.library.EXPECT().MA(gomock.Any(), gomock.Any()).DoAndReturn(half).AnyTimes()
	suite.library.EXPECT().MACD(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(in []float64, _, _, _ int) ([]float64, []float64, []float64, error) {
			return constant(len(in), 1), constant(len(in), 0.5), constant(len(in), 0.5), nil
		}).AnyTimes()
	suite.library.EXPECT().RSI(gomock.Any(), gomock.Any()).
		DoAndReturn(func(in []float64, _ int) ([]float64, error) {
			return constant(len(in), 60), nil
		}).AnyTimes()
	suite.library.EXPECT().Stoch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, c []float64, _, _, _ int) ([]float64, []float64, error) {
			return constant(len(c), 70), constant(len(c), 60), nil
		}).AnyTimes()
	suite.library.EXPECT().BBands(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(in []float64, _ int, _, _ float64) ([]float64, []float64, []float64, error) {
			return constant(len(in), math.NaN()), constant(len(in), math.NaN()), constant(len(in), math.NaN()), nil
		}).AnyTimes()
	suite.library.EXPECT().WillR(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, c []float64, _ int) ([]float64, error) {
			return constant(len(c), -50), nil
		}).AnyTimes()
	suite.library.EXPECT().ATR(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, c []float64, _ int) ([]float64, error) {
			return constant(len(c), 0.1), nil
		}).AnyTimes()
}

func (suite *ScannerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScannerTestSuite) expectSeries(s types.Series) {
	suite.source.EXPECT().GetSeries(gomock.Any(), s.Identity.Code, gomock.Any()).Return(s, nil)
}

func (suite *ScannerTestSuite) TestScanAll() {
	rising := series("600001", mocks.LinearBars(start, 40, 100, 1, 1000))
	flat := series("600002", mocks.LinearBars(start, 40, 100, 0, 1000))
	short := series("600003", mocks.LinearBars(start, 10, 100, 1, 1000))
	broken := mocks.LinearBars(start, 40, 100, 1, 1000)
	broken[20].Close = math.NaN()

	suite.source.EXPECT().ListIdentities(gomock.Any()).Return([]types.Identity{
		rising.Identity, flat.Identity, short.Identity, {Code: "600004"}, {Code: "600005"},
	}, nil)
	suite.expectSeries(rising)
	suite.expectSeries(flat)
	suite.expectSeries(short)
	suite.expectSeries(series("600004", broken))
	suite.source.EXPECT().GetSeries(gomock.Any(), "600005", gomock.Any()).
		Return(types.Series{}, errors.New(errors.ErrCodeNoDataFound, "no data found for code: 600005"))

	report, err := suite.scanner.Scan(context.Background(), strategy.DefaultOptions())
	suite.Require().NoError(err)

	suite.NotEmpty(report.RunID)
	suite.Require().Len(report.Results, 5)

	codes := make([]string, len(report.Results))
	for i, result := range report.Results {
		codes[i] = result.Identity.Code
	}

	suite.Equal([]string{"600001", "600002", "600003", "600004", "600005"}, codes)

	suite.Require().Len(report.Matched(), 1)
	suite.Equal("600001", report.Matched()[0].Code)

	suite.False(report.Results[1].Verdict.Passed)
	suite.Nil(report.Results[2].Err)
	suite.Empty(report.Results[2].Verdict.Conditions)

	failed := report.Failed()
	suite.Require().Len(failed, 2)
	suite.True(errors.HasCode(failed[0].Err, errors.ErrCodeMalformedInput))
	suite.True(errors.HasCode(failed[1].Err, errors.ErrCodeNoDataFound))
}

func (suite *ScannerTestSuite) TestScanSelectedCodes() {
	rising := series("600001", mocks.LinearBars(start, 40, 100, 1, 1000))
	cutoff := optional.Some(rising.Bars[35].Date)

	suite.source.EXPECT().GetSeries(gomock.Any(), "600001", cutoff).Return(rising, nil)

	opts := strategy.DefaultOptions()
	opts.Cutoff = cutoff

	report, err := suite.scanner.Scan(context.Background(), opts, "600001")
	suite.Require().NoError(err)
	suite.Require().Len(report.Results, 1)
	suite.Equal(36, report.Results[0].Verdict.Bars)
	suite.Equal(rising.Identity.Date, report.Results[0].Identity.Date)
}

func (suite *ScannerTestSuite) TestOnResult() {
	var (
		mu   sync.Mutex
		seen []string
	)

	scanner := NewScanner(suite.source, strategy.NewEvaluator(suite.library, nil), Config{
		Workers: 2,
		OnResult: func(result Result) {
			mu.Lock()
			defer mu.Unlock()

			seen = append(seen, result.Identity.Code)
		},
	}, nil)

	for _, code := range []string{"600001", "600002", "600003"} {
		suite.expectSeries(series(code, mocks.LinearBars(start, 40, 100, 1, 1000)))
	}

	_, err := scanner.Scan(context.Background(), strategy.DefaultOptions(), "600001", "600002", "600003")
	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"600001", "600002", "600003"}, seen)
}

func (suite *ScannerTestSuite) TestListFailure() {
	suite.source.EXPECT().ListIdentities(gomock.Any()).
		Return(nil, errors.New(errors.ErrCodeQueryFailed, "failed to list instruments"))

	_, err := suite.scanner.Scan(context.Background(), strategy.DefaultOptions())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeScanFailed))
}

func (suite *ScannerTestSuite) TestInvalidOptions() {
	opts := strategy.DefaultOptions()
	opts.Threshold = 1

	_, err := suite.scanner.Scan(context.Background(), opts)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidThreshold))
}

func (suite *ScannerTestSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.source.EXPECT().ListIdentities(gomock.Any()).Return([]types.Identity{{Code: "600001"}}, nil)

	_, err := suite.scanner.Scan(ctx, strategy.DefaultOptions())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeScanCancelled))
}

func (suite *ScannerTestSuite) TestDeadlineExceeded() {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	suite.source.EXPECT().ListIdentities(gomock.Any()).Return([]types.Identity{{Code: "600001"}}, nil)

	_, err := suite.scanner.Scan(ctx, strategy.DefaultOptions())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeScanCancelled))
	suite.True(errors.Is(err, context.DeadlineExceeded))
	suite.Contains(err.Error(), "timed out")
}

func TestNewScannerClampsWorkers(t *testing.T) {
	s := NewScanner(nil, nil, Config{Workers: 0}, nil)
	if s.config.Workers != 1 {
		t.Errorf("workers = %d, want 1", s.config.Workers)
	}
}
