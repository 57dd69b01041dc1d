package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-screener/internal/indicator"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

const (
	trendMAPeriod   = 30
	volumeMAPeriod  = 20
	macdFastPeriod  = 12
	macdSlowPeriod  = 26
	macdSignal      = 9
	rsiPeriod       = 14
	stochFastK      = 9
	stochSlowK      = 3
	stochSlowD      = 3
	bbandsPeriod    = 20
	bbandsDeviation = 2.0
	shortMAPeriod   = 5
	shortRSIPeriod  = 5
	willRPeriod     = 14
	atrPeriod       = 14
	returnLag       = 5
)

// enrich runs the full indicator set over bars and returns one enriched bar per
// input bar. ma30, vol_ma20 and ma5 read 0.0 where undefined; every other column
// keeps the library's NaN.
func enrich(library indicator.Library, bars []types.DailyBar) ([]types.EnrichedBar, error) {
	n := len(bars)
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)

	for i, bar := range bars {
		closes[i] = bar.Close
		highs[i] = bar.High
		lows[i] = bar.Low
		volumes[i] = bar.Volume
	}

	columns := make(map[types.IndicatorType][]float64, len(types.AllIndicatorTypes()))

	ma30, err := library.MA(closes, trendMAPeriod)
	if err != nil {
		return nil, indicatorError("MA(close, 30)", err)
	}

	columns[types.IndicatorTypeMA30] = zeroUndefined(ma30)

	volMA20, err := library.MA(volumes, volumeMAPeriod)
	if err != nil {
		return nil, indicatorError("MA(volume, 20)", err)
	}

	columns[types.IndicatorTypeVolMA20] = zeroUndefined(volMA20)

	macd, macdSignalLine, macdHist, err := library.MACD(closes, macdFastPeriod, macdSlowPeriod, macdSignal)
	if err != nil {
		return nil, indicatorError("MACD(close, 12, 26, 9)", err)
	}

	columns[types.IndicatorTypeMACD] = macd
	columns[types.IndicatorTypeMACDSignal] = macdSignalLine
	columns[types.IndicatorTypeMACDHist] = macdHist

	rsi, err := library.RSI(closes, rsiPeriod)
	if err != nil {
		return nil, indicatorError("RSI(close, 14)", err)
	}

	columns[types.IndicatorTypeRSI] = rsi

	k, d, err := library.Stoch(highs, lows, closes, stochFastK, stochSlowK, stochSlowD)
	if err != nil {
		return nil, indicatorError("STOCH(9, 3, 3)", err)
	}

	columns[types.IndicatorTypeK] = k
	columns[types.IndicatorTypeD] = d

	upper, middle, lower, err := library.BBands(closes, bbandsPeriod, bbandsDeviation, bbandsDeviation)
	if err != nil {
		return nil, indicatorError("BBANDS(close, 20, 2, 2)", err)
	}

	columns[types.IndicatorTypeUpper] = upper
	columns[types.IndicatorTypeMiddle] = middle
	columns[types.IndicatorTypeLower] = lower

	ma5, err := library.MA(closes, shortMAPeriod)
	if err != nil {
		return nil, indicatorError("MA(close, 5)", err)
	}

	columns[types.IndicatorTypeMA5] = zeroUndefined(ma5)

	rsi5, err := library.RSI(closes, shortRSIPeriod)
	if err != nil {
		return nil, indicatorError("RSI(close, 5)", err)
	}

	columns[types.IndicatorTypeRSI5] = rsi5

	willr, err := library.WillR(highs, lows, closes, willRPeriod)
	if err != nil {
		return nil, indicatorError("WILLR(14)", err)
	}

	columns[types.IndicatorTypeWilliamsR] = willr

	atr, err := library.ATR(highs, lows, closes, atrPeriod)
	if err != nil {
		return nil, indicatorError("ATR(14)", err)
	}

	columns[types.IndicatorTypeATR] = atr
	columns[types.IndicatorTypeReturn5] = percentChange(closes, returnLag)

	for name, column := range columns {
		if len(column) != n {
			return nil, errors.Newf(errors.ErrCodeIndicatorCalculation, "indicator %s returned %d values for %d bars", name, len(column), n)
		}
	}

	enriched := make([]types.EnrichedBar, n)
	for i, bar := range bars {
		values := make(map[types.IndicatorType]float64, len(columns))
		for name, column := range columns {
			values[name] = column[i]
		}

		enriched[i] = types.EnrichedBar{DailyBar: bar, Values: values}
	}

	return enriched, nil
}

// zeroUndefined replaces NaN with 0.0 in place.
func zeroUndefined(values []float64) []float64 {
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = 0
		}
	}

	return values
}

// percentChange returns in[i]/in[i-lag] - 1, NaN for the first lag entries.
func percentChange(in []float64, lag int) []float64 {
	out := make([]float64, len(in))
	for i := range in {
		if i < lag {
			out[i] = math.NaN()

			continue
		}

		out[i] = in[i]/in[i-lag] - 1
	}

	return out
}

func indicatorError(name string, err error) error {
	return errors.Wrapf(errors.ErrCodeIndicatorCalculation, err, "failed to compute %s", name)
}
