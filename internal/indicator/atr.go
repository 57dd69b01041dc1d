package indicator

import "math"

// ATR implements Library. The first value, at index period, is the plain average
// of the true ranges of bars 1..period; later values use Wilder's smoothing.
func (n *Native) ATR(high, low, close []float64, period int) ([]float64, error) {
	if err := validateHLC("ATR", high, low, close); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	out := undefinedSeries(len(close))
	if len(close) <= atrLookback(period) {
		return out, nil
	}

	atr := 0.0
	for i := 1; i <= period; i++ {
		atr += trueRange(high[i], low[i], close[i-1])
	}

	atr /= float64(period)
	out[period] = atr

	for i := period + 1; i < len(close); i++ {
		atr = (atr*float64(period-1) + trueRange(high[i], low[i], close[i-1])) / float64(period)
		out[i] = atr
	}

	return out, nil
}

func trueRange(high, low, prevClose float64) float64 {
	return math.Max(
		math.Max(
			high-low,
			math.Abs(high-prevClose),
		),
		math.Abs(low-prevClose),
	)
}
