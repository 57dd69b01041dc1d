package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

func validatePeriod(name string, period int) error {
	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be a positive integer, got %d", name, period)
	}

	return nil
}

func validateInput(name string, in []float64) error {
	if len(in) == 0 {
		return errors.Newf(errors.ErrCodeIndicatorCalculation, "%s: input series is empty", name)
	}

	return nil
}

func validateHLC(name string, high, low, close []float64) error {
	if err := validateInput(name, close); err != nil {
		return err
	}

	if len(high) != len(close) || len(low) != len(close) {
		return errors.Newf(errors.ErrCodeInvalidLength, "%s: high, low and close must have the same length, got %d, %d and %d", name, len(high), len(low), len(close))
	}

	return nil
}

// undefinedSeries returns n NaN values.
func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

// markUndefined overwrites the first lookback entries of out with NaN.
func markUndefined(out []float64, lookback int) []float64 {
	for i := 0; i < lookback && i < len(out); i++ {
		out[i] = math.NaN()
	}

	return out
}

func maLookback(period int) int {
	return period - 1
}

func macdLookback(slowPeriod, signalPeriod int) int {
	return (slowPeriod - 1) + (signalPeriod - 1)
}

func rsiLookback(period int) int {
	return period
}

func stochLookback(fastKPeriod, slowKPeriod, slowDPeriod int) int {
	return (fastKPeriod - 1) + (slowKPeriod - 1) + (slowDPeriod - 1)
}

func willRLookback(period int) int {
	return period - 1
}

func atrLookback(period int) int {
	return period
}

// highestLowest returns the highest high and lowest low of high[from:to+1] and low[from:to+1].
func highestLowest(high, low []float64, from, to int) (float64, float64) {
	hh := math.Inf(-1)
	ll := math.Inf(1)

	for i := from; i <= to; i++ {
		hh = math.Max(hh, high[i])
		ll = math.Min(ll, low[i])
	}

	return hh, ll
}
