package indicator

import (
	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// MACD implements Library. The MACD line is reported from the same index as the
// signal line so that all three outputs share one lookback.
func (n *Native) MACD(in []float64, fastPeriod, slowPeriod, signalPeriod int) ([]float64, []float64, []float64, error) {
	if err := validateMACD(in, fastPeriod, slowPeriod, signalPeriod); err != nil {
		return nil, nil, nil, err
	}

	fast := exponentialMovingAverageFrom(in, fastPeriod, 0)
	slow := exponentialMovingAverageFrom(in, slowPeriod, 0)

	macd := undefinedSeries(len(in))
	for i := slowPeriod - 1; i < len(in); i++ {
		macd[i] = fast[i] - slow[i]
	}

	signal := exponentialMovingAverageFrom(macd, signalPeriod, slowPeriod-1)

	hist := undefinedSeries(len(in))
	for i := range in {
		hist[i] = macd[i] - signal[i]
	}

	lookback := macdLookback(slowPeriod, signalPeriod)
	markUndefined(macd, lookback)
	markUndefined(hist, lookback)

	return macd, signal, hist, nil
}

func validateMACD(in []float64, fastPeriod, slowPeriod, signalPeriod int) error {
	if err := validateInput("MACD", in); err != nil {
		return err
	}

	if err := validatePeriod("fastPeriod", fastPeriod); err != nil {
		return err
	}

	if err := validatePeriod("slowPeriod", slowPeriod); err != nil {
		return err
	}

	if err := validatePeriod("signalPeriod", signalPeriod); err != nil {
		return err
	}

	if fastPeriod >= slowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod (%d) must be smaller than slowPeriod (%d)", fastPeriod, slowPeriod)
	}

	return nil
}
