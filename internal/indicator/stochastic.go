package indicator

// Stoch implements Library. Fast %K is smoothed by an SMA of slowKPeriod to give
// slow %K, which is smoothed again by an SMA of slowDPeriod to give %D.
func (n *Native) Stoch(high, low, close []float64, fastKPeriod, slowKPeriod, slowDPeriod int) ([]float64, []float64, error) {
	if err := validateHLC("Stoch", high, low, close); err != nil {
		return nil, nil, err
	}

	if err := validatePeriod("fastKPeriod", fastKPeriod); err != nil {
		return nil, nil, err
	}

	if err := validatePeriod("slowKPeriod", slowKPeriod); err != nil {
		return nil, nil, err
	}

	if err := validatePeriod("slowDPeriod", slowDPeriod); err != nil {
		return nil, nil, err
	}

	fastK := undefinedSeries(len(close))

	for i := fastKPeriod - 1; i < len(close); i++ {
		hh, ll := highestLowest(high, low, i-fastKPeriod+1, i)

		diff := hh - ll
		if diff == 0 {
			fastK[i] = 0

			continue
		}

		fastK[i] = 100 * (close[i] - ll) / diff
	}

	k := simpleMovingAverageFrom(fastK, slowKPeriod, fastKPeriod-1)
	d := simpleMovingAverageFrom(k, slowDPeriod, fastKPeriod+slowKPeriod-2)

	lookback := stochLookback(fastKPeriod, slowKPeriod, slowDPeriod)

	return markUndefined(k, lookback), d, nil
}
