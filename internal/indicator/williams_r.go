package indicator

// WillR implements Library.
func (n *Native) WillR(high, low, close []float64, period int) ([]float64, error) {
	if err := validateHLC("WillR", high, low, close); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	out := undefinedSeries(len(close))

	for i := willRLookback(period); i < len(close); i++ {
		hh, ll := highestLowest(high, low, i-period+1, i)

		diff := hh - ll
		if diff == 0 {
			out[i] = 0

			continue
		}

		out[i] = -100 * (hh - close[i]) / diff
	}

	return out, nil
}
