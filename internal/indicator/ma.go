package indicator

// Native computes every indicator in pure Go, following TA-Lib's lookback
// conventions so it can stand in for the go-talib backed library.
type Native struct{}

// NewNative creates the pure Go Indicator Library.
func NewNative() Library {
	return &Native{}
}

// Name returns the name of the library.
func (n *Native) Name() LibraryType {
	return LibraryTypeNative
}

// MA implements Library.
func (n *Native) MA(in []float64, period int) ([]float64, error) {
	if err := validateInput("MA", in); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	return simpleMovingAverageFrom(in, period, 0), nil
}

// simpleMovingAverageFrom averages in over a trailing window, ignoring everything
// before start. The first defined output is at start+period-1.
func simpleMovingAverageFrom(in []float64, period int, start int) []float64 {
	out := undefinedSeries(len(in))
	if start < 0 || start+period > len(in) {
		return out
	}

	sum := 0.0

	for i := start; i < len(in); i++ {
		sum += in[i]
		if i-start >= period {
			sum -= in[i-period]
		}

		if i-start >= period-1 {
			out[i] = sum / float64(period)
		}
	}

	return out
}
