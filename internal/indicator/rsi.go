package indicator

// RSI implements Library using Wilder's smoothing. The first value, at index
// period, averages the first period price changes.
func (n *Native) RSI(in []float64, period int) ([]float64, error) {
	if err := validateInput("RSI", in); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	out := undefinedSeries(len(in))
	if len(in) <= rsiLookback(period) {
		return out, nil
	}

	avgGain := 0.0
	avgLoss := 0.0

	for i := 1; i <= period; i++ {
		gain, loss := priceChange(in[i-1], in[i])
		avgGain += gain
		avgLoss += loss
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = relativeStrength(avgGain, avgLoss)

	// Subsequent averages using Wilder's smoothing method
	for i := period + 1; i < len(in); i++ {
		gain, loss := priceChange(in[i-1], in[i])
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = relativeStrength(avgGain, avgLoss)
	}

	return out, nil
}

func priceChange(prev, cur float64) (gain float64, loss float64) {
	change := cur - prev
	if change > 0 {
		return change, 0
	}

	return 0, -change
}

// relativeStrength maps average gain/loss to [0, 100]. A flat series reads 0.
func relativeStrength(avgGain, avgLoss float64) float64 {
	total := avgGain + avgLoss
	if total == 0 {
		return 0
	}

	return 100 * avgGain / total
}
