package indicator

// exponentialMovingAverageFrom computes an EMA with multiplier 2/(period+1), seeded
// with the simple average of in[start:start+period]. Values before start are ignored
// and the first defined output is at start+period-1.
func exponentialMovingAverageFrom(in []float64, period int, start int) []float64 {
	out := undefinedSeries(len(in))
	if start < 0 || start+period > len(in) {
		return out
	}

	seed := 0.0
	for i := start; i < start+period; i++ {
		seed += in[i]
	}

	seed /= float64(period)

	alpha := 2.0 / float64(period+1)
	ema := seed
	out[start+period-1] = ema

	for i := start + period; i < len(in); i++ {
		ema = (in[i]-ema)*alpha + ema
		out[i] = ema
	}

	return out
}
