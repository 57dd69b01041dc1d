package indicator

import (
	"math"
)

// testPrices returns a deterministic high/low/close series that trends up with a
// superimposed oscillation, so every indicator sees both gains and losses.
func testPrices(n int) (high, low, close []float64) {
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)

	for i := 0; i < n; i++ {
		base := 100 + 0.3*float64(i) + 4*math.Sin(float64(i)/3)
		close[i] = base
		high[i] = base + 1 + math.Abs(math.Cos(float64(i)))
		low[i] = base - 1 - math.Abs(math.Sin(float64(i)/2))
	}

	return high, low, close
}

func linearSeries(n int, start float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}

	return out
}

func countLeadingNaN(values []float64) int {
	for i, v := range values {
		if !math.IsNaN(v) {
			return i
		}
	}

	return len(values)
}
