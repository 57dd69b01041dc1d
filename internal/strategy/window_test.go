package strategy

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCheckpointsFor(t *testing.T) {
	tests := []struct {
		threshold int
		expected  Checkpoints
	}{
		{threshold: 30, expected: Checkpoints{Step1: 10, Step2: 20}},
		{threshold: 2, expected: Checkpoints{Step1: 1, Step2: 1}},
		{threshold: 3, expected: Checkpoints{Step1: 1, Step2: 2}},
		{threshold: 4, expected: Checkpoints{Step1: 1, Step2: 3}},
		{threshold: 20, expected: Checkpoints{Step1: 7, Step2: 13}},
		{threshold: 31, expected: Checkpoints{Step1: 10, Step2: 21}},
		{threshold: 60, expected: Checkpoints{Step1: 20, Step2: 40}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, checkpointsFor(tc.threshold), "threshold %d", tc.threshold)
	}
}

func TestSelectWindow(t *testing.T) {
	bars := make([]types.EnrichedBar, 45)
	for i := range bars {
		bars[i] = types.EnrichedBar{
			DailyBar: types.DailyBar{Close: float64(i), Volume: float64(i * 10)},
			Values:   map[types.IndicatorType]float64{types.IndicatorTypeMA30: float64(i) / 2},
		}
	}

	w := selectWindow(bars, 30)
	assert.Equal(t, 30, w.Len())
	assert.Equal(t, Checkpoints{Step1: 10, Step2: 20}, w.Checkpoints)
	assert.Equal(t, 15.0, w.Close(0))
	assert.Equal(t, 44.0, w.Close(-1))
	assert.Equal(t, 430.0, w.Volume(-2))
	assert.Equal(t, 42.0, w.Close(-3))
	assert.Equal(t, 7.5, w.Value(0, types.IndicatorTypeMA30))
	assert.Equal(t, 22.0, w.Value(-1, types.IndicatorTypeMA30))
	assert.Equal(t, []float64{7.5, 12.5, 17.5, 22}, w.trend(types.IndicatorTypeMA30))
	assert.True(t, math.IsNaN(w.Value(-1, types.IndicatorTypeATR)))
}
