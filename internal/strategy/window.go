package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-screener/internal/types"
)

// Checkpoints are the interior window indices sampled by the trend checks.
type Checkpoints struct {
	Step1 int
	Step2 int
}

// checkpointsFor places the checkpoints at one and two thirds of the window,
// rounding half to even.
func checkpointsFor(threshold int) Checkpoints {
	return Checkpoints{
		Step1: int(math.RoundToEven(float64(threshold) / 3)),
		Step2: int(math.RoundToEven(float64(threshold) * 2 / 3)),
	}
}

// Window is the trailing slice of enriched bars the rules look at. Index 0 is the
// oldest bar and negative indices count back from the newest.
type Window struct {
	Bars        []types.EnrichedBar
	Checkpoints Checkpoints
}

// selectWindow keeps the last threshold bars. Callers guarantee len(bars) >= threshold.
func selectWindow(bars []types.EnrichedBar, threshold int) Window {
	return Window{
		Bars:        bars[len(bars)-threshold:],
		Checkpoints: checkpointsFor(threshold),
	}
}

// Len returns the number of bars in the window.
func (w Window) Len() int {
	return len(w.Bars)
}

// At returns the bar at index i; -1 is the newest bar.
func (w Window) At(i int) types.EnrichedBar {
	if i < 0 {
		i += len(w.Bars)
	}

	return w.Bars[i]
}

func (w Window) Value(i int, name types.IndicatorType) float64 {
	return w.At(i).Value(name)
}

func (w Window) Close(i int) float64 {
	return w.At(i).Close
}

func (w Window) Volume(i int) float64 {
	return w.At(i).Volume
}

// trend samples an indicator at 0, step1, step2 and the newest bar.
func (w Window) trend(name types.IndicatorType) []float64 {
	return []float64{
		w.Value(0, name),
		w.Value(w.Checkpoints.Step1, name),
		w.Value(w.Checkpoints.Step2, name),
		w.Value(-1, name),
	}
}
