package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// BBands implements Library. σ is the population standard deviation of the window.
func (n *Native) BBands(in []float64, period int, devUp, devDown float64) ([]float64, []float64, []float64, error) {
	if err := validateInput("BBands", in); err != nil {
		return nil, nil, nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, nil, nil, err
	}

	if devUp < 0 || devDown < 0 {
		return nil, nil, nil, errors.Newf(errors.ErrCodeInvalidParameter, "deviation multipliers must not be negative, got %f and %f", devUp, devDown)
	}

	upper := undefinedSeries(len(in))
	middle := simpleMovingAverageFrom(in, period, 0)
	lower := undefinedSeries(len(in))

	for i := maLookback(period); i < len(in); i++ {
		var squaredDiffSum float64

		for j := i - period + 1; j <= i; j++ {
			diff := in[j] - middle[i]
			squaredDiffSum += diff * diff
		}

		stdDev := math.Sqrt(squaredDiffSum / float64(period))

		upper[i] = middle[i] + devUp*stdDev
		lower[i] = middle[i] - devDown*stdDev
	}

	return upper, middle, lower, nil
}
