package strategy

import (
	"math"
	"sort"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// validateBars rejects series that are missing fields or out of order. Bars are
// never repaired.
func validateBars(bars []types.DailyBar) error {
	for i, bar := range bars {
		if bar.Date.IsZero() {
			return errors.Newf(errors.ErrCodeMalformedInput, "bar %d has no date", i)
		}

		for _, field := range []struct {
			name  string
			value float64
		}{
			{"open", bar.Open},
			{"high", bar.High},
			{"low", bar.Low},
			{"close", bar.Close},
		} {
			if math.IsNaN(field.value) || math.IsInf(field.value, 0) || field.value <= 0 {
				return errors.Newf(errors.ErrCodeMalformedInput, "bar %d (%s) has invalid %s %v", i, bar.Date.Format(time.DateOnly), field.name, field.value)
			}
		}

		if math.IsNaN(bar.Volume) || math.IsInf(bar.Volume, 0) || bar.Volume < 0 {
			return errors.Newf(errors.ErrCodeMalformedInput, "bar %d (%s) has invalid volume %v", i, bar.Date.Format(time.DateOnly), bar.Volume)
		}

		if i > 0 && !types.CalendarDate(bar.Date).After(types.CalendarDate(bars[i-1].Date)) {
			return errors.Newf(errors.ErrCodeMalformedInput, "bar %d (%s) is not after bar %d (%s)", i, bar.Date.Format(time.DateOnly), i-1, bars[i-1].Date.Format(time.DateOnly))
		}
	}

	return nil
}

// resolveCutoff picks the explicit cutoff, falling back to the identity's reference date.
func resolveCutoff(identity types.Identity, cutoff optional.Option[time.Time]) optional.Option[time.Time] {
	if cutoff.IsSome() {
		return cutoff
	}

	return identity.Date
}

// prepareSeries keeps the bars dated on or before the cutoff day. A result shorter
// than threshold is an InsufficientDataError.
func prepareSeries(identity types.Identity, bars []types.DailyBar, cutoff optional.Option[time.Time], threshold int) ([]types.DailyBar, error) {
	truncated := bars

	if cutoff.IsSome() {
		end := types.CalendarDate(cutoff.Unwrap())
		n := sort.Search(len(bars), func(i int) bool {
			return types.CalendarDate(bars[i].Date).After(end)
		})
		truncated = bars[:n]
	}

	if len(truncated) < threshold {
		return nil, errors.NewInsufficientDataErrorf(threshold, len(truncated), identity.Code,
			"insufficient history for %s: required %d bars, got %d", identity, threshold, len(truncated))
	}

	return truncated, nil
}
