// Package strategy implements the keep-increasing screen: a daily-bar series passes
// when its trailing window shows a sustained uptrend confirmed by volume and
// momentum indicators.
package strategy

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/indicator"
	"github.com/rxtech-lab/argo-screener/internal/logger"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultThreshold is the default window length in trading days.
	DefaultThreshold = 30
	// MinBaselineThreshold is the shortest window whose checkpoints and last bar all exist.
	MinBaselineThreshold = 2
	// MinExtendedThreshold also leaves room for the three trailing days the extended policy reads.
	MinExtendedThreshold = 3
)

// MinThreshold returns the shortest window policy accepts.
func MinThreshold(policy types.Policy) int {
	if policy == types.PolicyExtended {
		return MinExtendedThreshold
	}

	return MinBaselineThreshold
}

// Options controls a single evaluation.
type Options struct {
	// Cutoff is the last calendar day considered. None falls back to the identity's date.
	Cutoff    optional.Option[time.Time]
	Threshold int
	Policy    types.Policy
}

// DefaultOptions returns no explicit cutoff, a 30 day window and the baseline policy.
func DefaultOptions() Options {
	return Options{
		Cutoff:    optional.None[time.Time](),
		Threshold: DefaultThreshold,
		Policy:    types.PolicyBaseline,
	}
}

// Validate checks the policy and the threshold it requires.
func (o Options) Validate() error {
	if !o.Policy.Valid() {
		return errors.Newf(errors.ErrCodeInvalidPolicy, "unknown policy %q", o.Policy)
	}

	if minimum := MinThreshold(o.Policy); o.Threshold < minimum {
		return errors.Newf(errors.ErrCodeInvalidThreshold, "%s policy needs a threshold of at least %d, got %d", o.Policy, minimum, o.Threshold)
	}

	return nil
}

// ConditionResult is the outcome of one named condition.
type ConditionResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Verdict is the full result of Check.
type Verdict struct {
	Policy types.Policy `json:"policy"`
	Passed bool         `json:"passed"`
	// Conditions is empty when there was not enough history to evaluate.
	Conditions []ConditionResult `json:"conditions"`
	// Bars is the number of bars left after the cutoff was applied.
	Bars int `json:"bars"`
	// AsOf is the date of the newest bar that was evaluated.
	AsOf optional.Option[time.Time] `json:"as_of"`
}

// Evaluator runs the screen with an injected indicator library. It holds no
// per-call state and is safe for concurrent use.
type Evaluator struct {
	library indicator.Library
	log     *logger.Logger
}

// NewEvaluator creates an evaluator. A nil log discards output.
func NewEvaluator(library indicator.Library, log *logger.Logger) *Evaluator {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Evaluator{
		library: library,
		log:     log,
	}
}

// Evaluate reports whether series passes the screen. Not enough history on or
// before the cutoff is a false result, not an error.
func (e *Evaluator) Evaluate(identity types.Identity, series []types.DailyBar, opts Options) (bool, error) {
	verdict, err := e.Check(identity, series, opts)
	if err != nil {
		return false, err
	}

	return verdict.Passed, nil
}

// Check evaluates series like Evaluate and also returns every condition outcome.
func (e *Evaluator) Check(identity types.Identity, series []types.DailyBar, opts Options) (Verdict, error) {
	verdict := Verdict{Policy: opts.Policy, AsOf: optional.None[time.Time]()}

	if err := opts.Validate(); err != nil {
		return verdict, err
	}

	if err := validateBars(series); err != nil {
		return verdict, errors.Wrapf(errors.ErrCodeMalformedInput, err, "invalid series for %s", identity)
	}

	bars, err := prepareSeries(identity, series, resolveCutoff(identity, opts.Cutoff), opts.Threshold)
	if err != nil {
		if errors.IsInsufficientDataError(err) {
			e.log.Debug("insufficient history",
				zap.String("code", identity.Code),
				zap.Int("threshold", opts.Threshold),
				zap.Error(err),
			)

			return verdict, nil
		}

		return verdict, err
	}

	verdict.Bars = len(bars)
	verdict.AsOf = optional.Some(bars[len(bars)-1].Date)

	enriched, err := enrich(e.library, bars)
	if err != nil {
		e.log.Debug("indicator pipeline failed", zap.String("code", identity.Code), zap.Error(err))

		return verdict, err
	}

	window := selectWindow(enriched, opts.Threshold)
	conditions := conditionsFor(opts.Policy)
	verdict.Conditions = make([]ConditionResult, len(conditions))
	verdict.Passed = true

	for i, c := range conditions {
		passed := c.check(window)
		verdict.Conditions[i] = ConditionResult{Name: c.name, Passed: passed}
		verdict.Passed = verdict.Passed && passed
	}

	e.log.Debug("evaluated",
		zap.String("code", identity.Code),
		zap.String("policy", string(opts.Policy)),
		zap.Bool("passed", verdict.Passed),
		zap.Int("bars", verdict.Bars),
	)

	return verdict, nil
}
