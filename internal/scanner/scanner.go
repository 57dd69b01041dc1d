// Package scanner runs the keep-increasing screen over every instrument of a data source.
package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-screener/internal/datasource"
	"github.com/rxtech-lab/argo-screener/internal/logger"
	"github.com/rxtech-lab/argo-screener/internal/strategy"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one instrument. Err is set when the series could not
// be loaded or was rejected by the evaluator.
type Result struct {
	Identity types.Identity
	Verdict  strategy.Verdict
	Err      error
}

// Report summarises a scan.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Options   strategy.Options
	// Results are in the order instruments were listed.
	Results []Result
}

// Matched returns the identities whose verdict passed.
func (r Report) Matched() []types.Identity {
	var matched []types.Identity

	for _, result := range r.Results {
		if result.Err == nil && result.Verdict.Passed {
			matched = append(matched, result.Identity)
		}
	}

	return matched
}

// Failed returns the results that ended in an error.
func (r Report) Failed() []Result {
	var failed []Result

	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}

	return failed
}

// Config tunes a Scanner.
type Config struct {
	// Workers bounds the number of instruments evaluated at once.
	Workers int
	// OnResult is called after each instrument, from the worker goroutine.
	OnResult func(Result)
}

// Scanner evaluates instruments from a data source concurrently.
type Scanner struct {
	source    datasource.DataSource
	evaluator *strategy.Evaluator
	config    Config
	logger    *logger.Logger
}

// NewScanner creates a scanner. Workers below one are treated as one.
func NewScanner(source datasource.DataSource, evaluator *strategy.Evaluator, config Config, log *logger.Logger) *Scanner {
	if config.Workers < 1 {
		config.Workers = 1
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Scanner{
		source:    source,
		evaluator: evaluator,
		config:    config,
		logger:    log,
	}
}

// Scan evaluates codes, or every instrument in the source when codes is empty.
// Per-instrument failures are recorded in the report and do not stop the scan.
func (s *Scanner) Scan(ctx context.Context, opts strategy.Options, codes ...string) (Report, error) {
	report := Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
		Options:   opts,
	}

	if err := opts.Validate(); err != nil {
		return report, err
	}

	identities, err := s.identities(ctx, codes)
	if err != nil {
		return report, err
	}

	s.logger.Info("Starting scan",
		zap.String("run_id", report.RunID),
		zap.Int("instruments", len(identities)),
		zap.String("policy", string(opts.Policy)),
		zap.Int("threshold", opts.Threshold),
		zap.Int("workers", s.config.Workers),
	)

	report.Results = make([]Result, len(identities))

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i, identity := range identities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := s.evaluate(gctx, identity, opts)
			report.Results[i] = result

			if s.config.OnResult != nil {
				mu.Lock()
				s.config.OnResult(result)
				mu.Unlock()
			}

			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	report.Duration = time.Since(report.StartedAt)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return report, errors.Wrap(errors.ErrCodeScanCancelled, "scan timed out", err)
		}

		return report, errors.Wrap(errors.ErrCodeScanCancelled, "scan cancelled", err)
	}

	s.logger.Info("Scan finished",
		zap.String("run_id", report.RunID),
		zap.Int("matched", len(report.Matched())),
		zap.Int("failed", len(report.Failed())),
		zap.Duration("duration", report.Duration),
	)

	return report, nil
}

func (s *Scanner) identities(ctx context.Context, codes []string) ([]types.Identity, error) {
	if len(codes) > 0 {
		identities := make([]types.Identity, len(codes))
		for i, code := range codes {
			identities[i] = types.Identity{Code: code}
		}

		return identities, nil
	}

	identities, err := s.source.ListIdentities(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeScanFailed, "failed to list instruments", err)
	}

	return identities, nil
}

func (s *Scanner) evaluate(ctx context.Context, identity types.Identity, opts strategy.Options) Result {
	series, err := s.source.GetSeries(ctx, identity.Code, opts.Cutoff)
	if err != nil {
		s.logger.Warn("Failed to load series",
			zap.String("code", identity.Code),
			zap.Int("error_code", int(errors.GetCode(err))),
			zap.Error(err),
		)

		return Result{Identity: identity, Err: err}
	}

	verdict, err := s.evaluator.Check(series.Identity, series.Bars, opts)
	if err != nil {
		s.logger.Warn("Failed to evaluate",
			zap.String("code", identity.Code),
			zap.Int("error_code", int(errors.GetCode(err))),
			zap.Error(err),
		)

		return Result{Identity: series.Identity, Verdict: verdict, Err: err}
	}

	return Result{Identity: series.Identity, Verdict: verdict}
}
