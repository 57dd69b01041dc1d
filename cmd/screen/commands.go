package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rxtech-lab/argo-screener/internal/config"
	"github.com/rxtech-lab/argo-screener/internal/scanner"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "check needs exactly one instrument code")
	}

	code := cmd.Args().First()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	series, err := sess.source.GetSeries(ctx, code, sess.options.Cutoff)
	if err != nil {
		return err
	}

	verdict, err := sess.evaluator.Check(series.Identity, series.Bars, sess.options)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "%s  policy=%s threshold=%d bars=%d\n", series.Identity, verdict.Policy, sess.options.Threshold, verdict.Bars)

	if verdict.AsOf.IsSome() {
		fmt.Fprintf(out, "as of %s\n", verdict.AsOf.Unwrap().Format(time.DateOnly))
	}

	if len(verdict.Conditions) == 0 {
		fmt.Fprintf(out, "not enough history: need %d bars\n", sess.options.Threshold)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range verdict.Conditions {
		fmt.Fprintf(w, "  %s\t%s\n", c.Name, passFail(c.Passed))
	}

	w.Flush()
	fmt.Fprintf(out, "result: %s\n", passFail(verdict.Passed))

	return nil
}

func scanAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	scanConfig := scanner.Config{Workers: cfg.Workers}

	codes := cmd.Args().Slice()
	if cmd.Bool("progress") {
		total := len(codes)
		if total == 0 {
			identities, err := sess.source.ListIdentities(ctx)
			if err != nil {
				return err
			}

			total = len(identities)
		}

		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("screening"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()

		scanConfig.OnResult = func(scanner.Result) {
			_ = bar.Add(1)
		}
	}

	report, err := scanner.NewScanner(sess.source, sess.evaluator, scanConfig, sess.logger).Scan(ctx, sess.options, codes...)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeReportJSON(cmd.Root().Writer, report)
	}

	writeReport(cmd.Root().Writer, report)

	return nil
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	cfg := &config.ScreenConfig{}

	schema, err := cfg.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, schema)

	return nil
}

func writeReport(out io.Writer, report scanner.Report) {
	matched := report.Matched()
	failed := report.Failed()

	fmt.Fprintf(out, "run %s: %d scanned, %d matched, %d failed in %s\n",
		report.RunID, len(report.Results), len(matched), len(failed), report.Duration.Round(time.Millisecond))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, identity := range matched {
		fmt.Fprintf(w, "%s\t%s\n", identity.Code, identity.Name)
	}

	w.Flush()

	for _, result := range failed {
		fmt.Fprintf(out, "error %s: %v\n", result.Identity.Code, result.Err)
	}
}

type reportJSON struct {
	RunID    string        `json:"run_id"`
	Policy   string        `json:"policy"`
	Scanned  int           `json:"scanned"`
	Matched  []matchJSON   `json:"matched"`
	Failed   []failureJSON `json:"failed"`
	Duration string        `json:"duration"`
}

type matchJSON struct {
	Code string `json:"code"`
	Name string `json:"name"`
	AsOf string `json:"as_of"`
}

type failureJSON struct {
	Code      string `json:"code"`
	ErrorCode int    `json:"error_code"`
	Error     string `json:"error"`
}

func writeReportJSON(out io.Writer, report scanner.Report) error {
	payload := reportJSON{
		RunID:    report.RunID,
		Policy:   string(report.Options.Policy),
		Scanned:  len(report.Results),
		Matched:  []matchJSON{},
		Failed:   []failureJSON{},
		Duration: report.Duration.String(),
	}

	for _, result := range report.Results {
		switch {
		case result.Err != nil:
			payload.Failed = append(payload.Failed, failureJSON{
				Code:      result.Identity.Code,
				ErrorCode: int(errors.GetCode(result.Err)),
				Error:     result.Err.Error(),
			})
		case result.Verdict.Passed:
			match := matchJSON{Code: result.Identity.Code, Name: result.Identity.Name}
			if result.Verdict.AsOf.IsSome() {
				match.AsOf = result.Verdict.AsOf.Unwrap().Format(time.DateOnly)
			}

			payload.Matched = append(payload.Matched, match)
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(payload)
}

func passFail(passed bool) string {
	if passed {
		return "PASS"
	}

	return "FAIL"
}
