package main

import (
	"github.com/rxtech-lab/argo-screener/internal/config"
	"github.com/rxtech-lab/argo-screener/internal/datasource"
	"github.com/rxtech-lab/argo-screener/internal/indicator"
	"github.com/rxtech-lab/argo-screener/internal/logger"
	"github.com/rxtech-lab/argo-screener/internal/strategy"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/urfave/cli/v3"
)

// loadConfig reads the --config file, if any, and applies the flags that were set.
func loadConfig(cmd *cli.Command) (config.ScreenConfig, error) {
	cfg := config.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.ScreenConfig{}, err
		}

		cfg = loaded
	}

	if cmd.IsSet("data") {
		cfg.DataSource.Path = cmd.String("data")
	}

	if cmd.IsSet("source") {
		cfg.DataSource.Type = datasource.Type(cmd.String("source"))
	}

	if cmd.IsSet("threshold") {
		cfg.Threshold = int(cmd.Int("threshold"))
	}

	if cmd.IsSet("policy") {
		cfg.Policy = types.Policy(cmd.String("policy"))
	}

	if cmd.IsSet("library") {
		cfg.Library = indicator.LibraryType(cmd.String("library"))
	}

	if cmd.IsSet("cutoff") {
		cfg.Cutoff = cmd.String("cutoff")
	}

	if cmd.IsSet("workers") {
		cfg.Workers = int(cmd.Int("workers"))
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.ScreenConfig{}, err
	}

	return cfg, nil
}

// session is everything a command needs, built from the resolved config.
type session struct {
	config    config.ScreenConfig
	options   strategy.Options
	logger    *logger.Logger
	source    datasource.DataSource
	evaluator *strategy.Evaluator
}

func newSession(cfg config.ScreenConfig) (*session, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	library, err := indicator.DefaultRegistry().GetLibrary(cfg.Library)
	if err != nil {
		return nil, err
	}

	source, err := datasource.New(cfg.DataSource.Type, cfg.DataSource.Path, log)
	if err != nil {
		return nil, err
	}

	return &session{
		config:    cfg,
		options:   opts,
		logger:    log,
		source:    source,
		evaluator: strategy.NewEvaluator(library, log),
	}, nil
}

func (s *session) Close() error {
	_ = s.logger.Sync()

	return s.source.Close()
}
