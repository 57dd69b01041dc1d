package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rxtech-lab/argo-screener/internal/datasource"
	"github.com/rxtech-lab/argo-screener/internal/indicator"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/internal/version"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "screen",
		Usage:   "Screen daily bars for sustained uptrends",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file; flags override its values",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Parquet or CSV file with code,name,date,open,high,low,close,volume columns",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: fmt.Sprintf("Data source type (%s, %s)", datasource.TypeDuckDB, datasource.TypeCSV),
			},
			&cli.IntFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Window length in trading days",
			},
			&cli.StringFlag{
				Name:    "policy",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Condition set (%s, %s)", types.PolicyBaseline, types.PolicyExtended),
			},
			&cli.StringFlag{
				Name:  "library",
				Usage: fmt.Sprintf("Indicator library (%s, %s)", indicator.LibraryTypeTALib, indicator.LibraryTypeNative),
			},
			&cli.StringFlag{
				Name:  "cutoff",
				Usage: "Last calendar day considered in `YYYY-MM-DD` format",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Instruments evaluated concurrently",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Evaluate one instrument and print every condition",
				ArgsUsage: "<code>",
				Action:    checkAction,
			},
			{
				Name:      "scan",
				Usage:     "Evaluate every instrument, or the given codes, and print the matches",
				ArgsUsage: "[code...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Show a progress bar on stderr",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the report as JSON",
					},
				},
				Action: scanAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the config file",
				Action: schemaAction,
			},
		},
	}
}

// exitCode returns 2 for validation errors (bad flags, config or input) and 1 otherwise.
func exitCode(err error) int {
	var coded *errors.Error
	if errors.As(err, &coded) && coded.Code >= 100 && coded.Code < 200 {
		return 2
	}

	return 1
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Print(err)
		os.Exit(exitCode(err))
	}
}
