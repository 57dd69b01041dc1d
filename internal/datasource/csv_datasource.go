package datasource

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/logger"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"go.uber.org/zap"
)

// csvRow is one line of a daily bar CSV file.
type csvRow struct {
	Code   string  `csv:"code"`
	Name   string  `csv:"name"`
	Date   string  `csv:"date"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume float64 `csv:"volume"`
}

// CSVDataSource serves series from a CSV file loaded into memory. Rows keep their
// file order per code; out of order rows are left for the evaluator to reject.
type CSVDataSource struct {
	logger     *logger.Logger
	identities map[string]types.Identity
	bars       map[string][]types.DailyBar
}

// NewCSVDataSource loads path, a CSV file with a code,name,date,open,high,low,close,volume
// header and YYYY-MM-DD dates.
func NewCSVDataSource(path string, log *logger.Logger) (*CSVDataSource, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to open CSV file %s", path)
	}
	defer file.Close()

	var rows []*csvRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to unmarshal CSV file %s", path)
	}

	d := &CSVDataSource{
		logger:     log,
		identities: make(map[string]types.Identity),
		bars:       make(map[string][]types.DailyBar),
	}

	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid date %q on row %d", row.Date, i+1)
		}

		d.bars[row.Code] = append(d.bars[row.Code], types.DailyBar{
			Date:   date,
			Open:   row.Open,
			High:   row.High,
			Low:    row.Low,
			Close:  row.Close,
			Volume: row.Volume,
		})

		identity, ok := d.identities[row.Code]
		if !ok {
			identity = types.Identity{Code: row.Code, Name: row.Name, Date: optional.Some(date)}
		}

		if identity.Name == "" {
			identity.Name = row.Name
		}

		if date.After(identity.Date.Unwrap()) {
			identity.Date = optional.Some(date)
		}

		d.identities[row.Code] = identity
	}

	log.Debug("Loaded CSV data source", zap.String("path", path), zap.Int("rows", len(rows)), zap.Int("codes", len(d.identities)))

	return d, nil
}

// ListIdentities implements DataSource.
func (d *CSVDataSource) ListIdentities(ctx context.Context) ([]types.Identity, error) {
	identities := make([]types.Identity, 0, len(d.identities))
	for _, identity := range d.identities {
		identities = append(identities, identity)
	}

	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Code < identities[j].Code
	})

	return identities, nil
}

// GetSeries implements DataSource.
func (d *CSVDataSource) GetSeries(ctx context.Context, code string, end optional.Option[time.Time]) (types.Series, error) {
	if err := ctx.Err(); err != nil {
		return types.Series{}, err
	}

	identity, ok := d.identities[code]
	if !ok {
		return types.Series{}, errors.Newf(errors.ErrCodeNoDataFound, "no data found for code: %s", code)
	}

	all := d.bars[code]
	bars := make([]types.DailyBar, 0, len(all))

	for _, bar := range all {
		if end.IsSome() && types.CalendarDate(bar.Date).After(types.CalendarDate(end.Unwrap())) {
			continue
		}

		bars = append(bars, bar)
	}

	return types.Series{Identity: identity, Bars: bars}, nil
}

// Close implements DataSource.
func (d *CSVDataSource) Close() error {
	return nil
}
