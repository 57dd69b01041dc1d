package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/logger"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"go.uber.org/zap"
)

const dailyBarsView = "daily_bars"

// DuckDBDataSource reads daily bars from a parquet file through an in-process
// DuckDB view. The file needs columns code, name, date, open, high, low, close
// and volume.
type DuckDBDataSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBDataSource opens a DuckDB database at dbPath (":memory:" for an
// in-memory one) and exposes the parquet file at parquetPath as a view. A nil log
// discards output.
func NewDuckDBDataSource(dbPath string, parquetPath string, log *logger.Logger) (*DuckDBDataSource, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	d := &DuckDBDataSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	if err := d.initialize(parquetPath); err != nil {
		db.Close()

		return nil, err
	}

	return d, nil
}

func (d *DuckDBDataSource) initialize(path string) error {
	d.logger.Debug("Initializing DuckDB data source", zap.String("path", path))

	_, err := d.db.Exec(fmt.Sprintf(`DROP VIEW IF EXISTS %s;`, dailyBarsView))
	if err != nil {
		return errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to drop existing view", err)
	}

	// Squirrel has no CREATE VIEW support.
	query := fmt.Sprintf(`
		CREATE VIEW %s AS
		SELECT
			CAST(code AS VARCHAR) AS code,
			CAST(name AS VARCHAR) AS name,
			CAST(date AS DATE) AS date,
			CAST(open AS DOUBLE) AS open,
			CAST(high AS DOUBLE) AS high,
			CAST(low AS DOUBLE) AS low,
			CAST(close AS DOUBLE) AS close,
			CAST(volume AS DOUBLE) AS volume
		FROM read_parquet('%s');
	`, dailyBarsView, strings.ReplaceAll(path, "'", "''"))

	if _, err := d.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to load parquet file %s", path)
	}

	return nil
}

// ListIdentities implements DataSource.
func (d *DuckDBDataSource) ListIdentities(ctx context.Context) ([]types.Identity, error) {
	query, args, err := d.sq.
		Select("code", "max(name)", "max(date)").
		From(dailyBarsView).
		GroupBy("code").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to list instruments", err)
	}
	defer rows.Close()

	identities := make([]types.Identity, 0, 256)

	for rows.Next() {
		var (
			code   string
			name   sql.NullString
			latest time.Time
		)

		if err := rows.Scan(&code, &name, &latest); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to scan row", err)
		}

		identities = append(identities, types.Identity{
			Code: code,
			Name: name.String,
			Date: optional.Some(latest),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating rows", err)
	}

	return identities, nil
}

// GetSeries implements DataSource.
func (d *DuckDBDataSource) GetSeries(ctx context.Context, code string, end optional.Option[time.Time]) (types.Series, error) {
	d.logger.Debug("Reading series", zap.String("code", code))

	identity, err := d.identity(ctx, code)
	if err != nil {
		return types.Series{}, err
	}

	where := squirrel.And{squirrel.Eq{"code": code}}
	if end.IsSome() {
		where = append(where, squirrel.LtOrEq{"date": types.CalendarDate(end.Unwrap())})
	}

	query, args, err := d.sq.
		Select("date", "open", "high", "low", "close", "volume").
		From(dailyBarsView).
		Where(where).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return types.Series{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	stmt, err := d.db.PrepareContext(ctx, query)
	if err != nil {
		return types.Series{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to prepare query", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return types.Series{}, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query bars for %s", code)
	}
	defer rows.Close()

	bars := make([]types.DailyBar, 0, 512)

	for rows.Next() {
		var bar types.DailyBar

		if err := rows.Scan(&bar.Date, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return types.Series{}, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to scan row", err)
		}

		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return types.Series{}, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating rows", err)
	}

	return types.Series{Identity: identity, Bars: bars}, nil
}

func (d *DuckDBDataSource) identity(ctx context.Context, code string) (types.Identity, error) {
	query, args, err := d.sq.
		Select("max(name)", "max(date)").
		From(dailyBarsView).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return types.Identity{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	var (
		name   sql.NullString
		latest sql.NullTime
	)

	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&name, &latest); err != nil {
		return types.Identity{}, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to read instrument %s", code)
	}

	// Aggregates over no rows yield NULL.
	if !latest.Valid {
		return types.Identity{}, errors.Newf(errors.ErrCodeNoDataFound, "no data found for code: %s", code)
	}

	return types.Identity{Code: code, Name: name.String, Date: optional.Some(latest.Time)}, nil
}

// Close implements DataSource.
func (d *DuckDBDataSource) Close() error {
	if d.db != nil {
		return d.db.Close()
	}

	return nil
}
