// Package datasource loads daily bar series for the screener.
package datasource

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/types"
)

// Type names a data source implementation.
type Type string

const (
	TypeDuckDB Type = "duckdb"
	TypeCSV    Type = "csv"
)

// DataSource provides daily bar series per instrument.
type DataSource interface {
	// ListIdentities returns every instrument in the source ordered by code. Each
	// identity's Date is the newest bar date known for it.
	ListIdentities(ctx context.Context) ([]types.Identity, error)
	// GetSeries returns the bars of code dated on or before end, oldest first. The
	// identity's Date is the newest bar date regardless of end.
	GetSeries(ctx context.Context, code string, end optional.Option[time.Time]) (types.Series, error)
	// Close releases any resources held by the source.
	Close() error
}
