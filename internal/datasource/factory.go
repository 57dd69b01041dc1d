package datasource

import (
	"github.com/rxtech-lab/argo-screener/internal/logger"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// New opens the data source of the given type reading from path.
func New(sourceType Type, path string, log *logger.Logger) (DataSource, error) {
	switch sourceType {
	case TypeDuckDB:
		ds, err := NewDuckDBDataSource(":memory:", path, log)
		if err != nil {
			return nil, err
		}

		return ds, nil
	case TypeCSV:
		ds, err := NewCSVDataSource(path, log)
		if err != nil {
			return nil, err
		}

		return ds, nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unknown data source type %q", sourceType)
	}
}
