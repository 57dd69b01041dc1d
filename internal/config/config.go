// Package config holds the screener configuration file format.
package config

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/datasource"
	"github.com/rxtech-lab/argo-screener/internal/indicator"
	"github.com/rxtech-lab/argo-screener/internal/strategy"
	"github.com/rxtech-lab/argo-screener/internal/types"
	"github.com/rxtech-lab/argo-screener/internal/version"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DataSourceConfig selects where series are loaded from.
type DataSourceConfig struct {
	Type datasource.Type `yaml:"type" json:"type" jsonschema:"title=Type,description=Data source implementation,enum=duckdb,enum=csv" validate:"required,oneof=duckdb csv"`
	Path string          `yaml:"path" json:"path" jsonschema:"title=Path,description=Parquet file for duckdb or CSV file for csv" validate:"required"`
}

// ScreenConfig is the configuration of a screening run.
type ScreenConfig struct {
	Version    string                `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"title=Version,description=Config format version checked against the screener release"`
	Threshold  int                   `yaml:"threshold" json:"threshold" jsonschema:"title=Threshold,description=Window length in trading days (at least 2 for baseline and 3 for extended),minimum=2,default=30" validate:"min=2"`
	Policy     types.Policy          `yaml:"policy" json:"policy" jsonschema:"title=Policy,description=Condition set to apply,enum=baseline,enum=extended,default=baseline" validate:"required,oneof=baseline extended"`
	Library    indicator.LibraryType `yaml:"library" json:"library" jsonschema:"title=Indicator Library,description=Indicator implementation,enum=talib,enum=native,default=talib" validate:"required,oneof=talib native"`
	Cutoff     string                `yaml:"cutoff,omitempty" json:"cutoff,omitempty" jsonschema:"title=Cutoff,description=Last calendar day considered (YYYY-MM-DD). Defaults to each instrument's latest date,format=date" validate:"omitempty,datetime=2006-01-02"`
	Workers    int                   `yaml:"workers" json:"workers" jsonschema:"title=Workers,description=Instruments evaluated concurrently,minimum=1,default=4" validate:"min=1"`
	LogLevel   string                `yaml:"log_level" json:"log_level" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error,default=info" validate:"omitempty,oneof=debug info warn error"`
	DataSource DataSourceConfig      `yaml:"data_source" json:"data_source" jsonschema:"title=Data Source"`
}

// DefaultConfig returns the defaults applied before a file is read.
func DefaultConfig() ScreenConfig {
	return ScreenConfig{
		Threshold: strategy.DefaultThreshold,
		Policy:    types.PolicyBaseline,
		Library:   indicator.LibraryTypeTALib,
		Workers:   4,
		LogLevel:  "info",
		DataSource: DataSourceConfig{
			Type: datasource.TypeDuckDB,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (ScreenConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ScreenConfig{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return Parse(content)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(content []byte) (ScreenConfig, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(content, &config); err != nil {
		return ScreenConfig{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return ScreenConfig{}, err
	}

	if err := version.CheckConfigCompatibility(version.GetVersion(), config.Version); err != nil {
		return ScreenConfig{}, err
	}

	return config, nil
}

// Validate checks every field constraint.
func (c ScreenConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	opts, err := c.Options()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := opts.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// CutoffDate returns the parsed cutoff, or None when unset.
func (c ScreenConfig) CutoffDate() (optional.Option[time.Time], error) {
	if c.Cutoff == "" {
		return optional.None[time.Time](), nil
	}

	date, err := time.Parse(time.DateOnly, c.Cutoff)
	if err != nil {
		return optional.None[time.Time](), errors.Wrapf(errors.ErrCodeInvalidDate, err, "invalid cutoff %q", c.Cutoff)
	}

	return optional.Some(date), nil
}

// Options converts the config into evaluation options.
func (c ScreenConfig) Options() (strategy.Options, error) {
	cutoff, err := c.CutoffDate()
	if err != nil {
		return strategy.Options{}, err
	}

	return strategy.Options{
		Cutoff:    cutoff,
		Threshold: c.Threshold,
		Policy:    c.Policy,
	}, nil
}

// GenerateSchema generates a JSON schema for ScreenConfig.
func (c *ScreenConfig) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if strings.HasSuffix(t.String(), "datasource.Type") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: []any{string(datasource.TypeDuckDB), string(datasource.TypeCSV)},
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)
	schema.Title = "screen-config"
	schema.Description = "Configuration schema for the keep-increasing screener"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for ScreenConfig.
func (c *ScreenConfig) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to marshal schema", err)
	}

	return string(schemaBytes), nil
}
