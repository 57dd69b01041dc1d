package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-screener/internal/types"
)

// DataGenerator generates realistic daily bars for testing.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how daily bars are generated.
type GeneratorConfig struct {
	// Code is the instrument code (e.g., "600519")
	Code string
	// Name is the instrument name
	Name string
	// StartDate is the first trading day of the series
	StartDate time.Time
	// Count is the number of trading days to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% typical daily volatility)
	Volatility float64
	// Trend is the drift per day (0.005 = +0.5% per day)
	Trend float64
	// VolumeBase is the average volume per day
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Code:           "600000",
		Name:           "浦发银行",
		StartDate:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Count:          250,
		InitialPrice:   10.0,
		Volatility:     0.015,
		Trend:          0.0,
		VolumeBase:     1000000,
		VolumeVariance: 0.3,
	}
}

// Generate creates daily bars based on the configuration. Weekends are skipped.
// The generated data follows a geometric Brownian motion model for realistic price movements.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.DailyBar {
	bars := make([]types.DailyBar, config.Count)
	currentPrice := config.InitialPrice
	currentDate := nextTradingDay(config.StartDate.AddDate(0, 0, -1))

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Using Box-Muller transform for normal distribution
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		close := open * (1 + config.Volatility*z + config.Trend)
		if close <= 0 {
			close = open * 0.99 // Prevent negative prices
		}

		// High and low are within the open-close range plus some extension
		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, close) + highExtension
		low := math.Min(open, close) - lowExtension
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		bars[i] = types.DailyBar{
			Date:   currentDate,
			Open:   roundToDecimals(open, 2),
			High:   roundToDecimals(high, 2),
			Low:    roundToDecimals(low, 2),
			Close:  roundToDecimals(close, 2),
			Volume: math.Round(volume),
		}

		currentPrice = close
		currentDate = nextTradingDay(currentDate)
	}

	return bars
}

// GenerateSeries wraps Generate into a Series whose identity carries the last
// generated date as its reference date.
func (g *DataGenerator) GenerateSeries(config GeneratorConfig) types.Series {
	bars := g.Generate(config)

	identity := types.Identity{Code: config.Code, Name: config.Name, Date: optional.None[time.Time]()}
	if len(bars) > 0 {
		identity.Date = optional.Some(bars[len(bars)-1].Date)
	}

	return types.Series{Identity: identity, Bars: bars}
}

// LinearBars returns count bars whose close rises by step each day from start,
// with a constant volume. High and low are close ± 1%.
func LinearBars(startDate time.Time, count int, start, step, volume float64) []types.DailyBar {
	bars := make([]types.DailyBar, count)
	date := nextTradingDay(startDate.AddDate(0, 0, -1))

	for i := range bars {
		close := start + step*float64(i)
		bars[i] = types.DailyBar{
			Date:   date,
			Open:   close,
			High:   close * 1.01,
			Low:    close * 0.99,
			Close:  close,
			Volume: volume,
		}
		date = nextTradingDay(date)
	}

	return bars
}

// nextTradingDay returns the first weekday strictly after d.
func nextTradingDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
