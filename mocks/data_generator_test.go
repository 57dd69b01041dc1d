package mocks

import (
	"testing"
	"time"
)

func TestDataGenerator_Generate(t *testing.T) {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 100

	bars := gen.Generate(config)

	if len(bars) != 100 {
		t.Errorf("expected 100 bars, got %d", len(bars))
	}

	// Verify bars are in chronological order
	for i := 1; i < len(bars); i++ {
		if !bars[i].Date.After(bars[i-1].Date) {
			t.Errorf("bars not in chronological order at index %d", i)
		}
	}

	// Verify OHLC values are positive
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			t.Errorf("invalid OHLC values at index %d: O=%f H=%f L=%f C=%f",
				i, b.Open, b.High, b.Low, b.Close)
		}
	}

	// Verify High >= Low
	for i, b := range bars {
		if b.High < b.Low {
			t.Errorf("High < Low at index %d: H=%f L=%f", i, b.High, b.Low)
		}
	}

	// Verify no weekend bars
	for i, b := range bars {
		if b.Date.Weekday() == time.Saturday || b.Date.Weekday() == time.Sunday {
			t.Errorf("weekend bar at index %d: %s", i, b.Date.Format("2006-01-02"))
		}
	}
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	config := DefaultConfig()
	config.Count = 50

	first := NewDataGenerator(7).Generate(config)
	second := NewDataGenerator(7).Generate(config)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("bars differ at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDataGenerator_GenerateSeries(t *testing.T) {
	config := DefaultConfig()
	config.Count = 10

	series := NewDataGenerator(1).GenerateSeries(config)

	if series.Identity.Code != config.Code {
		t.Errorf("expected code %s, got %s", config.Code, series.Identity.Code)
	}

	if series.Identity.Date.IsNone() {
		t.Fatal("expected a reference date")
	}

	if !series.Identity.Date.Unwrap().Equal(series.Bars[9].Date) {
		t.Errorf("reference date %v does not match last bar %v", series.Identity.Date.Unwrap(), series.Bars[9].Date)
	}
}

func TestLinearBars(t *testing.T) {
	// 2024-01-05 is a Friday; the next bar must be Monday 2024-01-08
	bars := LinearBars(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 3, 100, 1, 5000)

	if bars[0].Date.Day() != 5 || bars[1].Date.Day() != 8 || bars[2].Date.Day() != 9 {
		t.Errorf("unexpected dates: %v %v %v", bars[0].Date, bars[1].Date, bars[2].Date)
	}

	for i, b := range bars {
		if b.Close != 100+float64(i) {
			t.Errorf("unexpected close at %d: %f", i, b.Close)
		}

		if b.Volume != 5000 {
			t.Errorf("unexpected volume at %d: %f", i, b.Volume)
		}
	}
}
