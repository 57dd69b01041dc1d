package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// DailyBar is one trading day of a single instrument.
type DailyBar struct {
	// Date is the trading day. Only the calendar date is significant.
	Date   time.Time `csv:"date" json:"date"`
	Open   float64   `csv:"open" json:"open"`
	High   float64   `csv:"high" json:"high"`
	Low    float64   `csv:"low" json:"low"`
	Close  float64   `csv:"close" json:"close"`
	Volume float64   `csv:"volume" json:"volume"`
}

// Identity is the (code, name) pair that names an instrument, plus the reference
// date supplied by the data provider alongside the series (usually the latest
// known trading date). The reference date is the default evaluation cutoff.
type Identity struct {
	Code string
	Name string
	Date optional.Option[time.Time]
}

// String returns "code name" or just the code when the name is empty.
func (i Identity) String() string {
	if i.Name == "" {
		return i.Code
	}

	return i.Code + " " + i.Name
}

// Series is the ordered daily history of one instrument.
type Series struct {
	Identity Identity
	// Bars are in strictly ascending date order.
	Bars []DailyBar
}

// Len returns the number of bars in the series.
func (s Series) Len() int {
	return len(s.Bars)
}

// LastDate returns the date of the newest bar, or None for an empty series.
func (s Series) LastDate() optional.Option[time.Time] {
	if len(s.Bars) == 0 {
		return optional.None[time.Time]()
	}

	return optional.Some(s.Bars[len(s.Bars)-1].Date)
}

// CalendarDate drops the clock and location of t, keeping its year, month and day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
