package types

import "math"

// IndicatorType names one computed column of an enriched bar.
type IndicatorType string

const (
	IndicatorTypeMA30       IndicatorType = "ma30"
	IndicatorTypeVolMA20    IndicatorType = "vol_ma20"
	IndicatorTypeMACD       IndicatorType = "macd"
	IndicatorTypeMACDSignal IndicatorType = "macdsignal"
	IndicatorTypeMACDHist   IndicatorType = "macdhist"
	IndicatorTypeRSI        IndicatorType = "rsi"
	IndicatorTypeK          IndicatorType = "k"
	IndicatorTypeD          IndicatorType = "d"
	IndicatorTypeUpper      IndicatorType = "upper"
	IndicatorTypeMiddle     IndicatorType = "middle"
	IndicatorTypeLower      IndicatorType = "lower"
	IndicatorTypeMA5        IndicatorType = "ma5"
	IndicatorTypeRSI5       IndicatorType = "rsi5"
	IndicatorTypeWilliamsR  IndicatorType = "willr"
	IndicatorTypeATR        IndicatorType = "atr"
	IndicatorTypeReturn5    IndicatorType = "return5"
)

// AllIndicatorTypes lists every column the indicator pipeline produces, in pipeline order.
func AllIndicatorTypes() []IndicatorType {
	return []IndicatorType{
		IndicatorTypeMA30,
		IndicatorTypeVolMA20,
		IndicatorTypeMACD,
		IndicatorTypeMACDSignal,
		IndicatorTypeMACDHist,
		IndicatorTypeRSI,
		IndicatorTypeK,
		IndicatorTypeD,
		IndicatorTypeUpper,
		IndicatorTypeMiddle,
		IndicatorTypeLower,
		IndicatorTypeMA5,
		IndicatorTypeRSI5,
		IndicatorTypeWilliamsR,
		IndicatorTypeATR,
		IndicatorTypeReturn5,
	}
}

// EnrichedBar is a daily bar together with the indicator values computed for its day.
type EnrichedBar struct {
	DailyBar

	Values map[IndicatorType]float64
}

// Value returns the named indicator value. A missing column reads as NaN so it
// fails every comparison.
func (b EnrichedBar) Value(name IndicatorType) float64 {
	v, ok := b.Values[name]
	if !ok {
		return math.NaN()
	}

	return v
}
