package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

func (suite *IndicatorTestSuite) TestIndicatorTypeAsString() {
	suite.Equal("ma30", string(IndicatorTypeMA30))
	suite.Equal("vol_ma20", string(IndicatorTypeVolMA20))
	suite.Equal("macd", string(IndicatorTypeMACD))
	suite.Equal("macdsignal", string(IndicatorTypeMACDSignal))
	suite.Equal("macdhist", string(IndicatorTypeMACDHist))
	suite.Equal("rsi", string(IndicatorTypeRSI))
	suite.Equal("k", string(IndicatorTypeK))
	suite.Equal("d", string(IndicatorTypeD))
	suite.Equal("upper", string(IndicatorTypeUpper))
	suite.Equal("middle", string(IndicatorTypeMiddle))
	suite.Equal("lower", string(IndicatorTypeLower))
	suite.Equal("ma5", string(IndicatorTypeMA5))
	suite.Equal("rsi5", string(IndicatorTypeRSI5))
	suite.Equal("willr", string(IndicatorTypeWilliamsR))
	suite.Equal("atr", string(IndicatorTypeATR))
	suite.Equal("return5", string(IndicatorTypeReturn5))
}

func (suite *IndicatorTestSuite) TestAllIndicatorTypesAreUnique() {
	all := AllIndicatorTypes()
	suite.Len(all, 16)

	seen := make(map[IndicatorType]bool)
	for _, name := range all {
		suite.False(seen[name], "duplicate indicator type %s", name)
		seen[name] = true
	}
}

func (suite *IndicatorTestSuite) TestEnrichedBarValue() {
	bar := EnrichedBar{
		Values: map[IndicatorType]float64{
			IndicatorTypeMA30: 12.5,
			IndicatorTypeMACD: math.NaN(),
		},
	}

	suite.Equal(12.5, bar.Value(IndicatorTypeMA30))
	suite.True(math.IsNaN(bar.Value(IndicatorTypeMACD)))
	// missing columns read as NaN
	suite.True(math.IsNaN(bar.Value(IndicatorTypeATR)))
}

func (suite *IndicatorTestSuite) TestEnrichedBarNilValues() {
	bar := EnrichedBar{}
	suite.True(math.IsNaN(bar.Value(IndicatorTypeRSI)))
}
