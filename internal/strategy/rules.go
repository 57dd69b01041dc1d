package strategy

import (
	"github.com/rxtech-lab/argo-screener/internal/types"
)

// condition is one named sub-check of a policy.
type condition struct {
	name  string
	check func(w Window) bool
}

var baselineConditions = []condition{
	{name: "trend", check: trendCondition},
	{name: "volume", check: volumeCondition},
	{name: "macd", check: macdCondition},
	{name: "rsi", check: rsiCondition},
}

var extendedConditions = []condition{
	{name: "ma_cross_trend", check: maCrossTrendCondition},
	{name: "volume_surge", check: volumeSurgeCondition},
	{name: "macd_strength", check: macdStrengthCondition},
	{name: "dual_rsi", check: dualRSICondition},
	{name: "kdj_cross", check: kdjCrossCondition},
	{name: "bollinger_position", check: bollingerPositionCondition},
	{name: "williams_r", check: williamsRCondition},
	{name: "momentum", check: momentumCondition},
	{name: "volatility_cap", check: volatilityCapCondition},
}

func conditionsFor(policy types.Policy) []condition {
	switch policy {
	case types.PolicyBaseline:
		return baselineConditions
	case types.PolicyExtended:
		return extendedConditions
	default:
		return nil
	}
}

// ConditionNames lists the condition names checked under policy, in evaluation order.
func ConditionNames(policy types.Policy) []string {
	conditions := conditionsFor(policy)
	names := make([]string, len(conditions))

	for i, c := range conditions {
		names[i] = c.name
	}

	return names
}

func trendCondition(w Window) bool {
	return strictlyIncreasing(w.trend(types.IndicatorTypeMA30)...) &&
		w.Value(-1, types.IndicatorTypeMA30) > 1.2*w.Value(0, types.IndicatorTypeMA30)
}

func volumeCondition(w Window) bool {
	return w.Volume(-1) > w.Value(-1, types.IndicatorTypeVolMA20)
}

func macdCondition(w Window) bool {
	macd := w.Value(-1, types.IndicatorTypeMACD)

	return macd > w.Value(-1, types.IndicatorTypeMACDSignal) && macd > 0
}

func rsiCondition(w Window) bool {
	return between(w.Value(-1, types.IndicatorTypeRSI), 50, 70)
}

func maCrossTrendCondition(w Window) bool {
	return w.Value(-1, types.IndicatorTypeMA5) > w.Value(-1, types.IndicatorTypeMA30) &&
		strictlyIncreasing(w.trend(types.IndicatorTypeMA5)...)
}

func volumeSurgeCondition(w Window) bool {
	return strictlyIncreasing(w.Volume(-3), w.Volume(-2), w.Volume(-1)) &&
		w.Volume(-1) > 1.5*w.Value(-1, types.IndicatorTypeVolMA20)
}

func macdStrengthCondition(w Window) bool {
	return strictlyIncreasing(0, w.Value(-2, types.IndicatorTypeMACDHist), w.Value(-1, types.IndicatorTypeMACDHist)) &&
		macdCondition(w)
}

func dualRSICondition(w Window) bool {
	return rsiCondition(w) && between(w.Value(-1, types.IndicatorTypeRSI5), 50, 70)
}

func kdjCrossCondition(w Window) bool {
	k := w.Value(-1, types.IndicatorTypeK)
	d := w.Value(-1, types.IndicatorTypeD)

	return k > d && k > 50 && d > 50
}

func bollingerPositionCondition(w Window) bool {
	return between(w.Close(-1), w.Value(-1, types.IndicatorTypeMiddle), w.Value(-1, types.IndicatorTypeUpper))
}

func williamsRCondition(w Window) bool {
	return between(w.Value(-1, types.IndicatorTypeWilliamsR), -80, -20)
}

func momentumCondition(w Window) bool {
	return w.Value(-1, types.IndicatorTypeReturn5) > 0
}

func volatilityCapCondition(w Window) bool {
	return w.Value(-1, types.IndicatorTypeATR) < 0.05*w.Close(-1)
}

// strictlyIncreasing reports whether values[0] < values[1] < ... NaN anywhere fails.
func strictlyIncreasing(values ...float64) bool {
	for i := 1; i < len(values); i++ {
		if !(values[i-1] < values[i]) {
			return false
		}
	}

	return true
}

// between is the open interval check low < v < high.
func between(v, low, high float64) bool {
	return low < v && v < high
}
