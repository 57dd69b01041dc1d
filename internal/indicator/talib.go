package indicator

import (
	talib "github.com/markcheno/go-talib"
)

// TALib is the Indicator Library backed by github.com/markcheno/go-talib.
//
// go-talib zero-fills the lookback region and indexes past the end of inputs
// that are shorter than the lookback, so every call is guarded and the lookback
// region is rewritten to NaN.
type TALib struct{}

// NewTALib creates the go-talib backed Indicator Library.
func NewTALib() Library {
	return &TALib{}
}

// Name returns the name of the library.
func (t *TALib) Name() LibraryType {
	return LibraryTypeTALib
}

// MA implements Library.
func (t *TALib) MA(in []float64, period int) ([]float64, error) {
	if err := validateInput("MA", in); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	lookback := maLookback(period)
	if len(in) <= lookback {
		return undefinedSeries(len(in)), nil
	}

	return markUndefined(talib.Sma(in, period), lookback), nil
}

// MACD implements Library.
func (t *TALib) MACD(in []float64, fastPeriod, slowPeriod, signalPeriod int) ([]float64, []float64, []float64, error) {
	if err := validateMACD(in, fastPeriod, slowPeriod, signalPeriod); err != nil {
		return nil, nil, nil, err
	}

	lookback := macdLookback(slowPeriod, signalPeriod)
	if len(in) <= lookback {
		return undefinedSeries(len(in)), undefinedSeries(len(in)), undefinedSeries(len(in)), nil
	}

	// talib.Macd seeds the signal EMA with the zero-filled lookback region, so the
	// signal is computed here over the defined part of the MACD line only.
	fast := talib.Ema(in, fastPeriod)
	slow := talib.Ema(in, slowPeriod)

	macd := undefinedSeries(len(in))
	for i := slowPeriod - 1; i < len(in); i++ {
		macd[i] = fast[i] - slow[i]
	}

	signal := undefinedSeries(len(in))
	defined := talib.Ema(macd[slowPeriod-1:], signalPeriod)
	for i := signalPeriod - 1; i < len(defined); i++ {
		signal[slowPeriod-1+i] = defined[i]
	}

	hist := undefinedSeries(len(in))
	for i := lookback; i < len(in); i++ {
		hist[i] = macd[i] - signal[i]
	}

	return markUndefined(macd, lookback), signal, hist, nil
}

// RSI implements Library.
func (t *TALib) RSI(in []float64, period int) ([]float64, error) {
	if err := validateInput("RSI", in); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	lookback := rsiLookback(period)
	if len(in) <= lookback {
		return undefinedSeries(len(in)), nil
	}

	return markUndefined(talib.Rsi(in, period), lookback), nil
}

// Stoch implements Library with simple moving averages for both smoothing steps.
func (t *TALib) Stoch(high, low, close []float64, fastKPeriod, slowKPeriod, slowDPeriod int) ([]float64, []float64, error) {
	if err := validateHLC("Stoch", high, low, close); err != nil {
		return nil, nil, err
	}

	if err := validatePeriod("fastKPeriod", fastKPeriod); err != nil {
		return nil, nil, err
	}

	if err := validatePeriod("slowKPeriod", slowKPeriod); err != nil {
		return nil, nil, err
	}

	if err := validatePeriod("slowDPeriod", slowDPeriod); err != nil {
		return nil, nil, err
	}

	lookback := stochLookback(fastKPeriod, slowKPeriod, slowDPeriod)
	if len(close) <= lookback {
		return undefinedSeries(len(close)), undefinedSeries(len(close)), nil
	}

	k, d := talib.Stoch(high, low, close, fastKPeriod, slowKPeriod, talib.SMA, slowDPeriod, talib.SMA)

	return markUndefined(k, lookback), markUndefined(d, lookback), nil
}

// BBands implements Library.
func (t *TALib) BBands(in []float64, period int, devUp, devDown float64) ([]float64, []float64, []float64, error) {
	if err := validateInput("BBands", in); err != nil {
		return nil, nil, nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, nil, nil, err
	}

	lookback := maLookback(period)
	if len(in) <= lookback {
		return undefinedSeries(len(in)), undefinedSeries(len(in)), undefinedSeries(len(in)), nil
	}

	upper, middle, lower := talib.BBands(in, period, devUp, devDown, talib.SMA)

	return markUndefined(upper, lookback), markUndefined(middle, lookback), markUndefined(lower, lookback), nil
}

// WillR implements Library.
func (t *TALib) WillR(high, low, close []float64, period int) ([]float64, error) {
	if err := validateHLC("WillR", high, low, close); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	lookback := willRLookback(period)
	if len(close) <= lookback {
		return undefinedSeries(len(close)), nil
	}

	return markUndefined(talib.WillR(high, low, close, period), lookback), nil
}

// ATR implements Library.
func (t *TALib) ATR(high, low, close []float64, period int) ([]float64, error) {
	if err := validateHLC("ATR", high, low, close); err != nil {
		return nil, err
	}

	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	lookback := atrLookback(period)
	if len(close) <= lookback {
		return undefinedSeries(len(close)), nil
	}

	return markUndefined(talib.Atr(high, low, close, period), lookback), nil
}
