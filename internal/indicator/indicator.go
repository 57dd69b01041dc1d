package indicator

// LibraryType names an Indicator Library implementation.
type LibraryType string

const (
	// LibraryTypeTALib is backed by github.com/markcheno/go-talib.
	LibraryTypeTALib LibraryType = "talib"
	// LibraryTypeNative is the pure Go implementation in this package.
	LibraryTypeNative LibraryType = "native"
)

// Library is the set of closed-form technical-analysis functions the screening
// pipeline depends on. Every function returns series of the same length as its
// input, aligned by index. Leading entries that lack enough history are NaN.
type Library interface {
	// Name returns the name of the library
	Name() LibraryType
	// MA returns the simple moving average over the trailing period values. The first period-1 entries are undefined.
	MA(in []float64, period int) ([]float64, error)
	// MACD returns the MACD line (fast EMA - slow EMA), its signal EMA and the histogram (macd - signal).
	MACD(in []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, hist []float64, err error)
	// RSI returns Wilder's relative strength index in [0, 100]. The first period entries are undefined.
	RSI(in []float64, period int) ([]float64, error)
	// Stoch returns the slow stochastic %K and %D, both smoothed with simple moving averages.
	Stoch(high, low, close []float64, fastKPeriod, slowKPeriod, slowDPeriod int) (k, d []float64, err error)
	// BBands returns the Bollinger Bands (SMA + devUp*σ, SMA, SMA - devDown*σ) over the trailing period values.
	BBands(in []float64, period int, devUp, devDown float64) (upper, middle, lower []float64, err error)
	// WillR returns Williams %R in [-100, 0].
	WillR(high, low, close []float64, period int) ([]float64, error)
	// ATR returns Wilder's average true range. The first period entries are undefined.
	ATR(high, low, close []float64, period int) ([]float64, error)
}
