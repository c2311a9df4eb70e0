package indicators

import "math"

// Default MACD periods (12, 26, 9).
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACDResult holds the latest MACD trend reading.
type MACDResult struct {
	Trend    Trend
	Strength float64
}

// MACD computes Moving Average Convergence/Divergence over closing prices.
// The fast EMA sequence is aligned by dropping its first slow-fast values so
// both EMA sequences start at the same time index; the elementwise difference
// is the MACD line and its EMA of length signal is the signal line.
//
// Returns nil when the series is shorter than the slow period.
func MACD(series []float64, fast, slow, signal int) *MACDResult {
	if len(series) < slow {
		return nil
	}

	fastEMA := EMA(series, fast)
	slowEMA := EMA(series, slow)

	offset := slow - fast
	macdLine := make([]float64, 0, len(fastEMA)-offset)
	for i := offset; i < len(fastEMA); i++ {
		macdLine = append(macdLine, fastEMA[i]-slowEMA[i-offset])
	}

	signalLine := EMA(macdLine, signal)

	latestMACD := macdLine[len(macdLine)-1]
	latestSignal := signalLine[len(signalLine)-1]

	trend := TrendBearish
	if latestMACD > latestSignal {
		trend = TrendBullish
	}

	return &MACDResult{
		Trend:    trend,
		Strength: math.Abs(latestMACD - latestSignal),
	}
}
