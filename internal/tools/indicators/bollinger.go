package indicators

// Default Bollinger parameters.
const (
	DefaultBollingerPeriod = 20
	DefaultBollingerStdDev = 2.0
)

// BollingerResult holds the latest Bollinger band values.
type BollingerResult struct {
	Upper  float64
	Middle float64
	Lower  float64
	Signal BandSignal
}

// BollingerBands computes volatility bands at stdDev population standard
// deviations around the trailing SMA. Returns nil when the series is shorter
// than period.
func BollingerBands(series []float64, period int, stdDev float64) *BollingerResult {
	if len(series) < period {
		return nil
	}

	sma := SMA(series, period)
	middle := sma[len(sma)-1]

	// Population stddev over the most recent window.
	window := series[len(series)-period:]
	sigma := stddev(window)

	upper := middle + sigma*stdDev
	lower := middle - sigma*stdDev

	price := series[len(series)-1]
	signal := SignalNeutral
	if price > upper {
		signal = SignalOverbought
	}
	if price < lower {
		signal = SignalOversold
	}

	return &BollingerResult{
		Upper:  upper,
		Middle: middle,
		Lower:  lower,
		Signal: signal,
	}
}
