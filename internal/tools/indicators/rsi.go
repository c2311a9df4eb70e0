package indicators

import "math"

// DefaultRSIPeriod is the standard RSI lookback.
const DefaultRSIPeriod = 14

// RSIResult holds a Relative Strength Index reading.
type RSIResult struct {
	Value  int
	Signal BandSignal
}

// RSI computes the Relative Strength Index over closing prices.
//
// Gains and losses are summed cumulatively over the first period deltas and
// smoothed recursively (Wilder style) for every delta after that. The final
// averages divide by min(len(series)-1, period). This hybrid of the two
// conventions is intentional and must not be normalized toward the textbook
// definition: the boundary behavior between the two phases is part of the
// contract.
//
// A series shorter than period returns the neutral reading {50, NEUTRAL}.
func RSI(series []float64, period int) RSIResult {
	if period <= 0 {
		period = DefaultRSIPeriod
	}
	if len(series) < period {
		return RSIResult{Value: 50, Signal: SignalNeutral}
	}

	gains := 0.0
	losses := 0.0
	for i := 1; i < len(series); i++ {
		change := series[i] - series[i-1]
		if i <= period {
			if change > 0 {
				gains += change
			} else {
				losses += -change
			}
		} else {
			gain, loss := 0.0, 0.0
			if change > 0 {
				gain = change
			} else {
				loss = -change
			}
			gains = (gains*float64(period-1) + gain) / float64(period)
			losses = (losses*float64(period-1) + loss) / float64(period)
		}
	}

	divisor := float64(min(len(series)-1, period))
	avgGain := gains / divisor
	avgLoss := losses / divisor

	if avgLoss == 0 {
		return RSIResult{Value: 100, Signal: SignalOverbought}
	}

	rs := avgGain / avgLoss
	rsi := 100 - (100 / (1 + rs))

	signal := SignalNeutral
	if rsi > 70 {
		signal = SignalOverbought
	}
	if rsi < 30 {
		signal = SignalOversold
	}

	return RSIResult{Value: int(math.Round(rsi)), Signal: signal}
}
