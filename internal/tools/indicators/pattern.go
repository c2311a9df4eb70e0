package indicators

import "argus/internal/domain/market_data"

// PatternResult lists detected candlestick patterns and their aggregate bias.
type PatternResult struct {
	Detected []string
	Signal   Trend
}

// DetectPatterns examines the last two candles for engulfing patterns.
// Fewer than two candles yields a neutral result with no patterns.
func DetectPatterns(candles []market_data.Candle) PatternResult {
	result := PatternResult{Signal: TrendNeutral}
	if len(candles) < 2 {
		return result
	}

	prev := candles[len(candles)-2]
	curr := candles[len(candles)-1]

	if curr.Close > prev.Open && curr.Open < prev.Close && prev.Bearish() && curr.Bullish() {
		result.Detected = append(result.Detected, "Bullish Engulfing")
		result.Signal = TrendBullish
	}
	if curr.Open > prev.Close && curr.Close < prev.Open && prev.Bullish() && curr.Bearish() {
		result.Detected = append(result.Detected, "Bearish Engulfing")
		result.Signal = TrendBearish
	}

	return result
}
