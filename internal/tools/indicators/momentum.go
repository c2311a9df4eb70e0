package indicators

import "math"

// DefaultMomentumPeriod is the standard momentum lookback.
const DefaultMomentumPeriod = 14

// MomentumResult holds a volatility-normalized momentum reading.
type MomentumResult struct {
	Trend    Trend
	Strength Strength
}

// Momentum measures the price change over the trailing period, normalized by
// the standard deviation of that window. A series too short to look back
// period steps yields the neutral reading.
func Momentum(series []float64, period int) MomentumResult {
	if len(series) < period+1 {
		return MomentumResult{Trend: TrendNeutral, Strength: StrengthWeak}
	}

	current := series[len(series)-1]
	past := series[len(series)-1-period]
	change := current - past

	volatility := stddev(series[len(series)-period:])
	normalized := change / volatility

	trend := TrendNeutral
	if normalized > 0.5 {
		trend = TrendBullish
	}
	if normalized < -0.5 {
		trend = TrendBearish
	}

	strength := StrengthWeak
	switch {
	case math.Abs(normalized) > 1.5:
		strength = StrengthStrong
	case math.Abs(normalized) > 0.8:
		strength = StrengthMedium
	}

	return MomentumResult{Trend: trend, Strength: strength}
}
