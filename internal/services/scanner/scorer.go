package scanner

import (
	"fmt"

	"argus/internal/domain/market_data"
	"argus/internal/domain/scan"
	"argus/internal/tools/indicators"
)

// Composite score thresholds. A score between them emits no signal at all
// for that timeframe, which downstream ranking treats as absence.
const (
	buyThreshold  = 18
	sellThreshold = -18
)

// scoreRule is one row of the scoring policy: a named condition over the
// indicator snapshot and the delta it contributes to the composite score.
// Keeping the policy as a table keeps it auditable and testable row by row.
type scoreRule struct {
	name    string
	delta   int
	applies func(snap *indicators.Snapshot, fearGreed int) bool
}

var scoreRules = []scoreRule{
	{"rsi oversold", 25, func(s *indicators.Snapshot, _ int) bool {
		return s.RSI.Signal == indicators.SignalOversold
	}},
	{"rsi overbought", -25, func(s *indicators.Snapshot, _ int) bool {
		return s.RSI.Signal == indicators.SignalOverbought
	}},
	{"macd bullish", 15, func(s *indicators.Snapshot, _ int) bool {
		return s.MACD.Trend == indicators.TrendBullish
	}},
	{"macd bearish", -15, func(s *indicators.Snapshot, _ int) bool {
		return s.MACD.Trend == indicators.TrendBearish
	}},
	{"bollinger oversold", 15, func(s *indicators.Snapshot, _ int) bool {
		return s.Bollinger.Signal == indicators.SignalOversold
	}},
	{"bollinger overbought", -15, func(s *indicators.Snapshot, _ int) bool {
		return s.Bollinger.Signal == indicators.SignalOverbought
	}},
	{"strong bullish momentum", 20, func(s *indicators.Snapshot, _ int) bool {
		return s.Momentum.Trend == indicators.TrendBullish && s.Momentum.Strength == indicators.StrengthStrong
	}},
	{"bullish momentum", 10, func(s *indicators.Snapshot, _ int) bool {
		return s.Momentum.Trend == indicators.TrendBullish && s.Momentum.Strength != indicators.StrengthStrong
	}},
	{"strong bearish momentum", -20, func(s *indicators.Snapshot, _ int) bool {
		return s.Momentum.Trend == indicators.TrendBearish && s.Momentum.Strength == indicators.StrengthStrong
	}},
	{"bearish momentum", -10, func(s *indicators.Snapshot, _ int) bool {
		return s.Momentum.Trend == indicators.TrendBearish && s.Momentum.Strength != indicators.StrengthStrong
	}},
	{"volume surge", 5, func(s *indicators.Snapshot, _ int) bool {
		return s.Volume.Signal == indicators.VolumeStrong
	}},
	{"bullish pattern", 10, func(s *indicators.Snapshot, _ int) bool {
		return s.Patterns.Signal == indicators.TrendBullish
	}},
	{"bearish pattern", -10, func(s *indicators.Snapshot, _ int) bool {
		return s.Patterns.Signal == indicators.TrendBearish
	}},
	{"extreme fear", 10, func(_ *indicators.Snapshot, fearGreed int) bool {
		return fearGreed < 30
	}},
	{"extreme greed", -10, func(_ *indicators.Snapshot, fearGreed int) bool {
		return fearGreed > 75
	}},
}

// CompositeScore evaluates every scoring rule against the snapshot and the
// scan-wide fear & greed index and returns the additive total.
func CompositeScore(snap *indicators.Snapshot, fearGreed int) int {
	score := 0
	for _, rule := range scoreRules {
		if rule.applies(snap, fearGreed) {
			score += rule.delta
		}
	}
	return score
}

// GenerateSignal converts an indicator snapshot into a directional signal for
// one timeframe. Returns nil when the composite score does not cross either
// threshold, or when the snapshot itself is nil (not enough data).
func GenerateSignal(snap *indicators.Snapshot, fearGreed int, price float64, history []market_data.Candle) *scan.TimeframeSignal {
	if snap == nil || snap.MACD == nil || snap.Bollinger == nil {
		return nil
	}

	score := CompositeScore(snap, fearGreed)

	var action scan.Action
	switch {
	case score >= buyThreshold:
		action = scan.ActionBuy
	case score <= sellThreshold:
		action = scan.ActionSell
	default:
		return nil
	}

	strength := score
	if strength < 0 {
		strength = -strength
	}
	if strength > 100 {
		strength = 100
	}

	return &scan.TimeframeSignal{
		Action:        action,
		StrengthScore: strength,
		Signal:        fmt.Sprintf("Multiple indicators suggest a potential %s opportunity.", action),
		Price:         price,
		PriceHistory:  history,
	}
}
