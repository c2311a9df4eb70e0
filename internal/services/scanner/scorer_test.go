package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus/internal/domain/scan"
	"argus/internal/tools/indicators"
)

// neutralSnapshot builds a snapshot where no scoring rule applies.
func neutralSnapshot() *indicators.Snapshot {
	return &indicators.Snapshot{
		CurrentPrice: 100,
		RSI:          indicators.RSIResult{Value: 50, Signal: indicators.SignalNeutral},
		MACD:         &indicators.MACDResult{Trend: indicators.TrendNeutral},
		Bollinger:    &indicators.BollingerResult{Signal: indicators.SignalNeutral},
		Momentum:     indicators.MomentumResult{Trend: indicators.TrendNeutral, Strength: indicators.StrengthWeak},
		Volume:       indicators.VolumeResult{Signal: indicators.VolumeNormal},
		Patterns:     indicators.PatternResult{Signal: indicators.TrendNeutral},
	}
}

// bullishSnapshot flips every indicator to its bullish reading.
func bullishSnapshot() *indicators.Snapshot {
	snap := neutralSnapshot()
	snap.RSI = indicators.RSIResult{Value: 25, Signal: indicators.SignalOversold}
	snap.MACD = &indicators.MACDResult{Trend: indicators.TrendBullish}
	snap.Bollinger = &indicators.BollingerResult{Signal: indicators.SignalOversold}
	snap.Momentum = indicators.MomentumResult{Trend: indicators.TrendBullish, Strength: indicators.StrengthStrong}
	snap.Volume = indicators.VolumeResult{Signal: indicators.VolumeStrong}
	snap.Patterns = indicators.PatternResult{Signal: indicators.TrendBullish}
	return snap
}

// bearishSnapshot flips every indicator to its bearish reading.
func bearishSnapshot() *indicators.Snapshot {
	snap := neutralSnapshot()
	snap.RSI = indicators.RSIResult{Value: 80, Signal: indicators.SignalOverbought}
	snap.MACD = &indicators.MACDResult{Trend: indicators.TrendBearish}
	snap.Bollinger = &indicators.BollingerResult{Signal: indicators.SignalOverbought}
	snap.Momentum = indicators.MomentumResult{Trend: indicators.TrendBearish, Strength: indicators.StrengthStrong}
	snap.Patterns = indicators.PatternResult{Signal: indicators.TrendBearish}
	return snap
}

func TestCompositeScore_NeutralSnapshot(t *testing.T) {
	assert.Equal(t, 0, CompositeScore(neutralSnapshot(), 50))
}

func TestCompositeScore_FullyBullish(t *testing.T) {
	// 25 + 15 + 15 + 20 + 5 + 10, plus 10 for extreme fear
	assert.Equal(t, 100, CompositeScore(bullishSnapshot(), 20))
}

func TestCompositeScore_FullyBearish(t *testing.T) {
	// -(25 + 15 + 15 + 20 + 10), minus 10 for extreme greed
	assert.Equal(t, -95, CompositeScore(bearishSnapshot(), 80))
}

func TestCompositeScore_MediumMomentumScoresLess(t *testing.T) {
	strong := neutralSnapshot()
	strong.Momentum = indicators.MomentumResult{Trend: indicators.TrendBullish, Strength: indicators.StrengthStrong}

	medium := neutralSnapshot()
	medium.Momentum = indicators.MomentumResult{Trend: indicators.TrendBullish, Strength: indicators.StrengthMedium}

	assert.Equal(t, 20, CompositeScore(strong, 50))
	assert.Equal(t, 10, CompositeScore(medium, 50))
}

func TestCompositeScore_SentimentBounds(t *testing.T) {
	snap := neutralSnapshot()

	assert.Equal(t, 10, CompositeScore(snap, 29), "below 30 counts as extreme fear")
	assert.Equal(t, 0, CompositeScore(snap, 30))
	assert.Equal(t, 0, CompositeScore(snap, 75))
	assert.Equal(t, -10, CompositeScore(snap, 76), "above 75 counts as extreme greed")
}

func TestGenerateSignal_BelowThresholdIsSilent(t *testing.T) {
	// MACD bullish alone scores 15, under the buy threshold
	snap := neutralSnapshot()
	snap.MACD = &indicators.MACDResult{Trend: indicators.TrendBullish}

	assert.Nil(t, GenerateSignal(snap, 50, 100, nil))
}

func TestGenerateSignal_Buy(t *testing.T) {
	// MACD bullish + volume surge scores 20
	snap := neutralSnapshot()
	snap.MACD = &indicators.MACDResult{Trend: indicators.TrendBullish}
	snap.Volume = indicators.VolumeResult{Signal: indicators.VolumeStrong}

	sig := GenerateSignal(snap, 50, 123.45, nil)
	require.NotNil(t, sig)
	assert.Equal(t, scan.ActionBuy, sig.Action)
	assert.Equal(t, 20, sig.StrengthScore)
	assert.Equal(t, 123.45, sig.Price)
	assert.Contains(t, sig.Signal, "BUY")
}

func TestGenerateSignal_Sell(t *testing.T) {
	// MACD bearish + bearish pattern scores -25
	snap := neutralSnapshot()
	snap.MACD = &indicators.MACDResult{Trend: indicators.TrendBearish}
	snap.Patterns = indicators.PatternResult{Signal: indicators.TrendBearish}

	sig := GenerateSignal(snap, 50, 100, nil)
	require.NotNil(t, sig)
	assert.Equal(t, scan.ActionSell, sig.Action)
	assert.Equal(t, 25, sig.StrengthScore, "strength is the absolute score")
	assert.Contains(t, sig.Signal, "SELL")
}

func TestGenerateSignal_StrengthCapped(t *testing.T) {
	sig := GenerateSignal(bullishSnapshot(), 20, 100, nil)
	require.NotNil(t, sig)
	assert.Equal(t, 100, sig.StrengthScore)
	assert.LessOrEqual(t, sig.StrengthScore, 100)
}

func TestGenerateSignal_NilSnapshot(t *testing.T) {
	assert.Nil(t, GenerateSignal(nil, 50, 100, nil))
}
