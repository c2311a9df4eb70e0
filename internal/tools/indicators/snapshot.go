package indicators

import (
	"math"

	"argus/internal/domain/market_data"
)

// MinAnalyzableCandles is the minimum series length the snapshot requires.
const MinAnalyzableCandles = 50

// TrendResult is the coarse trend read from the SMA 20/50 crossover.
type TrendResult struct {
	Overall  Trend
	Strength float64
}

// Snapshot bundles every indicator reading for one (symbol, timeframe)
// series. It is recomputed from scratch each scan and never mutated.
type Snapshot struct {
	CurrentPrice float64
	Trend        TrendResult
	RSI          RSIResult
	MACD         *MACDResult
	Bollinger    *BollingerResult
	Momentum     MomentumResult
	Volume       VolumeResult
	Patterns     PatternResult
}

// Analyze computes a full indicator snapshot over a candle series. Returns
// nil when the series is shorter than MinAnalyzableCandles or when MACD or
// Bollinger cannot be computed.
func Analyze(candles []market_data.Candle) *Snapshot {
	closes := market_data.Closes(candles)
	if len(closes) < MinAnalyzableCandles {
		return nil
	}

	macd := MACD(closes, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	bollinger := BollingerBands(closes, DefaultBollingerPeriod, DefaultBollingerStdDev)
	if macd == nil || bollinger == nil {
		return nil
	}

	sma20 := SMA(closes, 20)
	sma50 := SMA(closes, 50)
	trend := TrendResult{Overall: TrendBearish}
	last20, last50 := sma20[len(sma20)-1], sma50[len(sma50)-1]
	if last20 > last50 {
		trend.Overall = TrendBullish
	}
	trend.Strength = math.Abs(last20 - last50)

	return &Snapshot{
		CurrentPrice: closes[len(closes)-1],
		Trend:        trend,
		RSI:          RSI(closes, DefaultRSIPeriod),
		MACD:         macd,
		Bollinger:    bollinger,
		Momentum:     Momentum(closes, DefaultMomentumPeriod),
		Volume:       AnalyzeVolume(candles, DefaultVolumePeriod),
		Patterns:     DetectPatterns(candles),
	}
}
