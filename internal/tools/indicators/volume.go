package indicators

import "argus/internal/domain/market_data"

// DefaultVolumePeriod is the lookback for volume analysis.
const DefaultVolumePeriod = 20

// VolumeResult classifies the latest volume against its recent average.
type VolumeResult struct {
	Signal VolumeSignal
}

// AnalyzeVolume compares the latest candle's volume to the mean of the
// preceding period-1 volumes. STRONG means the latest volume exceeds twice
// that mean. Fewer than period candles yields NORMAL.
func AnalyzeVolume(candles []market_data.Candle, period int) VolumeResult {
	if len(candles) < period {
		return VolumeResult{Signal: VolumeNormal}
	}

	recent := candles[len(candles)-period:]
	current := recent[len(recent)-1].Volume

	sum := 0.0
	for _, c := range recent[:len(recent)-1] {
		sum += c.Volume
	}
	avg := sum / float64(period-1)

	if current > avg*2 {
		return VolumeResult{Signal: VolumeStrong}
	}
	return VolumeResult{Signal: VolumeNormal}
}
