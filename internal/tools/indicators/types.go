package indicators

// BandSignal classifies price position against an oscillator band.
type BandSignal string

const (
	SignalOverbought BandSignal = "OVERBOUGHT"
	SignalOversold   BandSignal = "OVERSOLD"
	SignalNeutral    BandSignal = "NEUTRAL"
)

// Trend is a directional reading.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
	TrendNeutral Trend = "NEUTRAL"
)

// Strength grades the magnitude of a trend reading.
type Strength string

const (
	StrengthStrong Strength = "STRONG"
	StrengthMedium Strength = "MEDIUM"
	StrengthWeak   Strength = "WEAK"
)

// VolumeSignal classifies current volume against its recent average.
type VolumeSignal string

const (
	VolumeStrong VolumeSignal = "STRONG"
	VolumeNormal VolumeSignal = "NORMAL"
)
