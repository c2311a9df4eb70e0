package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	result := SMA([]float64{1, 2, 3, 4, 5}, 3)
	assert.Equal(t, []float64{2, 3, 4}, result)
}

func TestSMA_SeriesTooShort(t *testing.T) {
	assert.Nil(t, SMA([]float64{1, 2}, 3))
}

func TestEMA_ConstantSeries(t *testing.T) {
	result := EMA([]float64{5, 5, 5, 5}, 3)
	require.Len(t, result, 4)
	for _, v := range result {
		assert.InDelta(t, 5.0, v, 1e-9)
	}
}

func TestEMA_TracksRecentValues(t *testing.T) {
	result := EMA([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 3)
	require.Len(t, result, 8)

	// EMA lags the raw series but follows it upward
	for i := 1; i < len(result); i++ {
		assert.Greater(t, result[i], result[i-1])
	}
	assert.Less(t, result[len(result)-1], 8.0)
}

func TestRSI_MonotonicGains(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = float64(i + 1)
	}

	result := RSI(series, DefaultRSIPeriod)
	assert.Equal(t, 100, result.Value)
	assert.Equal(t, SignalOverbought, result.Signal)
}

func TestRSI_MonotonicLosses(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = float64(20 - i)
	}

	result := RSI(series, DefaultRSIPeriod)
	assert.Equal(t, 0, result.Value)
	assert.Equal(t, SignalOversold, result.Signal)
}

func TestRSI_SeriesTooShort(t *testing.T) {
	result := RSI([]float64{1, 2, 3}, DefaultRSIPeriod)
	assert.Equal(t, 50, result.Value)
	assert.Equal(t, SignalNeutral, result.Signal)
}

func TestRSI_MixedSeriesStaysInBand(t *testing.T) {
	series := []float64{10, 11, 10.5, 11.2, 10.8, 11.5, 11.1, 11.8, 11.4, 12, 11.6, 12.2, 11.9, 12.5, 12.1, 12.8}

	result := RSI(series, DefaultRSIPeriod)
	assert.Greater(t, result.Value, 0)
	assert.Less(t, result.Value, 100)
}

func TestMACD_SeriesTooShort(t *testing.T) {
	series := make([]float64, DefaultMACDSlow-1)
	for i := range series {
		series[i] = float64(i)
	}
	assert.Nil(t, MACD(series, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal))
}

func TestMACD_RisingSeries(t *testing.T) {
	series := make([]float64, 60)
	for i := range series {
		series[i] = 100 + float64(i)*2
	}

	result := MACD(series, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	require.NotNil(t, result)
	assert.Equal(t, TrendBullish, result.Trend)
	assert.Greater(t, result.Strength, 0.0)
}

func TestMACD_FallingSeries(t *testing.T) {
	series := make([]float64, 60)
	for i := range series {
		series[i] = 220 - float64(i)*2
	}

	result := MACD(series, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	require.NotNil(t, result)
	assert.Equal(t, TrendBearish, result.Trend)
}

func TestBollingerBands_SeriesTooShort(t *testing.T) {
	assert.Nil(t, BollingerBands([]float64{1, 2, 3}, DefaultBollingerPeriod, DefaultBollingerStdDev))
}

func TestBollingerBands_FlatSeries(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 5
	}

	result := BollingerBands(series, DefaultBollingerPeriod, DefaultBollingerStdDev)
	require.NotNil(t, result)
	assert.InDelta(t, 5.0, result.Upper, 1e-9)
	assert.InDelta(t, 5.0, result.Middle, 1e-9)
	assert.InDelta(t, 5.0, result.Lower, 1e-9)
	assert.Equal(t, SignalNeutral, result.Signal)
}

func TestBollingerBands_SpikeAboveUpperBand(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 10
	}
	series[19] = 50

	result := BollingerBands(series, DefaultBollingerPeriod, DefaultBollingerStdDev)
	require.NotNil(t, result)
	assert.Equal(t, SignalOverbought, result.Signal)
	assert.Greater(t, series[19], result.Upper)
}

func TestBollingerBands_DropBelowLowerBand(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 10
	}
	series[19] = 1

	result := BollingerBands(series, DefaultBollingerPeriod, DefaultBollingerStdDev)
	require.NotNil(t, result)
	assert.Equal(t, SignalOversold, result.Signal)
}

func TestMomentum_SeriesTooShort(t *testing.T) {
	series := make([]float64, DefaultMomentumPeriod)
	result := Momentum(series, DefaultMomentumPeriod)
	assert.Equal(t, TrendNeutral, result.Trend)
	assert.Equal(t, StrengthWeak, result.Strength)
}

func TestMomentum_StrongUptrend(t *testing.T) {
	series := make([]float64, 15)
	for i := range series {
		series[i] = float64(i + 1)
	}

	result := Momentum(series, DefaultMomentumPeriod)
	assert.Equal(t, TrendBullish, result.Trend)
	assert.Equal(t, StrengthStrong, result.Strength)
}

func TestMomentum_StrongDowntrend(t *testing.T) {
	series := make([]float64, 15)
	for i := range series {
		series[i] = float64(15 - i)
	}

	result := Momentum(series, DefaultMomentumPeriod)
	assert.Equal(t, TrendBearish, result.Trend)
	assert.Equal(t, StrengthStrong, result.Strength)
}

func TestMomentum_FlatSeries(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = 42
	}

	result := Momentum(series, DefaultMomentumPeriod)
	assert.Equal(t, TrendNeutral, result.Trend)
	assert.Equal(t, StrengthWeak, result.Strength)
}
