package indicators

// EMA computes the exponential moving average sequence with smoothing factor
// k = 2/(period+1). The first output equals the first input value.
func EMA(series []float64, period int) []float64 {
	if len(series) == 0 {
		return nil
	}

	k := 2.0 / (float64(period) + 1)
	ema := make([]float64, len(series))
	ema[0] = series[0]
	for i := 1; i < len(series); i++ {
		ema[i] = series[i]*k + ema[i-1]*(1-k)
	}
	return ema
}
