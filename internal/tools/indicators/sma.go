package indicators

// SMA computes the simple moving average over each trailing window of size
// period. The result has len(series)-period+1 values; an input shorter than
// period yields nil.
func SMA(series []float64, period int) []float64 {
	if period <= 0 || len(series) < period {
		return nil
	}

	sma := make([]float64, 0, len(series)-period+1)
	sum := 0.0
	for i, v := range series {
		sum += v
		if i >= period {
			sum -= series[i-period]
		}
		if i >= period-1 {
			sma = append(sma, sum/float64(period))
		}
	}
	return sma
}
