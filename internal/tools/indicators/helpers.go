package indicators

import "math"

// stddev returns the population standard deviation of series.
func stddev(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	variance := 0.0
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(series))

	return math.Sqrt(variance)
}
