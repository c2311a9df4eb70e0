package market_data

import "time"

// Candle represents one closed OHLCV interval.
// Series are always ordered ascending by OpenTime.
type Candle struct {
	OpenTime time.Time `json:"time"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   float64   `json:"volume"`
}

// Bullish reports whether the candle closed above its open.
func (c Candle) Bullish() bool {
	return c.Close > c.Open
}

// Bearish reports whether the candle closed below its open.
func (c Candle) Bearish() bool {
	return c.Close < c.Open
}

// Closes extracts the closing prices of a candle series, preserving order.
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// TickerSnapshot represents 24h rolling window statistics for one symbol.
// It describes the rolling day, not the candle history.
type TickerSnapshot struct {
	Symbol             string    `json:"symbol"`
	LastPrice          float64   `json:"lastPrice"`
	QuoteVolume        float64   `json:"quoteVolume"`
	PriceChangePercent float64   `json:"priceChangePercent"`
	CollectedAt        time.Time `json:"collectedAt"`
}
