package exchanges

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticker contains 24h stats for a symbol.
type Ticker struct {
	Symbol       string
	LastPrice    decimal.Decimal
	VolumeBase   decimal.Decimal
	VolumeQuote  decimal.Decimal
	Change24hPct decimal.Decimal
	Timestamp    time.Time
}

// OHLCV candle.
type OHLCV struct {
	Symbol    string
	Timeframe string
	OpenTime  time.Time
	CloseTime time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
}
