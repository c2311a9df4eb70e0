package exchanges

import (
	"context"
)

// Exchange defines the market-data contract each exchange adapter must
// satisfy. The scanning engine is read-only: it never places orders.
type Exchange interface {
	Name() string

	// GetTicker returns the 24h rolling stats for one symbol.
	GetTicker(ctx context.Context, symbol string) (*Ticker, error)

	// GetTickers returns 24h rolling stats for the given symbols, or for the
	// whole market when symbols is empty.
	GetTickers(ctx context.Context, symbols []string) ([]Ticker, error)

	// GetOHLCV returns at most limit closed candles, oldest first.
	GetOHLCV(ctx context.Context, symbol string, timeframe string, limit int) ([]OHLCV, error)
}
