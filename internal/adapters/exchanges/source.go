package exchanges

import (
	"context"

	"argus/internal/adapters/exchanges/retry"
	"argus/internal/domain/market_data"
	"argus/pkg/errors"
)

// MarketDataSource adapts an Exchange to the domain-level ticker and candle
// sources the scanner consumes. Candle fetches go through bounded retry:
// transient exchange hiccups get a few attempts before the scanner degrades
// the timeframe to "no signal".
type MarketDataSource struct {
	exchange Exchange
	retrier  *retry.Middleware
}

// NewMarketDataSource wraps an exchange adapter.
func NewMarketDataSource(exchange Exchange) *MarketDataSource {
	return &MarketDataSource{
		exchange: exchange,
		retrier:  retry.New(retry.DefaultConfig()),
	}
}

// GetTickers returns domain ticker snapshots for the given symbols, or the
// whole market when symbols is empty.
func (s *MarketDataSource) GetTickers(ctx context.Context, symbols []string) ([]market_data.TickerSnapshot, error) {
	tickers, err := s.exchange.GetTickers(ctx, symbols)
	if err != nil {
		return nil, errors.Wrapf(err, "%s tickers", s.exchange.Name())
	}

	snapshots := make([]market_data.TickerSnapshot, 0, len(tickers))
	for _, t := range tickers {
		snapshots = append(snapshots, market_data.TickerSnapshot{
			Symbol:             t.Symbol,
			LastPrice:          t.LastPrice.InexactFloat64(),
			QuoteVolume:        t.VolumeQuote.InexactFloat64(),
			PriceChangePercent: t.Change24hPct.InexactFloat64(),
			CollectedAt:        t.Timestamp,
		})
	}
	return snapshots, nil
}

// GetCandles returns a domain candle series, oldest first.
func (s *MarketDataSource) GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]market_data.Candle, error) {
	var raw []OHLCV
	err := s.retrier.Do(ctx, func() error {
		var fetchErr error
		raw, fetchErr = s.exchange.GetOHLCV(ctx, symbol, timeframe, limit)
		return fetchErr
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s ohlcv %s %s", s.exchange.Name(), symbol, timeframe)
	}

	candles := make([]market_data.Candle, 0, len(raw))
	for _, c := range raw {
		candles = append(candles, market_data.Candle{
			OpenTime: c.OpenTime,
			Open:     c.Open.InexactFloat64(),
			High:     c.High.InexactFloat64(),
			Low:      c.Low.InexactFloat64(),
			Close:    c.Close.InexactFloat64(),
			Volume:   c.Volume.InexactFloat64(),
		})
	}
	return candles, nil
}
