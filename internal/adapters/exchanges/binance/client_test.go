package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus/internal/adapters/exchanges"
)

func newTestClient(handler http.HandlerFunc) (exchanges.Exchange, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(Config{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	return client, server
}

func TestGetTicker(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/24hr", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))

		w.Write([]byte(`{
			"symbol": "BTCUSDT",
			"lastPrice": "50000.12",
			"volume": "1234.5",
			"quoteVolume": "61728395.1",
			"priceChangePercent": "2.75",
			"closeTime": 1700000000000
		}`))
	})
	defer server.Close()

	ticker, err := client.GetTicker(context.Background(), "btc-usdt")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", ticker.Symbol)
	assert.Equal(t, "50000.12", ticker.LastPrice.String())
	assert.Equal(t, "61728395.1", ticker.VolumeQuote.String())
	assert.Equal(t, "2.75", ticker.Change24hPct.String())
}

func TestGetTickers_SymbolListEncoding(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `["BTCUSDT","ETHUSDT"]`, r.URL.Query().Get("symbols"))
		w.Write([]byte(`[
			{"symbol": "BTCUSDT", "lastPrice": "50000", "quoteVolume": "1000000", "priceChangePercent": "1.5", "closeTime": 1700000000000},
			{"symbol": "ETHUSDT", "lastPrice": "3000", "quoteVolume": "500000", "priceChangePercent": "-0.5", "closeTime": 1700000000000}
		]`))
	})
	defer server.Close()

	tickers, err := client.GetTickers(context.Background(), []string{"BTCUSDT", "ETHUSDT"})
	require.NoError(t, err)
	require.Len(t, tickers, 2)
	assert.Equal(t, "BTCUSDT", tickers[0].Symbol)
	assert.Equal(t, "ETHUSDT", tickers[1].Symbol)
}

func TestGetTickers_WholeMarketOmitsSymbols(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("symbols"))
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	tickers, err := client.GetTickers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tickers)
}

func TestGetOHLCV(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1h", r.URL.Query().Get("interval"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Write([]byte(`[
			[1700000000000, "100.1", "105.2", "99.5", "104.0", "1234.5", 1700003599999],
			[1700003600000, "104.0", "106.0", "103.0", "105.5", "987.6", 1700007199999]
		]`))
	})
	defer server.Close()

	candles, err := client.GetOHLCV(context.Background(), "BTCUSDT", "1h", 2)
	require.NoError(t, err)
	require.Len(t, candles, 2)

	first := candles[0]
	assert.Equal(t, "BTCUSDT", first.Symbol)
	assert.Equal(t, "1h", first.Timeframe)
	assert.Equal(t, int64(1700000000000), first.OpenTime.UnixMilli())
	assert.Equal(t, "100.1", first.Open.String())
	assert.Equal(t, "104", first.Close.String())
	assert.Equal(t, "1234.5", first.Volume.String())
}

func TestGetOHLCV_SkipsMalformedRows(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			[1700000000000, "100"],
			[1700003600000, "104.0", "106.0", "103.0", "105.5", "987.6", 1700007199999]
		]`))
	})
	defer server.Close()

	candles, err := client.GetOHLCV(context.Background(), "BTCUSDT", "1h", 2)
	require.NoError(t, err)
	assert.Len(t, candles, 1)
}

func TestGet_RateLimitError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"code": -1003, "msg": "Too many requests."}`))
	})
	defer server.Close()

	_, err := client.GetTicker(context.Background(), "BTCUSDT")
	require.Error(t, err)
	assert.ErrorIs(t, err, exchanges.ErrRateLimited)
}

func TestGet_APIError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": -1121, "msg": "Invalid symbol."}`))
	})
	defer server.Close()

	_, err := client.GetTicker(context.Background(), "NOPEUSDT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-1121")
	assert.Contains(t, err.Error(), "Invalid symbol")
}
