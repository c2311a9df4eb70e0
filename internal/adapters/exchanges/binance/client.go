package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"argus/internal/adapters/exchanges"
	"argus/internal/adapters/exchanges/ratelimit"
	"argus/internal/metrics"
)

const (
	defaultBaseURL     = "https://api.binance.com"
	defaultHTTPTimeout = 10 * time.Second

	// Spot REST limit per Binance docs, shared across all endpoints.
	requestsPerMinute = 1200
)

// Config configures the Binance client. No credentials: the scanning engine
// only touches public market-data endpoints.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new Binance market-data adapter.
func NewClient(cfg Config) exchanges.Exchange {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    ratelimit.NewLimiter("binance", requestsPerMinute),
	}
}

type client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

func (c *client) Name() string {
	return "binance"
}

type tickerPayload struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
	PriceChangePercent string `json:"priceChangePercent"`
	CloseTime          int64  `json:"closeTime"`
}

func (c *client) GetTicker(ctx context.Context, symbol string) (*exchanges.Ticker, error) {
	params := url.Values{"symbol": []string{normalizeSymbol(symbol)}}

	data, err := c.get(ctx, "/api/v3/ticker/24hr", params)
	if err != nil {
		return nil, err
	}

	var res tickerPayload
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	ticker := mapTicker(res)
	return &ticker, nil
}

func (c *client) GetTickers(ctx context.Context, symbols []string) ([]exchanges.Ticker, error) {
	params := url.Values{}
	if len(symbols) > 0 {
		normalized := make([]string, len(symbols))
		for i, s := range symbols {
			normalized[i] = `"` + normalizeSymbol(s) + `"`
		}
		params.Set("symbols", "["+strings.Join(normalized, ",")+"]")
	}

	data, err := c.get(ctx, "/api/v3/ticker/24hr", params)
	if err != nil {
		return nil, err
	}

	var res []tickerPayload
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	tickers := make([]exchanges.Ticker, 0, len(res))
	for _, t := range res {
		tickers = append(tickers, mapTicker(t))
	}
	return tickers, nil
}

func (c *client) GetOHLCV(ctx context.Context, symbol string, timeframe string, limit int) ([]exchanges.OHLCV, error) {
	if limit <= 0 {
		limit = 100
	}

	params := url.Values{
		"symbol":   []string{normalizeSymbol(symbol)},
		"interval": []string{timeframe},
		"limit":    []string{strconv.Itoa(limit)},
	}

	data, err := c.get(ctx, "/api/v3/klines", params)
	if err != nil {
		return nil, err
	}

	var raw [][]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	candles := make([]exchanges.OHLCV, 0, len(raw))
	for _, row := range raw {
		if len(row) < 7 {
			continue
		}
		candles = append(candles, exchanges.OHLCV{
			Symbol:    normalizeSymbol(symbol),
			Timeframe: timeframe,
			OpenTime:  time.UnixMilli(toInt64(row[0])),
			CloseTime: time.UnixMilli(toInt64(row[6])),
			Open:      parseDecimal(fmt.Sprint(row[1])),
			High:      parseDecimal(fmt.Sprint(row[2])),
			Low:       parseDecimal(fmt.Sprint(row[3])),
			Close:     parseDecimal(fmt.Sprint(row[4])),
			Volume:    parseDecimal(fmt.Sprint(row[5])),
		})
	}

	return candles, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.cfg.BaseURL + path
	if query := params.Encode(); query != "" {
		reqURL = reqURL + "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordExchangeAPICall(c.Name(), path, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, payload)
	}

	return payload, nil
}

func parseAPIError(status int, payload []byte) error {
	var apiErr struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(payload, &apiErr); err == nil && apiErr.Code != 0 {
		if apiErr.Code == -1003 || status == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %s", exchanges.ErrRateLimited, apiErr.Msg)
		}
		return fmt.Errorf("binance error %d: %s", apiErr.Code, apiErr.Msg)
	}
	if status == http.StatusTooManyRequests {
		return exchanges.ErrRateLimited
	}
	return fmt.Errorf("binance http %d: %s", status, string(payload))
}

func mapTicker(t tickerPayload) exchanges.Ticker {
	return exchanges.Ticker{
		Symbol:       t.Symbol,
		LastPrice:    parseDecimal(t.LastPrice),
		VolumeBase:   parseDecimal(t.Volume),
		VolumeQuote:  parseDecimal(t.QuoteVolume),
		Change24hPct: parseDecimal(t.PriceChangePercent),
		Timestamp:    time.UnixMilli(t.CloseTime),
	}
}

func parseDecimal(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toInt64(v interface{}) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case int64:
		return val
	case json.Number:
		i, _ := val.Int64()
		return i
	default:
		num, _ := strconv.ParseInt(fmt.Sprint(v), 10, 64)
		return num
	}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "-", ""))
}
