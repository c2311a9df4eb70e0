package scanapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus/internal/domain/market_data"
	domainscan "argus/internal/domain/scan"
	"argus/internal/services/scanner"
	"argus/pkg/errors"
	"argus/pkg/logger"
)

type stubTickers struct {
	tickers []market_data.TickerSnapshot
	err     error
}

func (s *stubTickers) GetTickers(_ context.Context, _ []string) ([]market_data.TickerSnapshot, error) {
	return s.tickers, s.err
}

type stubCandles struct{}

func (s *stubCandles) GetCandles(_ context.Context, _, _ string, _ int) ([]market_data.Candle, error) {
	return nil, nil
}

type stubSentiment struct{}

func (s *stubSentiment) Index(_ context.Context) (int, error) {
	return 50, nil
}

type stubCache struct {
	result *domainscan.Result
}

func (s *stubCache) Latest() *domainscan.Result {
	return s.result
}

func newHandler(tickers *stubTickers, cache LatestProvider) *Handler {
	svc := scanner.New(scanner.DefaultConfig(), tickers, &stubCandles{}, &stubSentiment{})
	return New(svc, cache, logger.Get())
}

func decodeResult(t *testing.T, body []byte) domainscan.Result {
	t.Helper()
	var result domainscan.Result
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

func TestHandleScan_Get(t *testing.T) {
	handler := newHandler(&stubTickers{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleScan(rec, httptest.NewRequest(http.MethodGet, "/api/scan", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	result := decodeResult(t, rec.Body.Bytes())
	assert.True(t, result.Success)
	assert.NotNil(t, result.Opportunities)
}

func TestHandleScan_PostWithOptions(t *testing.T) {
	handler := newHandler(&stubTickers{}, nil)

	body := strings.NewReader(`{"symbols": ["BTCUSDT"], "minConfidence": 40}`)
	rec := httptest.NewRecorder()
	handler.HandleScan(rec, httptest.NewRequest(http.MethodPost, "/api/scan", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec.Body.Bytes())
	assert.True(t, result.Success)
}

func TestHandleScan_InvalidBody(t *testing.T) {
	handler := newHandler(&stubTickers{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleScan(rec, httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader("{broken")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScan_UpstreamFailure(t *testing.T) {
	handler := newHandler(&stubTickers{err: errors.ErrExchangeUnavailable}, nil)

	rec := httptest.NewRecorder()
	handler.HandleScan(rec, httptest.NewRequest(http.MethodGet, "/api/scan", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	result := decodeResult(t, rec.Body.Bytes())
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestHandleLatest_NoCache(t *testing.T) {
	handler := newHandler(&stubTickers{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleLatest(rec, httptest.NewRequest(http.MethodGet, "/api/scan/latest", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLatest_NothingCachedYet(t *testing.T) {
	handler := newHandler(&stubTickers{}, &stubCache{})

	rec := httptest.NewRecorder()
	handler.HandleLatest(rec, httptest.NewRequest(http.MethodGet, "/api/scan/latest", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleLatest_ReturnsCachedResult(t *testing.T) {
	cached := &domainscan.Result{
		Success:       true,
		Opportunities: []domainscan.MarketOpportunity{},
	}
	handler := newHandler(&stubTickers{}, &stubCache{result: cached})

	rec := httptest.NewRecorder()
	handler.HandleLatest(rec, httptest.NewRequest(http.MethodGet, "/api/scan/latest", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec.Body.Bytes())
	assert.True(t, result.Success)
}
