package scanapi

import (
	"context"
	"encoding/json"
	"net/http"

	domainscan "argus/internal/domain/scan"
	"argus/internal/services/scanner"
	"argus/pkg/logger"
)

// LatestProvider exposes the most recent cached scan result.
type LatestProvider interface {
	Latest() *domainscan.Result
}

// Handler serves on-demand and cached market scans.
type Handler struct {
	scanner *scanner.Service
	cache   LatestProvider
	log     *logger.Logger
}

// New creates a scan API handler.
func New(svc *scanner.Service, cache LatestProvider, log *logger.Logger) *Handler {
	return &Handler{
		scanner: svc,
		cache:   cache,
		log:     log.With("component", "scan_api"),
	}
}

// scanRequest mirrors scanner.Options in JSON form. All fields optional.
type scanRequest struct {
	Symbols        []string `json:"symbols"`
	Timeframes     []string `json:"timeframes"`
	MinVolume      float64  `json:"minVolume"`
	MinPriceChange float64  `json:"minPriceChange"`
	TopN           int      `json:"topN"`
	MinConfidence  int      `json:"minConfidence"`
}

// HandleScan runs a scan with caller-supplied options. GET runs with the
// service defaults; POST accepts an options body.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	var opts scanner.Options

	if r.Method == http.MethodPost {
		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"success":false,"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		opts = scanner.Options{
			Symbols:        req.Symbols,
			Timeframes:     req.Timeframes,
			MinVolume:      req.MinVolume,
			MinPriceChange: req.MinPriceChange,
			TopN:           req.TopN,
			MinConfidence:  req.MinConfidence,
		}
	}

	result := h.scanner.Scan(r.Context(), opts)
	h.writeResult(r.Context(), w, result)
}

// HandleLatest returns the most recent scheduled scan result.
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		http.Error(w, `{"success":false,"error":"scheduled scanning disabled"}`, http.StatusNotFound)
		return
	}

	result := h.cache.Latest()
	if result == nil {
		http.Error(w, `{"success":false,"error":"no scan completed yet"}`, http.StatusServiceUnavailable)
		return
	}

	h.writeResult(r.Context(), w, result)
}

func (h *Handler) writeResult(ctx context.Context, w http.ResponseWriter, result *domainscan.Result) {
	w.Header().Set("Content-Type", "application/json")
	if !result.Success {
		w.WriteHeader(http.StatusBadGateway)
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.ErrorWithContext(ctx, err, map[string]string{"handler": "scan"})
	}
}
