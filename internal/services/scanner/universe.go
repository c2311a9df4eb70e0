package scanner

import (
	"regexp"
	"sort"
	"strings"

	"argus/internal/domain/market_data"
)

// Leveraged-token tickers (BTCUP, ETHDOWN, XRPBULL, ...) are synthetic
// products and are excluded from auto-discovery.
var leveragedTokenPattern = regexp.MustCompile(`UP|DOWN|BULL|BEAR`)

// UniverseFilter holds the auto-discovery qualification thresholds.
type UniverseFilter struct {
	QuoteAsset        string
	MinQuoteVolume    float64
	MinPriceChangePct float64
	TopN              int
}

// QualifyTickers reduces an all-market ticker set to the scan universe: pairs
// of the target quote denomination, excluding leveraged tokens, above the
// volume and absolute price-change floors, sorted by quote volume descending
// and capped at TopN.
func QualifyTickers(tickers []market_data.TickerSnapshot, filter UniverseFilter) []market_data.TickerSnapshot {
	qualified := make([]market_data.TickerSnapshot, 0, len(tickers))
	for _, t := range tickers {
		if !strings.HasSuffix(t.Symbol, filter.QuoteAsset) {
			continue
		}
		if leveragedTokenPattern.MatchString(t.Symbol) {
			continue
		}
		if t.QuoteVolume <= filter.MinQuoteVolume {
			continue
		}
		change := t.PriceChangePercent
		if change < 0 {
			change = -change
		}
		if change <= filter.MinPriceChangePct {
			continue
		}
		qualified = append(qualified, t)
	}

	sort.Slice(qualified, func(i, j int) bool {
		return qualified[i].QuoteVolume > qualified[j].QuoteVolume
	})

	if filter.TopN > 0 && len(qualified) > filter.TopN {
		qualified = qualified[:filter.TopN]
	}

	return qualified
}

// DisplaySymbol strips the quote denomination from an exchange pair for
// presentation ("BTCUSDT" -> "BTC").
func DisplaySymbol(symbol, quoteAsset string) string {
	return strings.TrimSuffix(symbol, quoteAsset)
}
