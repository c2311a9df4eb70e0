package scan

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"argus/internal/domain/market_data"
)

// Action is the direction of a trading signal.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Rank classifies an opportunity by cross-timeframe agreement strength.
type Rank string

const (
	RankPlatinum Rank = "PLATINUM"
	RankGold     Rank = "GOLD"
	RankSilver   Rank = "SILVER"
)

// Priority returns the sort priority of a rank (lower sorts first).
func (r Rank) Priority() int {
	switch r {
	case RankPlatinum:
		return 0
	case RankGold:
		return 1
	default:
		return 2
	}
}

// TimeframeSignal is a directional signal produced for one (symbol, timeframe).
// Absence of a signal is modeled as absence of the value, never as a
// zero-strength signal: downstream ranking branches on presence.
type TimeframeSignal struct {
	Action        Action
	StrengthScore int
	Signal        string
	Price         float64
	PriceHistory  []market_data.Candle
}

// MarketOpportunity is one ranked, risk-annotated trading opportunity.
type MarketOpportunity struct {
	Symbol         string               `json:"symbol"`
	Rank           Rank                 `json:"rank"`
	Priority       int                  `json:"priority"`
	Timeframe      string               `json:"timeframe"`
	Action         Action               `json:"tradingAction"`
	StrengthScore  int                  `json:"strengthScore"`
	Signal         string               `json:"tradingSignal"`
	Price          float64              `json:"price"`
	Volume24h      float64              `json:"volume24h"`
	PriceChange24h float64              `json:"priceChange24h"`
	TakeProfit     float64              `json:"takeProfit"`
	StopLoss       float64              `json:"stopLoss"`
	PriceHistory   []market_data.Candle `json:"priceHistory"`
}

// Statistics summarizes one scan.
type Statistics struct {
	TotalProcessed     int   `json:"totalProcessed"`
	TotalOpportunities int   `json:"totalOpportunities"`
	Platinum           int   `json:"platinum"`
	Gold               int   `json:"gold"`
	Silver             int   `json:"silver"`
	ScanTimeMs         int64 `json:"scanTimeMs"`
	FearGreedIndex     int   `json:"fearGreedIndex"`
}

// Result is the aggregate output of one scan.
type Result struct {
	ScanID        uuid.UUID           `json:"scanId"`
	Success       bool                `json:"success"`
	Error         string              `json:"error,omitempty"`
	Opportunities []MarketOpportunity `json:"opportunities"`
	Statistics    Statistics          `json:"statistics"`
	Timestamp     time.Time           `json:"timestamp"`
}

// SortOpportunities orders opportunities by ascending priority, ties broken
// by descending strength score. The sort is stable so equal entries keep
// their collection order.
func SortOpportunities(opportunities []MarketOpportunity) {
	sort.SliceStable(opportunities, func(i, j int) bool {
		if opportunities[i].Priority != opportunities[j].Priority {
			return opportunities[i].Priority < opportunities[j].Priority
		}
		return opportunities[i].StrengthScore > opportunities[j].StrengthScore
	})
}

// CountByRank tallies opportunities per rank.
func CountByRank(opportunities []MarketOpportunity) (platinum, gold, silver int) {
	for _, op := range opportunities {
		switch op.Rank {
		case RankPlatinum:
			platinum++
		case RankGold:
			gold++
		case RankSilver:
			silver++
		}
	}
	return platinum, gold, silver
}
