package scanner

import (
	"fmt"
	"math"
	"strings"

	"argus/internal/domain/scan"
)

// Timeframes the GOLD and SILVER tiers key on.
const (
	goldTimeframe   = "1h"
	silverTimeframe = "15m"
)

// exitMultipliers maps (action, rank) to take-profit and stop-loss price
// multipliers. SILVER doubles as the fallback row for either direction.
type exitMultiplier struct {
	takeProfit float64
	stopLoss   float64
}

var exitMultipliers = map[scan.Action]map[scan.Rank]exitMultiplier{
	scan.ActionBuy: {
		scan.RankPlatinum: {1.08, 0.96},
		scan.RankGold:     {1.05, 0.97},
		scan.RankSilver:   {1.03, 0.98},
	},
	scan.ActionSell: {
		scan.RankPlatinum: {0.92, 1.04},
		scan.RankGold:     {0.95, 1.03},
		scan.RankSilver:   {0.97, 1.02},
	},
}

// TradingLevels computes take-profit and stop-loss from price, direction and
// rank, rounded to 4 decimal places. An invalid price (NaN or non-positive)
// yields both levels as zero.
func TradingLevels(price float64, action scan.Action, rank scan.Rank) (takeProfit, stopLoss float64) {
	if math.IsNaN(price) || price <= 0 {
		return 0, 0
	}

	byRank, ok := exitMultipliers[action]
	if !ok {
		byRank = exitMultipliers[scan.ActionSell]
	}
	mult, ok := byRank[rank]
	if !ok {
		mult = byRank[scan.RankSilver]
	}

	return round4(price * mult.takeProfit), round4(price * mult.stopLoss)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// RankSignals combines per-timeframe signals for one symbol into zero or one
// tiered opportunity. Tiers are evaluated strictly in order:
//
//  1. PLATINUM — every configured timeframe signaled and all agree on
//     direction; numeric fields come from the strongest of them.
//  2. GOLD — the 1h timeframe signaled, agreement or not.
//  3. SILVER — the 15m timeframe signaled.
//
// Anything else yields no opportunity. Exit levels are filled from the
// resulting rank and direction.
func RankSignals(signals map[string]*scan.TimeframeSignal, timeframes []string) *scan.MarketOpportunity {
	if op := platinumOpportunity(signals, timeframes); op != nil {
		return op
	}

	if sig, ok := signals[goldTimeframe]; ok {
		return opportunityFromSignal(sig, scan.RankGold, goldTimeframe)
	}
	if sig, ok := signals[silverTimeframe]; ok {
		return opportunityFromSignal(sig, scan.RankSilver, silverTimeframe)
	}

	return nil
}

func platinumOpportunity(signals map[string]*scan.TimeframeSignal, timeframes []string) *scan.MarketOpportunity {
	if len(timeframes) == 0 {
		return nil
	}

	var strongest *scan.TimeframeSignal
	var action scan.Action

	for i, tf := range timeframes {
		sig, ok := signals[tf]
		if !ok {
			return nil
		}
		if i == 0 {
			action = sig.Action
		} else if sig.Action != action {
			return nil
		}
		if strongest == nil || sig.StrengthScore > strongest.StrengthScore {
			strongest = sig
		}
	}

	op := opportunityFromSignal(strongest, scan.RankPlatinum, strings.Join(timeframes, "-"))
	op.Signal = fmt.Sprintf("PLATINUM SIGNAL: Strong %s signal confirmed across multiple timeframes.", action)
	return op
}

func opportunityFromSignal(sig *scan.TimeframeSignal, rank scan.Rank, timeframe string) *scan.MarketOpportunity {
	takeProfit, stopLoss := TradingLevels(sig.Price, sig.Action, rank)

	return &scan.MarketOpportunity{
		Rank:          rank,
		Priority:      rank.Priority(),
		Timeframe:     timeframe,
		Action:        sig.Action,
		StrengthScore: sig.StrengthScore,
		Signal:        sig.Signal,
		Price:         sig.Price,
		TakeProfit:    takeProfit,
		StopLoss:      stopLoss,
		PriceHistory:  sig.PriceHistory,
	}
}
