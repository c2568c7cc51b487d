package projection

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

// Inputs is the snapshot a projection is computed from
type Inputs struct {
	// Today is the reference date every projection is relative to
	Today time.Time

	Assets []*domain.Asset

	// Transactions is the full ledger (historical and scheduled) used for cashflow
	Transactions []*domain.Transaction

	// FutureTransactions are asset-linked transactions dated on or after Today
	FutureTransactions []*domain.Transaction

	// Adjustments are caller-owned manual corrections, read but never modified
	Adjustments []domain.Adjustment
}

// Engine computes cashflow, deltas and projected values over a frozen snapshot
// All methods are pure; the engine never mutates its inputs
type Engine struct {
	today       time.Time
	assets      []*domain.Asset
	txs         []*domain.Transaction
	future      []*domain.Transaction
	adjustments []domain.Adjustment
}

// AssetProjection is the per-asset breakdown at a target date
type AssetProjection struct {
	Asset          *domain.Asset
	Delta          decimal.Decimal // principal delta, no growth
	ProjectedValue decimal.Decimal
}

// NewEngine creates an engine with "today" frozen to the calendar day of in.Today
func NewEngine(in Inputs) *Engine {
	return &Engine{
		today:       domain.DateOf(in.Today),
		assets:      in.Assets,
		txs:         in.Transactions,
		future:      in.FutureTransactions,
		adjustments: in.Adjustments,
	}
}

// Today returns the reference date of the engine
func (e *Engine) Today() time.Time {
	return e.today
}

// Assets returns the asset snapshot the engine projects
func (e *Engine) Assets() []*domain.Asset {
	return e.assets
}

// CashflowPosition sums every ledger transaction dated on or before target
// Asset-linked transactions dated after today are skipped: they are already
// counted inside the projection of their asset
func (e *Engine) CashflowPosition(target time.Time) decimal.Decimal {
	target = domain.DateOf(target)

	position := decimal.Zero
	for _, tx := range e.txs {
		date := domain.DateOf(tx.Date)
		if date.After(target) {
			continue
		}
		if tx.AssetID != nil && date.After(e.today) {
			continue
		}
		position = position.Add(tx.Amount)
	}
	return position
}

// AssetDelta returns the principal change to one asset up to target:
// manual adjustments plus scheduled transactions, without growth
func (e *Engine) AssetDelta(assetID uuid.UUID, target time.Time) decimal.Decimal {
	return e.delta(&assetID, target)
}

// TotalDelta is AssetDelta aggregated over every asset
func (e *Engine) TotalDelta(target time.Time) decimal.Decimal {
	return e.delta(nil, target)
}

// delta reduces adjustments and qualifying future transactions dated on or
// before target. A nil assetID aggregates all assets
func (e *Engine) delta(assetID *uuid.UUID, target time.Time) decimal.Decimal {
	target = domain.DateOf(target)

	manual := decimal.Zero
	for _, adj := range e.adjustments {
		if assetID != nil && adj.AssetID != *assetID {
			continue
		}
		if domain.DateOf(adj.Date).After(target) {
			continue
		}
		manual = manual.Add(adj.Signed())
	}

	scheduled := decimal.Zero
	for _, tx := range e.future {
		if !tx.AffectsAsset() {
			continue
		}
		if assetID != nil && *tx.AssetID != *assetID {
			continue
		}
		if domain.DateOf(tx.Date).After(target) {
			continue
		}
		scheduled = scheduled.Add(tx.AssetEffect())
	}

	return manual.Add(scheduled)
}

// ProjectedAssetValue projects one asset to target with compound annual growth
//
// The current value grows from today. Each adjustment and each qualifying
// future transaction grows on its own clock, from its own date to target
// (never backwards). Growth that overflows float64 returns domain.ErrOutOfRange
func (e *Engine) ProjectedAssetValue(asset *domain.Asset, target time.Time) (decimal.Decimal, error) {
	target = domain.DateOf(target)
	rate := asset.GrowthRate()

	factor, err := growthFactor(rate, domain.DaysBetween(e.today, target))
	if err != nil {
		return decimal.Zero, fmt.Errorf("asset %s: %w", asset.Name, err)
	}
	value := asset.CurrentValue.Mul(factor)

	for _, adj := range e.adjustments {
		if adj.AssetID != asset.ID || domain.DateOf(adj.Date).After(target) {
			continue
		}
		factor, err := growthFactor(rate, max(0, domain.DaysBetween(adj.Date, target)))
		if err != nil {
			return decimal.Zero, fmt.Errorf("asset %s adjustment: %w", asset.Name, err)
		}
		value = value.Add(adj.Signed().Mul(factor))
	}

	for _, tx := range e.future {
		if !tx.CountsTowardAsset(asset.ID) || domain.DateOf(tx.Date).After(target) {
			continue
		}
		factor, err := growthFactor(rate, max(0, domain.DaysBetween(tx.Date, target)))
		if err != nil {
			return decimal.Zero, fmt.Errorf("asset %s transaction: %w", asset.Name, err)
		}
		value = value.Add(tx.AssetEffect().Mul(factor))
	}

	return value, nil
}

// ProjectedTotal is net worth at target: every projected asset plus cashflow
func (e *Engine) ProjectedTotal(target time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, asset := range e.assets {
		value, err := e.ProjectedAssetValue(asset, target)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(value)
	}
	return total.Add(e.CashflowPosition(target)), nil
}

// AssetProjections returns the per-asset breakdown at target, in snapshot order
func (e *Engine) AssetProjections(target time.Time) ([]AssetProjection, error) {
	out := make([]AssetProjection, 0, len(e.assets))
	for _, asset := range e.assets {
		value, err := e.ProjectedAssetValue(asset, target)
		if err != nil {
			return nil, err
		}
		out = append(out, AssetProjection{
			Asset:          asset,
			Delta:          e.AssetDelta(asset.ID, target),
			ProjectedValue: value,
		})
	}
	return out, nil
}
