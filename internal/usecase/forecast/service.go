package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/simaogato/wealthcast-backend/internal/usecase/projection"
	"golang.org/x/sync/errgroup"
)

// Result represents the canonical forecast figures
type Result struct {
	AsOf                  time.Time
	TotalValue            decimal.Decimal // sum of current asset values, no projection
	ProjectedTotalCurrent decimal.Decimal
	ProjectedTotal3M      decimal.Decimal
	ProjectedTotal6M      decimal.Decimal
	ProjectedTotal1Y      decimal.Decimal
	TotalDelta3M          decimal.Decimal
	TotalDelta6M          decimal.Decimal
	TotalDelta1Y          decimal.Decimal
}

// ProjectionResult represents a projection at a caller-chosen date
type ProjectionResult struct {
	AsOf           time.Time
	TargetDate     time.Time
	ProjectedTotal decimal.Decimal
	Cashflow       decimal.Decimal
	TotalDelta     decimal.Decimal
	Assets         []projection.AssetProjection
}

// ForecastService handles forecast operations
type ForecastService struct {
	AssetRepo       domain.AssetRepository
	TransactionRepo domain.TransactionRepository
}

// NewForecastService creates a new ForecastService instance
func NewForecastService(assetRepo domain.AssetRepository, transactionRepo domain.TransactionRepository) *ForecastService {
	return &ForecastService{
		AssetRepo:       assetRepo,
		TransactionRepo: transactionRepo,
	}
}

// Engine fetches a fresh snapshot and builds a projection engine for today
// The three streams are fetched concurrently; the first failure cancels the others
func (s *ForecastService) Engine(ctx context.Context, today time.Time, adjustments []domain.Adjustment) (*projection.Engine, error) {
	if err := domain.ValidateAdjustments(adjustments); err != nil {
		return nil, err
	}

	today = domain.DateOf(today)

	var (
		assets []*domain.Asset
		all    []*domain.Transaction
		future []*domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if assets, err = s.AssetRepo.List(gctx); err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if all, err = s.TransactionRepo.List(gctx); err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if future, err = s.TransactionRepo.ListFutureForAssets(gctx, today); err != nil {
			return fmt.Errorf("failed to list future asset transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return projection.NewEngine(projection.Inputs{
		Today:              today,
		Assets:             assets,
		Transactions:       all,
		FutureTransactions: future,
		Adjustments:        adjustments,
	}), nil
}

// Forecast computes the current total and the 3 month, 6 month and 1 year horizons
// Every call recomputes from a fresh snapshot
func (s *ForecastService) Forecast(ctx context.Context, today time.Time, adjustments []domain.Adjustment) (*Result, error) {
	engine, err := s.Engine(ctx, today, adjustments)
	if err != nil {
		return nil, err
	}
	result, err := Compute(engine)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ProjectAt projects net worth and every asset to target
func (s *ForecastService) ProjectAt(ctx context.Context, today, target time.Time, adjustments []domain.Adjustment) (*ProjectionResult, error) {
	engine, err := s.Engine(ctx, today, adjustments)
	if err != nil {
		return nil, err
	}

	target = domain.DateOf(target)
	total, err := engine.ProjectedTotal(target)
	if err != nil {
		return nil, err
	}
	assets, err := engine.AssetProjections(target)
	if err != nil {
		return nil, err
	}
	return &ProjectionResult{
		AsOf:           engine.Today(),
		TargetDate:     target,
		ProjectedTotal: total,
		Cashflow:       engine.CashflowPosition(target),
		TotalDelta:     engine.TotalDelta(target),
		Assets:         assets,
	}, nil
}

// Compute derives the canonical forecast from an engine
// Logic:
//   - TotalValue: sum of current asset values
//   - ProjectedTotalCurrent: TotalValue + cashflow position today
//   - Horizons: projected total at today+3M, +6M, +1Y (zero when there are no assets)
func Compute(engine *projection.Engine) (Result, error) {
	today := engine.Today()
	assets := engine.Assets()

	totalValue := decimal.Zero
	for _, asset := range assets {
		totalValue = totalValue.Add(asset.CurrentValue)
	}

	result := Result{
		AsOf:                  today,
		TotalValue:            totalValue,
		ProjectedTotalCurrent: totalValue.Add(engine.CashflowPosition(today)),
	}

	if len(assets) == 0 {
		return result, nil
	}

	in3M, in6M, in1Y := today.AddDate(0, 3, 0), today.AddDate(0, 6, 0), today.AddDate(1, 0, 0)

	var err error
	if result.ProjectedTotal3M, err = engine.ProjectedTotal(in3M); err != nil {
		return Result{}, err
	}
	if result.ProjectedTotal6M, err = engine.ProjectedTotal(in6M); err != nil {
		return Result{}, err
	}
	if result.ProjectedTotal1Y, err = engine.ProjectedTotal(in1Y); err != nil {
		return Result{}, err
	}
	result.TotalDelta3M = engine.TotalDelta(in3M)
	result.TotalDelta6M = engine.TotalDelta(in6M)
	result.TotalDelta1Y = engine.TotalDelta(in1Y)

	return result, nil
}
