package rest

import (
	"context"
	"time"

	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/simaogato/wealthcast-backend/internal/usecase/forecast"
	"github.com/simaogato/wealthcast-backend/internal/usecase/ledger"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks -source=interface.go Forecaster,AssetLister,StatementReader

// Forecaster computes forecasts; implemented by forecast.ForecastService
type Forecaster interface {
	Forecast(ctx context.Context, today time.Time, adjustments []domain.Adjustment) (*forecast.Result, error)
	ProjectAt(ctx context.Context, today, target time.Time, adjustments []domain.Adjustment) (*forecast.ProjectionResult, error)
}

// AssetLister is implemented by asset.AssetService
type AssetLister interface {
	List(ctx context.Context) ([]*domain.Asset, error)
}

// StatementReader is implemented by ledger.LedgerService
type StatementReader interface {
	Statement(ctx context.Context, today time.Time) (*ledger.Statement, error)
}
