package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/simaogato/wealthcast-backend/internal/usecase/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListFutureForAssets(ctx context.Context, from time.Time) ([]*domain.Transaction, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

var today = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func assertDecimal(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	assert.InDelta(t, want, got.InexactFloat64(), 1e-6, "got %s", got)
}

func TestForecast_Horizons(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := NewForecastService(mockAssetRepo, mockTxRepo)

	// Setup: one flat asset and one appreciating asset
	flat := &domain.Asset{
		ID:               uuid.New(),
		Name:             "Savings Account",
		CurrentValue:     decimal.NewFromInt(1000),
		AppreciationType: domain.AppreciationTypeAppreciates,
	}
	growing := &domain.Asset{
		ID:                   uuid.New(),
		Name:                 "Index Fund",
		CurrentValue:         decimal.NewFromInt(2000),
		AppreciationType:     domain.AppreciationTypeAppreciates,
		AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(10)),
		ConsiderAppreciation: true,
	}
	flatID := flat.ID
	purchase := &domain.Transaction{ID: uuid.New(), Date: today.AddDate(0, 1, 0), Amount: decimal.NewFromInt(-100), AssetID: &flatID}
	salary := &domain.Transaction{ID: uuid.New(), Date: today.AddDate(0, 0, -3), Amount: decimal.NewFromInt(500)}

	// Mock repository calls (fetched concurrently, on a derived context)
	mockAssetRepo.On("List", mock.Anything).Return([]*domain.Asset{flat, growing}, nil)
	mockTxRepo.On("List", mock.Anything).Return([]*domain.Transaction{salary, purchase}, nil)
	mockTxRepo.On("ListFutureForAssets", mock.Anything, today).Return([]*domain.Transaction{purchase}, nil)

	// Execute (time of day is dropped)
	result, err := service.Forecast(ctx, today.Add(15*time.Hour), nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, today, result.AsOf)
	assertDecimal(t, 3000, result.TotalValue)
	assertDecimal(t, 3500, result.ProjectedTotalCurrent)

	in1Y := today.AddDate(1, 0, 0)
	// 1000 + 100 (purchase) + 2000*1.1 + 500 cash
	assertDecimal(t, 3800, result.ProjectedTotal1Y)
	assert.True(t, result.ProjectedTotal3M.LessThan(result.ProjectedTotal6M))
	assert.True(t, result.ProjectedTotal6M.LessThan(result.ProjectedTotal1Y))
	assertDecimal(t, 100, result.TotalDelta3M)
	assertDecimal(t, 100, result.TotalDelta1Y)
	assert.Equal(t, 365, domain.DaysBetween(today, in1Y))

	// Verify all mocks were called
	mockAssetRepo.AssertExpectations(t)
	mockTxRepo.AssertExpectations(t)
}

func TestForecast_NoAssets(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := NewForecastService(mockAssetRepo, mockTxRepo)

	mockAssetRepo.On("List", mock.Anything).Return([]*domain.Asset{}, nil)
	mockTxRepo.On("List", mock.Anything).Return([]*domain.Transaction{
		{ID: uuid.New(), Date: today, Amount: decimal.NewFromInt(-40)},
	}, nil)
	mockTxRepo.On("ListFutureForAssets", mock.Anything, today).Return([]*domain.Transaction{}, nil)

	result, err := service.Forecast(ctx, today, nil)

	require.NoError(t, err)
	assert.True(t, result.TotalValue.IsZero())
	assertDecimal(t, -40, result.ProjectedTotalCurrent)
	// horizons are only computed when there are assets
	assert.True(t, result.ProjectedTotal3M.IsZero())
	assert.True(t, result.ProjectedTotal6M.IsZero())
	assert.True(t, result.ProjectedTotal1Y.IsZero())
}

func TestForecast_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := NewForecastService(mockAssetRepo, mockTxRepo)

	mockAssetRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))
	mockTxRepo.On("List", mock.Anything).Return([]*domain.Transaction{}, nil).Maybe()
	mockTxRepo.On("ListFutureForAssets", mock.Anything, today).Return([]*domain.Transaction{}, nil).Maybe()

	result, err := service.Forecast(ctx, today, nil)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list assets")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestForecast_InvalidAdjustment(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := NewForecastService(mockAssetRepo, mockTxRepo)

	_, err := service.Forecast(ctx, today, []domain.Adjustment{
		{AssetID: uuid.New(), Amount: decimal.NewFromInt(10), Type: "bonus", Date: today},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "adjustment type must be credit or debit")

	// Verify no repository calls were made
	mockAssetRepo.AssertNotCalled(t, "List", mock.Anything)
	mockTxRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestProjectAt_WithAdjustments(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := NewForecastService(mockAssetRepo, mockTxRepo)

	asset := &domain.Asset{
		ID:                   uuid.New(),
		Name:                 "Apartment",
		CurrentValue:         decimal.NewFromInt(1000),
		AppreciationType:     domain.AppreciationTypeAppreciates,
		AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(10)),
		ConsiderAppreciation: true,
	}
	mockAssetRepo.On("List", mock.Anything).Return([]*domain.Asset{asset}, nil)
	mockTxRepo.On("List", mock.Anything).Return([]*domain.Transaction{}, nil)
	mockTxRepo.On("ListFutureForAssets", mock.Anything, today).Return([]*domain.Transaction{}, nil)

	target := today.AddDate(0, 0, 365)
	result, err := service.ProjectAt(ctx, today, target, []domain.Adjustment{
		{AssetID: asset.ID, Amount: decimal.NewFromInt(500), Type: domain.AdjustmentTypeCredit, Date: today},
	})

	require.NoError(t, err)
	assert.Equal(t, target, result.TargetDate)
	assertDecimal(t, 1650, result.ProjectedTotal)
	assertDecimal(t, 0, result.Cashflow)
	assertDecimal(t, 500, result.TotalDelta)
	require.Len(t, result.Assets, 1)
	assertDecimal(t, 1650, result.Assets[0].ProjectedValue)
}

func TestCompute_MatchesEngine(t *testing.T) {
	asset := &domain.Asset{
		ID:                   uuid.New(),
		Name:                 "Boat",
		CurrentValue:         decimal.NewFromInt(30000),
		AppreciationType:     domain.AppreciationTypeDepreciates,
		AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(12)),
		ConsiderAppreciation: true,
	}
	engine := projection.NewEngine(projection.Inputs{Today: today, Assets: []*domain.Asset{asset}})

	result, err := Compute(engine)
	require.NoError(t, err)

	sixMonths, err := engine.ProjectedTotal(today.AddDate(0, 6, 0))
	require.NoError(t, err)
	assert.True(t, sixMonths.Equal(result.ProjectedTotal6M))
	assert.True(t, result.ProjectedTotal1Y.LessThan(result.TotalValue))
}

func TestProjectAt_GrowthOverflow(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := NewForecastService(mockAssetRepo, mockTxRepo)

	asset := &domain.Asset{
		ID:                   uuid.New(),
		Name:                 "Moonshot",
		CurrentValue:         decimal.NewFromInt(1000),
		AppreciationType:     domain.AppreciationTypeAppreciates,
		AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(2000)),
		ConsiderAppreciation: true,
	}
	require.NoError(t, asset.Validate())

	mockAssetRepo.On("List", mock.Anything).Return([]*domain.Asset{asset}, nil)
	mockTxRepo.On("List", mock.Anything).Return([]*domain.Transaction{}, nil)
	mockTxRepo.On("ListFutureForAssets", mock.Anything, today).Return([]*domain.Transaction{}, nil)

	result, err := service.ProjectAt(ctx, today, today.AddDate(250, 0, 0), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.Nil(t, result)

	// the 1 year horizon stays representable
	forecast, err := service.Forecast(ctx, today, nil)
	require.NoError(t, err)
	assert.True(t, forecast.ProjectedTotal1Y.GreaterThan(forecast.TotalValue))
}
