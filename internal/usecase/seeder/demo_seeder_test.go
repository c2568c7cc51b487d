package seeder

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAssetRepository is a mock implementation of AssetRepository
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

// MockTransactionRepository is a mock implementation of TransactionRepository
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

var today = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func notFound(id uuid.UUID) error {
	return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
}

func TestDemoSeeder_Seed_AssetsMissing(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)
	seeder := NewDemoSeeder(mockAssetRepo, mockTxRepo)

	for _, id := range []uuid.UUID{DEMO_INDEX_FUND, DEMO_APARTMENT, DEMO_CAR} {
		mockAssetRepo.On("GetByID", ctx, id).Return(nil, notFound(id))
	}
	mockAssetRepo.On("Create", ctx, mock.AnythingOfType("*domain.Asset")).Return(nil)
	mockTxRepo.On("List", ctx).Return([]*domain.Transaction{}, nil)
	mockTxRepo.On("Create", ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil)

	err := seeder.Seed(ctx, today)

	assert.NoError(t, err)
	mockAssetRepo.AssertNumberOfCalls(t, "Create", 3)
	// two asset-linked transactions plus the salary
	mockTxRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestDemoSeeder_Seed_AssetsExist(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)
	seeder := NewDemoSeeder(mockAssetRepo, mockTxRepo)

	for _, id := range []uuid.UUID{DEMO_INDEX_FUND, DEMO_APARTMENT, DEMO_CAR} {
		mockAssetRepo.On("GetByID", ctx, id).Return(&domain.Asset{ID: id}, nil)
	}
	mockTxRepo.On("List", ctx).Return([]*domain.Transaction{{ID: DEMO_SALARY}}, nil)

	err := seeder.Seed(ctx, today)

	assert.NoError(t, err)
	mockAssetRepo.AssertExpectations(t)
	// Verify nothing was created (portfolio already seeded)
	mockAssetRepo.AssertNotCalled(t, "Create")
	mockTxRepo.AssertNotCalled(t, "Create")
}

func TestDemoSeeder_Seed_PartialAssetsExist(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)
	seeder := NewDemoSeeder(mockAssetRepo, mockTxRepo)

	mockAssetRepo.On("GetByID", ctx, DEMO_INDEX_FUND).Return(&domain.Asset{ID: DEMO_INDEX_FUND}, nil)
	mockAssetRepo.On("GetByID", ctx, DEMO_APARTMENT).Return(&domain.Asset{ID: DEMO_APARTMENT}, nil)
	mockAssetRepo.On("GetByID", ctx, DEMO_CAR).Return(nil, notFound(DEMO_CAR))
	mockTxRepo.On("List", ctx).Return([]*domain.Transaction{{ID: DEMO_SALARY}}, nil)

	mockAssetRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Asset) bool {
		return a.ID == DEMO_CAR && a.AppreciationType == domain.AppreciationTypeDepreciates
	})).Return(nil)
	mockTxRepo.On("Create", ctx, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.ID == DEMO_CAR_PAYMENT &&
			tx.Date.Equal(today.AddDate(0, 1, 0)) &&
			!tx.AffectsAsset()
	})).Return(nil)

	err := seeder.Seed(ctx, today)

	assert.NoError(t, err)
	mockAssetRepo.AssertExpectations(t)
	mockTxRepo.AssertExpectations(t)
	mockAssetRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestDemoSeeder_Seed_CashflowIndependentOfAssets(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)
	seeder := NewDemoSeeder(mockAssetRepo, mockTxRepo)

	// every asset is already there, but the salary was never recorded
	for _, id := range []uuid.UUID{DEMO_INDEX_FUND, DEMO_APARTMENT, DEMO_CAR} {
		mockAssetRepo.On("GetByID", ctx, id).Return(&domain.Asset{ID: id}, nil)
	}
	mockTxRepo.On("List", ctx).Return([]*domain.Transaction{{ID: DEMO_ETF_TOPUP}}, nil)
	mockTxRepo.On("Create", ctx, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.ID == DEMO_SALARY && tx.AssetID == nil && tx.Date.Equal(today)
	})).Return(nil)

	err := seeder.Seed(ctx, today)

	assert.NoError(t, err)
	mockTxRepo.AssertExpectations(t)
	mockTxRepo.AssertNumberOfCalls(t, "Create", 1)
	mockAssetRepo.AssertNotCalled(t, "Create")
}

func TestDemoSeeder_Seed_LookupFailure(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockTxRepo := new(MockTransactionRepository)
	seeder := NewDemoSeeder(mockAssetRepo, mockTxRepo)

	mockAssetRepo.On("GetByID", ctx, DEMO_INDEX_FUND).Return(nil, errors.New("connection reset"))

	err := seeder.Seed(ctx, today)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	mockAssetRepo.AssertNotCalled(t, "Create")
}
