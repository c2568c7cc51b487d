package asset

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

// RegisterAssetInput represents the input for registering an asset
type RegisterAssetInput struct {
	Name                 string
	CurrentValue         decimal.Decimal
	AppreciationType     domain.AppreciationType
	AnnualRatePercent    decimal.NullDecimal // Optional: defaults to 5
	ConsiderAppreciation bool
}

// AssetService handles asset management operations
type AssetService struct {
	AssetRepo domain.AssetRepository
}

// NewAssetService creates a new AssetService instance
func NewAssetService(assetRepo domain.AssetRepository) *AssetService {
	return &AssetService{
		AssetRepo: assetRepo,
	}
}

// Register validates and stores a new asset
func (s *AssetService) Register(ctx context.Context, input RegisterAssetInput) (*domain.Asset, error) {
	asset := &domain.Asset{
		ID:                   uuid.New(),
		Name:                 input.Name,
		CurrentValue:         input.CurrentValue,
		ProfitLossValue:      decimal.Zero,
		AppreciationType:     input.AppreciationType,
		AnnualRatePercent:    input.AnnualRatePercent,
		ConsiderAppreciation: input.ConsiderAppreciation,
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// Revalue records a new present-day value for an asset
// Logic: the difference to the previous value is accumulated into ProfitLossValue
// Returns the updated asset
func (s *AssetService) Revalue(ctx context.Context, assetID uuid.UUID, value decimal.Decimal) (*domain.Asset, error) {
	asset, err := s.AssetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	asset.ProfitLossValue = asset.ProfitLossValue.Add(value.Sub(asset.CurrentValue))
	asset.CurrentValue = value

	if err := s.AssetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// List returns every asset
func (s *AssetService) List(ctx context.Context) ([]*domain.Asset, error) {
	return s.AssetRepo.List(ctx)
}
