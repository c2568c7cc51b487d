package seeder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

// Fixed UUIDs for the demo portfolio so seeding stays idempotent
var (
	DEMO_INDEX_FUND  = uuid.MustParse("00000000-0000-0000-0000-00000000a001")
	DEMO_APARTMENT   = uuid.MustParse("00000000-0000-0000-0000-00000000a002")
	DEMO_CAR         = uuid.MustParse("00000000-0000-0000-0000-00000000a003")
	DEMO_SALARY      = uuid.MustParse("00000000-0000-0000-0000-00000000b001")
	DEMO_ETF_TOPUP   = uuid.MustParse("00000000-0000-0000-0000-00000000b002")
	DEMO_CAR_PAYMENT = uuid.MustParse("00000000-0000-0000-0000-00000000b003")
)

// DemoSeeder seeds a small example portfolio
type DemoSeeder struct {
	assetRepo       domain.AssetRepository
	transactionRepo domain.TransactionRepository
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(assetRepo domain.AssetRepository, transactionRepo domain.TransactionRepository) *DemoSeeder {
	return &DemoSeeder{
		assetRepo:       assetRepo,
		transactionRepo: transactionRepo,
	}
}

// Seed ensures the demo assets exist; when an asset is created its
// transactions are created with it. Existing assets are left untouched.
// Cashflow-only transactions are seeded on their own, by ID
func (s *DemoSeeder) Seed(ctx context.Context, today time.Time) error {
	today = domain.DateOf(today)

	if err := s.seedAssets(ctx, today); err != nil {
		return err
	}
	return s.seedCashflow(ctx, today)
}

func (s *DemoSeeder) seedAssets(ctx context.Context, today time.Time) error {
	indexFund, car := DEMO_INDEX_FUND, DEMO_CAR
	noAssetEffect := false

	demo := []struct {
		asset *domain.Asset
		txs   []*domain.Transaction
	}{
		{
			asset: &domain.Asset{
				ID:                   DEMO_INDEX_FUND,
				Name:                 "Demo Index Fund",
				CurrentValue:         decimal.NewFromInt(12000),
				AppreciationType:     domain.AppreciationTypeAppreciates,
				AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(7)),
				ConsiderAppreciation: true,
			},
			txs: []*domain.Transaction{
				{
					ID:          DEMO_ETF_TOPUP,
					Description: "Scheduled ETF top-up",
					Date:        today.AddDate(0, 2, 0),
					Amount:      decimal.NewFromInt(-1500),
					AssetID:     &indexFund,
				},
			},
		},
		{
			asset: &domain.Asset{
				ID:                   DEMO_APARTMENT,
				Name:                 "Demo Apartment",
				CurrentValue:         decimal.NewFromInt(240000),
				AppreciationType:     domain.AppreciationTypeAppreciates,
				AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(3)),
				ConsiderAppreciation: true,
			},
		},
		{
			asset: &domain.Asset{
				ID:                   DEMO_CAR,
				Name:                 "Demo Car",
				CurrentValue:         decimal.NewFromInt(18000),
				AppreciationType:     domain.AppreciationTypeDepreciates,
				AnnualRatePercent:    decimal.NewNullDecimal(decimal.NewFromInt(15)),
				ConsiderAppreciation: true,
			},
			txs: []*domain.Transaction{
				{
					ID:                DEMO_CAR_PAYMENT,
					Description:       "Car insurance",
					Date:              today.AddDate(0, 1, 0),
					Amount:            decimal.NewFromInt(-600),
					AssetID:           &car,
					AffectsAssetValue: &noAssetEffect,
				},
			},
		},
	}

	for _, item := range demo {
		// Try to get the asset by ID
		_, err := s.assetRepo.GetByID(ctx, item.asset.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		// Validate before creating
		if err := item.asset.Validate(); err != nil {
			return err
		}
		if err := s.assetRepo.Create(ctx, item.asset); err != nil {
			return err
		}

		for _, tx := range item.txs {
			if err := tx.Validate(); err != nil {
				return err
			}
			if err := s.transactionRepo.Create(ctx, tx); err != nil {
				return err
			}
		}
	}

	return nil
}

// seedCashflow creates the demo transactions that are not linked to any asset
func (s *DemoSeeder) seedCashflow(ctx context.Context, today time.Time) error {
	cashflow := []*domain.Transaction{
		{
			ID:          DEMO_SALARY,
			Description: "Salary",
			Date:        today,
			Amount:      decimal.NewFromInt(3200),
		},
	}

	existing, err := s.transactionRepo.List(ctx)
	if err != nil {
		return err
	}
	seeded := make(map[uuid.UUID]bool, len(existing))
	for _, tx := range existing {
		seeded[tx.ID] = true
	}

	for _, tx := range cashflow {
		if seeded[tx.ID] {
			continue
		}
		if err := tx.Validate(); err != nil {
			return err
		}
		if err := s.transactionRepo.Create(ctx, tx); err != nil {
			return err
		}
	}

	return nil
}
