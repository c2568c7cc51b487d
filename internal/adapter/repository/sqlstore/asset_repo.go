package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

const assetColumns = `id, name, current_value, profit_loss_value, appreciation_type, annual_rate_percent, consider_appreciation`

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAsset reads one asset row; DECIMAL columns are read as strings
func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var currentValueStr, profitLossStr string
	var rateStr sql.NullString

	if err := row.Scan(
		&asset.ID,
		&asset.Name,
		&currentValueStr,
		&profitLossStr,
		&asset.AppreciationType,
		&rateStr,
		&asset.ConsiderAppreciation,
	); err != nil {
		return nil, err
	}

	currentValue, err := decimal.NewFromString(currentValueStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current_value: %w", err)
	}
	asset.CurrentValue = currentValue

	profitLoss, err := decimal.NewFromString(profitLossStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profit_loss_value: %w", err)
	}
	asset.ProfitLossValue = profitLoss

	// Parse annual_rate_percent (nullable)
	if rateStr.Valid {
		rate, err := decimal.NewFromString(rateStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse annual_rate_percent: %w", err)
		}
		asset.AnnualRatePercent = decimal.NewNullDecimal(rate)
	}

	return &asset, nil
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}

	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.CurrentValue.String(),
		asset.ProfitLossValue.String(),
		string(asset.AppreciationType),
		nullableDecimal(asset.AnnualRatePercent),
		asset.ConsiderAppreciation,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of an existing asset
func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	// parameters are numbered in order of appearance (sqlite binds them positionally)
	query := `
		UPDATE assets
		SET name = $1,
			current_value = $2,
			profit_loss_value = $3,
			appreciation_type = $4,
			annual_rate_percent = $5,
			consider_appreciation = $6
		WHERE id = $7
	`

	res, err := r.db.ExecContext(ctx, query,
		asset.Name,
		asset.CurrentValue.String(),
		asset.ProfitLossValue.String(),
		string(asset.AppreciationType),
		nullableDecimal(asset.AnnualRatePercent),
		asset.ConsiderAppreciation,
		asset.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("asset %s %w", asset.ID, domain.ErrNotFound)
	}

	return nil
}

// List retrieves every asset, ordered by name
func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}

// nullableDecimal maps an invalid NullDecimal to SQL NULL
func nullableDecimal(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}
