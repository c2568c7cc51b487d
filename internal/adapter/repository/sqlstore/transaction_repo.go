package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

const transactionColumns = `id, description, date, amount, asset_id, affects_asset_value`

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var assetID interface{}
	if tx.AssetID != nil {
		assetID = *tx.AssetID
	}

	var affects interface{}
	if tx.AffectsAssetValue != nil {
		affects = *tx.AffectsAssetValue
	}

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.Description,
		domain.DateOf(tx.Date),
		tx.Amount.String(),
		assetID,
		affects,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// List retrieves every transaction, ordered by date
func (r *transactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date ASC, id ASC`

	return r.query(ctx, query)
}

// ListFutureForAssets retrieves asset-linked transactions dated on or after from
func (r *transactionRepository) ListFutureForAssets(ctx context.Context, from time.Time) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE asset_id IS NOT NULL AND date >= $1
		ORDER BY date ASC, id ASC
	`

	return r.query(ctx, query, domain.DateOf(from))
}

func (r *transactionRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		var amountStr string
		var assetID sql.NullString
		var affects sql.NullBool

		if err := rows.Scan(
			&tx.ID,
			&tx.Description,
			&tx.Date,
			&amountStr,
			&assetID,
			&affects,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		// Parse amount (DECIMAL)
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction amount: %w", err)
		}
		tx.Amount = amount
		tx.Date = domain.DateOf(tx.Date)

		// Parse asset_id (nullable)
		if assetID.Valid {
			parsed, err := uuid.Parse(assetID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse asset_id: %w", err)
			}
			tx.AssetID = &parsed
		}

		if affects.Valid {
			value := affects.Bool
			tx.AffectsAssetValue = &value
		}

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}
