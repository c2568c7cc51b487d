package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned (wrapped) by repositories when a record does not exist
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned (wrapped) when a projection cannot be represented,
	// e.g. growth compounded over a horizon too long for float64
	ErrOutOfRange = errors.New("invalid projection: out of range")
)

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// Update overwrites the mutable fields of an existing asset
	Update(ctx context.Context, asset *Asset) error

	// List retrieves every asset, ordered by name
	List(ctx context.Context) ([]*Asset, error)
}

// TransactionRepository defines the interface for transaction persistence operations
type TransactionRepository interface {
	// Create creates a new transaction
	Create(ctx context.Context, tx *Transaction) error

	// List retrieves every transaction (historical and scheduled), ordered by date
	// This is the stream used for cashflow
	List(ctx context.Context) ([]*Transaction, error)

	// ListFutureForAssets retrieves asset-linked transactions dated on or after from
	// This is the stream used for asset projection
	ListFutureForAssets(ctx context.Context, from time.Time) ([]*Transaction, error)
}
