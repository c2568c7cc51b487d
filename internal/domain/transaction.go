package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a ledger entry in the domain layer
// A negative amount is money leaving cash (e.g. buying an asset), a positive
// amount is money coming in (e.g. proceeds of selling one)
type Transaction struct {
	ID                uuid.UUID
	Description       string
	Date              time.Time
	Amount            decimal.Decimal // SIGNED
	AssetID           *uuid.UUID      // NULL for cashflow-only entries
	AffectsAssetValue *bool           // NULL counts as true
}

// CountsTowardAsset reports whether the transaction moves the value of assetID
func (t *Transaction) CountsTowardAsset(assetID uuid.UUID) bool {
	return t.AssetID != nil && *t.AssetID == assetID && t.AffectsAsset()
}

// AffectsAsset reports whether a linked transaction moves its asset's value
func (t *Transaction) AffectsAsset() bool {
	return t.AssetID != nil && (t.AffectsAssetValue == nil || *t.AffectsAssetValue)
}

// AssetEffect is the change the transaction applies to its asset's value
// Buying (negative amount) adds to the asset, selling removes from it
func (t *Transaction) AssetEffect() decimal.Decimal {
	return t.Amount.Neg()
}

// Validate ensures the transaction adheres to domain rules
// Returns an error if validation fails
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	if t.Amount.IsZero() {
		return errors.New("transaction amount must be non-zero")
	}

	if t.AssetID != nil && *t.AssetID == uuid.Nil {
		return errors.New("transaction asset ID is invalid")
	}

	return nil
}
