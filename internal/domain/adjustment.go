package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdjustmentType represents the direction of a manual value adjustment
type AdjustmentType string

const (
	AdjustmentTypeCredit AdjustmentType = "credit"
	AdjustmentTypeDebit  AdjustmentType = "debit"
)

// Adjustment is a manual correction to an asset's value
// Adjustments are supplied by the caller per request and are never persisted
type Adjustment struct {
	AssetID uuid.UUID
	Amount  decimal.Decimal // ABSOLUTE VALUE
	Type    AdjustmentType  // 'credit' or 'debit'
	Date    time.Time
}

// Signed returns the amount with credits positive and debits negative
func (a Adjustment) Signed() decimal.Decimal {
	if a.Type == AdjustmentTypeDebit {
		return a.Amount.Neg()
	}
	return a.Amount
}

// Validate ensures the adjustment adheres to domain rules
func (a Adjustment) Validate() error {
	if a.AssetID == uuid.Nil {
		return errors.New("adjustment asset ID is required")
	}

	if a.Type != AdjustmentTypeCredit && a.Type != AdjustmentTypeDebit {
		return errors.New("adjustment type must be credit or debit")
	}

	if a.Amount.IsNegative() {
		return errors.New("adjustment amount must not be negative (absolute value)")
	}

	if a.Date.IsZero() {
		return errors.New("adjustment date is required")
	}

	return nil
}

// ValidateAdjustments validates every adjustment in the list
func ValidateAdjustments(adjustments []Adjustment) error {
	for _, adj := range adjustments {
		if err := adj.Validate(); err != nil {
			return err
		}
	}
	return nil
}
