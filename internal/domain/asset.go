package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppreciationType represents the direction an asset's value moves over time
type AppreciationType string

const (
	AppreciationTypeAppreciates AppreciationType = "appreciates"
	AppreciationTypeDepreciates AppreciationType = "depreciates"
)

// DefaultAnnualRatePercent is used when an asset has no rate set
var DefaultAnnualRatePercent = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

// Asset represents one holding tracked for net-worth purposes
type Asset struct {
	ID                   uuid.UUID
	Name                 string
	CurrentValue         decimal.Decimal     // Signed, present-day value
	ProfitLossValue      decimal.Decimal     // Informational only, never projected
	AppreciationType     AppreciationType    // 'appreciates' or 'depreciates'
	AnnualRatePercent    decimal.NullDecimal // NULL means DefaultAnnualRatePercent
	ConsiderAppreciation bool                // false forces the growth rate to zero
}

// RatePercent returns the configured annual rate, falling back to the default
func (a *Asset) RatePercent() decimal.Decimal {
	if a.AnnualRatePercent.Valid {
		return a.AnnualRatePercent.Decimal
	}
	return DefaultAnnualRatePercent
}

// GrowthRate returns the signed annual growth rate as a fraction (5% => 0.05)
// Zero when appreciation is not considered
func (a *Asset) GrowthRate() decimal.Decimal {
	if !a.ConsiderAppreciation {
		return decimal.Zero
	}
	rate := a.RatePercent()
	if a.AppreciationType == AppreciationTypeDepreciates {
		rate = rate.Neg()
	}
	return rate.Div(hundred)
}

// Validate ensures the asset adheres to domain rules
// Returns an error if validation fails
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name cannot be empty")
	}

	if a.AppreciationType != AppreciationTypeAppreciates && a.AppreciationType != AppreciationTypeDepreciates {
		return errors.New("appreciation type must be appreciates or depreciates")
	}

	if a.AnnualRatePercent.Valid && a.AnnualRatePercent.Decimal.IsNegative() {
		return errors.New("annual rate percent must not be negative")
	}

	// (1 + rate) is the compounding base, it has to stay positive
	if a.ConsiderAppreciation &&
		a.AppreciationType == AppreciationTypeDepreciates &&
		a.RatePercent().GreaterThanOrEqual(hundred) {
		return errors.New("depreciation rate must be below 100 percent")
	}

	return nil
}
