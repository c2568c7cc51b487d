package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

// RecordTransactionInput represents the input for recording a ledger transaction
type RecordTransactionInput struct {
	Description       string
	Date              time.Time
	Amount            decimal.Decimal
	AssetID           *uuid.UUID // Optional: link to the asset bought or sold
	AffectsAssetValue *bool      // Optional: defaults to true for linked transactions
}

// Line is one row of the cashflow statement
type Line struct {
	Transaction *domain.Transaction
	// CountsTowardCashflow is false for asset-linked transactions dated after today;
	// those move their asset's projection instead of the cash balance
	CountsTowardCashflow bool
	Balance              decimal.Decimal // running cashflow balance after this line
}

// Statement is the cashflow ledger with running balances
type Statement struct {
	AsOf           time.Time
	Lines          []Line
	CurrentBalance decimal.Decimal // balance of every counted line dated on or before AsOf
	ClosingBalance decimal.Decimal // balance after the last line
}

// LedgerService handles cashflow ledger operations
type LedgerService struct {
	AssetRepo       domain.AssetRepository
	TransactionRepo domain.TransactionRepository
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(assetRepo domain.AssetRepository, transactionRepo domain.TransactionRepository) *LedgerService {
	return &LedgerService{
		AssetRepo:       assetRepo,
		TransactionRepo: transactionRepo,
	}
}

// Record validates and stores a new transaction
// An asset link must reference an existing asset
func (s *LedgerService) Record(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		ID:                uuid.New(),
		Description:       input.Description,
		Date:              domain.DateOf(input.Date),
		Amount:            input.Amount,
		AssetID:           input.AssetID,
		AffectsAssetValue: input.AffectsAssetValue,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if tx.AssetID != nil {
		if _, err := s.AssetRepo.GetByID(ctx, *tx.AssetID); err != nil {
			return nil, err
		}
	}

	if err := s.TransactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Statement lists every transaction in date order with its running balance
// The balance follows the same rule as the forecast cashflow position
func (s *LedgerService) Statement(ctx context.Context, today time.Time) (*Statement, error) {
	txs, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return BuildStatement(txs, today), nil
}

// BuildStatement computes running balances over txs
// Lines are ordered by date; same-day lines keep their input order
func BuildStatement(txs []*domain.Transaction, today time.Time) *Statement {
	today = domain.DateOf(today)

	ordered := make([]*domain.Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return domain.DateOf(ordered[i].Date).Before(domain.DateOf(ordered[j].Date))
	})

	statement := &Statement{
		AsOf:  today,
		Lines: make([]Line, 0, len(ordered)),
	}

	balance := decimal.Zero
	for _, tx := range ordered {
		date := domain.DateOf(tx.Date)
		counts := tx.AssetID == nil || !date.After(today)
		if counts {
			balance = balance.Add(tx.Amount)
		}
		if !date.After(today) {
			statement.CurrentBalance = balance
		}
		statement.Lines = append(statement.Lines, Line{
			Transaction:          tx,
			CountsTowardCashflow: counts,
			Balance:              balance,
		})
	}
	statement.ClosingBalance = balance

	return statement
}
