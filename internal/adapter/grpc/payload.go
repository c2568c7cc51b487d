package grpc

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/simaogato/wealthcast-backend/internal/usecase/ledger"
	"github.com/simaogato/wealthcast-backend/internal/usecase/projection"
)

// field returns the value stored under key, treating explicit nulls as absent
func field(in *structpb.Struct, key string) (*structpb.Value, bool) {
	v, ok := in.GetFields()[key]
	if !ok || v == nil {
		return nil, false
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, false
	}
	return v, true
}

func stringField(in *structpb.Struct, key string) (string, bool, error) {
	v, ok := field(in, key)
	if !ok {
		return "", false, nil
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", false, fmt.Errorf("invalid %s: expected a string", key)
	}
	return s.StringValue, true, nil
}

// decimalField accepts both "123.45" strings and plain numbers
func decimalField(in *structpb.Struct, key string) (decimal.Decimal, bool, error) {
	v, ok := field(in, key)
	if !ok {
		return decimal.Zero, false, nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(kind.StringValue)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("invalid %s format: %v", key, err)
		}
		return d, true, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false, fmt.Errorf("invalid %s: must be a finite number", key)
		}
		return decimal.NewFromFloat(n), true, nil
	default:
		return decimal.Zero, false, fmt.Errorf("invalid %s: expected a decimal string", key)
	}
}

func dateField(in *structpb.Struct, key string) (time.Time, bool, error) {
	s, ok, err := stringField(in, key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	date, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid %s format: %v", key, err)
	}
	return date, true, nil
}

func uuidField(in *structpb.Struct, key string) (uuid.UUID, bool, error) {
	s, ok, err := stringField(in, key)
	if err != nil || !ok {
		return uuid.Nil, false, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("invalid %s format: %v", key, err)
	}
	return id, true, nil
}

func boolField(in *structpb.Struct, key string) (bool, bool, error) {
	v, ok := field(in, key)
	if !ok {
		return false, false, nil
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return false, false, fmt.Errorf("invalid %s: expected a boolean", key)
	}
	return b.BoolValue, true, nil
}

// adjustmentsField parses the optional "adjustments" list
func adjustmentsField(in *structpb.Struct) ([]domain.Adjustment, error) {
	v, ok := field(in, "adjustments")
	if !ok {
		return nil, nil
	}
	list := v.GetListValue()
	if list == nil {
		return nil, fmt.Errorf("invalid adjustments: expected a list")
	}

	adjustments := make([]domain.Adjustment, 0, len(list.GetValues()))
	for i, item := range list.GetValues() {
		obj := item.GetStructValue()
		if obj == nil {
			return nil, fmt.Errorf("invalid adjustments[%d]: expected an object", i)
		}

		assetID, _, err := uuidField(obj, "asset_id")
		if err != nil {
			return nil, fmt.Errorf("adjustments[%d]: %w", i, err)
		}
		amount, _, err := decimalField(obj, "amount")
		if err != nil {
			return nil, fmt.Errorf("adjustments[%d]: %w", i, err)
		}
		adjType, _, err := stringField(obj, "type")
		if err != nil {
			return nil, fmt.Errorf("adjustments[%d]: %w", i, err)
		}
		date, _, err := dateField(obj, "date")
		if err != nil {
			return nil, fmt.Errorf("adjustments[%d]: %w", i, err)
		}

		adjustments = append(adjustments, domain.Adjustment{
			AssetID: assetID,
			Amount:  amount,
			Type:    domain.AdjustmentType(adjType),
			Date:    date,
		})
	}
	return adjustments, nil
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func assetToMap(asset *domain.Asset) map[string]interface{} {
	m := map[string]interface{}{
		"id":                    asset.ID.String(),
		"name":                  asset.Name,
		"current_value":         asset.CurrentValue.String(),
		"profit_loss_value":     asset.ProfitLossValue.String(),
		"appreciation_type":     string(asset.AppreciationType),
		"annual_rate_percent":   nil,
		"effective_rate":        asset.GrowthRate().String(),
		"consider_appreciation": asset.ConsiderAppreciation,
	}
	if asset.AnnualRatePercent.Valid {
		m["annual_rate_percent"] = asset.AnnualRatePercent.Decimal.String()
	}
	return m
}

func transactionToMap(tx *domain.Transaction) map[string]interface{} {
	m := map[string]interface{}{
		"id":                  tx.ID.String(),
		"description":         tx.Description,
		"date":                formatDate(tx.Date),
		"amount":              tx.Amount.String(),
		"asset_id":            nil,
		"affects_asset_value": nil,
	}
	if tx.AssetID != nil {
		m["asset_id"] = tx.AssetID.String()
	}
	if tx.AffectsAssetValue != nil {
		m["affects_asset_value"] = *tx.AffectsAssetValue
	}
	return m
}

func projectionToMap(p projection.AssetProjection) map[string]interface{} {
	return map[string]interface{}{
		"asset_id":        p.Asset.ID.String(),
		"name":            p.Asset.Name,
		"current_value":   p.Asset.CurrentValue.String(),
		"delta":           p.Delta.String(),
		"projected_value": p.ProjectedValue.String(),
	}
}

func lineToMap(line ledger.Line) map[string]interface{} {
	m := transactionToMap(line.Transaction)
	m["counts_toward_cashflow"] = line.CountsTowardCashflow
	m["balance"] = line.Balance.String()
	return m
}

func listOf[T any](items []T, conv func(T) map[string]interface{}) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, conv(item))
	}
	return out
}

// quoteKey is used in error messages only
func quoteKey(key string) string {
	return strconv.Quote(key)
}
