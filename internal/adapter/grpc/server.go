package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/simaogato/wealthcast-backend/internal/usecase/asset"
	"github.com/simaogato/wealthcast-backend/internal/usecase/forecast"
	"github.com/simaogato/wealthcast-backend/internal/usecase/ledger"
)

// Server implements the ForecastService gRPC server
type Server struct {
	ForecastService *forecast.ForecastService
	AssetService    *asset.AssetService
	LedgerService   *ledger.LedgerService

	// Now supplies "today" when a request carries no as_of date
	Now func() time.Time
}

var _ ForecastServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	forecastService *forecast.ForecastService,
	assetService *asset.AssetService,
	ledgerService *ledger.LedgerService,
) *Server {
	return &Server{
		ForecastService: forecastService,
		AssetService:    assetService,
		LedgerService:   ledgerService,
		Now:             time.Now,
	}
}

// today returns the request's as_of date or the server clock's calendar day
func (s *Server) today(req *structpb.Struct) (time.Time, error) {
	asOf, ok, err := dateField(req, "as_of")
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if ok {
		return asOf, nil
	}
	return domain.DateOf(s.Now()), nil
}

// GetForecast handles the GetForecast RPC
func (s *Server) GetForecast(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	today, err := s.today(req)
	if err != nil {
		return nil, err
	}

	adjustments, err := adjustmentsField(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	result, err := s.ForecastService.Forecast(ctx, today, adjustments)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"as_of":                   formatDate(result.AsOf),
		"total_value":             result.TotalValue.String(),
		"projected_total_current": result.ProjectedTotalCurrent.String(),
		"projected_total_3m":      result.ProjectedTotal3M.String(),
		"projected_total_6m":      result.ProjectedTotal6M.String(),
		"projected_total_1y":      result.ProjectedTotal1Y.String(),
		"total_delta_3m":          result.TotalDelta3M.String(),
		"total_delta_6m":          result.TotalDelta6M.String(),
		"total_delta_1y":          result.TotalDelta1Y.String(),
	})
}

// ProjectAt handles the ProjectAt RPC
func (s *Server) ProjectAt(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	today, err := s.today(req)
	if err != nil {
		return nil, err
	}

	target, ok, err := dateField(req, "target_date")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", quoteKey("target_date"))
	}

	adjustments, err := adjustmentsField(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	result, err := s.ForecastService.ProjectAt(ctx, today, target, adjustments)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"as_of":           formatDate(result.AsOf),
		"target_date":     formatDate(result.TargetDate),
		"projected_total": result.ProjectedTotal.String(),
		"cashflow":        result.Cashflow.String(),
		"total_delta":     result.TotalDelta.String(),
		"assets":          listOf(result.Assets, projectionToMap),
	})
}

// ListAssets handles the ListAssets RPC
func (s *Server) ListAssets(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	assets, err := s.AssetService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"assets": listOf(assets, assetToMap),
	})
}

// RegisterAsset handles the RegisterAsset RPC
func (s *Server) RegisterAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, _, err := stringField(req, "name")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	currentValue, ok, err := decimalField(req, "current_value")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", quoteKey("current_value"))
	}

	appreciationType, ok, err := stringField(req, "appreciation_type")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !ok {
		appreciationType = string(domain.AppreciationTypeAppreciates)
	}

	input := asset.RegisterAssetInput{
		Name:             name,
		CurrentValue:     currentValue,
		AppreciationType: domain.AppreciationType(appreciationType),
	}

	// Optional rate: absent means the default rate applies
	rate, ok, err := decimalField(req, "annual_rate_percent")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if ok {
		input.AnnualRatePercent.Decimal = rate
		input.AnnualRatePercent.Valid = true
	}

	if input.ConsiderAppreciation, _, err = boolField(req, "consider_appreciation"); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	created, err := s.AssetService.Register(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"asset": assetToMap(created),
	})
}

// RevalueAsset handles the RevalueAsset RPC
func (s *Server) RevalueAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	assetID, ok, err := uuidField(req, "asset_id")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", quoteKey("asset_id"))
	}

	value, ok, err := decimalField(req, "current_value")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", quoteKey("current_value"))
	}

	updated, err := s.AssetService.Revalue(ctx, assetID, value)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"asset": assetToMap(updated),
	})
}

// RecordTransaction handles the RecordTransaction RPC
func (s *Server) RecordTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	description, _, err := stringField(req, "description")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	amount, _, err := decimalField(req, "amount")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	date, ok, err := dateField(req, "date")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !ok {
		date = domain.DateOf(s.Now())
	}

	input := ledger.RecordTransactionInput{
		Description: description,
		Date:        date,
		Amount:      amount,
	}

	// Parse optional asset link
	assetID, ok, err := uuidField(req, "asset_id")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if ok {
		input.AssetID = &assetID
	}

	affects, ok, err := boolField(req, "affects_asset_value")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if ok {
		input.AffectsAssetValue = &affects
	}

	tx, err := s.LedgerService.Record(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"transaction": transactionToMap(tx),
	})
}

// GetLedger handles the GetLedger RPC
func (s *Server) GetLedger(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	today, err := s.today(req)
	if err != nil {
		return nil, err
	}

	statement, err := s.LedgerService.Statement(ctx, today)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"as_of":           formatDate(statement.AsOf),
		"current_balance": statement.CurrentBalance.String(),
		"closing_balance": statement.ClosingBalance.String(),
		"lines":           listOf(statement.Lines, lineToMap),
	})
}

func newStruct(m map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	if errors.Is(err, domain.ErrNotFound) {
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	}

	if errors.Is(err, domain.ErrOutOfRange) {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Storage and fetch failures stay internal whatever they mention
	if strings.HasPrefix(errorMsg, "failed to") {
		return status.Errorf(codes.Internal, "%s", errorMsg)
	}

	// Map validation errors to InvalidArgument
	if strings.Contains(errorMsg, "must") ||
		strings.Contains(errorMsg, "invalid") ||
		strings.Contains(errorMsg, "is required") ||
		strings.Contains(errorMsg, "cannot be empty") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
