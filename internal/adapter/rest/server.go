package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthcast-backend/internal/domain"
	"github.com/simaogato/wealthcast-backend/internal/usecase/ledger"
	"github.com/simaogato/wealthcast-backend/internal/usecase/projection"
)

// Server is the JSON HTTP API over the forecast, asset and ledger services
type Server struct {
	forecasts Forecaster
	assets    AssetLister
	ledger    StatementReader
	router    *mux.Router

	// Now supplies "today" when a request carries no as_of date
	Now func() time.Time
}

// NewServer creates a Server and registers its routes. Every /api route except
// /api/health requires apiToken in the Authorization header
func NewServer(f Forecaster, a AssetLister, l StatementReader, apiToken string, logger *log.Logger) *Server {
	server := &Server{
		forecasts: f,
		assets:    a,
		ledger:    l,
		Now:       time.Now,
	}

	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger), corsMiddleware)
	r.HandleFunc("/api/health", server.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware(apiToken))
	api.HandleFunc("/forecast", server.handleForecast).Methods(http.MethodGet)
	api.HandleFunc("/projections", server.handleProjection).Methods(http.MethodPost)
	api.HandleFunc("/assets", server.handleListAssets).Methods(http.MethodGet)
	api.HandleFunc("/ledger", server.handleLedger).Methods(http.MethodGet)

	server.router = r
	return server
}

// Handler returns the routed handler to mount on an http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}

type forecastResponse struct {
	AsOf                  string          `json:"as_of"`
	TotalValue            decimal.Decimal `json:"total_value"`
	ProjectedTotalCurrent decimal.Decimal `json:"projected_total_current"`
	ProjectedTotal3M      decimal.Decimal `json:"projected_total_3m"`
	ProjectedTotal6M      decimal.Decimal `json:"projected_total_6m"`
	ProjectedTotal1Y      decimal.Decimal `json:"projected_total_1y"`
	TotalDelta3M          decimal.Decimal `json:"total_delta_3m"`
	TotalDelta6M          decimal.Decimal `json:"total_delta_6m"`
	TotalDelta1Y          decimal.Decimal `json:"total_delta_1y"`
}

type adjustmentRequest struct {
	AssetID uuid.UUID       `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
	Type    string          `json:"type"`
	Date    string          `json:"date"`
}

type projectionRequest struct {
	AsOf        string              `json:"as_of"`
	TargetDate  string              `json:"target_date"`
	Adjustments []adjustmentRequest `json:"adjustments"`
}

type assetProjectionResponse struct {
	AssetID        uuid.UUID       `json:"asset_id"`
	Name           string          `json:"name"`
	CurrentValue   decimal.Decimal `json:"current_value"`
	Delta          decimal.Decimal `json:"delta"`
	ProjectedValue decimal.Decimal `json:"projected_value"`
}

type projectionResponse struct {
	AsOf           string                    `json:"as_of"`
	TargetDate     string                    `json:"target_date"`
	ProjectedTotal decimal.Decimal           `json:"projected_total"`
	Cashflow       decimal.Decimal           `json:"cashflow"`
	TotalDelta     decimal.Decimal           `json:"total_delta"`
	Assets         []assetProjectionResponse `json:"assets"`
}

type assetResponse struct {
	ID                   uuid.UUID           `json:"id"`
	Name                 string              `json:"name"`
	CurrentValue         decimal.Decimal     `json:"current_value"`
	ProfitLossValue      decimal.Decimal     `json:"profit_loss_value"`
	AppreciationType     string              `json:"appreciation_type"`
	AnnualRatePercent    decimal.NullDecimal `json:"annual_rate_percent"`
	EffectiveRate        decimal.Decimal     `json:"effective_rate"`
	ConsiderAppreciation bool                `json:"consider_appreciation"`
}

type ledgerLineResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Description          string          `json:"description"`
	Date                 string          `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	AssetID              *uuid.UUID      `json:"asset_id"`
	AffectsAssetValue    *bool           `json:"affects_asset_value"`
	CountsTowardCashflow bool            `json:"counts_toward_cashflow"`
	Balance              decimal.Decimal `json:"balance"`
}

type ledgerResponse struct {
	AsOf           string               `json:"as_of"`
	CurrentBalance decimal.Decimal      `json:"current_balance"`
	ClosingBalance decimal.Decimal      `json:"closing_balance"`
	Lines          []ledgerLineResponse `json:"lines"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	today, err := s.today(r.URL.Query().Get("as_of"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.forecasts.Forecast(r.Context(), today, nil)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, forecastResponse{
		AsOf:                  result.AsOf.Format(domain.DateFormat),
		TotalValue:            result.TotalValue,
		ProjectedTotalCurrent: result.ProjectedTotalCurrent,
		ProjectedTotal3M:      result.ProjectedTotal3M,
		ProjectedTotal6M:      result.ProjectedTotal6M,
		ProjectedTotal1Y:      result.ProjectedTotal1Y,
		TotalDelta3M:          result.TotalDelta3M,
		TotalDelta6M:          result.TotalDelta6M,
		TotalDelta1Y:          result.TotalDelta1Y,
	})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	today, err := s.today(req.AsOf)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.TargetDate == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target_date is required"})
		return
	}
	target, err := domain.ParseDate(req.TargetDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid target_date: %w", err))
		return
	}

	adjustments := make([]domain.Adjustment, 0, len(req.Adjustments))
	for i, adj := range req.Adjustments {
		date, err := domain.ParseDate(adj.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid adjustments[%d].date: %w", i, err))
			return
		}
		adjustments = append(adjustments, domain.Adjustment{
			AssetID: adj.AssetID,
			Amount:  adj.Amount,
			Type:    domain.AdjustmentType(adj.Type),
			Date:    date,
		})
	}

	result, err := s.forecasts.ProjectAt(r.Context(), today, target, adjustments)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := projectionResponse{
		AsOf:           result.AsOf.Format(domain.DateFormat),
		TargetDate:     result.TargetDate.Format(domain.DateFormat),
		ProjectedTotal: result.ProjectedTotal,
		Cashflow:       result.Cashflow,
		TotalDelta:     result.TotalDelta,
		Assets:         make([]assetProjectionResponse, 0, len(result.Assets)),
	}
	for _, p := range result.Assets {
		out.Assets = append(out.Assets, toAssetProjectionResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.assets.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := make([]assetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, assetResponse{
			ID:                   a.ID,
			Name:                 a.Name,
			CurrentValue:         a.CurrentValue,
			ProfitLossValue:      a.ProfitLossValue,
			AppreciationType:     string(a.AppreciationType),
			AnnualRatePercent:    a.AnnualRatePercent,
			EffectiveRate:        a.GrowthRate(),
			ConsiderAppreciation: a.ConsiderAppreciation,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	today, err := s.today(r.URL.Query().Get("as_of"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	statement, err := s.ledger.Statement(r.Context(), today)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := ledgerResponse{
		AsOf:           statement.AsOf.Format(domain.DateFormat),
		CurrentBalance: statement.CurrentBalance,
		ClosingBalance: statement.ClosingBalance,
		Lines:          make([]ledgerLineResponse, 0, len(statement.Lines)),
	}
	for _, line := range statement.Lines {
		out.Lines = append(out.Lines, toLedgerLineResponse(line))
	}
	writeJSON(w, http.StatusOK, out)
}

// today parses an optional as_of date, falling back to the server clock
func (s *Server) today(asOf string) (time.Time, error) {
	if asOf == "" {
		return domain.DateOf(s.Now()), nil
	}
	date, err := domain.ParseDate(asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as_of: %w", err)
	}
	return date, nil
}

func toAssetProjectionResponse(p projection.AssetProjection) assetProjectionResponse {
	return assetProjectionResponse{
		AssetID:        p.Asset.ID,
		Name:           p.Asset.Name,
		CurrentValue:   p.Asset.CurrentValue,
		Delta:          p.Delta,
		ProjectedValue: p.ProjectedValue,
	}
}

func toLedgerLineResponse(line ledger.Line) ledgerLineResponse {
	tx := line.Transaction
	return ledgerLineResponse{
		ID:                   tx.ID,
		Description:          tx.Description,
		Date:                 tx.Date.Format(domain.DateFormat),
		Amount:               tx.Amount,
		AssetID:              tx.AssetID,
		AffectsAssetValue:    tx.AffectsAssetValue,
		CountsTowardCashflow: line.CountsTowardCashflow,
		Balance:              line.Balance,
	}
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, domain.ErrOutOfRange) {
		return http.StatusBadRequest
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "failed to") {
		return http.StatusInternalServerError
	}
	if strings.Contains(msg, "must") || strings.Contains(msg, "is required") || strings.Contains(msg, "invalid") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
