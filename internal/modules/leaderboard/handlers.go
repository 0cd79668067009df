package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/capboard/pkg/formulas"
)

// Handler exposes the leaderboard over HTTP
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new leaderboard handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "leaderboard").Logger(),
	}
}

// capRowResponse is a RankedRow plus its display strings
type capRowResponse struct {
	Rank        int     `json:"rank"`
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	MarketCap   float64 `json:"market_cap"`
	Display     string  `json:"market_cap_display"`
	IndexWeight string  `json:"index_weight"`
}

// growthRowResponse is a GrowthRow plus its display string
type growthRowResponse struct {
	Rank          int     `json:"rank"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	RevenueGrowth float64 `json:"revenue_growth"`
	Display       string  `json:"revenue_growth_display"`
}

// HandleTop10 handles GET /api/leaderboard/top10
func (h *Handler) HandleTop10(w http.ResponseWriter, r *http.Request) {
	boards, err := h.service.Boards(r.Context())
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	rows := make([]capRowResponse, 0, len(boards.TopByMarketCap))
	for _, row := range boards.TopByMarketCap {
		rows = append(rows, capRowResponse{
			Rank:        row.Rank,
			Symbol:      row.Symbol,
			Name:        row.Name,
			MarketCap:   row.MarketCap,
			Display:     formulas.FormatMarketCap(row.MarketCap),
			IndexWeight: formulas.FormatPercent(row.IndexWeight),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":         rows,
		"stats":        boards.Stats,
		"generated_at": boards.GeneratedAt.Format(time.RFC3339),
	})
}

// HandleGrowth handles GET /api/leaderboard/growth
func (h *Handler) HandleGrowth(w http.ResponseWriter, r *http.Request) {
	boards, err := h.service.Boards(r.Context())
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	rows := make([]growthRowResponse, 0, len(boards.TopByGrowth))
	for _, row := range boards.TopByGrowth {
		rows = append(rows, growthRowResponse{
			Rank:          row.Rank,
			Symbol:        row.Symbol,
			Name:          row.Name,
			RevenueGrowth: row.RevenueGrowth,
			Display:       formulas.FormatPercent(row.RevenueGrowth),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":         rows,
		"generated_at": boards.GeneratedAt.Format(time.RFC3339),
	})
}

// HandleRefresh handles POST /api/leaderboard/refresh: invalidate the cache
// and recompute
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	boards, err := h.service.Refresh(r.Context())
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed":    true,
		"records":      boards.Stats.SymbolCount,
		"generated_at": boards.GeneratedAt.Format(time.RFC3339),
	})
}

// writePipelineError maps stage failures to HTTP statuses
func (h *Handler) writePipelineError(w http.ResponseWriter, err error) {
	h.log.Error().Err(err).Msg("Pipeline failed")

	switch {
	case errors.Is(err, ErrSourceUnavailable):
		h.writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrNoData):
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
