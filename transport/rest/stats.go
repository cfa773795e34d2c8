package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
)

type StatsHandler interface {
	StatsHandler(w http.ResponseWriter, r *http.Request)
}

type statsService interface {
	GetSummary(ctx context.Context) (*entity.StatsSummary, error)
}

type statsHandler struct {
	logger *slog.Logger
	stats  statsService
}

func NewStatsHandler(logger *slog.Logger, stats statsService) StatsHandler {
	return &statsHandler{
		logger: logger,
		stats:  stats,
	}
}

// StatsHandler - serves the aggregate of recorded game outcomes.
func (that *statsHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StatsHandler")

	summary, err := that.stats.GetSummary(r.Context())
	if err != nil {
		log.Error("failed to get stats summary", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Error("failed to encode stats summary", "error", err)
	}
}
