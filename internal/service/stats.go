package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
)

type StatsService interface {
	RecordResult(ctx context.Context, game *entity.Game)
	GetSummary(ctx context.Context) (*entity.StatsSummary, error)
}

type statsRepo interface {
	RecordResult(ctx context.Context, game *entity.Game) error
	GetSummary(ctx context.Context) (*entity.StatsSummary, error)
}

type statsService struct {
	logger    *slog.Logger
	statsRepo statsRepo
}

func NewStatsService(logger *slog.Logger, statsRepo statsRepo) StatsService {
	return &statsService{
		logger:    logger,
		statsRepo: statsRepo,
	}
}

// RecordResult - stores a finished game's outcome. A storage failure is
// logged, not returned: losing one stats row must not fail the turn
// that finished the game.
func (that *statsService) RecordResult(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "RecordResult", "gameID", game.ID)

	if !game.IsFinished() {
		log.Warn("skipping stats for unfinished game")
		return
	}

	if err := that.statsRepo.RecordResult(ctx, game); err != nil {
		log.Error("failed to record game result", "error", err)
	}
}

func (that *statsService) GetSummary(ctx context.Context) (*entity.StatsSummary, error) {
	summary, err := that.statsRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats summary: %w", err)
	}

	return summary, nil
}
