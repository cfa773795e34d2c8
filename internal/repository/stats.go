package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
)

type StatsRepository interface {
	RecordResult(ctx context.Context, game *entity.Game) error
	GetSummary(ctx context.Context) (*entity.StatsSummary, error)
}

type dbStats struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &dbStats{
		conn: conn,
	}
}

// RecordResult - stores the outcome of a finished game.
func (that *dbStats) RecordResult(ctx context.Context, game *entity.Game) error {
	query := `INSERT INTO game_results (id, winner, game_type) VALUES (?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, game.ID, game.Winner, game.Type)
	if err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}

	return nil
}

// GetSummary - aggregates the recorded outcomes.
func (that *dbStats) GetSummary(ctx context.Context) (*entity.StatsSummary, error) {
	query := `SELECT winner, COUNT(*) FROM game_results GROUP BY winner`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	summary := &entity.StatsSummary{}
	for rows.Next() {
		var (
			winner string
			count  int
		)
		if err = rows.Scan(&winner, &count); err != nil {
			return nil, fmt.Errorf("failed to scan game result row: %w", err)
		}

		switch winner {
		case entity.PlayerX:
			summary.XWins = count
		case entity.PlayerO:
			summary.OWins = count
		case entity.PlayerTie:
			summary.Ties = count
		}
		summary.Total += count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game result rows: %w", err)
	}

	return summary, nil
}
