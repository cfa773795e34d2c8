package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
	"github.com/tqnguyen2073/tic-tac-toe/internal/repository/storage"
)

func newStatsStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	st, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)

	require.NoError(t, st.Init(context.Background()))

	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Fatalf("could not close sqlite storage: %v", err)
		}
	})

	return st
}

func TestStatsRepository_RecordResult(t *testing.T) {
	ctx := context.Background()
	st := newStatsStorage(t)

	statsRepo := NewStatsRepository(st.Connection)

	// Given: a finished game won by X
	game := &entity.Game{
		ID:     "123",
		Winner: entity.PlayerX,
		Status: entity.StatusFinished,
		Type:   entity.WithBotType,
	}

	// When: recording the result
	err := statsRepo.RecordResult(ctx, game)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestStatsRepository_GetSummary(t *testing.T) {
	t.Run("Aggregates results by winner", func(t *testing.T) {
		ctx := context.Background()
		st := newStatsStorage(t)

		statsRepo := NewStatsRepository(st.Connection)

		// Given: two X wins, one O win and one tie on record
		results := []*entity.Game{
			{ID: "1", Winner: entity.PlayerX, Type: entity.PublicType},
			{ID: "2", Winner: entity.PlayerX, Type: entity.WithBotType},
			{ID: "3", Winner: entity.PlayerO, Type: entity.PrivateType},
			{ID: "4", Winner: entity.PlayerTie, Type: entity.WithBotType},
		}
		for _, game := range results {
			require.NoError(t, statsRepo.RecordResult(ctx, game))
		}

		// When: aggregating the summary
		summary, err := statsRepo.GetSummary(ctx)

		// Then: the counts should match the recorded games
		require.NoError(t, err)
		assert.Equal(t, 2, summary.XWins)
		assert.Equal(t, 1, summary.OWins)
		assert.Equal(t, 1, summary.Ties)
		assert.Equal(t, 4, summary.Total)
	})

	t.Run("Empty storage yields an empty summary", func(t *testing.T) {
		ctx := context.Background()
		st := newStatsStorage(t)

		statsRepo := NewStatsRepository(st.Connection)

		// When: aggregating with nothing recorded
		summary, err := statsRepo.GetSummary(ctx)

		// Then: all counts should be zero
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Total)
	})
}
