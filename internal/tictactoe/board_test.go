package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tqnguyen2073/tic-tac-toe/internal/apperror"
)

func TestInitialState(t *testing.T) {
	// Given: nothing

	// When: creating the starting board
	board := InitialState()

	// Then: every cell should be empty and X should be to move
	for row := range board {
		for col := range board[row] {
			assert.Equal(t, EmptyCell, board[row][col])
		}
	}
	assert.Equal(t, PlayerX, CurrentPlayer(board))
}

func TestCurrentPlayer(t *testing.T) {
	t.Run("X moves first on the empty board", func(t *testing.T) {
		// Given: an empty board
		board := InitialState()

		// When: asking whose turn it is
		player := CurrentPlayer(board)

		// Then: it should be X
		assert.Equal(t, PlayerX, player)
	})

	t.Run("O moves after X has played", func(t *testing.T) {
		// Given: a board where X has played once
		board := Board{
			{PlayerX, EmptyCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When: asking whose turn it is
		player := CurrentPlayer(board)

		// Then: it should be O
		assert.Equal(t, PlayerO, player)
	})

	t.Run("Turn alternates strictly through a full game", func(t *testing.T) {
		// Given: the empty board
		board := InitialState()
		expected := PlayerX

		// When: playing out legal moves one by one
		for !IsTerminal(board) {
			// Then: the side to move alternates starting with X
			require.Equal(t, expected, CurrentPlayer(board))

			moves := LegalMoves(board)
			require.NotEmpty(t, moves)

			next, err := ApplyMove(board, moves[0])
			require.NoError(t, err)
			board = next

			if expected == PlayerX {
				expected = PlayerO
			} else {
				expected = PlayerX
			}
		}
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("Empty board has all nine cells available", func(t *testing.T) {
		// Given: an empty board
		board := InitialState()

		// When: enumerating legal moves
		moves := LegalMoves(board)

		// Then: all nine cells should be listed in row-major order
		require.Len(t, moves, 9)
		assert.Equal(t, Move{Row: 0, Col: 0}, moves[0])
		assert.Equal(t, Move{Row: 2, Col: 2}, moves[8])
	})

	t.Run("Occupied cells are excluded", func(t *testing.T) {
		// Given: a board with two occupied cells
		board := Board{
			{PlayerX, EmptyCell, EmptyCell},
			{EmptyCell, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When: enumerating legal moves
		moves := LegalMoves(board)

		// Then: only the seven empty cells should be listed
		require.Len(t, moves, 7)
		assert.NotContains(t, moves, Move{Row: 0, Col: 0})
		assert.NotContains(t, moves, Move{Row: 1, Col: 1})
	})

	t.Run("Won board yields no moves", func(t *testing.T) {
		// Given: a board already won by X
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When: enumerating legal moves
		moves := LegalMoves(board)

		// Then: the game is over, so no moves remain
		assert.Empty(t, moves)
	})

	t.Run("Enumeration is idempotent", func(t *testing.T) {
		// Given: a mid-game board
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When: enumerating legal moves twice
		first := LegalMoves(board)
		second := LegalMoves(board)

		// Then: both results should be identical
		assert.Equal(t, first, second)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark of the side to move", func(t *testing.T) {
		// Given: an empty board with X to move
		board := InitialState()

		// When: playing the center cell
		next, err := ApplyMove(board, Move{Row: 1, Col: 1})

		// Then: the new board holds X in the center
		require.NoError(t, err)
		assert.Equal(t, PlayerX, next[1][1])
		assert.Equal(t, PlayerO, CurrentPlayer(next))
	})

	t.Run("Does not mutate the input board", func(t *testing.T) {
		// Given: an empty board
		board := InitialState()
		before := board

		// When: applying a move
		_, err := ApplyMove(board, Move{Row: 0, Col: 0})

		// Then: the original board is unchanged cell by cell
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Fails with ErrCellOccupied on every occupied cell", func(t *testing.T) {
		// Given: a board with several occupied cells
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerO},
		}

		for row := range board {
			for col := range board[row] {
				if board[row][col] == EmptyCell {
					continue
				}

				// When: trying to play an occupied cell
				_, err := ApplyMove(board, Move{Row: row, Col: col})

				// Then: the move is rejected
				assert.ErrorIs(t, err, apperror.ErrCellOccupied)
			}
		}
	})

	t.Run("Fails with ErrInvalidCell outside the grid", func(t *testing.T) {
		// Given: an empty board
		board := InitialState()

		// When: playing a cell outside the grid
		_, err := ApplyMove(board, Move{Row: 3, Col: 0})

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}

func TestWinner(t *testing.T) {
	t.Run("Detects a row win", func(t *testing.T) {
		// Given: X owns the top row
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When/Then: X is the winner
		assert.Equal(t, PlayerX, Winner(board))
	})

	t.Run("Detects a column win", func(t *testing.T) {
		// Given: O owns the left column
		board := Board{
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, EmptyCell, PlayerX},
		}

		// When/Then: O is the winner
		assert.Equal(t, PlayerO, Winner(board))
	})

	t.Run("Detects the main diagonal", func(t *testing.T) {
		// Given: X owns the main diagonal
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerX},
		}

		// When/Then: X is the winner
		assert.Equal(t, PlayerX, Winner(board))
	})

	t.Run("Detects the anti-diagonal", func(t *testing.T) {
		// Given: O owns the anti-diagonal
		board := Board{
			{PlayerX, PlayerX, PlayerO},
			{PlayerX, PlayerO, EmptyCell},
			{PlayerO, EmptyCell, EmptyCell},
		}

		// When/Then: O is the winner
		assert.Equal(t, PlayerO, Winner(board))
	})

	t.Run("Returns EmptyCell when nobody has won", func(t *testing.T) {
		// Given: a mid-game board with no completed line
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerO},
		}

		// When/Then: there is no winner
		assert.Equal(t, EmptyCell, Winner(board))
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("Won board is terminal", func(t *testing.T) {
		// Given: a board won by X
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When/Then: the game is over
		assert.True(t, IsTerminal(board))
	})

	t.Run("Full drawn board is terminal with no winner", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		}

		// When/Then: terminal, no winner, utility zero
		assert.True(t, IsTerminal(board))
		assert.Equal(t, EmptyCell, Winner(board))
		assert.Equal(t, 0, Utility(board))
	})

	t.Run("Mid-game board is not terminal", func(t *testing.T) {
		// Given: a board with empty cells and no winner
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When/Then: the game continues
		assert.False(t, IsTerminal(board))
	})

	t.Run("Terminal iff winner exists or no moves remain", func(t *testing.T) {
		// Given: a selection of boards in different phases
		boards := []Board{
			InitialState(),
			{
				{PlayerX, PlayerO, EmptyCell},
				{EmptyCell, PlayerX, EmptyCell},
				{EmptyCell, EmptyCell, EmptyCell},
			},
			{
				{PlayerX, PlayerX, PlayerX},
				{PlayerO, PlayerO, EmptyCell},
				{EmptyCell, EmptyCell, EmptyCell},
			},
			{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
		}

		for _, board := range boards {
			// When/Then: the equivalence holds for every board
			expected := Winner(board) != EmptyCell || len(LegalMoves(board)) == 0
			assert.Equal(t, expected, IsTerminal(board))
		}
	})
}

func TestUtility(t *testing.T) {
	t.Run("X win scores plus one", func(t *testing.T) {
		// Given: a board won by X
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// When/Then: utility is +1
		assert.Equal(t, 1, Utility(board))
	})

	t.Run("O win scores minus one", func(t *testing.T) {
		// Given: a board won by O
		board := Board{
			{PlayerO, PlayerO, PlayerO},
			{PlayerX, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerX},
		}

		// When/Then: utility is -1
		assert.Equal(t, -1, Utility(board))
	})
}
