package tictactoe

import (
	"fmt"

	"github.com/tqnguyen2073/tic-tac-toe/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	Size = 3
)

// Board is the 3x3 grid of cell marks, addressed as [row][col].
// It is a plain array value: assigning or passing a Board copies it,
// so a move always produces a fresh state and search branches never
// share cells.
type Board [Size][Size]string

// Move is the (row, col) coordinate of a cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InitialState - returns the empty starting board.
func InitialState() Board {
	return Board{}
}

// CurrentPlayer - returns the mark of the player to move.
// X moves first, so it is X's turn whenever X has not played more often than O.
func CurrentPlayer(board Board) string {
	var xCount, oCount int

	for row := range board {
		for col := range board[row] {
			switch board[row][col] {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			}
		}
	}

	if xCount <= oCount {
		return PlayerX
	}

	return PlayerO
}

// LegalMoves - returns every empty cell in row-major order.
// The order is the canonical one: callers that pick "the first" move
// among equals get a reproducible answer. A terminal board yields nil.
func LegalMoves(board Board) []Move {
	if Winner(board) != EmptyCell {
		return nil
	}

	var moves []Move
	for row := range board {
		for col := range board[row] {
			if board[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// ApplyMove - returns the board that results from playing move on board.
// The mark placed is that of the player whose turn it is on the input
// board. The input board is never modified.
func ApplyMove(board Board, move Move) (Board, error) {
	if move.Row < 0 || move.Row >= Size || move.Col < 0 || move.Col >= Size {
		return board, fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if board[move.Row][move.Col] != EmptyCell {
		return board, fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	next := board
	next[move.Row][move.Col] = CurrentPlayer(board)

	return next, nil
}

// Winner - returns the mark that owns a completed line, or EmptyCell
// if no line is complete. Lines are checked in a fixed order: rows
// top to bottom, columns left to right, main diagonal, anti-diagonal.
func Winner(board Board) string {
	for row := range board {
		if board[row][0] != EmptyCell && board[row][0] == board[row][1] && board[row][1] == board[row][2] {
			return board[row][0]
		}
	}

	for col := 0; col < Size; col++ {
		if board[0][col] != EmptyCell && board[0][col] == board[1][col] && board[1][col] == board[2][col] {
			return board[0][col]
		}
	}

	if board[0][0] != EmptyCell && board[0][0] == board[1][1] && board[1][1] == board[2][2] {
		return board[0][0]
	}

	if board[0][2] != EmptyCell && board[0][2] == board[1][1] && board[1][1] == board[2][0] {
		return board[0][2]
	}

	return EmptyCell
}

// IsTerminal - reports whether the game is over: someone won or the
// board is full.
func IsTerminal(board Board) bool {
	if Winner(board) != EmptyCell {
		return true
	}

	for row := range board {
		for col := range board[row] {
			if board[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Utility - scores a terminal board from X's perspective: +1 if X won,
// -1 if O won, 0 otherwise. Only meaningful on terminal boards.
func Utility(board Board) int {
	switch Winner(board) {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}
