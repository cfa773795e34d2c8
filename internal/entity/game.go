package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tqnguyen2073/tic-tac-toe/internal/apperror"
	"github.com/tqnguyen2073/tic-tac-toe/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = tictactoe.PlayerX
	PlayerO   = tictactoe.PlayerO
	PlayerTie = tictactoe.PlayerTie

	EmptyCell = tictactoe.EmptyCell
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string          `json:"id"`
	Board   tictactoe.Board `json:"board"`
	Winner  string          `json:"winner"`
	Status  string          `json:"status"`
	Turn    string          `json:"player_turn"`
	Players []*Player       `json:"players,omitempty"`
	Type    string          `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  tictactoe.InitialState(),
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// MakeTurn - plays move for the player holding playerMark and refreshes
// the game state. The board transition itself goes through the rules
// engine, which rejects occupied and out-of-range cells.
func (that *Game) MakeTurn(playerMark string, move tictactoe.Move) error {
	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.ApplyMove(that.Board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

// UpdateGameState - derives winner, status and turn from the board.
func (that *Game) UpdateGameState() {
	switch winner := tictactoe.Winner(that.Board); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	default:
		// tie
		if tictactoe.IsTerminal(that.Board) {
			that.Winner = PlayerTie
			that.Status = StatusFinished
			that.Turn = ""
			return
		}
		// game continue
		that.Status = StatusOngoing
		that.Turn = tictactoe.CurrentPlayer(that.Board)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
