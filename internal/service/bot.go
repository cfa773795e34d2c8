package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
	"github.com/tqnguyen2073/tic-tac-toe/internal/tictactoe"
)

const (
	StrategyPerfect = "perfect"
	StrategyRandom  = "random"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownStrategy  = errors.New("unknown bot strategy")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
	SuggestMove(board tictactoe.Board) (tictactoe.Move, bool)
}

type botService struct {
	strategy string
}

func NewBotService(strategy string) (BotService, error) {
	switch strategy {
	case StrategyPerfect, StrategyRandom:
		return &botService{strategy: strategy}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// MakeTurn - picks a cell for the bot player and plays it. With the
// perfect strategy the move comes from exhaustive minimax search, so
// the bot never loses; the random strategy is the easy mode.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	move, ok := that.chooseMove(game.Board)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(botPlayer.Mark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// SuggestMove - returns the optimal move for the side to move on board.
// Hints are always computed with minimax, whatever strategy the bot
// itself plays with. The second return is false when the game is over.
func (that *botService) SuggestMove(board tictactoe.Board) (tictactoe.Move, bool) {
	return tictactoe.BestMove(board)
}

func (that *botService) chooseMove(board tictactoe.Board) (tictactoe.Move, bool) {
	if that.strategy == StrategyRandom {
		moves := tictactoe.LegalMoves(board)
		if len(moves) == 0 {
			return tictactoe.Move{}, false
		}
		return moves[rand.Intn(len(moves))], true //nolint: gosec // it's ok
	}

	return tictactoe.BestMove(board)
}
