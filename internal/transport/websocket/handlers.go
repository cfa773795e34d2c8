package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
)

var (
	ErrMissingToken = errors.New("missing session token")
	ErrMissingMove  = errors.New("missing move")
)

// handleConnect - resolves the session token to a player, registering a
// new player (and issuing a fresh token) when none is presented.
func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := that.parsePayload(msg)
	if err != nil {
		return err
	}

	var playerID string
	if payload.Token != "" {
		playerID, err = that.auth.ValidateToken(payload.Token)
		if err != nil {
			return fmt.Errorf("failed to validate token: %w", err)
		}
	}

	player, err := that.players.GetOrCreate(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	token := payload.Token
	if playerID == "" {
		token, err = that.auth.GenerateToken(player.ID)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		log.Info("registered new player", "playerID", player.ID)
	} else {
		log.Info("player connected", "playerID", player.ID)
	}

	responsePayload := ResponsePayload{
		Player: player,
		Token:  token,
	}

	if err := that.sendMessage(*bufrw, msg.Action, responsePayload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// handleNewGame - creates a game for the player, or returns the game
// the player is already in.
func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	player, payload, err := that.authorizedPlayer(ctx, msg)
	if err != nil {
		return err
	}

	gameType := payload.GameType
	if gameType == "" {
		gameType = entity.PrivateType
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, player, gameType)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: player,
		Game:   NewGameResponse(game),
	}

	if err := that.sendMessage(*bufrw, msg.Action, responsePayload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// handleJoinGame - joins a game by its ID, or the first waiting public
// game when no ID is given.
func (that *Server) handleJoinGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	player, payload, err := that.authorizedPlayer(ctx, msg)
	if err != nil {
		return err
	}

	var game *entity.Game
	if payload.GameID != "" {
		game, err = that.gamePlay.JoinGameByID(ctx, payload.GameID, player.ID)
	} else {
		game, err = that.gamePlay.JoinWaitingPublicGame(ctx, player.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to join game: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: player,
		Game:   NewGameResponse(game),
	}

	if err := that.sendMessage(*bufrw, msg.Action, responsePayload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// handleGameTurn - plays the move in the payload for the player.
func (that *Server) handleGameTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	player, payload, err := that.authorizedPlayer(ctx, msg)
	if err != nil {
		return err
	}

	if payload.Move == nil {
		return ErrMissingMove
	}

	game, err := that.gamePlay.MakeTurn(ctx, player.ID, *payload.Move)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: player,
		Game:   NewGameResponse(game),
	}

	if err := that.sendMessage(*bufrw, msg.Action, responsePayload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// handleGameHint - returns the engine's optimal move for the side to
// move in the player's game. On a finished game the move is omitted.
func (that *Server) handleGameHint(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	player, _, err := that.authorizedPlayer(ctx, msg)
	if err != nil {
		return err
	}

	move, ok, err := that.gamePlay.Hint(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to compute hint: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: player,
	}
	if ok {
		responsePayload.Move = &move
	}

	if err := that.sendMessage(*bufrw, msg.Action, responsePayload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) parsePayload(msg *Message) (*RequestPayload, error) {
	payload := &RequestPayload{}
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// authorizedPlayer - validates the session token in the payload and
// loads the player it belongs to.
func (that *Server) authorizedPlayer(ctx context.Context, msg *Message) (*entity.Player, *RequestPayload, error) {
	payload, err := that.parsePayload(msg)
	if err != nil {
		return nil, nil, err
	}

	if payload.Token == "" {
		return nil, nil, ErrMissingToken
	}

	playerID, err := that.auth.ValidateToken(payload.Token)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to validate token: %w", err)
	}

	player, err := that.players.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, payload, nil
}
