package websocket

import (
	"encoding/json"

	"github.com/tqnguyen2073/tic-tac-toe/internal/entity"
	"github.com/tqnguyen2073/tic-tac-toe/internal/tictactoe"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the client side of a message. Token identifies
// the session; the remaining fields depend on the action.
type RequestPayload struct {
	Token    string          `json:"token,omitempty"`
	GameID   string          `json:"game_id,omitempty"`
	GameType string          `json:"game_type,omitempty"`
	Move     *tictactoe.Move `json:"move,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player  `json:"player,omitempty"`
	Game   *GameResponse   `json:"game,omitempty"`
	Token  string          `json:"token,omitempty"`
	Move   *tictactoe.Move `json:"move,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type GameResponse struct {
	ID     string          `json:"id"`
	Board  tictactoe.Board `json:"board"`
	Turn   string          `json:"turn"`
	Winner string          `json:"winner"`
	Status string          `json:"status"`
}

func NewGameResponse(game *entity.Game) *GameResponse {
	return &GameResponse{
		ID:     game.ID,
		Board:  game.Board,
		Turn:   game.Turn,
		Winner: game.Winner,
		Status: game.Status,
	}
}

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool   // whether this frame is the final one of the message
	opCode  byte   // frame type, text for everything this server sends
	length  uint64 // payload length
	payload []byte // frame payload
}
