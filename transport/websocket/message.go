package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
	"github.com/rocketscienceinc/gogame-backend/internal/usecase"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the arguments of every action. PlayerID may be omitted
// after a successful connect on the same socket.
type RequestPayload struct {
	PlayerID string `json:"player_id,omitempty"`
	X        *int   `json:"x,omitempty"`
	Y        *int   `json:"y,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

type ResponsePayload struct {
	Player      *usecase.PlayerStats      `json:"player,omitempty"`
	Game        *usecase.GameState        `json:"game,omitempty"`
	Turn        *usecase.MoveOutcome      `json:"turn,omitempty"`
	Leaderboard []entity.LeaderboardEntry `json:"leaderboard,omitempty"`
	Error       string                    `json:"error,omitempty"`
}
