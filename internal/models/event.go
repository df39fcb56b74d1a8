// internal/models/event.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// GameEvent is one append-only entry in a session's human-readable log
// ("Alice passed a card to Bob"). Entries are never mutated or removed;
// ordering is append order.
type GameEvent struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Winner identifies the winning player in a game_over payload.
type Winner struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

// Score is one row of the final scoreboard; Score counts matched sets.
type Score struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
}
