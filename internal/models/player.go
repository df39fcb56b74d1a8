// internal/models/player.go
package models

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Player is a seat in a game room. CardCount mirrors the authoritative hand
// size so opponents can be rendered without revealing cards.
type Player struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsHost        bool      `json:"isHost"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
	CardCount     int       `json:"cardCount"`

	Connected bool            `json:"-"`
	Conn      *websocket.Conn `json:"-"`
}
