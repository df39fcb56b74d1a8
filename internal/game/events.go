// internal/game/events.go
package game

import (
	"github.com/AquaKing123/quartets-server/internal/models"
)

// GameEventType represents the type of a game-related event sent to clients.
type GameEventType string

// Server-to-client event vocabulary.
const (
	EventGameCreated   GameEventType = "game_created"   // Private: room opened, creator's id and code.
	EventGameJoined    GameEventType = "game_joined"    // Private: join accepted, current roster included.
	EventPlayerJoined  GameEventType = "player_joined"  // Public: roster grew.
	EventPlayerLeft    GameEventType = "player_left"    // Public: roster shrank.
	EventGameStarted   GameEventType = "game_started"   // Private per player: roster plus that player's hand.
	EventTurnChanged   GameEventType = "turn_changed"   // Public: turn advanced.
	EventCardPassed    GameEventType = "card_passed"    // Public: card details only for the recipient.
	EventCardRequested GameEventType = "card_requested" // Public: card details only for the requester.
	EventSetCompleted  GameEventType = "set_completed"  // Public: matched set formed.
	EventGameOver      GameEventType = "game_over"      // Public: terminal, winner and scores.
	EventError         GameEventType = "error"          // Private: rule violation or bad request.
)

// GameEvent is the standard structure for events pushed to clients. Fields
// are the union of every payload in the vocabulary; unset fields are omitted
// from the JSON encoding.
type GameEvent struct {
	Type GameEventType `json:"type"`

	RoomCode string `json:"roomCode,omitempty"`

	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	IsHost     bool   `json:"isHost,omitempty"`

	CurrentPlayerID string `json:"currentPlayerId,omitempty"`

	FromPlayerID string       `json:"fromPlayerId,omitempty"`
	ToPlayerID   string       `json:"toPlayerId,omitempty"`
	Card         *models.Card `json:"card,omitempty"`

	RequestingPlayerID string `json:"requestingPlayerId,omitempty"`
	Rank               string `json:"rank,omitempty"`
	Success            *bool  `json:"success,omitempty"`

	Set []models.Card `json:"set,omitempty"`

	Players     []models.Player `json:"players,omitempty"`
	InitialHand []models.Card   `json:"initialHand,omitempty"`

	Winner      *models.Winner `json:"winner,omitempty"`
	FinalScores []models.Score `json:"finalScores,omitempty"`

	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`

	// Log carries the session's recent feed entries where the client
	// renders an event ticker.
	Log []models.GameEvent `json:"log,omitempty"`
}

func boolPtr(b bool) *bool { return &b }
