// internal/models/card.go
package models

import "github.com/google/uuid"

// Card is the wire-facing view of a card. ID is stable for the whole
// session; rank and suit use the client vocabulary ("A".."K"/"Joker",
// "hearts"/"diamonds"/"clubs"/"spades"/"none").
type Card struct {
	ID   uuid.UUID `json:"id"`
	Rank string    `json:"rank"`
	Suit string    `json:"suit"`
}
