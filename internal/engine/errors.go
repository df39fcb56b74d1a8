package engine

import "errors"

// Rule violations. Every action validates against these before mutating
// anything, so a returned error guarantees the state is untouched.
var (
	// ErrNotYourTurn is returned when a player acts out of turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidCard is returned when the named card is not in the acting
	// player's hand.
	ErrInvalidCard = errors.New("card not in hand")

	// ErrInvalidTarget is returned when the pass target does not exist or is
	// the acting player themself.
	ErrInvalidTarget = errors.New("invalid target player")

	// ErrInvalidRank is returned when a request names an unknown rank or the
	// Joker.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrNoRequestsRemaining is returned when a player requests a card with
	// no requests left this turn.
	ErrNoRequestsRemaining = errors.New("no requests remaining")

	// ErrGameOver is returned for any action after the game has ended.
	ErrGameOver = errors.New("game is already over")

	// ErrNotStarted is returned for play actions before the deal.
	ErrNotStarted = errors.New("game has not started")

	// ErrInsufficientCards is returned when the deck cannot cover the
	// configured hand size for every player.
	ErrInsufficientCards = errors.New("not enough cards in deck to deal")

	// ErrPlayerCount is returned for rosters outside [MinPlayers, MaxPlayers].
	ErrPlayerCount = errors.New("invalid player count")

	// ErrUnknownPlayer is returned when a player index is out of range.
	ErrUnknownPlayer = errors.New("unknown player")
)
