// internal/game/errors.go
package game

import (
	"errors"

	"github.com/AquaKing123/quartets-server/internal/engine"
)

// Session-level failures. Rule violations inside a started game come from
// the engine package.
var (
	// ErrRoomNotFound is returned when no open session matches a room code.
	ErrRoomNotFound = errors.New("room not found")

	// ErrGameAlreadyStarted is returned when joining a room past the lobby
	// phase.
	ErrGameAlreadyStarted = errors.New("game already started")

	// ErrNotHost is returned when a non-host tries to start the game.
	ErrNotHost = errors.New("only the host can start the game")

	// ErrInsufficientPlayers is returned when starting with fewer than two
	// players.
	ErrInsufficientPlayers = errors.New("at least two players required")

	// ErrRoomFull is returned when joining a room at the engine's player
	// limit.
	ErrRoomFull = errors.New("room is full")

	// ErrUnknownPlayer is returned for actions from ids not in the roster.
	ErrUnknownPlayer = errors.New("player not in this game")
)

// ErrorCode maps a session or engine error to the wire error code carried in
// the error event. Unknown errors map to TransportError, the catch-all for
// failures outside the rule taxonomy.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "RoomNotFound"
	case errors.Is(err, ErrGameAlreadyStarted), errors.Is(err, engine.ErrNotStarted), errors.Is(err, engine.ErrGameOver):
		return "GameAlreadyStarted"
	case errors.Is(err, ErrNotHost):
		return "NotHost"
	case errors.Is(err, ErrInsufficientPlayers), errors.Is(err, ErrRoomFull), errors.Is(err, engine.ErrPlayerCount):
		return "InsufficientPlayers"
	case errors.Is(err, engine.ErrInsufficientCards):
		return "InsufficientCards"
	case errors.Is(err, engine.ErrInvalidCard), errors.Is(err, engine.ErrInvalidRank):
		return "InvalidCard"
	case errors.Is(err, engine.ErrInvalidTarget), errors.Is(err, ErrUnknownPlayer), errors.Is(err, engine.ErrUnknownPlayer):
		return "InvalidTarget"
	case errors.Is(err, engine.ErrNotYourTurn):
		return "NotYourTurn"
	case errors.Is(err, engine.ErrNoRequestsRemaining):
		return "NoRequestsRemaining"
	default:
		return "TransportError"
	}
}
