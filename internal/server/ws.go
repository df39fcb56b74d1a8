// internal/server/ws.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AquaKing123/quartets-server/internal/engine"
	"github.com/AquaKing123/quartets-server/internal/game"
)

// Client-to-server message vocabulary.
const (
	MsgCreateGame  = "create_game"
	MsgJoinGame    = "join_game"
	MsgStartGame   = "start_game"
	MsgPassCard    = "pass_card"
	MsgRequestCard = "request_card"
)

// ClientMessage is the envelope for every inbound message. Fields beyond
// Type are populated per message type.
type ClientMessage struct {
	Type           string `json:"type"`
	PlayerName     string `json:"playerName,omitempty"`
	RoomCode       string `json:"roomCode,omitempty"`
	CardID         string `json:"cardId,omitempty"`
	TargetPlayerID string `json:"targetPlayerId,omitempty"`
	Rank           string `json:"rank,omitempty"`
}

const writeTimeout = 5 * time.Second

// Server owns the websocket endpoint and the room registry behind it.
type Server struct {
	Store *Store

	// Rules is stamped onto every room this server creates.
	Rules engine.Rules

	logger *logrus.Entry
}

func NewServer() *Server {
	return &Server{
		Store:  NewStore(),
		Rules:  engine.DefaultRules(),
		logger: logrus.WithField("component", "server"),
	}
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// HandleWS upgrades the connection and runs its read loop. A connection
// speaks for at most one player in one room; the first create_game or
// join_game message binds it, and closing the connection counts as that
// player leaving.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.logger.WithError(err).Warn("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closed")

	ctx := r.Context()
	var (
		session  *game.Game
		playerID uuid.UUID
	)

	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			break
		}
		session, playerID = s.dispatch(ctx, conn, session, playerID, msg)
	}

	if session != nil {
		if empty := session.HandleDisconnect(playerID); empty {
			s.Store.Remove(session.RoomCode)
			s.logger.WithField("room", session.RoomCode).Info("room closed")
		}
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

// dispatch routes one message, returning the (possibly newly bound)
// session. Failures are reported to the sender as error events and never
// tear the connection down.
func (s *Server) dispatch(ctx context.Context, conn *websocket.Conn, session *game.Game, playerID uuid.UUID, msg ClientMessage) (*game.Game, uuid.UUID) {
	var err error
	switch msg.Type {
	case MsgCreateGame, MsgJoinGame:
		if session != nil {
			err = fmt.Errorf("connection already in room %s", session.RoomCode)
			break
		}
		session, playerID, err = s.seatPlayer(conn, msg)
	case MsgStartGame:
		if session == nil {
			err = game.ErrRoomNotFound
			break
		}
		err = session.Start(playerID)
	case MsgPassCard:
		if session == nil {
			err = game.ErrRoomNotFound
			break
		}
		err = s.passCard(session, playerID, msg)
	case MsgRequestCard:
		if session == nil {
			err = game.ErrRoomNotFound
			break
		}
		err = session.HandleRequestCard(playerID, msg.Rank)
	default:
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}
	if err != nil {
		s.sendError(ctx, conn, err)
	}
	return session, playerID
}

// seatPlayer handles both create_game and join_game: the only difference is
// whether the room must be allocated first.
func (s *Server) seatPlayer(conn *websocket.Conn, msg ClientMessage) (*game.Game, uuid.UUID, error) {
	var g *game.Game
	if msg.Type == MsgCreateGame {
		created, err := s.Store.CreateRoom(func(g *game.Game) {
			g.Rules = s.Rules
			s.bind(g)
		})
		if err != nil {
			return nil, uuid.Nil, err
		}
		g = created
	} else {
		found, ok := s.Store.Get(strings.ToUpper(strings.TrimSpace(msg.RoomCode)))
		if !ok {
			return nil, uuid.Nil, game.ErrRoomNotFound
		}
		g = found
	}

	name := strings.TrimSpace(msg.PlayerName)
	if name == "" {
		name = "Player"
	}
	p, err := g.AddPlayer(name, conn)
	if err != nil {
		if msg.Type == MsgCreateGame {
			s.Store.Remove(g.RoomCode)
		}
		return nil, uuid.Nil, err
	}
	return g, p.ID, nil
}

func (s *Server) passCard(g *game.Game, playerID uuid.UUID, msg ClientMessage) error {
	cardID, err := uuid.Parse(msg.CardID)
	if err != nil {
		return engine.ErrInvalidCard
	}
	targetID, err := uuid.Parse(msg.TargetPlayerID)
	if err != nil {
		return engine.ErrInvalidTarget
	}
	return g.HandlePassCard(playerID, cardID, targetID)
}

// bind wires a session's outgoing events to the roster's connections. The
// callbacks run while the session lock is held, so iterating the roster is
// safe.
func (s *Server) bind(g *game.Game) {
	g.BroadcastFn = func(ev game.GameEvent) {
		for _, p := range g.Players {
			s.writeEvent(p.Conn, ev)
		}
	}
	g.BroadcastToPlayerFn = func(playerID uuid.UUID, ev game.GameEvent) {
		for _, p := range g.Players {
			if p.ID == playerID {
				s.writeEvent(p.Conn, ev)
				return
			}
		}
	}
}

func (s *Server) writeEvent(conn *websocket.Conn, ev game.GameEvent) {
	if conn == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, ev); err != nil {
		s.logger.WithError(err).Debug("event write failed")
	}
}

func (s *Server) sendError(ctx context.Context, conn *websocket.Conn, cause error) {
	ev := game.GameEvent{
		Type:    game.EventError,
		Code:    game.ErrorCode(cause),
		Message: cause.Error(),
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(wctx, conn, ev); err != nil {
		s.logger.WithError(err).Debug("error write failed")
	}
}
