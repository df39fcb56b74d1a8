// internal/game/game.go
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AquaKing123/quartets-server/internal/engine"
	"github.com/AquaKing123/quartets-server/internal/models"
)

// Phase tracks a session's lifecycle. The landing screen on the client has
// no server-side counterpart: a session exists from the moment its room is
// created, already in the lobby.
type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "gameOver"
)

// Game is the per-room session aggregate: the authoritative engine state,
// the roster, the event feed and the broadcast plumbing. Every mutation is
// serialized under Mu, so two actions on the same session never interleave;
// independent sessions run in parallel.
type Game struct {
	ID       uuid.UUID
	RoomCode string
	Phase    Phase
	Rules    engine.Rules

	// Seed feeds the engine PRNG on Start. Zero means "derive from the
	// clock"; tests pin it for reproducible deals.
	Seed uint64

	// Players is kept in engine roster order at all times.
	Players []*models.Player

	Engine         engine.State
	PlayerToEngine map[uuid.UUID]uint8
	EngineToPlayer []uuid.UUID

	// wireIDs maps engine card identity to the UUID clients see; cardByID
	// is the reverse lookup for incoming actions.
	wireIDs  [engine.DeckSize]uuid.UUID
	cardByID map[uuid.UUID]engine.Card

	// Log is the append-only human-readable feed shown in the client's
	// event ticker.
	Log []models.GameEvent

	Mu sync.Mutex

	// Communication callbacks, owned by the transport layer.
	BroadcastFn         func(ev GameEvent)
	BroadcastToPlayerFn func(playerID uuid.UUID, ev GameEvent)

	logger *logrus.Entry
}

// NewGame creates an empty lobby-phase session for the given room code.
func NewGame(roomCode string) *Game {
	return &Game{
		ID:             uuid.New(),
		RoomCode:       roomCode,
		Phase:          PhaseLobby,
		Rules:          engine.DefaultRules(),
		PlayerToEngine: make(map[uuid.UUID]uint8),
		cardByID:       make(map[uuid.UUID]engine.Card),
		logger:         logrus.WithField("room", roomCode),
	}
}

// AddPlayer seats a new player in the lobby. The first seat becomes host.
// The new player privately receives game_created or game_joined carrying
// the room code and roster; everyone already seated gets player_joined.
// The connection is attached before any event fires so the ack reaches the
// newcomer.
func (g *Game) AddPlayer(name string, conn *websocket.Conn) (*models.Player, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Phase != PhaseLobby {
		return nil, ErrGameAlreadyStarted
	}
	if len(g.Players) >= engine.MaxPlayers {
		return nil, ErrRoomFull
	}

	p := &models.Player{
		ID:        uuid.New(),
		Name:      name,
		IsHost:    len(g.Players) == 0,
		Connected: true,
		Conn:      conn,
	}
	g.Players = append(g.Players, p)

	g.appendLog(fmt.Sprintf("%s joined the game", p.Name))
	g.logger.WithFields(logrus.Fields{
		"player": p.ID,
		"name":   p.Name,
		"host":   p.IsHost,
	}).Info("player joined")

	ack := GameEvent{
		Type:       EventGameJoined,
		RoomCode:   g.RoomCode,
		PlayerID:   p.ID.String(),
		PlayerName: p.Name,
		Players:    g.rosterView(),
		Log:        g.logView(),
	}
	if p.IsHost {
		ack.Type = EventGameCreated
	}
	g.fireEventToPlayer(p.ID, ack)

	joined := GameEvent{
		Type:       EventPlayerJoined,
		PlayerID:   p.ID.String(),
		PlayerName: p.Name,
		IsHost:     p.IsHost,
		Players:    g.rosterView(),
	}
	for _, other := range g.Players {
		if other.ID != p.ID {
			g.fireEventToPlayer(other.ID, joined)
		}
	}
	return p, nil
}

// Start seals the lobby, deals the opening hands and announces the first
// turn. Only the host may start, and the engine's roster limits apply.
func (g *Game) Start(requesterID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Phase != PhaseLobby {
		return ErrGameAlreadyStarted
	}
	req := g.playerByID(requesterID)
	if req == nil {
		return ErrUnknownPlayer
	}
	if !req.IsHost {
		return ErrNotHost
	}
	if len(g.Players) < engine.MinPlayers {
		return ErrInsufficientPlayers
	}

	seed := g.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	eng, err := engine.NewGame(seed, len(g.Players), g.Rules)
	if err != nil {
		return err
	}
	completed := eng.Deal()
	g.Engine = eng

	g.EngineToPlayer = make([]uuid.UUID, len(g.Players))
	for i, p := range g.Players {
		g.PlayerToEngine[p.ID] = uint8(i)
		g.EngineToPlayer[i] = p.ID
	}
	for i := range g.wireIDs {
		id := uuid.New()
		g.wireIDs[i] = id
		g.cardByID[id] = engine.Card(i)
	}

	g.Phase = PhasePlaying
	g.syncRoster()
	g.appendLog("Game started")
	g.logger.WithField("players", len(g.Players)).Info("game started")

	for i, p := range g.Players {
		g.fireEventToPlayer(p.ID, GameEvent{
			Type:        EventGameStarted,
			Players:     g.rosterView(),
			InitialHand: g.handView(uint8(i)),
		})
	}
	for _, cs := range completed {
		g.announceSet(cs.Player, cs.Cards)
	}

	if g.Engine.IsTerminal() {
		g.endGame()
		return nil
	}
	g.announceTurn()
	return nil
}

// HandlePassCard applies a hot-potato pass from player to target. The
// passed card's face is revealed only to the recipient; spectating players
// see the transfer without the card.
func (g *Game) HandlePassCard(playerID, cardID, targetID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.checkPlaying(); err != nil {
		return err
	}
	idx, ok := g.PlayerToEngine[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	tIdx, ok := g.PlayerToEngine[targetID]
	if !ok {
		return engine.ErrInvalidTarget
	}
	card, ok := g.cardByID[cardID]
	if !ok {
		return engine.ErrInvalidCard
	}

	res, err := g.Engine.PassCard(idx, card, tIdx)
	if err != nil {
		return err
	}
	g.syncRoster()
	g.appendLog(fmt.Sprintf("%s passed a card to %s", g.playerName(res.From), g.playerName(res.To)))

	wire := g.wireCard(res.Card)
	public := GameEvent{
		Type:         EventCardPassed,
		FromPlayerID: g.EngineToPlayer[res.From].String(),
		ToPlayerID:   g.EngineToPlayer[res.To].String(),
		Players:      g.rosterView(),
	}
	for _, p := range g.Players {
		ev := public
		if p.ID == g.EngineToPlayer[res.To] {
			ev.Card = &wire
		}
		g.fireEventToPlayer(p.ID, ev)
	}

	for _, cs := range res.Completed {
		g.announceSet(cs.Player, cs.Cards)
	}
	if g.Engine.IsTerminal() {
		g.endGame()
		return nil
	}
	g.announceTurn()
	return nil
}

// HandleRequestCard applies a rank request. The outcome is public; the
// surrendered card's identity is revealed only to the requester.
func (g *Game) HandleRequestCard(playerID uuid.UUID, rank string) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.checkPlaying(); err != nil {
		return err
	}
	idx, ok := g.PlayerToEngine[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	r, ok := engine.ParseRank(rank)
	if !ok {
		return engine.ErrInvalidRank
	}

	res, err := g.Engine.RequestCard(idx, r)
	if err != nil {
		return err
	}
	g.syncRoster()

	name := g.playerName(res.Requester)
	if res.Success {
		g.appendLog(fmt.Sprintf("%s asked for a %s and got one from %s",
			name, engine.RankName(res.Rank), g.playerName(res.Donor)))
	} else {
		g.appendLog(fmt.Sprintf("%s asked for a %s but no one had it",
			name, engine.RankName(res.Rank)))
	}

	public := GameEvent{
		Type:               EventCardRequested,
		RequestingPlayerID: g.EngineToPlayer[res.Requester].String(),
		Rank:               engine.RankName(res.Rank),
		Success:            boolPtr(res.Success),
		Players:            g.rosterView(),
	}
	for _, p := range g.Players {
		ev := public
		if res.Success && p.ID == g.EngineToPlayer[res.Requester] {
			wire := g.wireCard(res.Card)
			ev.Card = &wire
		}
		g.fireEventToPlayer(p.ID, ev)
	}

	for _, cs := range res.Completed {
		g.announceSet(cs.Player, cs.Cards)
	}
	if g.Engine.IsTerminal() {
		g.endGame()
		return nil
	}
	if res.TurnEnded {
		g.announceTurn()
	}
	return nil
}

// HandleDisconnect removes a player from the session. In the lobby the seat
// is simply vacated (promoting a new host if needed); mid-game the engine
// redistributes the hand and the game continues without them. Returns true
// when the room is empty and can be reaped.
func (g *Game) HandleDisconnect(playerID uuid.UUID) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	p := g.playerByID(playerID)
	if p == nil {
		return len(g.Players) == 0
	}
	g.logger.WithField("player", playerID).Info("player left")

	if g.Phase != PhasePlaying {
		g.dropSeat(playerID)
		if len(g.Players) > 0 && g.Phase == PhaseLobby && !g.hasHost() {
			g.Players[0].IsHost = true
			g.appendLog(fmt.Sprintf("%s is now the host", g.Players[0].Name))
		}
		g.appendLog(fmt.Sprintf("%s left the game", p.Name))
		g.fireEvent(GameEvent{
			Type:       EventPlayerLeft,
			PlayerID:   playerID.String(),
			PlayerName: p.Name,
			Players:    g.rosterView(),
		})
		return len(g.Players) == 0
	}

	idx := g.PlayerToEngine[playerID]
	res, err := g.Engine.RemovePlayer(idx)
	if err != nil {
		return false
	}

	g.dropSeat(playerID)
	delete(g.PlayerToEngine, playerID)
	g.EngineToPlayer = append(g.EngineToPlayer[:idx], g.EngineToPlayer[idx+1:]...)
	for i, id := range g.EngineToPlayer {
		g.PlayerToEngine[id] = uint8(i)
	}
	g.syncRoster()

	g.appendLog(fmt.Sprintf("%s left the game", p.Name))
	g.fireEvent(GameEvent{
		Type:       EventPlayerLeft,
		PlayerID:   playerID.String(),
		PlayerName: p.Name,
		Players:    g.rosterView(),
	})

	for _, cs := range res.Completed {
		g.announceSet(cs.Player, cs.Cards)
	}
	if res.Ended || g.Engine.IsTerminal() {
		g.endGame()
		return len(g.Players) == 0
	}
	if res.TurnMoved {
		g.announceTurn()
	}
	return len(g.Players) == 0
}

// endGame flips the session to its terminal phase and announces winner and
// final standings. Caller holds Mu.
func (g *Game) endGame() {
	if g.Phase == PhaseGameOver {
		return
	}
	g.Phase = PhaseGameOver
	g.syncRoster()

	var winner *models.Winner
	if w := g.Engine.Winner; w >= 0 && int(w) < len(g.EngineToPlayer) {
		id := g.EngineToPlayer[w]
		winner = &models.Winner{PlayerID: id, PlayerName: g.playerName(uint8(w))}
		g.appendLog(fmt.Sprintf("Game over! %s wins!", winner.PlayerName))
	} else {
		g.appendLog("Game over!")
	}

	scores := make([]models.Score, 0, len(g.EngineToPlayer))
	for i, n := range g.Engine.Scores() {
		scores = append(scores, models.Score{
			PlayerID:   g.EngineToPlayer[i],
			PlayerName: g.playerName(uint8(i)),
			Score:      n,
		})
	}

	g.logger.Info("game over")
	g.fireEvent(GameEvent{
		Type:        EventGameOver,
		Winner:      winner,
		FinalScores: scores,
	})
}

// announceSet publishes a completed set and its log line. Caller holds Mu.
func (g *Game) announceSet(player uint8, set []engine.Card) {
	if len(set) == 0 {
		return
	}
	g.appendLog(fmt.Sprintf("%s completed a set of %ss!",
		g.playerName(player), engine.RankName(set[0].Rank())))
	g.fireEvent(GameEvent{
		Type:     EventSetCompleted,
		PlayerID: g.EngineToPlayer[player].String(),
		Set:      g.wireCards(set),
		Players:  g.rosterView(),
	})
}

// announceTurn publishes the current turn holder. Caller holds Mu.
func (g *Game) announceTurn() {
	cur := g.Engine.Current
	g.appendLog(fmt.Sprintf("It's %s's turn", g.playerName(cur)))
	g.fireEvent(GameEvent{
		Type:            EventTurnChanged,
		CurrentPlayerID: g.EngineToPlayer[cur].String(),
		Players:         g.rosterView(),
	})
}

func (g *Game) checkPlaying() error {
	switch g.Phase {
	case PhasePlaying:
		return nil
	case PhaseGameOver:
		return engine.ErrGameOver
	default:
		return engine.ErrNotStarted
	}
}

func (g *Game) playerByID(id uuid.UUID) *models.Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) playerName(idx uint8) string {
	if int(idx) < len(g.Players) {
		return g.Players[idx].Name
	}
	return "unknown"
}

func (g *Game) hasHost() bool {
	for _, p := range g.Players {
		if p.IsHost {
			return true
		}
	}
	return false
}

func (g *Game) dropSeat(id uuid.UUID) {
	for i, p := range g.Players {
		if p.ID == id {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return
		}
	}
}

// syncRoster copies live engine counters onto the wire-facing roster.
// Caller holds Mu.
func (g *Game) syncRoster() {
	playing := g.Phase == PhasePlaying
	for i, p := range g.Players {
		if playing {
			p.CardCount = len(g.Engine.Players[i].Hand)
			p.IsCurrentTurn = g.Engine.Current == uint8(i)
		} else {
			p.IsCurrentTurn = false
		}
	}
}

// rosterView snapshots the roster for an outgoing event. Caller holds Mu.
func (g *Game) rosterView() []models.Player {
	out := make([]models.Player, len(g.Players))
	for i, p := range g.Players {
		out[i] = *p
	}
	return out
}

func (g *Game) logView() []models.GameEvent {
	out := make([]models.GameEvent, len(g.Log))
	copy(out, g.Log)
	return out
}

func (g *Game) handView(idx uint8) []models.Card {
	return g.wireCards(g.Engine.Players[idx].Hand)
}

func (g *Game) wireCard(c engine.Card) models.Card {
	return models.Card{
		ID:   g.wireIDs[c],
		Rank: engine.RankName(c.Rank()),
		Suit: engine.SuitName(c.Suit()),
	}
}

func (g *Game) wireCards(cards []engine.Card) []models.Card {
	out := make([]models.Card, len(cards))
	for i, c := range cards {
		out[i] = g.wireCard(c)
	}
	return out
}

func (g *Game) appendLog(msg string) {
	g.Log = append(g.Log, models.GameEvent{
		ID:        uuid.New(),
		Message:   msg,
		Timestamp: time.Now(),
	})
}

func (g *Game) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

func (g *Game) fireEventToPlayer(playerID uuid.UUID, ev GameEvent) {
	if g.BroadcastToPlayerFn != nil {
		g.BroadcastToPlayerFn(playerID, ev)
	}
}
