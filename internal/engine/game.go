package engine

// PlayerState holds one player's hand and completed sets.
type PlayerState struct {
	Hand []Card   // insertion order: deal order, then received cards appended
	Sets [][]Card // each entry is exactly SetSize cards of one rank
}

// State holds the complete, self-contained state of one Quartets game.
// It is safe to copy by value for snapshots; the contained slices are only
// mutated through the action methods.
type State struct {
	Rules   Rules
	Players []PlayerState

	// Deck is the undealt remainder after the deal, top of deck last.
	Deck []Card

	Current           uint8 // roster index of the player to act
	RequestsRemaining uint8 // requests left for the current player
	TurnNumber        uint16

	Started bool
	Over    bool
	Winner  int8 // roster index of the winner; -1 until the game ends

	rng uint64
}

// ---------------------------------------------------------------------------
// xorshift64 RNG — inline, no interface
// ---------------------------------------------------------------------------

func (g *State) nextRand() uint64 {
	x := g.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.rng = x
	return x
}

// randN returns a random number in [0, n).
func (g *State) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// BuildDeck returns the ordered 53-card deck: 13 ranks x 4 suits plus the
// Joker, card identity equal to deck position.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for i := 0; i < DeckSize; i++ {
		deck = append(deck, Card(i))
	}
	return deck
}

// NewGame initializes a game for numPlayers with the given seed and rules.
// The deck is built but not yet shuffled or dealt.
func NewGame(seed uint64, numPlayers int, rules Rules) (State, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return State{}, ErrPlayerCount
	}
	if rules.HandSize == 0 {
		rules.HandSize = DefaultRules().HandSize
	}
	if rules.RequestsPerTurn == 0 {
		rules.RequestsPerTurn = DefaultRules().RequestsPerTurn
	}
	if int(rules.HandSize)*numPlayers > DeckSize {
		return State{}, ErrInsufficientCards
	}

	g := State{
		Rules:   rules,
		Players: make([]PlayerState, numPlayers),
		Deck:    BuildDeck(),
		Winner:  -1,
		rng:     seed,
	}
	if g.rng == 0 {
		g.rng = 1 // xorshift can't start at 0
	}
	return g, nil
}

// CompletedSet records a matched set credited to a player, in the order the
// sets were detected.
type CompletedSet struct {
	Player uint8
	Cards  []Card
}

// Deal shuffles the deck and deals Rules.HandSize cards to each player, one
// card at a time cycling the roster in order. Hands dealt with four of a
// rank already together are swept immediately; those sets are returned so
// the caller can announce them. The first roster player holds the first
// turn.
func (g *State) Deal() []CompletedSet {
	// Fisher-Yates shuffle.
	for i := len(g.Deck) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}

	// Deal one card per player per round, drawing from the top (end).
	for c := uint8(0); c < g.Rules.HandSize; c++ {
		for p := range g.Players {
			top := len(g.Deck) - 1
			g.Players[p].Hand = append(g.Players[p].Hand, g.Deck[top])
			g.Deck = g.Deck[:top]
		}
	}

	g.Started = true
	g.Current = 0
	g.RequestsRemaining = g.Rules.RequestsPerTurn
	g.TurnNumber = 1

	// Initial sweep: cards can already form sets on deal.
	var completed []CompletedSet
	for p := range g.Players {
		for _, set := range g.sweep(uint8(p)) {
			completed = append(completed, CompletedSet{Player: uint8(p), Cards: set})
		}
	}
	g.evaluateGameOver()
	return completed
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// NumPlayers returns the current roster size.
func (g *State) NumPlayers() int { return len(g.Players) }

// IsTerminal returns true when the game is over.
func (g *State) IsTerminal() bool { return g.Over }

// NextPlayer returns the roster index after current, wrapping around.
func (g *State) NextPlayer(current uint8) uint8 {
	return uint8((int(current) + 1) % len(g.Players))
}

// HandContains reports whether the player's hand holds the card.
func (g *State) HandContains(player uint8, card Card) bool {
	if int(player) >= len(g.Players) {
		return false
	}
	for _, c := range g.Players[player].Hand {
		if c == card {
			return true
		}
	}
	return false
}

// HoldersOf returns the roster indices of every player except requester
// holding at least one card of rank, in ascending order.
func (g *State) HoldersOf(requester, rank uint8) []uint8 {
	var holders []uint8
	for p := range g.Players {
		if uint8(p) == requester {
			continue
		}
		for _, c := range g.Players[p].Hand {
			if c.Rank() == rank {
				holders = append(holders, uint8(p))
				break
			}
		}
	}
	return holders
}

// JokerHolder returns the roster index of the player holding the Joker, or
// -1 if the Joker is still in the undealt deck.
func (g *State) JokerHolder() int8 {
	for p := range g.Players {
		for _, c := range g.Players[p].Hand {
			if c.IsJoker() {
				return int8(p)
			}
		}
	}
	return -1
}
