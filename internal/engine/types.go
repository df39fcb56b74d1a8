// Package engine implements the Quartets card game rules.
//
// The engine is the single authoritative decision point for a game: it owns
// the deck, every player's hand, the turn order and the matched-set ledger.
// State is a plain value type with an embedded PRNG, so a game is fully
// reproducible from its seed and a rejected action never leaves a partial
// mutation behind.
package engine

// Suit constants. SuitNone is reserved for the Joker.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
	SuitNone     uint8 = 4
)

// Rank constants. RankJoker is never part of a set.
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankThree uint8 = 2
	RankFour  uint8 = 3
	RankFive  uint8 = 4
	RankSix   uint8 = 5
	RankSeven uint8 = 6
	RankEight uint8 = 7
	RankNine  uint8 = 8
	RankTen   uint8 = 9
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
	RankJoker uint8 = 13
)

const (
	// NumRanks counts the settable ranks (Joker excluded).
	NumRanks = 13
	// SetSize is the number of same-rank cards that form a matched set.
	SetSize = 4
	// DeckSize is 13 ranks x 4 suits + 1 Joker.
	DeckSize = 53

	MinPlayers = 2
	MaxPlayers = 7
)

// Card is a packed uint8 deck index in [0, DeckSize). For indices below 52
// the suit is idx/13 and the rank is idx%13; index 52 is the Joker. The
// index doubles as the card's unique identity for the whole game.
type Card uint8

// JokerCard is the single Joker in the deck.
const JokerCard Card = 52

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank. RankJoker always maps to
// JokerCard regardless of suit.
func NewCard(suit, rank uint8) Card {
	if rank == RankJoker {
		return JokerCard
	}
	return Card(suit*NumRanks + rank)
}

// Rank returns the card's rank constant.
func (c Card) Rank() uint8 {
	if c == JokerCard {
		return RankJoker
	}
	return uint8(c) % NumRanks
}

// Suit returns the card's suit constant (SuitNone for the Joker).
func (c Card) Suit() uint8 {
	if c == JokerCard {
		return SuitNone
	}
	return uint8(c) / NumRanks
}

// IsJoker reports whether the card is the Joker.
func (c Card) IsJoker() bool { return c == JokerCard }

var rankNames = [14]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "Joker",
}

var suitNames = [5]string{"hearts", "diamonds", "clubs", "spades", "none"}

// RankName returns the display name for a rank constant ("A", "2", ...,
// "K", "Joker"). Unknown ranks return "?".
func RankName(rank uint8) string {
	if int(rank) >= len(rankNames) {
		return "?"
	}
	return rankNames[rank]
}

// SuitName returns the display name for a suit constant ("hearts", ...,
// "none"). Unknown suits return "?".
func SuitName(suit uint8) string {
	if int(suit) >= len(suitNames) {
		return "?"
	}
	return suitNames[suit]
}

// ParseRank maps a display name back to its rank constant.
func ParseRank(name string) (uint8, bool) {
	for r, n := range rankNames {
		if n == name {
			return uint8(r), true
		}
	}
	return 0, false
}

func (c Card) String() string {
	if c == EmptyCard {
		return "<empty>"
	}
	if c.IsJoker() {
		return "Joker"
	}
	return RankName(c.Rank()) + " of " + SuitName(c.Suit())
}
