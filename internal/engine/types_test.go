package engine

import "testing"

// TestDeckConstruction verifies the deck holds exactly 53 unique cards:
// 13 ranks x 4 suits plus one Joker.
func TestDeckConstruction(t *testing.T) {
	deck := BuildDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size: want %d, got %d", DeckSize, len(deck))
	}

	seen := map[Card]bool{}
	jokers := 0
	var rankCounts [NumRanks]int
	var suitCounts [4]int
	for _, c := range deck {
		if seen[c] {
			t.Errorf("duplicate card id %d", c)
		}
		seen[c] = true
		if c.IsJoker() {
			jokers++
			continue
		}
		rankCounts[c.Rank()]++
		suitCounts[c.Suit()]++
	}
	if jokers != 1 {
		t.Errorf("jokers: want 1, got %d", jokers)
	}
	for r, n := range rankCounts {
		if n != 4 {
			t.Errorf("rank %s: want 4 cards, got %d", RankName(uint8(r)), n)
		}
	}
	for s, n := range suitCounts {
		if n != NumRanks {
			t.Errorf("suit %s: want %d cards, got %d", SuitName(uint8(s)), NumRanks, n)
		}
	}
}

// TestCardRoundTrip verifies NewCard and the accessors agree for every
// suit/rank combination.
func TestCardRoundTrip(t *testing.T) {
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < NumRanks; rank++ {
			c := NewCard(suit, rank)
			if c.Suit() != suit || c.Rank() != rank {
				t.Errorf("NewCard(%d,%d) → suit %d rank %d", suit, rank, c.Suit(), c.Rank())
			}
			if c.IsJoker() {
				t.Errorf("NewCard(%d,%d) should not be the Joker", suit, rank)
			}
		}
	}

	j := NewCard(SuitHearts, RankJoker)
	if j != JokerCard || j.Suit() != SuitNone || j.Rank() != RankJoker {
		t.Errorf("Joker construction: got %v (suit %d, rank %d)", j, j.Suit(), j.Rank())
	}
}

// TestParseRank verifies name round-trips for all ranks and rejection of
// unknown names.
func TestParseRank(t *testing.T) {
	for r := uint8(0); r <= RankJoker; r++ {
		got, ok := ParseRank(RankName(r))
		if !ok || got != r {
			t.Errorf("ParseRank(%q): got %d ok=%v, want %d", RankName(r), got, ok, r)
		}
	}
	if _, ok := ParseRank("11"); ok {
		t.Error("ParseRank should reject unknown names")
	}
}
