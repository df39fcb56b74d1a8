package engine

import "testing"

// TestGameOverOnEmptyHand verifies emptying a hand ends the game.
func TestGameOverOnEmptyHand(t *testing.T) {
	g := fixtureGame(t,
		[]Card{NewCard(SuitHearts, RankKing)},
		[]Card{NewCard(SuitClubs, RankKing), NewCard(SuitSpades, RankKing), NewCard(SuitDiamonds, RankKing)},
	)

	res, err := g.PassCard(0, NewCard(SuitHearts, RankKing), 1)
	if err != nil {
		t.Fatalf("PassCard: %v", err)
	}
	if len(res.Completed) != 1 {
		t.Errorf("the pass should complete the Kings, got %d sets", len(res.Completed))
	}
	if !g.IsTerminal() {
		t.Fatal("game should end once a hand is empty")
	}
	if g.Winner != 1 {
		t.Errorf("winner: want 1 (one set vs none), got %d", g.Winner)
	}
}

// TestGameOverOnStalemate verifies that once a set has been formed the game
// ends when no rank can ever complete another.
func TestGameOverOnStalemate(t *testing.T) {
	// Fourth Ace stranded in the deck remainder; no other rank is close.
	g := fixtureGame(t,
		[]Card{NewCard(SuitHearts, RankAce), NewCard(SuitDiamonds, RankAce)},
		[]Card{NewCard(SuitClubs, RankAce), NewCard(SuitHearts, RankTwo)},
	)
	g.Players[0].Sets = [][]Card{
		{NewCard(SuitHearts, RankKing), NewCard(SuitDiamonds, RankKing), NewCard(SuitClubs, RankKing), NewCard(SuitSpades, RankKing)},
	}

	if _, err := g.RequestCard(0, RankAce); err != nil {
		t.Fatalf("RequestCard: %v", err)
	}
	if !g.IsTerminal() {
		t.Error("no completable rank remains; game should be over")
	}
	if g.Winner != 0 {
		t.Errorf("winner: want 0 (one set vs none), got %d", g.Winner)
	}
}

// TestStalemateBeforeAnySetKeepsPlaying verifies the union check alone does
// not end a game that has produced nothing: the hot-potato path to an empty
// hand is still open.
func TestStalemateBeforeAnySetKeepsPlaying(t *testing.T) {
	g := fixtureGame(t,
		[]Card{NewCard(SuitHearts, RankAce), NewCard(SuitDiamonds, RankAce)},
		[]Card{NewCard(SuitClubs, RankAce), NewCard(SuitHearts, RankTwo)},
	)

	if _, err := g.RequestCard(0, RankAce); err != nil {
		t.Fatalf("RequestCard: %v", err)
	}
	if g.IsTerminal() {
		t.Fatal("no set has been formed yet; game must stay live")
	}

	// Hands can still empty out: player 0 passes everything away.
	if _, err := g.RequestCard(0, RankAce); err != nil {
		t.Fatalf("RequestCard: %v", err)
	}
	for !g.IsTerminal() {
		cur := g.Current
		if _, err := g.PassCard(cur, g.Players[cur].Hand[0], g.NextPlayer(cur)); err != nil {
			t.Fatalf("PassCard: %v", err)
		}
	}
}

// TestWinnerMostSets verifies the primary scoring rule.
func TestWinnerMostSets(t *testing.T) {
	g := fixtureGame(t,
		[]Card{NewCard(SuitHearts, RankTwo)},
		[]Card{NewCard(SuitHearts, RankThree)},
	)
	g.Players[0].Sets = [][]Card{
		{NewCard(SuitHearts, RankKing), NewCard(SuitDiamonds, RankKing), NewCard(SuitClubs, RankKing), NewCard(SuitSpades, RankKing)},
	}
	g.Players[1].Sets = [][]Card{
		{NewCard(SuitHearts, RankAce), NewCard(SuitDiamonds, RankAce), NewCard(SuitClubs, RankAce), NewCard(SuitSpades, RankAce)},
		{NewCard(SuitHearts, RankNine), NewCard(SuitDiamonds, RankNine), NewCard(SuitClubs, RankNine), NewCard(SuitSpades, RankNine)},
	}

	if w := g.decideWinner(); w != 1 {
		t.Errorf("winner: want 1, got %d", w)
	}

	scores := g.Scores()
	if scores[0] != 1 || scores[1] != 2 {
		t.Errorf("scores: want [1 2], got %v", scores)
	}
}

// TestWinnerJokerTieBreak verifies that on equal set counts the player
// stuck with the Joker loses.
func TestWinnerJokerTieBreak(t *testing.T) {
	set := func(rank uint8) []Card {
		return []Card{
			NewCard(SuitHearts, rank), NewCard(SuitDiamonds, rank),
			NewCard(SuitClubs, rank), NewCard(SuitSpades, rank),
		}
	}

	g := fixtureGame(t,
		[]Card{JokerCard},
		[]Card{NewCard(SuitHearts, RankTwo)},
	)
	g.Players[0].Sets = [][]Card{set(RankKing)}
	g.Players[1].Sets = [][]Card{set(RankAce)}

	if w := g.decideWinner(); w != 1 {
		t.Errorf("Joker holder must lose the tie: want 1, got %d", w)
	}

	// Same counts, Joker on the other side.
	g2 := fixtureGame(t,
		[]Card{NewCard(SuitHearts, RankTwo)},
		[]Card{JokerCard},
	)
	g2.Players[0].Sets = [][]Card{set(RankKing)}
	g2.Players[1].Sets = [][]Card{set(RankAce)}

	if w := g2.decideWinner(); w != 0 {
		t.Errorf("Joker holder must lose the tie: want 0, got %d", w)
	}
}

// TestWinnerTieWithoutJoker verifies the documented fallback: earliest
// roster seat wins when tied players both lack the Joker.
func TestWinnerTieWithoutJoker(t *testing.T) {
	set := func(rank uint8) []Card {
		return []Card{
			NewCard(SuitHearts, rank), NewCard(SuitDiamonds, rank),
			NewCard(SuitClubs, rank), NewCard(SuitSpades, rank),
		}
	}

	g := fixtureGame(t,
		[]Card{NewCard(SuitHearts, RankTwo)},
		[]Card{NewCard(SuitHearts, RankThree)},
		[]Card{JokerCard},
	)
	g.Players[0].Sets = [][]Card{set(RankKing)}
	g.Players[1].Sets = [][]Card{set(RankAce)}

	if w := g.decideWinner(); w != 0 {
		t.Errorf("Joker-free tie: want earliest seat 0, got %d", w)
	}
}
