package engine

// evaluateGameOver checks the terminal condition after a mutation. The game
// ends when any player's hand is empty. Once at least one set has been
// completed it also ends when no rank holds SetSize copies across the union
// of live hands: cards only move between hands, so such a rank is dead
// forever. A fresh deal routinely strands every rank in the undealt
// remainder, which is why the union check alone must never end a game that
// has produced nothing yet; the hot-potato path to an empty hand stays open.
func (g *State) evaluateGameOver() {
	if g.Over || !g.Started {
		return
	}

	ended := false
	progress := false
	for p := range g.Players {
		if len(g.Players[p].Hand) == 0 {
			ended = true
		}
		if len(g.Players[p].Sets) > 0 {
			progress = true
		}
	}
	if !ended && progress {
		var counts [NumRanks]uint8
		for p := range g.Players {
			for _, c := range g.Players[p].Hand {
				if !c.IsJoker() {
					counts[c.Rank()]++
				}
			}
		}
		ended = true
		for _, n := range counts {
			if n >= SetSize {
				ended = false
				break
			}
		}
	}
	if !ended {
		return
	}

	g.Over = true
	g.Winner = g.decideWinner()
}

// decideWinner ranks players by matched-set count. Ties go against whoever
// holds the Joker; a tie among Joker-free players falls to the earliest
// roster index, which is stable and visible to everyone.
func (g *State) decideWinner() int8 {
	joker := g.JokerHolder()
	best := int8(0)
	for p := 1; p < len(g.Players); p++ {
		cand, cur := len(g.Players[p].Sets), len(g.Players[best].Sets)
		switch {
		case cand > cur:
			best = int8(p)
		case cand == cur && best == joker && int8(p) != joker:
			best = int8(p)
		}
	}
	return best
}

// Scores returns each player's matched-set count by roster index.
func (g *State) Scores() []int {
	scores := make([]int, len(g.Players))
	for p := range g.Players {
		scores[p] = len(g.Players[p].Sets)
	}
	return scores
}
