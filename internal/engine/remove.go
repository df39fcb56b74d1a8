package engine

// RemovalResult describes the state changes caused by removing a player.
// Roster indices in the result refer to the compacted roster.
type RemovalResult struct {
	// Redistributed maps each receiving player to the cards they inherited.
	Redistributed map[uint8][]Card

	// Completed lists sets finished by inherited cards.
	Completed []CompletedSet

	// TurnMoved is true when the removed player held the turn; Current then
	// identifies the new turn holder.
	TurnMoved bool
	Current   uint8

	// Ended is true when the removal left fewer than MinPlayers in the game.
	Ended bool
}

// RemovePlayer removes the player at roster index from a started game,
// dealing their hand out round-robin to the remaining players starting at
// the next roster seat. Every receiving hand is swept, so no card id is ever
// lost or duplicated by a departure. If the removed player held the turn it
// advances to the next seat with a fresh request allowance. Indices above
// the removed seat shift down by one.
//
// In a game that has not started the player is simply dropped.
func (g *State) RemovePlayer(player uint8) (*RemovalResult, error) {
	if int(player) >= len(g.Players) {
		return nil, ErrUnknownPlayer
	}
	if g.Over {
		return nil, ErrGameOver
	}

	hand := g.Players[player].Hand
	wasCurrent := g.Started && g.Current == player

	// Compact the roster.
	g.Players = append(g.Players[:player], g.Players[int(player)+1:]...)
	if g.Current > player {
		g.Current--
	}

	res := &RemovalResult{Redistributed: make(map[uint8][]Card)}

	if len(g.Players) < MinPlayers {
		g.Over = true
		if g.Started && len(g.Players) == 1 {
			g.Winner = 0 // last player standing
		}
		res.Ended = true
		res.Current = g.Current
		return res, nil
	}

	if !g.Started {
		res.Current = g.Current
		return res, nil
	}

	// Deal the departed hand out round-robin, starting at the seat that
	// followed the removed player.
	next := player % uint8(len(g.Players))
	for _, c := range hand {
		g.Players[next].Hand = append(g.Players[next].Hand, c)
		res.Redistributed[next] = append(res.Redistributed[next], c)
		next = g.NextPlayer(next)
	}
	for p := uint8(0); int(p) < len(g.Players); p++ {
		if _, received := res.Redistributed[p]; !received {
			continue
		}
		for _, set := range g.sweep(p) {
			res.Completed = append(res.Completed, CompletedSet{Player: p, Cards: set})
		}
	}

	if wasCurrent {
		g.Current = player % uint8(len(g.Players))
		g.RequestsRemaining = g.Rules.RequestsPerTurn
		g.TurnNumber++
		res.TurnMoved = true
	}
	res.Current = g.Current

	g.evaluateGameOver()
	res.Ended = g.Over
	return res, nil
}
