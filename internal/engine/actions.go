package engine

// PassResult describes a completed pass transition.
type PassResult struct {
	From uint8
	To   uint8
	Card Card

	// Completed lists sets the recipient finished because of this card.
	Completed []CompletedSet
}

// RequestResult describes a completed request transition.
type RequestResult struct {
	Requester uint8
	Rank      uint8
	Success   bool
	Donor     uint8 // meaningful only when Success
	Card      Card  // meaningful only when Success

	// Completed lists sets the requester finished because of this card.
	Completed []CompletedSet

	// TurnEnded is true when this request exhausted the turn; NextPlayer
	// then holds the new current player.
	TurnEnded  bool
	NextPlayer uint8
}

// PassCard moves a card from player's hand to target's hand. The recipient
// becomes the current player ("hot potato") with a fresh request allowance,
// and their hand is swept for completed sets before control returns.
func (g *State) PassCard(player uint8, card Card, target uint8) (*PassResult, error) {
	if err := g.checkActing(player); err != nil {
		return nil, err
	}
	if int(target) >= len(g.Players) || target == player {
		return nil, ErrInvalidTarget
	}
	if !g.HandContains(player, card) {
		return nil, ErrInvalidCard
	}

	g.removeFromHand(player, card)
	g.Players[target].Hand = append(g.Players[target].Hand, card)

	g.Current = target
	g.RequestsRemaining = g.Rules.RequestsPerTurn
	g.TurnNumber++

	res := &PassResult{From: player, To: target, Card: card}
	for _, set := range g.sweep(target) {
		res.Completed = append(res.Completed, CompletedSet{Player: target, Cards: set})
	}
	g.evaluateGameOver()
	return res, nil
}

// RequestCard asks the other players for a card of rank. If any opponent
// holds one, the donor policy picks who gives it up and the card moves to
// the requester's hand, which is then swept. Each request spends one of the
// turn's allowances whether or not it succeeds; spending the last one passes
// the turn to the next player in roster order.
func (g *State) RequestCard(player uint8, rank uint8) (*RequestResult, error) {
	if err := g.checkActing(player); err != nil {
		return nil, err
	}
	if rank >= NumRanks {
		return nil, ErrInvalidRank
	}
	if g.RequestsRemaining == 0 {
		return nil, ErrNoRequestsRemaining
	}

	res := &RequestResult{Requester: player, Rank: rank}

	holders := g.HoldersOf(player, rank)
	if len(holders) > 0 {
		donor := g.Rules.donor()(g, player, holders)
		card := g.firstOfRank(donor, rank)
		g.removeFromHand(donor, card)
		g.Players[player].Hand = append(g.Players[player].Hand, card)

		res.Success = true
		res.Donor = donor
		res.Card = card
		for _, set := range g.sweep(player) {
			res.Completed = append(res.Completed, CompletedSet{Player: player, Cards: set})
		}
	}

	g.RequestsRemaining--
	if g.RequestsRemaining == 0 {
		g.Current = g.NextPlayer(player)
		g.RequestsRemaining = g.Rules.RequestsPerTurn
		g.TurnNumber++
		res.TurnEnded = true
		res.NextPlayer = g.Current
	}

	g.evaluateGameOver()
	return res, nil
}

// checkActing validates that the game accepts actions and that player holds
// the turn.
func (g *State) checkActing(player uint8) error {
	if g.Over {
		return ErrGameOver
	}
	if !g.Started {
		return ErrNotStarted
	}
	if int(player) >= len(g.Players) {
		return ErrUnknownPlayer
	}
	if player != g.Current {
		return ErrNotYourTurn
	}
	return nil
}

// removeFromHand deletes card from the player's hand, preserving order.
// The caller has already verified membership.
func (g *State) removeFromHand(player uint8, card Card) {
	hand := g.Players[player].Hand
	for i, c := range hand {
		if c == card {
			g.Players[player].Hand = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}

// firstOfRank returns the first card of rank in the player's hand order.
func (g *State) firstOfRank(player, rank uint8) Card {
	for _, c := range g.Players[player].Hand {
		if c.Rank() == rank {
			return c
		}
	}
	return EmptyCard
}
