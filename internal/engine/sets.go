package engine

// FindValidSets returns every group of exactly SetSize same-rank cards in
// hand, excluding the Joker. Groups are returned in rank-encounter order;
// within a group, cards keep their hand order. The function is pure: it
// never mutates hand and the same hand always yields the same groups.
//
// A rank bucket only converts when its count is exactly SetSize. A hand can
// briefly hold more than four of a rank without it being recognized; with
// the standard single deck that cannot happen, but the rule is kept explicit
// so the detector stays well-defined for any input.
func FindValidSets(hand []Card) [][]Card {
	var counts [NumRanks]uint8
	for _, c := range hand {
		if c.IsJoker() {
			continue
		}
		counts[c.Rank()]++
	}

	var sets [][]Card
	var seen [NumRanks]bool
	for _, c := range hand {
		if c.IsJoker() {
			continue
		}
		r := c.Rank()
		if counts[r] != SetSize || seen[r] {
			continue
		}
		seen[r] = true
		set := make([]Card, 0, SetSize)
		for _, h := range hand {
			if !h.IsJoker() && h.Rank() == r {
				set = append(set, h)
			}
		}
		sets = append(sets, set)
	}
	return sets
}

// sweep moves every detected set out of the player's hand into their set
// ledger and returns the sets moved, in detection order.
func (g *State) sweep(player uint8) [][]Card {
	ps := &g.Players[player]
	sets := FindValidSets(ps.Hand)
	if len(sets) == 0 {
		return nil
	}

	matched := make(map[Card]bool, len(sets)*SetSize)
	for _, set := range sets {
		ps.Sets = append(ps.Sets, set)
		for _, c := range set {
			matched[c] = true
		}
	}

	kept := ps.Hand[:0]
	for _, c := range ps.Hand {
		if !matched[c] {
			kept = append(kept, c)
		}
	}
	ps.Hand = kept
	return sets
}
