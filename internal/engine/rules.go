package engine

// DonorPolicy selects which candidate donates a requested card when more
// than one opponent holds the rank. Candidates are roster indices in
// ascending order and never empty. Implementations must be deterministic.
type DonorPolicy func(g *State, requester uint8, candidates []uint8) uint8

// FewestCardsDonor picks the candidate holding the fewest total cards,
// breaking ties toward the lowest roster index.
func FewestCardsDonor(g *State, requester uint8, candidates []uint8) uint8 {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(g.Players[c].Hand) < len(g.Players[best].Hand) {
			best = c
		}
	}
	return best
}

// Rules holds configurable game rule settings.
type Rules struct {
	HandSize        uint8 // cards dealt per player
	RequestsPerTurn uint8 // card requests allowed before the turn passes

	// Donor decides between multiple request donors. Nil means
	// FewestCardsDonor.
	Donor DonorPolicy
}

// DefaultRules returns the standard Quartets rules: 7 cards each, 2 requests
// per turn.
func DefaultRules() Rules {
	return Rules{
		HandSize:        7,
		RequestsPerTurn: 2,
	}
}

func (r *Rules) donor() DonorPolicy {
	if r.Donor == nil {
		return FewestCardsDonor
	}
	return r.Donor
}
