package domain

// Finalize tallies the captured piles of a completed game.
//
// The deck and every hand must be empty; the phase itself is not consulted.
// Scores are keyed by player identifier, or by team name when the game was
// played in teams. The scores always sum to the full deck's 120 points.
func Finalize(g Game) (map[string]int, error) {
	if len(g.Deck) > 0 || !handsEmpty(g.Hands) {
		return nil, ErrGameNotComplete
	}

	byPlayer := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		total := 0
		for _, card := range g.Captured[p] {
			total += card.Points()
		}
		byPlayer[p] = total
	}

	if g.Teams == nil {
		return byPlayer, nil
	}

	byTeam := make(map[string]int, len(g.Teams))
	for _, team := range g.Teams {
		total := 0
		for _, member := range team.Members {
			total += byPlayer[member]
		}
		byTeam[team.Name] = total
	}
	return byTeam, nil
}
