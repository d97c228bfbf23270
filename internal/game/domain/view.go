package domain

import "github.com/isakal/briskula/internal/core/deck"

// FilteredView is a player-specific projection of a Game. It exposes the
// requesting player's own hand in full and reduces everything another
// player could not legitimately see to counts. Views are derived on demand
// and never stored.
type FilteredView struct {
	Phase         Phase
	Players       []string
	Teams         []Team
	TrumpCard     deck.Card
	Table         []Play
	TurnOrder     []string
	CurrentPlayer string

	// Hand holds the requesting player's cards; nil when the player has no
	// hand in this game.
	Hand []deck.Card
	// HandCounts maps every seated player to their hand size.
	HandCounts map[string]int
	// DeckCount is the number of undealt cards.
	DeckCount int
	// CapturedCounts maps every seated player to their captured pile size.
	CapturedCounts map[string]int
}

// ProjectView builds the filtered view of g for the given player. It is
// total: unknown players simply see no hand of their own. The input record
// is never mutated and repeated projections are identical.
func ProjectView(g Game, player string) FilteredView {
	view := FilteredView{
		Phase:         g.Phase,
		Players:       append([]string(nil), g.Players...),
		Table:         append([]Play(nil), g.Table...),
		TurnOrder:     append([]string(nil), g.TurnOrder...),
		CurrentPlayer: g.CurrentPlayer,
		TrumpCard:     g.TrumpCard,
		DeckCount:     len(g.Deck),
	}

	if g.Teams != nil {
		view.Teams = make([]Team, len(g.Teams))
		for i, team := range g.Teams {
			view.Teams[i] = Team{
				Name:    team.Name,
				Members: append([]string(nil), team.Members...),
			}
		}
	}

	if hand, ok := g.Hands[player]; ok {
		view.Hand = append([]deck.Card(nil), hand...)
	}
	if g.Hands != nil {
		view.HandCounts = make(map[string]int, len(g.Hands))
		for p, hand := range g.Hands {
			view.HandCounts[p] = len(hand)
		}
	}
	if g.Captured != nil {
		view.CapturedCounts = make(map[string]int, len(g.Captured))
		for p, pile := range g.Captured {
			view.CapturedCounts[p] = len(pile)
		}
	}
	return view
}
