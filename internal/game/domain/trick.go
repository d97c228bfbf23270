package domain

import "github.com/isakal/briskula/internal/core/deck"

// ResolveOutcome tags the result of a successful trick resolution.
type ResolveOutcome int

const (
	// ResolveOutcomeUnspecified represents an invalid outcome value.
	ResolveOutcomeUnspecified ResolveOutcome = iota
	// ResolveContinue indicates the game goes on with a new trick.
	ResolveContinue
	// ResolveGameComplete indicates the deck and every hand are exhausted.
	ResolveGameComplete
)

// ResolveTrick awards the cards on the table to the trick winner and sets
// up the next trick.
//
// The winner is the strongest trump-suited card on the table, or, when no
// trump was played, the strongest card following the lead suit. Cards of a
// third suit never win. The winner captures the table, leads the next
// trick with the turn order rotated to start at their seat, and each seat
// draws one replacement card in the new turn order while the deck lasts.
func ResolveTrick(g Game) (Game, ResolveOutcome, error) {
	if len(g.TurnOrder) != 0 || len(g.Table) == 0 {
		return Game{}, ResolveOutcomeUnspecified, ErrTrickNotComplete
	}

	winner := trickWinner(g.Table, g.TrumpCard.Suit)

	next := g.Clone()
	next.CurrentPlayer = winner
	for _, play := range next.Table {
		next.Captured[winner] = append(next.Captured[winner], play.Card)
	}
	next.Table = nil

	// Rotate the full seating so the winner leads.
	seat := 0
	for i, p := range next.Players {
		if p == winner {
			seat = i
			break
		}
	}
	next.TurnOrder = append(next.TurnOrder[:0], next.Players[seat:]...)
	next.TurnOrder = append(next.TurnOrder, next.Players[:seat]...)

	// One replacement card per seat, in the new turn order, while the deck
	// lasts. The order decides who draws which card, so it must follow the
	// rotation, not the seating.
	for _, p := range next.TurnOrder {
		if len(next.Deck) == 0 {
			break
		}
		next.Hands[p] = append(next.Hands[p], next.Deck[0])
		next.Deck = next.Deck[1:]
	}

	if len(next.Deck) == 0 && handsEmpty(next.Hands) {
		next.Phase = PhaseFinished
		return next, ResolveGameComplete, nil
	}
	return next, ResolveContinue, nil
}

// trickWinner picks the winning player of a full trick. The table is never
// empty here: every resolved trick has at least the lead play on it.
func trickWinner(table []Play, trump deck.Suit) string {
	lead := table[0].Card.Suit

	best := 0
	for i := 1; i < len(table); i++ {
		card := table[i].Card
		bestCard := table[best].Card
		bestIsTrump := bestCard.Suit == trump
		switch {
		case card.Suit == trump && !bestIsTrump:
			best = i
		case card.Suit == trump && bestIsTrump && deck.Stronger(card.Rank, bestCard.Rank):
			best = i
		case !bestIsTrump && card.Suit == lead && deck.Stronger(card.Rank, bestCard.Rank):
			best = i
		}
	}
	return table[best].Player
}

func handsEmpty(hands map[string][]deck.Card) bool {
	for _, hand := range hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}
