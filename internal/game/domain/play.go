package domain

import "github.com/isakal/briskula/internal/core/deck"

// PlayOutcome tags the result of a successful card play.
type PlayOutcome int

const (
	// PlayOutcomeUnspecified represents an invalid outcome value.
	PlayOutcomeUnspecified PlayOutcome = iota
	// PlayContinue indicates more seats still owe a play this trick.
	PlayContinue
	// PlayTrickComplete indicates every seat has played and the trick
	// awaits resolution.
	PlayTrickComplete
)

// PlayCard moves a card from the current player's hand onto the table.
//
// Preconditions, checked in order: the game is in play, the current trick
// is not already full, the acting player is the current player, and the
// card is in the acting player's hand.
func PlayCard(g Game, player string, card deck.Card) (Game, PlayOutcome, error) {
	switch g.Phase {
	case PhaseLobby:
		return Game{}, PlayOutcomeUnspecified, ErrGameNotStarted
	case PhaseFinished:
		return Game{}, PlayOutcomeUnspecified, ErrGameOver
	}
	if len(g.TurnOrder) == 0 {
		return Game{}, PlayOutcomeUnspecified, ErrTrickComplete
	}
	if g.CurrentPlayer != player {
		return Game{}, PlayOutcomeUnspecified, ErrNotPlayersTurn
	}

	held := -1
	for i, c := range g.Hands[player] {
		if c == card {
			held = i
			break
		}
	}
	if held < 0 {
		return Game{}, PlayOutcomeUnspecified, ErrCardNotInHand
	}

	next := g.Clone()
	hand := next.Hands[player]
	next.Hands[player] = append(hand[:held], hand[held+1:]...)
	next.Table = append(next.Table, Play{Player: player, Card: card})
	next.TurnOrder = next.TurnOrder[1:]

	if len(next.TurnOrder) == 0 {
		next.CurrentPlayer = ""
		return next, PlayTrickComplete, nil
	}
	next.CurrentPlayer = next.TurnOrder[0]
	return next, PlayContinue, nil
}
