package domain

import (
	"fmt"
	"math/rand"

	"github.com/isakal/briskula/internal/core/deck"
	"github.com/isakal/briskula/internal/random"
)

// initialHandSize is the number of cards dealt to each seat at game start.
const initialHandSize = 3

// Start deals a lobby-phase game into play.
//
// In order: teams are assigned (four-player games only), hands and captured
// piles are reset, a fresh deck is shuffled, every seat is dealt three cards
// in seating order, and the trump card is revealed by moving the top of the
// remaining deck to its bottom. The trump stays the last card ever drawn
// while its suit governs the whole game. The turn order starts as the full
// seating order.
//
// The rng parameter exists for tests; passing nil shuffles with a fresh
// crypto-derived seed.
func Start(g Game, rng *rand.Rand) (Game, error) {
	if g.Phase != PhaseLobby {
		return Game{}, ErrGameAlreadyStarted
	}
	if len(g.Players) != 2 && len(g.Players) != 4 {
		return Game{}, ErrInvalidPlayerCount
	}

	if rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return Game{}, fmt.Errorf("seed shuffle: %w", err)
		}
		rng = rand.New(rand.NewSource(seed))
	}

	next := g.Clone()

	if len(next.Players) == 4 {
		next.Teams = []Team{
			{Name: TeamOne, Members: []string{next.Players[0], next.Players[2]}},
			{Name: TeamTwo, Members: []string{next.Players[1], next.Players[3]}},
		}
	}

	next.Hands = make(map[string][]deck.Card, len(next.Players))
	next.Captured = make(map[string][]deck.Card, len(next.Players))
	for _, p := range next.Players {
		next.Hands[p] = []deck.Card{}
		next.Captured[p] = []deck.Card{}
	}

	cards := deck.Shuffle(deck.New(), rng)
	for i := 0; i < initialHandSize; i++ {
		for _, p := range next.Players {
			next.Hands[p] = append(next.Hands[p], cards[0])
			cards = cards[1:]
		}
	}

	// Reveal the trump: the top of the remaining deck moves to the bottom,
	// so it is the last card ever drawn.
	trump := cards[0]
	next.TrumpCard = trump
	next.Deck = append(append([]deck.Card(nil), cards[1:]...), trump)

	next.Phase = PhasePlaying
	next.TurnOrder = append([]string(nil), next.Players...)
	next.CurrentPlayer = next.TurnOrder[0]
	return next, nil
}
