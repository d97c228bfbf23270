package deck

import "math/rand"

// Size is the number of cards in a full deck.
const Size = 40

// TotalPoints is the point sum of the full deck.
const TotalPoints = 120

// Suits lists the four suits in declaration order.
func Suits() []Suit {
	return []Suit{SuitCoins, SuitBatons, SuitCups, SuitSwords}
}

// Ranks lists the ten ranks in strength order, strongest first.
func Ranks() []Rank {
	return []Rank{
		RankAce, RankThree, RankKing, RankKnight, RankKnave,
		RankSeven, RankSix, RankFive, RankFour, RankTwo,
	}
}

// New returns a fresh ordered 40-card deck.
func New() []Card {
	cards := make([]Card, 0, Size)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Shuffle returns a uniformly shuffled copy of cards. The input slice is
// never mutated, so repeated shuffles of the same deck are independent.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
