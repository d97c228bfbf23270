// Package deck defines the 40-card Briskula deck: card values, the rank
// strength order used to resolve tricks, and the per-rank point table.
//
// # Strength
//
// Ranks are declared strongest to weakest, so the declaration order is the
// trick-taking strength order: ace > three > king > knight > knave > seven >
// six > five > four > two. Use Stronger to compare two ranks.
//
// # Points
//
// Points are disjoint from strength: ace=11, three=10, king=4, knight=3,
// knave=2, everything else 0. The whole deck is worth TotalPoints (120).
package deck

import "fmt"

// Suit identifies one of the four Briskula suits.
type Suit int

const (
	// SuitUnspecified represents an invalid suit value.
	SuitUnspecified Suit = iota
	// SuitCoins is the coins (dinari) suit.
	SuitCoins
	// SuitBatons is the batons (baštoni) suit.
	SuitBatons
	// SuitCups is the cups (kupe) suit.
	SuitCups
	// SuitSwords is the swords (špadi) suit.
	SuitSwords
)

// String returns the lowercase suit name.
func (s Suit) String() string {
	switch s {
	case SuitCoins:
		return "coins"
	case SuitBatons:
		return "batons"
	case SuitCups:
		return "cups"
	case SuitSwords:
		return "swords"
	default:
		return "unspecified"
	}
}

// Rank identifies one of the ten Briskula ranks. Declaration order is
// strength order, strongest first.
type Rank int

const (
	// RankUnspecified represents an invalid rank value.
	RankUnspecified Rank = iota
	// RankAce is the strongest rank, worth 11 points.
	RankAce
	// RankThree is worth 10 points.
	RankThree
	// RankKing is worth 4 points.
	RankKing
	// RankKnight is worth 3 points.
	RankKnight
	// RankKnave is worth 2 points.
	RankKnave
	// RankSeven is a scoreless rank.
	RankSeven
	// RankSix is a scoreless rank.
	RankSix
	// RankFive is a scoreless rank.
	RankFive
	// RankFour is a scoreless rank.
	RankFour
	// RankTwo is the weakest rank.
	RankTwo
)

// String returns the lowercase rank name.
func (r Rank) String() string {
	switch r {
	case RankAce:
		return "ace"
	case RankThree:
		return "three"
	case RankKing:
		return "king"
	case RankKnight:
		return "knight"
	case RankKnave:
		return "knave"
	case RankSeven:
		return "seven"
	case RankSix:
		return "six"
	case RankFive:
		return "five"
	case RankFour:
		return "four"
	case RankTwo:
		return "two"
	default:
		return "unspecified"
	}
}

// Points returns the scoring value of the rank.
func (r Rank) Points() int {
	switch r {
	case RankAce:
		return 11
	case RankThree:
		return 10
	case RankKing:
		return 4
	case RankKnight:
		return 3
	case RankKnave:
		return 2
	default:
		return 0
	}
}

// Stronger reports whether rank a beats rank b in trick resolution.
func Stronger(a, b Rank) bool {
	return a < b
}

// Card is a single playing card. Cards are value types; equality is
// structural on suit and rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns a readable card name such as "ace of cups".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Points returns the scoring value of the card.
func (c Card) Points() int {
	return c.Rank.Points()
}
