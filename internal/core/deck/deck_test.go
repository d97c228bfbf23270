package deck

import (
	"math/rand"
	"testing"
)

func TestNewDeckHasFortyUniqueCards(t *testing.T) {
	cards := New()
	if len(cards) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(cards))
	}

	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestDeckPointsSumTo120(t *testing.T) {
	total := 0
	for _, c := range New() {
		total += c.Points()
	}
	if total != TotalPoints {
		t.Fatalf("expected deck worth %d points, got %d", TotalPoints, total)
	}
}

func TestRankPoints(t *testing.T) {
	tests := []struct {
		rank   Rank
		points int
	}{
		{RankAce, 11},
		{RankThree, 10},
		{RankKing, 4},
		{RankKnight, 3},
		{RankKnave, 2},
		{RankSeven, 0},
		{RankSix, 0},
		{RankFive, 0},
		{RankFour, 0},
		{RankTwo, 0},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			if got := tt.rank.Points(); got != tt.points {
				t.Fatalf("expected %d points, got %d", tt.points, got)
			}
		})
	}
}

func TestStrengthOrder(t *testing.T) {
	ranks := Ranks()
	for i := 0; i < len(ranks); i++ {
		for j := i + 1; j < len(ranks); j++ {
			if !Stronger(ranks[i], ranks[j]) {
				t.Fatalf("expected %v to beat %v", ranks[i], ranks[j])
			}
			if Stronger(ranks[j], ranks[i]) {
				t.Fatalf("did not expect %v to beat %v", ranks[j], ranks[i])
			}
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	original := New()
	reference := New()

	Shuffle(original, rand.New(rand.NewSource(1)))

	for i := range original {
		if original[i] != reference[i] {
			t.Fatalf("shuffle mutated input at index %d", i)
		}
	}
}

func TestShufflePreservesCardSet(t *testing.T) {
	shuffled := Shuffle(New(), rand.New(rand.NewSource(7)))

	seen := make(map[Card]bool, len(shuffled))
	for _, c := range shuffled {
		seen[c] = true
	}
	if len(seen) != Size {
		t.Fatalf("expected %d distinct cards after shuffle, got %d", Size, len(seen))
	}
}

func TestShuffleSeedsDiffer(t *testing.T) {
	a := Shuffle(New(), rand.New(rand.NewSource(1)))
	b := Shuffle(New(), rand.New(rand.NewSource(2)))

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different orders")
	}
}
