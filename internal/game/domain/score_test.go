package domain

import (
	"errors"
	"testing"

	"github.com/isakal/briskula/internal/core/deck"
)

// finishedGame splits the full deck between piles so scores always total 120.
func finishedGame(players []string, teams []Team, captured map[string][]deck.Card) Game {
	g := Game{
		Phase:    PhaseFinished,
		Players:  players,
		Teams:    teams,
		Hands:    make(map[string][]deck.Card, len(players)),
		Captured: captured,
	}
	for _, p := range players {
		g.Hands[p] = []deck.Card{}
	}
	return g
}

func TestFinalizeRequiresCompletedGame(t *testing.T) {
	withDeck := mustStart(t, "ana", "bruno")

	withHand := finishedGame([]string{"ana", "bruno"}, nil, map[string][]deck.Card{})
	withHand.Hands["ana"] = []deck.Card{card(deck.SuitCups, deck.RankAce)}

	tests := []struct {
		name string
		game Game
	}{
		{name: "undealt cards remain", game: withDeck},
		{name: "cards remain in hand", game: withHand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Finalize(tt.game)
			if !errors.Is(err, ErrGameNotComplete) {
				t.Fatalf("expected %v, got %v", ErrGameNotComplete, err)
			}
		})
	}
}

func TestFinalizeScoresPerPlayer(t *testing.T) {
	cards := deck.New()
	// ana takes the whole coins suit (11+10+4+3+2 = 30 points), bruno the rest.
	g := finishedGame([]string{"ana", "bruno"}, nil, map[string][]deck.Card{
		"ana":   append([]deck.Card(nil), cards[:10]...),
		"bruno": append([]deck.Card(nil), cards[10:]...),
	})

	scores, err := Finalize(g)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if scores["ana"] != 30 {
		t.Fatalf("expected ana to score 30, got %d", scores["ana"])
	}
	if scores["bruno"] != 90 {
		t.Fatalf("expected bruno to score 90, got %d", scores["bruno"])
	}
	if scores["ana"]+scores["bruno"] != deck.TotalPoints {
		t.Fatalf("expected scores to total %d, got %d",
			deck.TotalPoints, scores["ana"]+scores["bruno"])
	}
}

func TestFinalizeScoresPerTeam(t *testing.T) {
	cards := deck.New()
	players := []string{"ana", "bruno", "carla", "dino"}
	teams := []Team{
		{Name: TeamOne, Members: []string{"ana", "carla"}},
		{Name: TeamTwo, Members: []string{"bruno", "dino"}},
	}
	// One suit per player; every suit is worth 30 points.
	g := finishedGame(players, teams, map[string][]deck.Card{
		"ana":   append([]deck.Card(nil), cards[:10]...),
		"bruno": append([]deck.Card(nil), cards[10:20]...),
		"carla": append([]deck.Card(nil), cards[20:30]...),
		"dino":  append([]deck.Card(nil), cards[30:]...),
	})

	scores, err := Finalize(g)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if len(scores) != 2 {
		t.Fatalf("expected 2 team scores, got %v", scores)
	}
	if scores[TeamOne] != 60 || scores[TeamTwo] != 60 {
		t.Fatalf("expected 60 points per team, got %v", scores)
	}
}

func TestFinalizeEmptyPilesScoreZero(t *testing.T) {
	cards := deck.New()
	g := finishedGame([]string{"ana", "bruno"}, nil, map[string][]deck.Card{
		"ana": append([]deck.Card(nil), cards...),
	})

	scores, err := Finalize(g)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if scores["ana"] != deck.TotalPoints {
		t.Fatalf("expected ana to score %d, got %d", deck.TotalPoints, scores["ana"])
	}
	if scores["bruno"] != 0 {
		t.Fatalf("expected bruno to score 0, got %d", scores["bruno"])
	}
}
