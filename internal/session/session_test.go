package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/isakal/briskula/internal/game/domain"
)

func TestSessionSeatsCreator(t *testing.T) {
	s := New("ABC123", "ana")
	defer s.Close()

	view, err := s.View(context.Background(), "ana")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Phase != domain.PhaseLobby {
		t.Fatalf("expected lobby phase, got %v", view.Phase)
	}
	if len(view.Players) != 1 || view.Players[0] != "ana" {
		t.Fatalf("expected creator seated, got %v", view.Players)
	}
}

func TestJoinRepliesWithJoinerView(t *testing.T) {
	s := New("ABC123", "ana")
	defer s.Close()

	view, err := s.Join(context.Background(), "bruno")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(view.Players) != 2 || view.Players[1] != "bruno" {
		t.Fatalf("expected bruno seated second, got %v", view.Players)
	}
}

func TestDomainErrorsPassThrough(t *testing.T) {
	s := New("ABC123", "ana")
	defer s.Close()

	if _, err := s.Join(context.Background(), "ana"); !errors.Is(err, domain.ErrPlayerNameTaken) {
		t.Fatalf("expected %v, got %v", domain.ErrPlayerNameTaken, err)
	}
	if _, err := s.Start(context.Background()); !errors.Is(err, domain.ErrInvalidPlayerCount) {
		t.Fatalf("expected %v, got %v", domain.ErrInvalidPlayerCount, err)
	}
}

func TestRejectedOperationLeavesStateIntact(t *testing.T) {
	s := New("ABC123", "ana")
	defer s.Close()

	before, err := s.FullState(context.Background())
	if err != nil {
		t.Fatalf("full state: %v", err)
	}

	if _, err := s.Start(context.Background()); err == nil {
		t.Fatal("expected start of a single-seat game to fail")
	}

	after, err := s.FullState(context.Background())
	if err != nil {
		t.Fatalf("full state: %v", err)
	}
	if after.Phase != before.Phase || len(after.Players) != len(before.Players) {
		t.Fatal("expected state unchanged after rejected operation")
	}
}

func TestFullGameThroughSession(t *testing.T) {
	ctx := context.Background()
	s := New("ABC123", "ana")
	defer s.Close()

	if _, err := s.Join(ctx, "bruno"); err != nil {
		t.Fatalf("join: %v", err)
	}
	g, err := s.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.Phase != domain.PhasePlaying {
		t.Fatalf("expected playing phase, got %v", g.Phase)
	}

	for {
		state, err := s.FullState(ctx)
		if err != nil {
			t.Fatalf("full state: %v", err)
		}

		result, err := s.PlayCard(ctx, state.CurrentPlayer, state.Hands[state.CurrentPlayer][0])
		if err != nil {
			t.Fatalf("play card: %v", err)
		}
		if result.Outcome != domain.PlayTrickComplete {
			continue
		}

		outcome, err := s.ResolveTrick(ctx)
		if err != nil {
			t.Fatalf("resolve trick: %v", err)
		}
		if outcome == domain.ResolveGameComplete {
			break
		}
	}

	scores, err := s.Finalize(ctx)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if scores["ana"]+scores["bruno"] != 120 {
		t.Fatalf("expected scores to total 120, got %v", scores)
	}
}

func TestConcurrentJoinsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := New("ABC123", "ana")
	defer s.Close()

	const callers = 16
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Join(ctx, fmt.Sprintf("player-%d", i))
		}(i)
	}
	wg.Wait()

	joined := 0
	for _, err := range errs {
		if err == nil {
			joined++
		} else if !errors.Is(err, domain.ErrGameFull) {
			t.Fatalf("unexpected join error: %v", err)
		}
	}
	// The lobby holds four seats and the creator has one.
	if joined != 3 {
		t.Fatalf("expected exactly 3 successful joins, got %d", joined)
	}

	state, err := s.FullState(ctx)
	if err != nil {
		t.Fatalf("full state: %v", err)
	}
	if len(state.Players) != 4 {
		t.Fatalf("expected 4 seated players, got %v", state.Players)
	}
}

func TestClosedSessionRejectsRequests(t *testing.T) {
	s := New("ABC123", "ana")
	s.Close()

	if _, err := s.View(context.Background(), "ana"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected %v, got %v", ErrSessionNotFound, err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := New("ABC123", "ana")
	s.Close()
	s.Close()
}

func TestCancelledContextAbortsWait(t *testing.T) {
	s := New("ABC123", "ana")
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.View(ctx, "ana"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
