// Package session gives each live game an isolated, serialized owner.
//
// A Session is a small actor: one goroutine owns one game record and
// applies requests against it strictly in arrival order, so no two
// operations on the same session ever interleave. Different sessions share
// nothing and run fully in parallel. The Directory is the process-wide map
// from session identifiers to live actors, with atomic create-if-absent
// registration.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/isakal/briskula/internal/core/deck"
	"github.com/isakal/briskula/internal/game/domain"
)

var (
	// ErrSessionNotFound indicates an unknown or terminated session identifier.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists indicates the identifier is already registered.
	ErrSessionExists = errors.New("session id already registered")
)

// requestQueueSize bounds how many requests can be queued on one session.
const requestQueueSize = 32

type request struct {
	apply func(g *domain.Game) (any, error)
	reply chan response
}

type response struct {
	value any
	err   error
}

// Session owns one game record and serializes all access to it.
type Session struct {
	id        string
	requests  chan request
	closed    chan struct{}
	closeOnce sync.Once
}

// New creates a session owning a fresh lobby game with the creator seated,
// and starts its actor goroutine.
func New(id, creator string) *Session {
	s := &Session{
		id:       id,
		requests: make(chan request, requestQueueSize),
		closed:   make(chan struct{}),
	}
	go s.loop(domain.Create(creator))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Close terminates the actor. The owned game is lost; pending and future
// requests fail with ErrSessionNotFound.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}

func (s *Session) loop(g domain.Game) {
	for {
		select {
		case req := <-s.requests:
			value, err := req.apply(&g)
			req.reply <- response{value: value, err: err}
		case <-s.closed:
			return
		}
	}
}

// do submits one operation and waits for its reply. Once a request is
// accepted, its mutation applies even if the caller stops waiting: the
// reply channel is buffered so the actor never blocks on an abandoned
// caller.
func (s *Session) do(ctx context.Context, apply func(*domain.Game) (any, error)) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := request{apply: apply, reply: make(chan response, 1)}
	select {
	case s.requests <- req:
	case <-s.closed:
		return nil, ErrSessionNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res.value, res.err
	case <-s.closed:
		return nil, ErrSessionNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Join seats a player and returns the joiner's view of the game.
func (s *Session) Join(ctx context.Context, player string) (domain.FilteredView, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		next, err := domain.Join(*g, player)
		if err != nil {
			return nil, err
		}
		*g = next
		return domain.ProjectView(next, player), nil
	})
	if err != nil {
		return domain.FilteredView{}, err
	}
	return value.(domain.FilteredView), nil
}

// Leave unseats a player and returns the leaver's view of the game.
func (s *Session) Leave(ctx context.Context, player string) (domain.FilteredView, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		next, err := domain.Leave(*g, player)
		if err != nil {
			return nil, err
		}
		*g = next
		return domain.ProjectView(next, player), nil
	})
	if err != nil {
		return domain.FilteredView{}, err
	}
	return value.(domain.FilteredView), nil
}

// Start deals the game into play and returns the full record.
func (s *Session) Start(ctx context.Context) (domain.Game, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		next, err := domain.Start(*g, nil)
		if err != nil {
			return nil, err
		}
		*g = next
		return next.Clone(), nil
	})
	if err != nil {
		return domain.Game{}, err
	}
	return value.(domain.Game), nil
}

// PlayResult is the reply to a successful card play.
type PlayResult struct {
	Outcome domain.PlayOutcome
	// View is the acting player's view after the play.
	View domain.FilteredView
}

// PlayCard plays a card for the given player.
func (s *Session) PlayCard(ctx context.Context, player string, card deck.Card) (PlayResult, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		next, outcome, err := domain.PlayCard(*g, player, card)
		if err != nil {
			return nil, err
		}
		*g = next
		return PlayResult{Outcome: outcome, View: domain.ProjectView(next, player)}, nil
	})
	if err != nil {
		return PlayResult{}, err
	}
	return value.(PlayResult), nil
}

// ResolveTrick resolves the completed trick on the table.
func (s *Session) ResolveTrick(ctx context.Context) (domain.ResolveOutcome, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		next, outcome, err := domain.ResolveTrick(*g)
		if err != nil {
			return nil, err
		}
		*g = next
		return outcome, nil
	})
	if err != nil {
		return domain.ResolveOutcomeUnspecified, err
	}
	return value.(domain.ResolveOutcome), nil
}

// Finalize tallies the completed game's scores without mutating the record.
func (s *Session) Finalize(ctx context.Context) (map[string]int, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		return domain.Finalize(*g)
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]int), nil
}

// FullState returns the unfiltered game record. Administrative and
// diagnostic use only; players should go through View.
func (s *Session) FullState(ctx context.Context) (domain.Game, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		return g.Clone(), nil
	})
	if err != nil {
		return domain.Game{}, err
	}
	return value.(domain.Game), nil
}

// View returns the filtered view of the game for the given player.
func (s *Session) View(ctx context.Context, player string) (domain.FilteredView, error) {
	value, err := s.do(ctx, func(g *domain.Game) (any, error) {
		return domain.ProjectView(*g, player), nil
	})
	if err != nil {
		return domain.FilteredView{}, err
	}
	return value.(domain.FilteredView), nil
}
