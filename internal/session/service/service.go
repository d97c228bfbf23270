// Package service exposes the per-session operation surface: create, join,
// leave, start, play, resolve, finalize, and the two read operations. It
// routes every call through the session directory to the owning actor and
// annotates each operation with a trace span. The wire format is a caller
// concern; requests and responses here are plain Go values.
package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/isakal/briskula/internal/core/deck"
	apierrors "github.com/isakal/briskula/internal/errors"
	"github.com/isakal/briskula/internal/game/domain"
	"github.com/isakal/briskula/internal/id"
	"github.com/isakal/briskula/internal/session"
)

const tracerName = "github.com/isakal/briskula/internal/session/service"

// maxCodeAttempts bounds session code regeneration. Codes are drawn from a
// 32^6 space, so hitting the bound means something is badly wrong.
const maxCodeAttempts = 64

// Service dispatches game operations to session actors by identifier.
type Service struct {
	dir     *session.Directory
	tracer  trace.Tracer
	newCode func() (string, error)
}

// New creates a Service backed by the given directory.
func New(dir *session.Directory) *Service {
	return &Service{
		dir:     dir,
		tracer:  otel.Tracer(tracerName),
		newCode: id.NewCode,
	}
}

// CreateSessionResponse is the reply to a successful session creation.
type CreateSessionResponse struct {
	// SessionID is the human-shareable code other players join with.
	SessionID string
	// View is the creator's initial view of the lobby.
	View domain.FilteredView
}

// CreateSession starts a new session actor with the creator seated and
// registers it under a fresh code, regenerating on collision until the
// directory accepts it.
func (s *Service) CreateSession(ctx context.Context, player string) (_ CreateSessionResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "briskula.create_session")
	defer func() { endSpan(span, err) }()

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return CreateSessionResponse{}, fmt.Errorf("generate session code: %w", err)
		}

		sess := session.New(code, player)
		if _, err := s.dir.Register(sess); err != nil {
			sess.Close()
			continue
		}

		span.SetAttributes(attribute.String("session.id", code))
		view, err := sess.View(ctx, player)
		if err != nil {
			return CreateSessionResponse{}, err
		}
		return CreateSessionResponse{SessionID: code, View: view}, nil
	}
	return CreateSessionResponse{}, fmt.Errorf("no free session code after %d attempts", maxCodeAttempts)
}

// Join seats a player in the session and returns the joiner's view.
func (s *Service) Join(ctx context.Context, sessionID, player string) (_ domain.FilteredView, err error) {
	ctx, span := s.startSpan(ctx, "briskula.join", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return domain.FilteredView{}, err
	}
	return sess.Join(ctx, player)
}

// Leave unseats a player from the session and returns the leaver's view.
func (s *Service) Leave(ctx context.Context, sessionID, player string) (_ domain.FilteredView, err error) {
	ctx, span := s.startSpan(ctx, "briskula.leave", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return domain.FilteredView{}, err
	}
	return sess.Leave(ctx, player)
}

// Start deals the session's game into play and returns the full record.
func (s *Service) Start(ctx context.Context, sessionID string) (_ domain.Game, err error) {
	ctx, span := s.startSpan(ctx, "briskula.start", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return domain.Game{}, err
	}
	return sess.Start(ctx)
}

// PlayCard plays a card for the given player and returns the outcome with
// the acting player's view.
func (s *Service) PlayCard(ctx context.Context, sessionID, player string, card deck.Card) (_ session.PlayResult, err error) {
	ctx, span := s.startSpan(ctx, "briskula.play_card", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return session.PlayResult{}, err
	}
	return sess.PlayCard(ctx, player, card)
}

// ResolveTrick resolves the completed trick in the session.
func (s *Service) ResolveTrick(ctx context.Context, sessionID string) (_ domain.ResolveOutcome, err error) {
	ctx, span := s.startSpan(ctx, "briskula.resolve_trick", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return domain.ResolveOutcomeUnspecified, err
	}
	return sess.ResolveTrick(ctx)
}

// Finalize tallies the completed game's scores, keyed by player or team.
func (s *Service) Finalize(ctx context.Context, sessionID string) (_ map[string]int, err error) {
	ctx, span := s.startSpan(ctx, "briskula.finalize", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Finalize(ctx)
}

// GetFullState returns the unfiltered game record for diagnostics.
func (s *Service) GetFullState(ctx context.Context, sessionID string) (_ domain.Game, err error) {
	ctx, span := s.startSpan(ctx, "briskula.get_full_state", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return domain.Game{}, err
	}
	return sess.FullState(ctx)
}

// GetView returns the filtered view of the session for the given player.
func (s *Service) GetView(ctx context.Context, sessionID, player string) (_ domain.FilteredView, err error) {
	ctx, span := s.startSpan(ctx, "briskula.get_view", sessionID)
	defer func() { endSpan(span, err) }()

	sess, err := s.dir.Lookup(sessionID)
	if err != nil {
		return domain.FilteredView{}, err
	}
	return sess.View(ctx, player)
}

func (s *Service) startSpan(ctx context.Context, name, sessionID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("session.id", sessionID)))
}

// endSpan closes the span, tagging expected failures with their code.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(apierrors.CodeOf(err)))
	}
	span.End()
}
