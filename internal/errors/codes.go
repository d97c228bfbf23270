// Package errors maps domain failures to machine-readable error codes.
//
// The engine reports expected failures as sentinel errors; this package
// gives each failure kind a stable string code for logs and API consumers.
// Distinct kinds stay distinct: callers branch on the specific code.
package errors

import (
	"errors"

	"github.com/isakal/briskula/internal/game/domain"
	"github.com/isakal/briskula/internal/session"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unexpected error.
	CodeUnknown Code = "UNKNOWN"

	// Lobby-phase violations
	CodeGameAlreadyStarted Code = "GAME_ALREADY_STARTED"
	CodeGameFull           Code = "GAME_FULL"
	CodePlayerNameTaken    Code = "PLAYER_NAME_TAKEN"
	CodePlayerNotInGame    Code = "PLAYER_NOT_IN_GAME"
	CodeInvalidPlayerCount Code = "INVALID_PLAYER_COUNT"

	// Play-phase violations
	CodeGameNotStarted Code = "GAME_NOT_STARTED"
	CodeGameOver       Code = "GAME_OVER"
	CodeTrickComplete  Code = "TRICK_COMPLETE"
	CodeNotPlayersTurn Code = "NOT_PLAYERS_TURN"
	CodeCardNotInHand  Code = "CARD_NOT_IN_HAND"

	// Resolution violations
	CodeTrickNotComplete Code = "TRICK_NOT_COMPLETE"
	CodeGameNotComplete  Code = "GAME_NOT_COMPLETE"

	// Routing violations
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
	CodeSessionExists   Code = "SESSION_EXISTS"
)

// CodeOf maps an error to its code. Unknown errors map to CodeUnknown.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrGameAlreadyStarted):
		return CodeGameAlreadyStarted
	case errors.Is(err, domain.ErrGameFull):
		return CodeGameFull
	case errors.Is(err, domain.ErrPlayerNameTaken):
		return CodePlayerNameTaken
	case errors.Is(err, domain.ErrPlayerNotInGame):
		return CodePlayerNotInGame
	case errors.Is(err, domain.ErrInvalidPlayerCount):
		return CodeInvalidPlayerCount
	case errors.Is(err, domain.ErrGameNotStarted):
		return CodeGameNotStarted
	case errors.Is(err, domain.ErrGameOver):
		return CodeGameOver
	case errors.Is(err, domain.ErrTrickComplete):
		return CodeTrickComplete
	case errors.Is(err, domain.ErrNotPlayersTurn):
		return CodeNotPlayersTurn
	case errors.Is(err, domain.ErrCardNotInHand):
		return CodeCardNotInHand
	case errors.Is(err, domain.ErrTrickNotComplete):
		return CodeTrickNotComplete
	case errors.Is(err, domain.ErrGameNotComplete):
		return CodeGameNotComplete
	case errors.Is(err, session.ErrSessionNotFound):
		return CodeSessionNotFound
	case errors.Is(err, session.ErrSessionExists):
		return CodeSessionExists
	default:
		return CodeUnknown
	}
}

// IsCode checks whether the error maps to the specified code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
