package domain

import (
	"errors"

	"github.com/isakal/briskula/internal/core/deck"
)

// Phase describes the lifecycle state of a game.
type Phase int

const (
	// PhaseUnspecified represents an invalid phase value.
	PhaseUnspecified Phase = iota
	// PhaseLobby indicates the game is gathering players.
	PhaseLobby
	// PhasePlaying indicates cards are being dealt and played.
	PhasePlaying
	// PhaseFinished indicates the last trick has been resolved.
	PhaseFinished
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unspecified"
	}
}

// MaxPlayers is the seat limit for a lobby.
const MaxPlayers = 4

// Team names used for four-player scoring.
const (
	TeamOne = "team1"
	TeamTwo = "team2"
)

var (
	// ErrGameAlreadyStarted indicates a lobby operation against a started game.
	ErrGameAlreadyStarted = errors.New("game already started")
	// ErrGameFull indicates the lobby has no free seats.
	ErrGameFull = errors.New("game is full")
	// ErrPlayerNameTaken indicates the player identifier is already seated.
	ErrPlayerNameTaken = errors.New("player name already taken")
	// ErrPlayerNotInGame indicates the player is not seated.
	ErrPlayerNotInGame = errors.New("player is not in the game")
	// ErrInvalidPlayerCount indicates the game cannot start with the current seats.
	ErrInvalidPlayerCount = errors.New("game requires exactly 2 or 4 players")
	// ErrGameNotStarted indicates a play against a game still in the lobby.
	ErrGameNotStarted = errors.New("game has not started")
	// ErrGameOver indicates a play against a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrTrickComplete indicates a play into a full, unresolved trick.
	ErrTrickComplete = errors.New("trick is complete and awaiting resolution")
	// ErrNotPlayersTurn indicates the acting player is not the current player.
	ErrNotPlayersTurn = errors.New("not the player's turn")
	// ErrCardNotInHand indicates the played card is not held by the player.
	ErrCardNotInHand = errors.New("card is not in the player's hand")
	// ErrTrickNotComplete indicates a resolution attempt before every seat played.
	ErrTrickNotComplete = errors.New("trick is not complete")
	// ErrGameNotComplete indicates a scoring attempt before all cards were played.
	ErrGameNotComplete = errors.New("game is not complete")
)

// Play is one card laid on the table during the current trick. The first
// entry on the table is the lead.
type Play struct {
	Player string
	Card   deck.Card
}

// Team pairs the two seats that score together in a four-player game.
// Partners sit across from each other.
type Team struct {
	Name    string
	Members []string
}

// Game is the authoritative state of one session. Hands, the deck, and the
// table are ordered sequences; draw order and lead-card identity both
// matter for the rules.
type Game struct {
	Phase   Phase
	Players []string
	Teams   []Team // nil for two-player games

	Deck      []deck.Card
	TrumpCard deck.Card
	Hands     map[string][]deck.Card
	Captured  map[string][]deck.Card

	Table     []Play
	TurnOrder []string
	// CurrentPlayer is the head of TurnOrder, or empty while a full trick
	// awaits resolution.
	CurrentPlayer string
}

// Create builds a lobby-phase game with a single seated player.
func Create(player string) Game {
	return Game{
		Phase:   PhaseLobby,
		Players: []string{player},
	}
}

// Join seats a player in a lobby-phase game, preserving arrival order.
func Join(g Game, player string) (Game, error) {
	if g.Phase != PhaseLobby {
		return Game{}, ErrGameAlreadyStarted
	}
	if len(g.Players) >= MaxPlayers {
		return Game{}, ErrGameFull
	}
	for _, p := range g.Players {
		if p == player {
			return Game{}, ErrPlayerNameTaken
		}
	}

	next := g.Clone()
	next.Players = append(next.Players, player)
	return next, nil
}

// Leave removes a seated player from a lobby-phase game, preserving the
// relative order of the remaining players.
func Leave(g Game, player string) (Game, error) {
	if g.Phase != PhaseLobby {
		return Game{}, ErrGameAlreadyStarted
	}
	seat := -1
	for i, p := range g.Players {
		if p == player {
			seat = i
			break
		}
	}
	if seat < 0 {
		return Game{}, ErrPlayerNotInGame
	}

	next := g.Clone()
	next.Players = append(next.Players[:seat], next.Players[seat+1:]...)
	return next, nil
}

// Clone deep-copies the record. Transitions clone before mutating so they
// never alias their input; callers handing records across goroutines should
// clone for the same reason.
func (g Game) Clone() Game {
	next := g
	next.Players = append([]string(nil), g.Players...)
	next.Deck = append([]deck.Card(nil), g.Deck...)
	next.Table = append([]Play(nil), g.Table...)
	next.TurnOrder = append([]string(nil), g.TurnOrder...)

	if g.Teams != nil {
		next.Teams = make([]Team, len(g.Teams))
		for i, team := range g.Teams {
			next.Teams[i] = Team{
				Name:    team.Name,
				Members: append([]string(nil), team.Members...),
			}
		}
	}
	if g.Hands != nil {
		next.Hands = make(map[string][]deck.Card, len(g.Hands))
		for p, hand := range g.Hands {
			next.Hands[p] = append([]deck.Card(nil), hand...)
		}
	}
	if g.Captured != nil {
		next.Captured = make(map[string][]deck.Card, len(g.Captured))
		for p, pile := range g.Captured {
			next.Captured[p] = append([]deck.Card(nil), pile...)
		}
	}
	return next
}
