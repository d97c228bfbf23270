// Package domain implements the Briskula game engine as pure state
// transitions over an immutable Game record.
//
// # Game record
//
// A Game moves through three phases: lobby, playing, finished. The phase
// only ever advances. In the lobby the record tracks seating; once started
// it also tracks the deck, the revealed trump card, per-player hands and
// captured piles, the table of the current trick, and the turn order.
//
// # Purity
//
// Every operation takes a Game by value, never mutates it, and returns a
// fresh record or a sentinel error. A rejected operation leaves the input
// untouched, so callers can hold on to the previous record safely. The one
// source of nondeterminism, the shuffle in Start, takes an injectable RNG.
//
// # Conservation
//
// For the lifetime of a started game the union of the deck, all hands, the
// table, and all captured piles is exactly the full 40-card deck, with no
// duplicates and no omissions.
package domain
