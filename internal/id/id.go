// Package id provides utilities for generating session identifiers.
//
// Long identifiers are UUIDv4 bytes encoded as base32 (RFC 4648) with no
// padding: 26 characters, lowercase, safe for URLs and file paths. Session
// codes are a short uppercase prefix of the same encoding, meant to be read
// aloud and typed by players; uniqueness is enforced by the session
// directory, not by the generator.
package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CodeLength is the length of a human-shareable session code.
const CodeLength = 6

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID generates a 26-character lowercase identifier.
func NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(u[:])), nil
}

// NewCode generates a short uppercase session code. Codes can collide;
// callers must retry against the directory until registration succeeds.
func NewCode() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return encoding.EncodeToString(u[:])[:CodeLength], nil
}
