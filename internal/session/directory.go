package session

import "sync"

// Directory is the process-wide registry of live sessions. It only
// coordinates registration and lookup; per-session serialization is the
// actor's job, so unrelated sessions never contend beyond the map itself.
type Directory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{sessions: make(map[string]*Session)}
}

// Register adds s under its identifier, atomically refusing duplicates.
// When the identifier is already registered, the existing session is
// returned alongside ErrSessionExists and the registration does not
// overwrite it.
func (d *Directory) Register(s *Session) (*Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.sessions[s.id]; ok {
		return existing, ErrSessionExists
	}
	d.sessions[s.id] = s
	return s, nil
}

// Lookup resolves an identifier to its live session. Identifiers whose
// actor has terminated are dropped and reported as not found.
func (d *Directory) Lookup(id string) (*Session, error) {
	d.mu.RLock()
	s, ok := d.sessions[id]
	d.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	select {
	case <-s.closed:
		d.Remove(id)
		return nil, ErrSessionNotFound
	default:
		return s, nil
	}
}

// Remove drops the identifier from the directory. The session itself is
// not closed; teardown is the caller's responsibility.
func (d *Directory) Remove(id string) {
	d.mu.Lock()
	delete(d.sessions, id)
	d.mu.Unlock()
}

// Len reports how many sessions are currently registered.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}
