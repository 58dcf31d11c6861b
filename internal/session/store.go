// Package session holds per-session state: the Pro entitlement flag and the
// daily scan gate. Sessions live in memory only and reset on restart; nothing
// else about a user is retained between uploads.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO date format used for the daily scan gate.
const DateLayout = "2006-01-02"

// Session is the state for one anonymous user session.
type Session struct {
	ID                uuid.UUID
	Pro               bool
	LastScanDate      string // ISO date of the last successful scan
	PendingCheckoutID string // checkout awaiting provider verification
	CreatedAt         time.Time
}

// Store is an in-memory session store. Expired sessions are evicted by a
// background janitor; Stop must be called on shutdown.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewStore creates a session store whose sessions expire after ttl.
// A cleanup goroutine runs every cleanupInterval; pass zero to disable it
// (useful in tests).
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}

	if cleanupInterval > 0 {
		s.cleanupTicker = time.NewTicker(cleanupInterval)
		s.cleanupStop = make(chan struct{})
		go s.cleanup()
	}

	return s
}

// Create registers a new session and returns a copy of it.
func (s *Store) Create() Session {
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return *sess
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(id uuid.UUID) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// AllowScan reports whether the session may run a scan on the given day.
// Pro sessions scan without limit; free sessions get one scan per calendar day.
func (s *Store) AllowScan(id uuid.UUID, today string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	if sess.Pro {
		return true
	}
	return sess.LastScanDate != today
}

// MarkScanned records a successful scan for the given day.
func (s *Store) MarkScanned(id uuid.UUID, today string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.LastScanDate = today
	}
}

// GrantPro flips the session's entitlement flag. Callers must verify payment
// with the provider first; the flag is never set from a redirect parameter.
func (s *Store) GrantPro(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.Pro = true
		sess.PendingCheckoutID = ""
	}
}

// SetPendingCheckout records the checkout ID awaiting verification.
func (s *Store) SetPendingCheckout(id uuid.UUID, checkoutID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.PendingCheckoutID = checkoutID
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// cleanup evicts expired sessions until Stop is called.
func (s *Store) cleanup() {
	for {
		select {
		case <-s.cleanupTicker.C:
			s.evictExpired()
		case <-s.cleanupStop:
			return
		}
	}
}

// evictExpired removes sessions older than the store TTL.
func (s *Store) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// Stop stops the cleanup goroutine.
func (s *Store) Stop() {
	if s.cleanupTicker != nil {
		s.cleanupTicker.Stop()
	}
	if s.cleanupStop != nil {
		close(s.cleanupStop)
	}
}
