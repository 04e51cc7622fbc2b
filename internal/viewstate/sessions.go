package viewstate

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for an unknown or expired session id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned by Create when the registry is full.
	ErrTooManySessions = errors.New("too many active sessions")
)

const (
	DefaultMaxSessions = 10000
	DefaultIdleTTL     = 2 * time.Hour
)

// Option configures a Sessions registry.
type Option func(*Sessions)

// WithMaxSessions caps the number of live sessions. n <= 0 keeps the default.
func WithMaxSessions(n int) Option {
	return func(s *Sessions) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithIdleTTL sets how long a session survives without being read or
// written. d <= 0 keeps the default.
func WithIdleTTL(d time.Duration) Option {
	return func(s *Sessions) {
		if d > 0 {
			s.ttl = d
		}
	}
}

type session struct {
	state    *ViewState
	lastSeen atomic.Int64 // unix nanoseconds
}

// Sessions holds view states for concurrent readers, keyed by session id.
// Everything lives in memory and is gone when the process exits. Idle
// sessions expire and are swept when a new one needs room.
type Sessions struct {
	mu     sync.RWMutex
	states map[string]*session
	max    int
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions returns an empty registry.
func NewSessions(opts ...Option) *Sessions {
	s := &Sessions{
		states: make(map[string]*session),
		max:    DefaultMaxSessions,
		ttl:    DefaultIdleTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new view state and returns its snapshot. When the
// registry is full, expired sessions are swept first; if it is still full
// ErrTooManySessions is returned.
func (s *Sessions) Create(pillarID int, firstSection string) (Snapshot, error) {
	id := uuid.New().String()
	sess := &session{state: New(pillarID, firstSection)}
	now := s.now()
	sess.lastSeen.Store(now.UnixNano())

	s.mu.Lock()
	if len(s.states) >= s.max {
		s.sweepLocked(now)
	}
	if len(s.states) >= s.max {
		s.mu.Unlock()
		return Snapshot{}, ErrTooManySessions
	}
	s.states[id] = sess
	s.mu.Unlock()

	return snapshotOf(id, sess.state), nil
}

// Get returns a snapshot of the session.
func (s *Sessions) Get(id string) (Snapshot, error) {
	var snap Snapshot
	err := s.View(id, func(v *ViewState) {
		snap = snapshotOf(id, v)
	})
	return snap, err
}

// View runs fn on the session under the read lock. fn must not modify the
// state.
func (s *Sessions) View(id string, fn func(*ViewState)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.liveLocked(id)
	if !ok {
		return ErrSessionNotFound
	}
	fn(sess.state)
	return nil
}

// Update applies fn to the session under the write lock. If fn returns an
// error the state is left as fn left it and the error is returned.
func (s *Sessions) Update(id string, fn func(*ViewState) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.liveLocked(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if err := fn(sess.state); err != nil {
		return Snapshot{}, err
	}
	return snapshotOf(id, sess.state), nil
}

// Delete removes the session.
func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.liveLocked(id); !ok {
		return ErrSessionNotFound
	}
	delete(s.states, id)
	return nil
}

// Sweep drops every expired session and returns how many were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// Len returns the number of stored sessions, including expired ones that
// have not been swept yet.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// liveLocked looks up an unexpired session and marks it as seen. The caller
// holds s.mu in either mode; lastSeen is atomic for that reason.
func (s *Sessions) liveLocked(id string) (*session, bool) {
	sess, ok := s.states[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		return nil, false
	}
	sess.lastSeen.Store(now.UnixNano())
	return sess, true
}

func (s *Sessions) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range s.states {
		if s.expired(sess, now) {
			delete(s.states, id)
			n++
		}
	}
	return n
}

func (s *Sessions) expired(sess *session, now time.Time) bool {
	return now.Sub(time.Unix(0, sess.lastSeen.Load())) > s.ttl
}

func snapshotOf(id string, v *ViewState) Snapshot {
	snap := v.Snapshot()
	snap.SessionID = id
	return snap
}
