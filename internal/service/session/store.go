package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// session is the in-memory state of one run through a deck. All fields after
// mu are guarded by mu; the store hands out *session and each engine
// operation locks it for its full duration, serializing operations per
// (user, deck) pair.
type session struct {
	mu sync.Mutex

	userID uuid.UUID
	deckID uuid.UUID
	method domain.SessionMethod

	// queue is the working queue fixed at start time. index points at the
	// next card to serve; index == len(queue) means Completed.
	queue []uuid.UUID
	index int

	// outcomes maps viewed card ids to the recorded outcome.
	outcomes map[uuid.UUID]domain.Outcome
	// stars carries the rating of every queued card, captured at start and
	// overlaid with any rating changes made during the session.
	stars map[uuid.UUID]int

	history *history

	startedAt time.Time
	passed    int
	failed    int
	skipped   int

	// logged is set once the aggregate record has been persisted.
	logged bool
	// replaced is set when a newer StartSession swapped this session out.
	// Operations that acquire mu afterwards must fail with ErrNoActiveSession.
	replaced bool
}

func (s *session) completed() bool {
	return s.index >= len(s.queue)
}

// removeAt drops the card at position i from the queue without advancing
// the pointer. Used when a card turns out to be deleted mid-session.
func (s *session) removeAt(i int) {
	s.queue = append(s.queue[:i], s.queue[i+1:]...)
	if s.index > i {
		s.index--
	}
}

// storeKey identifies at most one live session.
type storeKey struct {
	userID uuid.UUID
	deckID uuid.UUID
}

// store is the keyed session store. It only guards the map itself; per-session
// serialization is the session's own mutex.
type store struct {
	mu       sync.Mutex
	sessions map[storeKey]*session
}

func newStore() *store {
	return &store{sessions: make(map[storeKey]*session)}
}

func (st *store) get(userID, deckID uuid.UUID) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[storeKey{userID: userID, deckID: deckID}]
	return s, ok
}

// swap installs the new session and returns the one it displaced, if any.
func (st *store) swap(s *session) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	k := storeKey{userID: s.userID, deckID: s.deckID}
	old, ok := st.sessions[k]
	st.sessions[k] = s
	return old, ok
}

// remove deletes the session for the key and returns it, if any.
func (st *store) remove(userID, deckID uuid.UUID) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	k := storeKey{userID: userID, deckID: deckID}
	s, ok := st.sessions[k]
	if ok {
		delete(st.sessions, k)
	}
	return s, ok
}
