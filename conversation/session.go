package conversation

import (
	"sync"

	"github.com/lionmotors/carbot/search"
)

// State identifies a step of the guided search dialog.
type State string

const (
	// StateIdle means no search flow is active for the user.
	StateIdle State = "idle"
	// StateAwaitFuel waits for a fuel type label.
	StateAwaitFuel State = "await_fuel"
	// StateAwaitBrandModel waits for a brand/model substring or skip.
	StateAwaitBrandModel State = "await_brand_model"
	// StateAwaitPrice waits for a price band selection.
	StateAwaitPrice State = "await_price"
	// StateAwaitCategory waits for the Market/Auction choice.
	StateAwaitCategory State = "await_category"
)

// session is the per-user dialog record: current state plus the criteria
// accumulated so far. It exists only in process memory.
type session struct {
	state    State
	criteria search.Criteria
}

// sessionStore maps user IDs to their sessions. Each engine instance owns its
// own store, so tests and multiple engines stay isolated. Events for one user
// are processed sequentially by the transport; the lock only guards the map
// against concurrent access from different users' events.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*session)}
}

// state returns the user's current FSM state, idle when no session exists.
func (s *sessionStore) state(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess.state
	}
	return StateIdle
}

// begin starts a fresh search flow, discarding any in-progress session.
// Entering search always resets to the first step with empty criteria.
func (s *sessionStore) begin(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &session{state: StateAwaitFuel}
}

// advance stores a criteria mutation together with the next state.
func (s *sessionStore) advance(userID int64, next State, mutate func(*search.Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{}
		s.sessions[userID] = sess
	}
	if mutate != nil {
		mutate(&sess.criteria)
	}
	sess.state = next
}

// take snapshots the accumulated criteria and clears the session in the same
// transaction, so a failure later in the flow cannot leave stale criteria.
func (s *sessionStore) take(userID int64) search.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return search.Criteria{}
	}
	criteria := sess.criteria
	delete(s.sessions, userID)
	return criteria
}

// clear drops the user's session entirely, returning them to idle.
func (s *sessionStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// active reports whether the user is mid-flow.
func (s *sessionStore) active(userID int64) bool {
	return s.state(userID) != StateIdle
}

// count returns the number of in-progress sessions.
func (s *sessionStore) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
