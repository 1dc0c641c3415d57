package checkout

import (
	"sync"
	"time"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
)

// DefaultSettleDelay matches the simulated settlement delay of the mock
// payment flow. There is no real gateway call behind it.
const DefaultSettleDelay = 2 * time.Second

// Manager owns the in-flight checkout sessions. Each session has at most one
// pending settlement timer; abandoning a session cancels the timer so a
// discarded session is never mutated after the fact.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	timers      map[string]*time.Timer
	settleDelay time.Duration
	onSettled   func(*Session)
}

// NewManager creates a session registry. onSettled runs once per session
// after the settlement delay elapses; it may be nil.
func NewManager(settleDelay time.Duration, onSettled func(*Session)) *Manager {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &Manager{
		sessions:    make(map[string]*Session),
		timers:      make(map[string]*time.Timer),
		settleDelay: settleDelay,
		onSettled:   onSettled,
	}
}

// Create opens a new checkout session for the given user and plan.
func (m *Manager) Create(userID uint, plan plans.Plan) *Session {
	s := newSession(userID, plan)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Submit validates the selected method's fields. On validation failure the
// returned map is non-empty, the session stays in StateEnteringDetails and no
// settlement is scheduled. On success the session enters StateSubmitting and
// the settlement timer fires once after the configured delay. Submitting a
// session that is already settling returns ErrAlreadySubmitting; the submit
// action must stay disabled until the session settles.
func (m *Manager) Submit(id string) (map[string]string, error) {
	s, ok := m.Get(id)
	if !ok {
		return nil, ErrNoMethodSelected
	}

	s.mu.Lock()
	switch s.state {
	case StateSelectingMethod:
		s.mu.Unlock()
		return nil, ErrNoMethodSelected
	case StateSubmitting:
		s.mu.Unlock()
		return nil, ErrAlreadySubmitting
	case StateSucceeded:
		s.mu.Unlock()
		return nil, ErrAlreadySucceeded
	}

	errs := s.validate()
	if len(errs) > 0 {
		s.errors = errs
		s.mu.Unlock()
		return errs, nil
	}

	s.errors = map[string]string{}
	s.state = StateSubmitting
	s.mu.Unlock()

	m.mu.Lock()
	m.timers[id] = time.AfterFunc(m.settleDelay, func() { m.settle(id) })
	m.mu.Unlock()

	return nil, nil
}

// settle completes a pending submission. The settlement never fails: the
// mock flow has no gateway rejection path beyond client-side validation.
func (m *Manager) settle(id string) {
	m.mu.Lock()
	delete(m.timers, id)
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	if s.abandoned || s.state != StateSubmitting {
		s.mu.Unlock()
		return
	}
	s.state = StateSucceeded
	s.mu.Unlock()

	if m.onSettled != nil {
		m.onSettled(s)
	}
}

// Abandon discards a session, cancelling any pending settlement so a late
// timer cannot touch it. Used when the user navigates away mid-flow and on
// confirmation after success.
func (m *Manager) Abandon(id string) {
	m.mu.Lock()
	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.mu.Lock()
		s.abandoned = true
		s.mu.Unlock()
	}
}
