package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rr-simulator/internal/core"
	"rr-simulator/internal/schedulers"
)

var (
	ErrSessionNotFound = errors.New("step session not found")
	ErrTooManySessions = errors.New("too many step sessions")
)

// State describes a session without advancing it.
type State struct {
	SessionID   string
	TimeQuantum int
	Processes   []core.Process
	Time        int
	Queue       []core.QueueEntry
	Finished    bool
}

// StepReply is one step of a session. Outcome is set once the run is done.
type StepReply struct {
	SessionID   string
	TimeQuantum int
	schedulers.StepResult
	Outcome *schedulers.Outcome
}

type session struct {
	id        string
	mu        sync.Mutex
	stepper   *schedulers.Stepper
	processes []core.Process
	lastUsed  time.Time
}

func (s *session) state() State {
	return State{
		SessionID:   s.id,
		TimeQuantum: s.stepper.TimeQuantum(),
		Processes:   append([]core.Process{}, s.processes...),
		Time:        s.stepper.Time(),
		Queue:       s.stepper.Queue(),
		Finished:    s.stepper.Finished(),
	}
}

// Manager owns the step-mode sessions. Each session has its own Stepper and
// lock, so calls on one session are serialized while different sessions run
// independently.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	max      int
	slices   int
	now      func() time.Time
	logger   zerolog.Logger
}

// NewManager creates a manager. A zero ttl keeps sessions until deleted and a
// zero maxSessions means no limit. maxSlices bounds every session's run, see
// schedulers.NewStepperWithLimit.
func NewManager(ttl time.Duration, maxSessions, maxSlices int, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		ttl:      ttl,
		max:      maxSessions,
		slices:   maxSlices,
		now:      time.Now,
		logger:   logger.With().Str("component", "sessions").Logger(),
	}
}

func (m *Manager) Create(processes []core.Process, quantum int) (State, error) {
	stepper := schedulers.NewStepperWithLimit(m.slices)
	if err := stepper.Init(processes, quantum); err != nil {
		return State{}, err
	}
	s := &session{
		id:        uuid.New().String(),
		stepper:   stepper,
		processes: append([]core.Process{}, processes...),
		lastUsed:  m.now(),
	}
	// taken while s is still private to this call
	state := s.state()

	m.mu.Lock()
	m.sweepLocked()
	if m.max > 0 && len(m.sessions) >= m.max {
		m.mu.Unlock()
		return State{}, ErrTooManySessions
	}
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Debug().Str("session", s.id).Int("quantum", quantum).Int("processes", len(processes)).Msg("session created")
	return state, nil
}

func (m *Manager) Get(id string) (State, error) {
	s, err := m.lookup(id)
	if err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(), nil
}

// Step advances the session by one dispatch.
func (m *Manager) Step(id string) (StepReply, error) {
	s, err := m.lookup(id)
	if err != nil {
		return StepReply{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = m.now()

	res, err := s.stepper.Step()
	if err != nil {
		return StepReply{}, err
	}
	reply := StepReply{SessionID: id, TimeQuantum: s.stepper.TimeQuantum(), StepResult: res}
	if res.Done {
		outcome, err := s.stepper.Outcome()
		if err != nil {
			return StepReply{}, err
		}
		reply.Outcome = &outcome
		m.logger.Debug().Str("session", id).Int("slices", len(outcome.Slices)).Msg("session finished")
	}
	return reply, nil
}

// Reset restarts the session with a new workload and quantum.
func (m *Manager) Reset(id string, processes []core.Process, quantum int) (State, error) {
	s, err := m.lookup(id)
	if err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stepper.Init(processes, quantum); err != nil {
		return State{}, err
	}
	s.processes = append([]core.Process{}, processes...)
	s.lastUsed = m.now()
	m.logger.Debug().Str("session", id).Int("quantum", quantum).Msg("session reset")
	return s.state(), nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many went.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked()
}

func (m *Manager) sweepLocked() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := s.lastUsed.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
	}
	return removed
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
