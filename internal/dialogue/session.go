// Package dialogue implements the guided intake conversation: a fixed
// sequence of steps collecting name, phone, address, and delivery date,
// followed by confirmation and free-form assistant chat. State lives in
// an explicit Session owned by one chat; no ambient shared state.
package dialogue

import (
	"sync"

	"github.com/hafizn/kirimbot/internal/database"
)

// Step identifies one state in the intake sequence. Transitions are
// strictly forward except for the explicit edit path back to StepName.
type Step string

const (
	StepName         Step = "name"
	StepPhone        Step = "phone"
	StepAddress      Step = "address"
	StepDeliveryDate Step = "delivery_date"
	StepConfirm      Step = "confirm"
	StepDone         Step = "done"
)

// Roles for entries in a session's message log.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a session's conversation log.
type Message struct {
	Role    string
	Content string
}

// Session holds the in-progress record fields, the current step, and the
// conversation log for one chat. It is created when the user starts the
// guided intake and discarded on completion, reset, or logout.
type Session struct {
	Step         Step
	Name         string
	Phone        string
	Address      string
	DeliveryDate string
	Messages     []Message
}

// NewSession creates a session positioned at the first step.
func NewSession() *Session {
	return &Session{Step: StepName}
}

// Record assembles the collected fields into a Customer ready for
// submission.
func (s *Session) Record() database.Customer {
	return database.Customer{
		Name:         s.Name,
		Phone:        s.Phone,
		Address:      s.Address,
		DeliveryDate: s.DeliveryDate,
	}
}

// clear wipes collected fields and the message log and returns the
// session to the first step. Used by the edit path.
func (s *Session) clear() {
	s.Step = StepName
	s.Name = ""
	s.Phone = ""
	s.Address = ""
	s.DeliveryDate = ""
	s.Messages = nil
}

func (s *Session) logUser(content string) {
	s.Messages = append(s.Messages, Message{Role: RoleUser, Content: content})
}

func (s *Session) logAssistant(content string) {
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: content})
}

// Manager owns the active sessions, keyed by a session identifier (the
// chat ID for the Telegram transport). Sessions are never shared between
// keys.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the session for the given key, if one is active.
func (m *Manager) Get(key int64) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[key]
	return s, ok
}

// Start creates and registers a fresh session for the given key,
// replacing any existing one.
func (m *Manager) Start(key int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := NewSession()
	m.sessions[key] = s
	return s
}

// End discards the session for the given key.
func (m *Manager) End(key int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
}
