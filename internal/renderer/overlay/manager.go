package overlay

import (
	"sync"
	"time"
)

// Manager tracks the current message and prompt.
// Only the most recent message is kept.
type Manager struct {
	mu      sync.RWMutex
	message *Message
	prompt  *Prompt
	now     func() time.Time
}

// NewManager creates an empty overlay manager.
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// Post shows text for the given duration, replacing any current message.
func (m *Manager) Post(text string, kind MessageKind, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.message = &Message{Text: text, Kind: kind, Expires: m.now().Add(d)}
}

// Message returns the current message if it has not expired.
// Expired messages are dropped.
func (m *Manager) Message() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.message == nil {
		return Message{}, false
	}
	if !m.now().Before(m.message.Expires) {
		m.message = nil
		return Message{}, false
	}
	return *m.message, true
}

// DismissMessage removes the current message.
func (m *Manager) DismissMessage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.message = nil
}

// SetPrompt opens or updates the input box.
func (m *Manager) SetPrompt(p Prompt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompt = &p
}

// Prompt returns the open input box, if any.
func (m *Manager) Prompt() (Prompt, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.prompt == nil {
		return Prompt{}, false
	}
	return *m.prompt, true
}

// ClearPrompt closes the input box.
func (m *Manager) ClearPrompt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompt = nil
}
