package lobby

import (
	"sync"

	"github.com/google/uuid"

	"settlers/internal/engine"
)

// Manager manages multiple lobbies.
type Manager struct {
	mu      sync.Mutex
	rules   engine.Config
	lobbies map[string]*Lobby
}

func NewManager(rules engine.Config) *Manager {
	return &Manager{rules: rules, lobbies: make(map[string]*Lobby)}
}

// Create creates a new lobby and returns its ID.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.lobbies[id] = NewLobby(id, m.rules)
	return id
}

// Get returns a lobby by ID.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

// Remove forgets a lobby.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}

// Rules returns the rules new lobbies and their games are created with.
func (m *Manager) Rules() engine.Config { return m.rules }
