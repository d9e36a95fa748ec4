// Package lobby gathers players into a room before a game starts.
package lobby

import (
	"fmt"
	"sync"

	"settlers/internal/engine"
	"settlers/internal/errs"
)

var (
	ErrStarted       = errs.State("game already started")
	ErrFull          = errs.State("lobby is full")
	ErrNotEnough     = errs.State("not enough players")
	ErrNotReady      = errs.State("not every player is ready")
	ErrUnknownPlayer = errs.Argument("player is not in this lobby")
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
	Bot   bool
}

// Lobby represents a game lobby waiting for players.
type Lobby struct {
	mu         sync.Mutex
	ID         string
	Players    []*PlayerInfo
	MaxPlayers int
	MinPlayers int
	Started    bool
}

// NewLobby creates a lobby sized by the rules' player bounds.
func NewLobby(id string, rules engine.Config) *Lobby {
	return &Lobby{
		ID:         id,
		MaxPlayers: rules.MaxPlayers,
		MinPlayers: rules.MinPlayers,
	}
}

// Join adds a player to the lobby.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Check for duplicate ID
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name // allow reconnect with new name
			return nil
		}
	}
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) >= l.MaxPlayers {
		return ErrFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// Leave removes a player from the lobby. Seats are kept once the game
// has started so the player can reconnect.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return
	}
	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

// Has reports whether id holds a seat.
func (l *Lobby) Has(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return nil
		}
	}
	return ErrUnknownPlayer
}

// CanStart returns true if enough players are ready.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.startable(0) == nil
}

func (l *Lobby) startable(extra int) error {
	if l.Started {
		return ErrStarted
	}
	if len(l.Players)+extra < l.MinPlayers {
		return ErrNotEnough
	}
	for _, p := range l.Players {
		if !p.Ready {
			return ErrNotReady
		}
	}
	return nil
}

// Start marks the lobby as started. With fillBots set, empty seats up to
// the minimum are taken by bots first.
func (l *Lobby) Start(fillBots bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	missing := 0
	if fillBots {
		missing = max(0, l.MinPlayers-len(l.Players))
	}
	if err := l.startable(missing); err != nil {
		return err
	}
	for i := range missing {
		id := fmt.Sprintf("bot-%d", i+1)
		l.Players = append(l.Players, &PlayerInfo{ID: id, Name: fmt.Sprintf("Bot %d", i+1), Ready: true, Bot: true})
	}
	l.Started = true
	return nil
}

// Cancel undoes Start: the lobby reopens and bot seats are dropped.
func (l *Lobby) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	humans := l.Players[:0]
	for _, p := range l.Players {
		if !p.Bot {
			humans = append(humans, p)
		}
	}
	l.Players = humans
	l.Started = false
}

// GetPlayers returns a copy of the player list.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}

// Seats returns the engine seats in join order.
func (l *Lobby) Seats() []engine.Seat {
	players := l.GetPlayers()
	out := make([]engine.Seat, len(players))
	for i, p := range players {
		out[i] = engine.Seat{ID: p.ID, Name: p.Name}
	}
	return out
}

// Bots lists the seats played by bots.
func (l *Lobby) Bots() []string {
	var out []string
	for _, p := range l.GetPlayers() {
		if p.Bot {
			out = append(out, p.ID)
		}
	}
	return out
}
