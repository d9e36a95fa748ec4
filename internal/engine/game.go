package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/random"
)

// Seat is one player joining a game, in turn order.
type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Options carries the collaborators of a game. Effects is required, see
// devcards.Registry. Other zero values get defaults: a fresh UUID, a
// crypto-seeded source, a generated board and a no-op logger.
type Options struct {
	ID        string
	Rand      random.Source
	Board     *board.Board
	Presenter Presenter
	Effects   *EffectRegistry
	Logger    *zap.Logger
}

// Achievement is the holder of Largest Army or Longest Road. Threshold is
// the count a challenger must strictly exceed.
type Achievement struct {
	Holder    string `json:"holder,omitempty"`
	Threshold int    `json:"threshold"`
}

type turnState struct {
	rolled       bool
	bought       map[catalog.DevCard]int
	played       bool
	thiefPending bool
}

type setupState struct {
	order   []int
	step    int
	pending board.VertexID
}

// Game is the rules engine for one table. It owns the board, the ledgers
// and the deck; callers only ever see copies. A Game is not safe for
// concurrent use: one goroutine drives it.
type Game struct {
	id      string
	cfg     Config
	board   *board.Board
	players []*Player
	byID    map[string]*Player
	deck    *Deck
	rng     random.Source
	port    Presenter
	effects *EffectRegistry
	log     *zap.Logger

	phase    GamePhase
	current  int
	turnNum  int
	lastRoll int
	turn     turnState
	setup    setupState
	army     Achievement
	road     Achievement
	winner   string
}

// NewGame seats the players and starts the setup round.
func NewGame(seats []Seat, cfg Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(seats) < cfg.MinPlayers || len(seats) > cfg.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, need %d..%d", ErrBadSeats, len(seats), cfg.MinPlayers, cfg.MaxPlayers)
	}

	g := &Game{
		id:      opts.ID,
		cfg:     cfg,
		board:   opts.Board,
		rng:     opts.Rand,
		port:    opts.Presenter,
		effects: opts.Effects,
		byID:    make(map[string]*Player, len(seats)),
		phase:   PhaseSetup,
		army:    Achievement{Threshold: cfg.LargestArmyMin - 1},
		road:    Achievement{Threshold: cfg.LongestRoadMin - 1},
	}
	for _, s := range seats {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: empty player id", ErrBadSeats)
		}
		if _, dup := g.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %q", ErrBadSeats, s.ID)
		}
		p := NewPlayer(s.ID, s.Name)
		p.target = cfg.VictoryPoints
		g.players = append(g.players, p)
		g.byID[s.ID] = p
	}
	if g.effects == nil {
		return nil, ErrNoEffects
	}

	if g.id == "" {
		g.id = uuid.NewString()
	}
	if g.rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}
		g.rng = random.New(seed)
	}
	if g.board == nil {
		b, err := board.Generate(g.rng)
		if err != nil {
			return nil, fmt.Errorf("generate board: %w", err)
		}
		g.board = b
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g.log = logger.With(zap.String("game_id", g.id))

	g.deck = NewDeck(catalog.DevelopmentPool(), g.rng)
	g.setup = setupState{order: snakeOrder(len(g.players)), pending: board.NoVertex}
	g.turn = newTurnState()

	ids := make([]string, len(g.players))
	for i, p := range g.players {
		ids[i] = p.ID
	}
	g.log.Info("game created", zap.Strings("players", ids))
	g.notify(Event{Type: EventGameStarted, Data: map[string]any{
		"game_id": g.id,
		"players": ids,
	}})
	return g, nil
}

func newTurnState() turnState {
	return turnState{bought: make(map[catalog.DevCard]int)}
}

// snakeOrder is 0..n-1 followed by n-1..0.
func snakeOrder(n int) []int {
	order := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		order = append(order, i)
	}
	for i := n - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

// SetPresenter attaches the decision source and event sink.
func (g *Game) SetPresenter(p Presenter) { g.port = p }

func (g *Game) ID() string               { return g.id }
func (g *Game) Config() Config           { return g.cfg }
func (g *Game) Phase() GamePhase         { return g.phase }
func (g *Game) Board() board.Reader      { return g.board }
func (g *Game) Winner() string           { return g.winner }
func (g *Game) DeckSize() int            { return g.deck.Len() }
func (g *Game) LargestArmy() Achievement { return g.army }
func (g *Game) LongestRoad() Achievement { return g.road }

// Turn is the number of completed main-phase turns.
func (g *Game) Turn() int { return g.turnNum }

// LastRoll is the most recent dice total, or 0 before the first roll.
func (g *Game) LastRoll() int { return g.lastRoll }

// Rolled reports whether the current player has rolled this turn.
func (g *Game) Rolled() bool { return g.turn.rolled }

// ThiefPending reports whether a seven is waiting for its thief move.
func (g *Game) ThiefPending() bool { return g.turn.thiefPending }

// CurrentPlayer returns the id of the seat to act.
func (g *Game) CurrentPlayer() string {
	switch g.phase {
	case PhaseSetup:
		return g.players[g.setup.order[g.setup.step]].ID
	case PhaseMain:
		return g.players[g.current].ID
	}
	return ""
}

// RemainingSupply is how many pieces of b the player can still place. For
// development cards it is the shared deck.
func (g *Game) RemainingSupply(id string, b catalog.Building) int {
	if b == catalog.DevelopmentCard {
		return g.deck.Len()
	}
	p, ok := g.byID[id]
	if !ok {
		return 0
	}
	return p.RemainingPieces(b)
}

func (g *Game) player(id string) (*Player, error) {
	p, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	}
	return p, nil
}

// requireTurn checks that id may act in the main phase right now.
func (g *Game) requireTurn(id string) (*Player, error) {
	if g.phase == PhaseEnded {
		return nil, ErrGameOver
	}
	p, err := g.player(id)
	if err != nil {
		return nil, err
	}
	if g.phase != PhaseMain {
		return nil, ErrWrongPhase
	}
	if g.players[g.current].ID != id {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

// requireAction additionally needs the dice rolled and no thief waiting.
func (g *Game) requireAction(id string) (*Player, error) {
	p, err := g.requireTurn(id)
	if err != nil {
		return nil, err
	}
	if !g.turn.rolled {
		return nil, ErrNotRolled
	}
	if g.turn.thiefPending {
		return nil, ErrThiefPending
	}
	return p, nil
}

func (g *Game) notify(ev Event) {
	if g.port != nil {
		g.port.Notify(ev)
	}
}

// checkWin ends the game once anyone reaches the target. The acting player
// is checked first, then the others in seat order.
func (g *Game) checkWin(actor *Player) bool {
	if g.phase == PhaseEnded {
		return true
	}
	if actor != nil && actor.HasWon() {
		g.finish(actor)
		return true
	}
	for _, p := range g.players {
		if p.HasWon() {
			g.finish(p)
			return true
		}
	}
	return false
}

func (g *Game) finish(w *Player) {
	g.phase = PhaseEnded
	g.winner = w.ID
	g.log.Info("game over", zap.String("winner", w.ID), zap.Int("victory_points", w.VictoryPoints()))
	g.notify(Event{Type: EventPhaseChange, Data: map[string]any{"phase": PhaseEnded.String()}})
	g.notify(Event{Type: EventGameOver, Player: w.ID, Data: map[string]any{"scores": g.Scores()}})
}
