package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"settlers/internal/board"
	"settlers/internal/bot"
	"settlers/internal/engine"
	"settlers/internal/engine/devcards"
	"settlers/internal/errs"
	"settlers/internal/lobby"
	"settlers/internal/protocol"
	"settlers/internal/random"
)

const (
	defaultMessageRate  = 20
	defaultMessageBurst = 40
)

// HubOptions configures every room a server opens.
type HubOptions struct {
	Rules        engine.Config
	BotFill      bool
	MessageRate  float64
	MessageBurst int
	Log          *zap.Logger
}

// Hub manages WebSocket connections and game state for one game room.
// The lobby lives on the Run goroutine; once started, the game is owned
// by a separate play goroutine so that waiting on one player's decision
// never blocks the room.
type Hub struct {
	mu         sync.Mutex
	gameID     string
	lobby      *lobby.Lobby
	opts       HubOptions
	log        *zap.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}

	// Set on the Run goroutine when the game starts.
	presenter *RemotePresenter
	requests  chan gameRequest
}

func NewHub(gameID string, lob *lobby.Lobby, opts HubOptions) *Hub {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.MessageRate <= 0 || opts.MessageBurst <= 0 {
		opts.MessageRate, opts.MessageBurst = defaultMessageRate, defaultMessageBurst
	}
	return &Hub{
		gameID:     gameID,
		lobby:      lob,
		opts:       opts,
		log:        opts.Log.With(zap.String("game_id", gameID)),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

// Run serves the room until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.quit)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			h.refresh(client)

		case client := <-h.unregister:
			h.drop(client)

		case msg := <-h.incoming:
			h.handleMessage(ctx, msg)

		case <-ctx.Done():
			return
		}
	}
}

// join hands a new connection to the Run goroutine.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

// drop forgets a connection. A player whose last connection closes gives
// up their lobby seat; once the game has started the lobby keeps it.
func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.send)
	id, gone := c.PlayerID, c.PlayerID != ""
	for other := range h.clients {
		if other.PlayerID == id {
			gone = false
		}
	}
	h.mu.Unlock()

	if gone && !h.lobby.Started {
		h.lobby.Leave(id)
		h.log.Info("player left", zap.String("player", id))
		h.sendLobbyUpdate()
	}
}

func (h *Hub) handleMessage(ctx context.Context, msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(ctx, msg)
	case protocol.MsgAnswer:
		h.handleAnswer(msg)
	default:
		h.handleGameAction(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil || join.PlayerID == "" {
		h.sendError(msg.Client, errors.New("invalid join message"))
		return
	}
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err)
		return
	}
	h.mu.Lock()
	msg.Client.PlayerID = join.PlayerID
	msg.Client.Type = ClientPlayer
	h.mu.Unlock()
	h.log.Info("player joined", zap.String("player", join.PlayerID), zap.String("name", join.Name))
	h.sendLobbyUpdate()
	h.refresh(msg.Client)
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, errors.New("invalid ready message"))
		return
	}
	if err := h.lobby.SetReady(msg.Client.PlayerID, ready.Ready); err != nil {
		h.sendError(msg.Client, err)
		return
	}
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(ctx context.Context, msg IncomingMessage) {
	if !h.lobby.Has(msg.Client.PlayerID) {
		h.sendError(msg.Client, lobby.ErrUnknownPlayer)
		return
	}
	if err := h.lobby.Start(h.opts.BotFill); err != nil {
		h.sendError(msg.Client, err)
		return
	}
	g, bots, err := h.newGame()
	if err != nil {
		h.log.Error("create game", zap.Error(err))
		h.lobby.Cancel()
		h.presenter = nil
		h.sendError(msg.Client, err)
		h.sendLobbyUpdate()
		return
	}
	h.requests = make(chan gameRequest, requestBuffer)
	h.sendLobbyUpdate()
	go h.playLoop(ctx, g, bots)
}

// newGame builds the engine game for the lobby's seats. Bot seats answer
// through the bot, everyone else through the remote presenter.
func (h *Hub) newGame() (*engine.Game, *bot.Bot, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, nil, err
	}
	rng := random.New(seed)
	b, err := board.Generate(rng)
	if err != nil {
		return nil, nil, err
	}
	h.presenter = NewRemotePresenter(h, h.log)
	bots := bot.New(b, rng)
	g, err := engine.NewGame(h.lobby.Seats(), h.opts.Rules, engine.Options{
		ID:        h.gameID,
		Rand:      rng,
		Board:     b,
		Presenter: bots.Seats(h.presenter, h.lobby.Bots()...),
		Effects:   devcards.Registry(),
		Logger:    h.log,
	})
	if err != nil {
		return nil, nil, err
	}
	return g, bots, nil
}

func (h *Hub) handleAnswer(msg IncomingMessage) {
	if h.presenter == nil {
		h.sendError(msg.Client, engine.ErrWrongPhase)
		return
	}
	var resp protocol.DecisionResponse
	if err := msg.Envelope.Decode(&resp); err != nil {
		h.sendError(msg.Client, errors.New("invalid answer message"))
		return
	}
	if err := h.presenter.Resolve(msg.Client.PlayerID, resp); err != nil {
		h.sendError(msg.Client, err)
	}
}

func (h *Hub) handleGameAction(msg IncomingMessage) {
	if h.requests == nil {
		h.sendError(msg.Client, errors.New("game not started"))
		return
	}
	action, err := parseAction(msg.Envelope)
	if err != nil {
		h.sendError(msg.Client, err)
		return
	}
	h.enqueue(msg.Client, gameRequest{client: msg.Client, player: msg.Client.PlayerID, action: &action})
}

func parseAction(env protocol.Envelope) (engine.Action, error) {
	var action engine.Action
	if err := env.Decode(&action); err != nil {
		return engine.Action{}, errors.New("invalid payload")
	}
	action.Type = engine.ActionType(env.Type)
	return action, nil
}

// refresh asks the play goroutine for a fresh state snapshot.
func (h *Hub) refresh(c *Client) {
	if h.requests == nil {
		return
	}
	h.enqueue(c, gameRequest{client: c, player: c.PlayerID})
	if h.presenter != nil && c.PlayerID != "" {
		h.presenter.Resend(c.PlayerID)
	}
}

// enqueue never blocks the Run goroutine: answers must keep flowing while
// the game waits on a decision.
func (h *Hub) enqueue(c *Client, req gameRequest) {
	select {
	case h.requests <- req:
	default:
		h.sendError(c, errors.New("server busy, try again"))
	}
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready, Bot: p.Bot}
	}
	h.broadcast(protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:  h.gameID,
		Players: lps,
		Started: h.lobby.Started,
	}))
}

func (h *Hub) broadcast(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("broadcast marshal error", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.push(data)
	}
}

// sendTo reaches every connection of player.
func (h *Hub) sendTo(player string, env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("marshal error", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.PlayerID == player {
			client.push(data)
		}
	}
}

// deliver sends to one connection if it is still registered.
func (h *Hub) deliver(c *Client, env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("marshal error", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		c.push(data)
	}
}

func (h *Hub) sendError(client *Client, err error) {
	h.deliver(client, protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{
		Message: err.Error(),
		Kind:    errorKind(err),
	}))
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, errs.ErrArgument):
		return errs.KindArgument.String()
	case errors.Is(err, errs.ErrState):
		return errs.KindState.String()
	case errors.Is(err, errs.ErrInsufficient):
		return errs.KindInsufficient.String()
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	return ""
}
