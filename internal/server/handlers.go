package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"settlers/internal/lobby"
	qr "settlers/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	LobbyMgr *lobby.Manager
	opts     HubOptions
	log      *zap.Logger

	mu   sync.Mutex
	hubs map[string]*Hub
	ctx  context.Context
}

func NewHandlers(opts HubOptions) *Handlers {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Handlers{
		LobbyMgr: lobby.NewManager(opts.Rules),
		opts:     opts,
		log:      opts.Log,
		hubs:     make(map[string]*Hub),
		ctx:      context.Background(),
	}
}

// CreateResponse tells the creator where the room lives.
type CreateResponse struct {
	GameID  string `json:"game_id"`
	JoinURL string `json:"join_url"`
	QRURL   string `json:"qr_url"`
}

// HandleCreateGame creates a new game lobby and returns its ID.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	gameID := h.LobbyMgr.Create()
	hub := NewHub(gameID, h.LobbyMgr.Get(gameID), h.opts)

	h.mu.Lock()
	h.hubs[gameID] = hub
	ctx := h.ctx
	h.mu.Unlock()
	go func() {
		hub.Run(ctx)
		h.mu.Lock()
		delete(h.hubs, gameID)
		h.mu.Unlock()
		h.LobbyMgr.Remove(gameID)
	}()
	h.log.Info("game created", zap.String("game_id", gameID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateResponse{
		GameID:  gameID,
		JoinURL: joinURL(r.Host, gameID),
		QRURL:   fmt.Sprintf("/api/qr?game=%s", gameID),
	})
}

func joinURL(host, gameID string) string {
	return fmt.Sprintf("ws://%s/ws?game=%s", host, gameID)
}

// HandleQR generates a QR code PNG for joining the game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	png, err := qr.Generate(joinURL(r.Host, gameID))
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "tv" or "player"

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	hub, ok := h.hubs[gameID]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	ct := ClientPlayer
	if clientType == "tv" {
		ct = ClientTV
		playerID = ""
	}

	client := NewClient(hub, conn, playerID, ct)
	if !hub.join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(uuid.NewString()))
}
