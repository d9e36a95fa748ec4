package server

import (
	"context"

	"go.uber.org/zap"

	"settlers/internal/bot"
	"settlers/internal/engine"
	"settlers/internal/protocol"
)

const requestBuffer = 64

// gameRequest is work for the play goroutine: an action to apply, or with
// a nil action, a state snapshot for client.
type gameRequest struct {
	client *Client
	player string
	action *engine.Action
}

// playLoop owns g. Every read and write of the game happens here.
func (h *Hub) playLoop(ctx context.Context, g *engine.Game, bots *bot.Bot) {
	robots := make(map[string]bool)
	for _, id := range h.lobby.Bots() {
		robots[id] = true
	}
	h.broadcastState(g)
	h.advanceBots(ctx, g, bots, robots)

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-h.requests:
			if req.action == nil {
				h.sendState(g, req.client, req.player)
				h.advanceBots(ctx, g, bots, robots)
				continue
			}
			if err := g.Apply(ctx, req.player, *req.action); err != nil {
				h.log.Debug("action rejected", zap.String("player", req.player),
					zap.String("action", string(req.action.Type)), zap.Error(err))
				h.sendError(req.client, err)
				continue
			}
			h.broadcastState(g)
			h.advanceBots(ctx, g, bots, robots)
		}
	}
}

// advanceBots plays turns while a bot holds the turn.
func (h *Hub) advanceBots(ctx context.Context, g *engine.Game, bots *bot.Bot, robots map[string]bool) {
	for g.Phase() != engine.PhaseEnded && robots[g.CurrentPlayer()] {
		id := g.CurrentPlayer()
		if err := bots.PlayTurn(ctx, g, id); err != nil {
			h.log.Warn("bot turn failed", zap.String("player", id), zap.Error(err))
			return
		}
		h.broadcastState(g)
	}
}

func (h *Hub) sendState(g *engine.Game, c *Client, player string) {
	h.deliver(c, protocol.MustEnvelope(protocol.MsgGameState, g.ViewFor(player)))
}

// broadcastState sends every connection the view of its own seat. TV
// connections and strangers get the spectator view.
func (h *Hub) broadcastState(g *engine.Game) {
	h.mu.Lock()
	targets := make(map[*Client]string, len(h.clients))
	for c := range h.clients {
		targets[c] = c.PlayerID
	}
	h.mu.Unlock()
	for c, player := range targets {
		h.sendState(g, c, player)
	}
}
