package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/errs"
	"settlers/internal/protocol"
)

var (
	ErrUnknownDecision = errs.Argument("no such pending decision")
	ErrNotYourDecision = errs.Argument("decision belongs to another player")
	ErrBadAnswer       = errs.Argument("answer does not fit the decision")
)

// outbox is how the presenter reaches connected clients.
type outbox interface {
	sendTo(player string, env protocol.Envelope)
	broadcast(env protocol.Envelope)
}

type pending struct {
	player  string
	request protocol.DecisionRequest
	answer  chan json.RawMessage
}

// RemotePresenter turns engine decisions into decision requests sent over
// the websocket and waits for the matching answer. Events are fanned out to
// the room; private events only reach the players they concern.
type RemotePresenter struct {
	out outbox
	log *zap.Logger

	mu      sync.Mutex
	pending map[string]*pending
}

var _ engine.Presenter = (*RemotePresenter)(nil)

func NewRemotePresenter(out outbox, log *zap.Logger) *RemotePresenter {
	return &RemotePresenter{out: out, log: log, pending: make(map[string]*pending)}
}

// ask sends req to player and blocks for the raw answer.
func (p *RemotePresenter) ask(ctx context.Context, player string, req protocol.DecisionRequest) (json.RawMessage, error) {
	req.ID = uuid.NewString()
	if deadline, ok := ctx.Deadline(); ok {
		req.Deadline = deadline.UnixMilli()
	}
	pd := &pending{player: player, request: req, answer: make(chan json.RawMessage, 1)}

	p.mu.Lock()
	p.pending[req.ID] = pd
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.pending, req.ID)
		p.mu.Unlock()
	}()

	p.out.sendTo(player, protocol.MustEnvelope(protocol.MsgDecision, req))
	select {
	case raw := <-pd.answer:
		return raw, nil
	case <-ctx.Done():
		p.log.Info("decision abandoned", zap.String("player", player), zap.String("kind", req.Kind), zap.Error(ctx.Err()))
		return nil, ctx.Err()
	}
}

// Resolve delivers an answer from player. The first answer wins.
func (p *RemotePresenter) Resolve(player string, resp protocol.DecisionResponse) error {
	p.mu.Lock()
	pd, ok := p.pending[resp.ID]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDecision, resp.ID)
	}
	if pd.player != player {
		return ErrNotYourDecision
	}
	select {
	case pd.answer <- resp.Answer:
	default:
	}
	return nil
}

// Resend repeats player's open requests, for reconnects.
func (p *RemotePresenter) Resend(player string) {
	p.mu.Lock()
	var reqs []protocol.DecisionRequest
	for _, pd := range p.pending {
		if pd.player == player {
			reqs = append(reqs, pd.request)
		}
	}
	p.mu.Unlock()
	for _, req := range reqs {
		p.out.sendTo(player, protocol.MustEnvelope(protocol.MsgDecision, req))
	}
}

// Pending counts open requests.
func (p *RemotePresenter) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadAnswer, err)
	}
	return v, nil
}

func choose[T any](ctx context.Context, p *RemotePresenter, player, kind string, purpose engine.Purpose, options []T) (T, error) {
	var zero T
	raw, err := p.ask(ctx, player, protocol.DecisionRequest{Kind: kind, Purpose: string(purpose), Options: options})
	if err != nil {
		return zero, err
	}
	return decode[T](raw)
}

func (p *RemotePresenter) ChooseVertex(ctx context.Context, player string, purpose engine.Purpose, options []board.VertexID) (board.VertexID, error) {
	return choose(ctx, p, player, protocol.DecideVertex, purpose, options)
}

func (p *RemotePresenter) ChooseEdge(ctx context.Context, player string, purpose engine.Purpose, options []board.EdgeID) (board.EdgeID, error) {
	return choose(ctx, p, player, protocol.DecideEdge, purpose, options)
}

func (p *RemotePresenter) ChooseHex(ctx context.Context, player string, purpose engine.Purpose, options []board.HexID) (board.HexID, error) {
	return choose(ctx, p, player, protocol.DecideHex, purpose, options)
}

func (p *RemotePresenter) ChoosePlayer(ctx context.Context, player string, purpose engine.Purpose, options []string) (string, error) {
	return choose(ctx, p, player, protocol.DecidePlayer, purpose, options)
}

func (p *RemotePresenter) ChooseResource(ctx context.Context, player string, purpose engine.Purpose, options []catalog.Resource) (catalog.Resource, error) {
	return choose(ctx, p, player, protocol.DecideResource, purpose, options)
}

func (p *RemotePresenter) ChooseDiscard(ctx context.Context, player string, count int, hand catalog.Hand) (catalog.Hand, error) {
	raw, err := p.ask(ctx, player, protocol.DecisionRequest{Kind: protocol.DecideDiscard, Count: count, Hand: hand})
	if err != nil {
		return nil, err
	}
	return decode[catalog.Hand](raw)
}

func (p *RemotePresenter) ConfirmTrade(ctx context.Context, player string, offer engine.TradeOffer) (bool, error) {
	raw, err := p.ask(ctx, player, protocol.DecisionRequest{Kind: protocol.DecideTrade, Offer: offer})
	if err != nil {
		return false, err
	}
	return decode[bool](raw)
}

func (p *RemotePresenter) Notify(ev engine.Event) {
	env := protocol.MustEnvelope(protocol.MsgEvent, protocol.EventMsg{
		Type:   string(ev.Type),
		Player: ev.Player,
		Data:   ev.Data,
	})
	if !ev.Private {
		p.out.broadcast(env)
		return
	}
	p.out.sendTo(ev.Player, env)
	if victim, ok := ev.Data["victim"].(string); ok && victim != ev.Player {
		p.out.sendTo(victim, env)
	}
}
