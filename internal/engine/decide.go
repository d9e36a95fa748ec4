package engine

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// ask runs one blocking decision under the configured timeout and rejects
// any answer that was not offered.
func ask[T comparable](ctx context.Context, g *Game, what string, options []T, call func(context.Context, Decider) (T, error)) (T, error) {
	var zero T
	if g.port == nil {
		return zero, ErrNoPresenter
	}
	if len(options) == 0 {
		return zero, fmt.Errorf("%w: no %s available", ErrInvalidTarget, what)
	}
	ctx, cancel := g.decisionContext(ctx)
	defer cancel()

	v, err := call(ctx, g.port)
	if err != nil {
		g.log.Warn("decision failed", zap.String("decision", what), zap.Error(err))
		return zero, fmt.Errorf("choose %s: %w", what, err)
	}
	if !slices.Contains(options, v) {
		return zero, fmt.Errorf("%w: %s %v", ErrInvalidChoice, what, v)
	}
	return v, nil
}

func (g *Game) decisionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg.DecisionTimeout > 0 {
		return context.WithTimeout(ctx, g.cfg.DecisionTimeout)
	}
	return context.WithCancel(ctx)
}

func (g *Game) chooseVertex(ctx context.Context, id string, purpose Purpose, options []board.VertexID) (board.VertexID, error) {
	return ask(ctx, g, "vertex", options, func(ctx context.Context, d Decider) (board.VertexID, error) {
		return d.ChooseVertex(ctx, id, purpose, slices.Clone(options))
	})
}

func (g *Game) chooseEdge(ctx context.Context, id string, purpose Purpose, options []board.EdgeID) (board.EdgeID, error) {
	return ask(ctx, g, "edge", options, func(ctx context.Context, d Decider) (board.EdgeID, error) {
		return d.ChooseEdge(ctx, id, purpose, slices.Clone(options))
	})
}

func (g *Game) chooseHex(ctx context.Context, id string, purpose Purpose, options []board.HexID) (board.HexID, error) {
	return ask(ctx, g, "hex", options, func(ctx context.Context, d Decider) (board.HexID, error) {
		return d.ChooseHex(ctx, id, purpose, slices.Clone(options))
	})
}

func (g *Game) choosePlayer(ctx context.Context, id string, purpose Purpose, options []string) (string, error) {
	return ask(ctx, g, "player", options, func(ctx context.Context, d Decider) (string, error) {
		return d.ChoosePlayer(ctx, id, purpose, slices.Clone(options))
	})
}

func (g *Game) chooseResource(ctx context.Context, id string, purpose Purpose) (catalog.Resource, error) {
	options := catalog.Producing()
	return ask(ctx, g, "resource", options, func(ctx context.Context, d Decider) (catalog.Resource, error) {
		return d.ChooseResource(ctx, id, purpose, slices.Clone(options))
	})
}

// chooseDiscard asks p for exactly count cards out of their hand.
func (g *Game) chooseDiscard(ctx context.Context, p *Player, count int) (catalog.Hand, error) {
	if g.port == nil {
		return nil, ErrNoPresenter
	}
	ctx, cancel := g.decisionContext(ctx)
	defer cancel()

	h, err := g.port.ChooseDiscard(ctx, p.ID, count, p.Resources())
	if err != nil {
		g.log.Warn("decision failed", zap.String("decision", "discard"), zap.String("player", p.ID), zap.Error(err))
		return nil, fmt.Errorf("choose discard: %w", err)
	}
	if !h.Valid() || h.Total() != count || !p.resources.Covers(h) {
		return nil, fmt.Errorf("%w: discard %s, need %d cards", ErrInvalidChoice, h, count)
	}
	return h.Clone(), nil
}

func (g *Game) confirmTrade(ctx context.Context, offer TradeOffer) (bool, error) {
	if g.port == nil {
		return false, ErrNoPresenter
	}
	ctx, cancel := g.decisionContext(ctx)
	defer cancel()

	ok, err := g.port.ConfirmTrade(ctx, offer.To, offer)
	if err != nil {
		return false, fmt.Errorf("confirm trade: %w", err)
	}
	return ok, nil
}
