package engine

import (
	"context"
	"fmt"

	"settlers/internal/catalog"
)

// TradeRatio is how many cards of give the player must hand the bank for
// one card: 2 with a matching port, 3 with a generic port, 4 otherwise.
// It returns 0 for an unknown player or a resource that cannot be held.
func (g *Game) TradeRatio(id string, give catalog.Resource) int {
	p, ok := g.byID[id]
	if !ok || !give.Holdable() {
		return 0
	}
	switch {
	case p.HasPort(give):
		return g.cfg.SpecificPortRatio
	case p.HasPort(catalog.Misc):
		return g.cfg.GenericPortRatio
	}
	return g.cfg.BankRatio
}

// CanTrade reports whether the player holds enough of give for one bank
// trade at their best ratio.
func (g *Game) CanTrade(id string, give catalog.Resource) bool {
	ratio := g.TradeRatio(id, give)
	return ratio > 0 && g.byID[id].Resource(give) >= ratio
}

// TradeWithBank swaps ratio cards of give for one card of get.
func (g *Game) TradeWithBank(id string, give, get catalog.Resource) error {
	p, err := g.requireAction(id)
	if err != nil {
		return err
	}
	if !give.Holdable() || !get.Holdable() || give == get {
		return fmt.Errorf("%w: trade %s for %s", ErrInvalidTarget, give, get)
	}
	ratio := g.TradeRatio(id, give)
	if !p.RemoveResources(catalog.Hand{give: ratio}) {
		return fmt.Errorf("%w: need %d %s", ErrCannotAfford, ratio, give)
	}
	if err := p.AddResource(get); err != nil {
		return err
	}
	g.notify(Event{Type: EventBankTrade, Player: p.ID, Data: map[string]any{
		"give": give.String(), "get": get.String(), "ratio": ratio,
	}})
	return nil
}

// ProposeTrade offers another player an exchange. It reports whether the
// partner accepted; on acceptance both hands move together.
func (g *Game) ProposeTrade(ctx context.Context, from, to string, give, want catalog.Hand) (bool, error) {
	p, err := g.requireAction(from)
	if err != nil {
		return false, err
	}
	q, err := g.player(to)
	if err != nil {
		return false, err
	}
	if q == p {
		return false, fmt.Errorf("%w: cannot trade with yourself", ErrInvalidTarget)
	}
	if !give.Valid() || !want.Valid() || give.Total() == 0 || want.Total() == 0 {
		return false, fmt.Errorf("%w: trade %s for %s", ErrInvalidTarget, give, want)
	}
	if !p.resources.Covers(give) {
		return false, fmt.Errorf("%w: %s lacks %s", ErrCannotAfford, from, give)
	}
	if !q.resources.Covers(want) {
		return false, fmt.Errorf("%w: %s lacks %s", ErrCannotAfford, to, want)
	}

	offer := TradeOffer{From: from, To: to, Give: give.Clone(), Want: want.Clone()}
	ok, err := g.confirmTrade(ctx, offer)
	if err != nil || !ok {
		return false, err
	}

	p.RemoveResources(offer.Give)
	q.RemoveResources(offer.Want)
	if err := p.AddResources(offer.Want); err != nil {
		return false, err
	}
	if err := q.AddResources(offer.Give); err != nil {
		return false, err
	}
	g.notify(Event{Type: EventPlayerTrade, Player: from, Data: map[string]any{
		"partner": to, "give": offer.Give, "want": offer.Want,
	}})
	return true, nil
}
