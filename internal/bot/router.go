package bot

import (
	"context"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
)

// router sends decisions for bot seats to the bot and every other seat's
// to the human presenter. Events always go to the human side.
type router struct {
	human engine.Presenter
	bot   *Bot
	seats map[string]bool
}

func (r *router) pick(player string) engine.Decider {
	if r.seats[player] {
		return r.bot
	}
	return r.human
}

func (r *router) ChooseVertex(ctx context.Context, player string, purpose engine.Purpose, options []board.VertexID) (board.VertexID, error) {
	return r.pick(player).ChooseVertex(ctx, player, purpose, options)
}

func (r *router) ChooseEdge(ctx context.Context, player string, purpose engine.Purpose, options []board.EdgeID) (board.EdgeID, error) {
	return r.pick(player).ChooseEdge(ctx, player, purpose, options)
}

func (r *router) ChooseHex(ctx context.Context, player string, purpose engine.Purpose, options []board.HexID) (board.HexID, error) {
	return r.pick(player).ChooseHex(ctx, player, purpose, options)
}

func (r *router) ChoosePlayer(ctx context.Context, player string, purpose engine.Purpose, options []string) (string, error) {
	return r.pick(player).ChoosePlayer(ctx, player, purpose, options)
}

func (r *router) ChooseResource(ctx context.Context, player string, purpose engine.Purpose, options []catalog.Resource) (catalog.Resource, error) {
	return r.pick(player).ChooseResource(ctx, player, purpose, options)
}

func (r *router) ChooseDiscard(ctx context.Context, player string, count int, hand catalog.Hand) (catalog.Hand, error) {
	return r.pick(player).ChooseDiscard(ctx, player, count, hand)
}

func (r *router) ConfirmTrade(ctx context.Context, player string, offer engine.TradeOffer) (bool, error) {
	return r.pick(player).ConfirmTrade(ctx, player, offer)
}

func (r *router) Notify(ev engine.Event) { r.human.Notify(ev) }
