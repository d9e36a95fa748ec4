package engine

import (
	"context"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// Purpose tells a Decider why a choice is being asked for.
type Purpose string

const (
	PurposeSettlement        Purpose = "settlement"
	PurposeCity              Purpose = "city"
	PurposeRoad              Purpose = "road"
	PurposeInitialSettlement Purpose = "initial_settlement"
	PurposeInitialRoad       Purpose = "initial_road"
	PurposeFreeRoad          Purpose = "free_road"
	PurposeThief             Purpose = "thief"
	PurposeSteal             Purpose = "steal"
	PurposeMonopoly          Purpose = "monopoly"
	PurposeYearOfPlenty      Purpose = "year_of_plenty"
)

// TradeOffer is a proposed exchange between two players.
type TradeOffer struct {
	From string       `json:"from"`
	To   string       `json:"to"`
	Give catalog.Hand `json:"give"`
	Want catalog.Hand `json:"want"`
}

// Decider supplies player decisions. Calls block until the player answers
// or ctx is done; the engine re-validates every answer.
type Decider interface {
	ChooseVertex(ctx context.Context, player string, purpose Purpose, options []board.VertexID) (board.VertexID, error)
	ChooseEdge(ctx context.Context, player string, purpose Purpose, options []board.EdgeID) (board.EdgeID, error)
	ChooseHex(ctx context.Context, player string, purpose Purpose, options []board.HexID) (board.HexID, error)
	ChoosePlayer(ctx context.Context, player string, purpose Purpose, options []string) (string, error)
	ChooseResource(ctx context.Context, player string, purpose Purpose, options []catalog.Resource) (catalog.Resource, error)
	// ChooseDiscard returns exactly count cards taken from hand.
	ChooseDiscard(ctx context.Context, player string, count int, hand catalog.Hand) (catalog.Hand, error)
	ConfirmTrade(ctx context.Context, player string, offer TradeOffer) (bool, error)
}

// Notifier receives committed events.
type Notifier interface {
	Notify(ev Event)
}

// Presenter is the whole presentation collaborator.
type Presenter interface {
	Decider
	Notifier
}
