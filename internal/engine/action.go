package engine

import (
	"context"
	"fmt"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	ActionPlaceSettlement ActionType = "place_settlement" // setup round
	ActionPlaceRoad       ActionType = "place_road"       // setup round
	ActionRoll            ActionType = "roll"
	ActionBuild           ActionType = "build"
	ActionBuyCard         ActionType = "buy_card"
	ActionPlayCard        ActionType = "play_card"
	ActionMoveThief       ActionType = "move_thief"
	ActionBankTrade       ActionType = "bank_trade"
	ActionOfferTrade      ActionType = "offer_trade"
	ActionEndTurn         ActionType = "end_turn"
)

// Action is a player's action input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// place_settlement, build settlement/city: Vertex
	// place_road, build road: Edge
	// build: Building; a missing location asks the Decider
	// play_card: Card
	// move_thief: Hex, Target (victim, optional)
	// bank_trade: Give (one resource), Get
	// offer_trade: Target, Offer, Want
	Building *catalog.Building `json:"building,omitempty"`
	Vertex   *board.VertexID   `json:"vertex,omitempty"`
	Edge     *board.EdgeID     `json:"edge,omitempty"`
	Hex      *board.HexID      `json:"hex,omitempty"`
	Card     *catalog.DevCard  `json:"card,omitempty"`
	Target   string            `json:"target,omitempty"`
	Give     *catalog.Resource `json:"give,omitempty"`
	Get      *catalog.Resource `json:"get,omitempty"`
	Offer    catalog.Hand      `json:"offer,omitempty"`
	Want     catalog.Hand      `json:"want,omitempty"`
}

// Apply is the single entry point for remote player actions.
func (g *Game) Apply(ctx context.Context, playerID string, a Action) error {
	switch a.Type {
	case ActionPlaceSettlement:
		if a.Vertex == nil {
			return missing(a, "vertex")
		}
		return g.PlaceInitialSettlement(playerID, *a.Vertex)
	case ActionPlaceRoad:
		if a.Edge == nil {
			return missing(a, "edge")
		}
		return g.PlaceInitialRoad(playerID, *a.Edge)
	case ActionRoll:
		_, err := g.RollDice(ctx, playerID)
		return err
	case ActionBuild:
		return g.applyBuild(ctx, playerID, a)
	case ActionBuyCard:
		_, err := g.BuildDevelopmentCard(playerID)
		return err
	case ActionPlayCard:
		if a.Card == nil {
			return missing(a, "card")
		}
		return g.PlayDevelopmentCard(ctx, playerID, *a.Card)
	case ActionMoveThief:
		if a.Hex == nil {
			return g.ResolveThief(ctx, playerID)
		}
		return g.MoveThief(ctx, playerID, *a.Hex, a.Target)
	case ActionBankTrade:
		if a.Give == nil || a.Get == nil {
			return missing(a, "give/get")
		}
		return g.TradeWithBank(playerID, *a.Give, *a.Get)
	case ActionOfferTrade:
		_, err := g.ProposeTrade(ctx, playerID, a.Target, a.Offer, a.Want)
		return err
	case ActionEndTurn:
		return g.EndTurn(playerID)
	}
	return fmt.Errorf("%w: action %q", ErrInvalidTarget, a.Type)
}

func (g *Game) applyBuild(ctx context.Context, playerID string, a Action) error {
	if a.Building == nil {
		return missing(a, "building")
	}
	switch b := *a.Building; {
	case b == catalog.Road && a.Edge != nil:
		return g.BuildRoad(playerID, *a.Edge)
	case b == catalog.Settlement && a.Vertex != nil:
		return g.BuildSettlement(playerID, *a.Vertex)
	case b == catalog.City && a.Vertex != nil:
		return g.BuildCity(playerID, *a.Vertex)
	default:
		return g.Build(ctx, playerID, b)
	}
}

func missing(a Action, field string) error {
	return fmt.Errorf("%w: %s needs %s", ErrInvalidTarget, a.Type, field)
}
