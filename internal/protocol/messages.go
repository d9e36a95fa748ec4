package protocol

import "encoding/json"

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"
	MsgEvent       = "event"
	MsgDecision    = "decision"
	MsgError       = "error"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	MsgAnswer    = "answer"
	// In-game actions use the same names as engine ActionType
	MsgPlaceSettlement = "place_settlement"
	MsgPlaceRoad       = "place_road"
	MsgRoll            = "roll"
	MsgBuild           = "build"
	MsgBuyCard         = "buy_card"
	MsgPlayCard        = "play_card"
	MsgMoveThief       = "move_thief"
	MsgBankTrade       = "bank_trade"
	MsgOfferTrade      = "offer_trade"
	MsgEndTurn         = "end_turn"
)

// ActionTypes lists the client message types that carry a game action.
func ActionTypes() []string {
	return []string{
		MsgPlaceSettlement, MsgPlaceRoad, MsgRoll, MsgBuild, MsgBuyCard,
		MsgPlayCard, MsgMoveThief, MsgBankTrade, MsgOfferTrade, MsgEndTurn,
	}
}

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
	Bot   bool   `json:"bot,omitempty"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// Decision kinds name which Decider call a DecisionRequest stands for.
const (
	DecideVertex   = "vertex"
	DecideEdge     = "edge"
	DecideHex      = "hex"
	DecidePlayer   = "player"
	DecideResource = "resource"
	DecideDiscard  = "discard"
	DecideTrade    = "trade"
)

// DecisionRequest asks one player to choose. Options holds the legal
// answers for choice kinds; discards carry Count and Hand, trades Offer.
type DecisionRequest struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Purpose  string `json:"purpose,omitempty"`
	Options  any    `json:"options,omitempty"`
	Count    int    `json:"count,omitempty"`
	Hand     any    `json:"hand,omitempty"`
	Offer    any    `json:"offer,omitempty"`
	Deadline int64  `json:"deadline,omitempty"` // unix millis
}

// DecisionResponse answers the request with the same ID. Answer is decoded
// according to the request's kind.
type DecisionResponse struct {
	ID     string          `json:"id"`
	Answer json.RawMessage `json:"answer"`
}

// EventMsg mirrors an engine event on the wire.
type EventMsg struct {
	Type   string         `json:"type"`
	Player string         `json:"player,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}
