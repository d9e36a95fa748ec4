package engine

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventGameStarted     EventType = "game_started"
	EventPhaseChange     EventType = "phase_change"
	EventSettlementBuilt EventType = "settlement_built"
	EventCityBuilt       EventType = "city_built"
	EventRoadBuilt       EventType = "road_built"
	EventCardBought      EventType = "card_bought"
	EventCardPlayed      EventType = "card_played"
	EventDiceRolled      EventType = "dice_rolled"
	EventProduced        EventType = "produced"
	EventDiscarded       EventType = "discarded"
	EventThiefMoved      EventType = "thief_moved"
	EventStolen          EventType = "stolen"
	EventBankTrade       EventType = "bank_trade"
	EventPlayerTrade     EventType = "player_trade"
	EventGranted         EventType = "granted"
	EventMonopoly        EventType = "monopoly"
	EventLargestArmy     EventType = "largest_army"
	EventLongestRoad     EventType = "longest_road"
	EventTurnEnd         EventType = "turn_end"
	EventGameOver        EventType = "game_over"
)

// Event is emitted to the Notifier after a state change has committed.
type Event struct {
	Type   EventType      `json:"type"`
	Player string         `json:"player,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
	// Private events carry information only Player may see.
	Private bool `json:"private,omitempty"`
}
