package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhaseSetup GamePhase = iota // initial placement, snake order
	PhaseMain                   // dice, builds, trades, development cards
	PhaseEnded                  // someone reached the victory target
)

var phaseNames = map[GamePhase]string{
	PhaseSetup: "Setup",
	PhaseMain:  "Main",
	PhaseEnded: "Ended",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
