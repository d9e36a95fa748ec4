package engine

import (
	"maps"
	"sort"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// PlayerView is a snapshot of one ledger. Hidden views leave the hand and
// development cards out and count only visible points.
type PlayerView struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Resources     catalog.Hand            `json:"resources,omitempty"`
	ResourceCount int                     `json:"resource_count"`
	DevCards      map[catalog.DevCard]int `json:"dev_cards,omitempty"`
	DevCardCount  int                     `json:"dev_card_count"`
	Settlements   []board.VertexID        `json:"settlements"`
	Cities        []board.VertexID        `json:"cities"`
	Roads         []board.EdgeID          `json:"roads"`
	Ports         []catalog.Resource      `json:"ports"`
	VictoryPoints int                     `json:"victory_points"`
	KnightsPlayed int                     `json:"knights_played"`
	RoadLength    int                     `json:"road_length"`
	LargestArmy   bool                    `json:"largest_army"`
	LongestRoad   bool                    `json:"longest_road"`
}

func (g *Game) playerView(p *Player, full bool) PlayerView {
	v := PlayerView{
		ID:            p.ID,
		Name:          p.Name,
		ResourceCount: p.ResourceCount(),
		DevCardCount:  p.DevCardCount(),
		Settlements:   p.Settlements(),
		Cities:        p.Cities(),
		Roads:         p.Roads(),
		Ports:         p.Ports(),
		VictoryPoints: p.VictoryPoints(),
		KnightsPlayed: p.KnightsPlayed(),
		RoadLength:    g.RoadLength(p.ID),
		LargestArmy:   g.army.Holder == p.ID,
		LongestRoad:   g.road.Holder == p.ID,
	}
	if full || g.phase == PhaseEnded {
		v.Resources = p.Resources()
		v.DevCards = maps.Clone(p.devCards)
	} else {
		v.VictoryPoints -= p.DevCard(catalog.VictoryPoint)
	}
	return v
}

// Players returns full views of every seat in turn order.
func (g *Game) Players() []PlayerView {
	out := make([]PlayerView, len(g.players))
	for i, p := range g.players {
		out[i] = g.playerView(p, true)
	}
	return out
}

// Player returns the full view of one seat.
func (g *Game) Player(id string) (PlayerView, bool) {
	p, ok := g.byID[id]
	if !ok {
		return PlayerView{}, false
	}
	return g.playerView(p, true), true
}

// View is everything one seat is allowed to see.
type View struct {
	GameID       string         `json:"game_id"`
	Phase        string         `json:"phase"`
	Current      string         `json:"current"`
	Turn         int            `json:"turn"`
	LastRoll     int            `json:"last_roll"`
	Rolled       bool           `json:"rolled"`
	ThiefPending bool           `json:"thief_pending"`
	DeckSize     int            `json:"deck_size"`
	Hexes        []board.Hex    `json:"hexes"`
	Vertices     []board.Vertex `json:"vertices"`
	Edges        []board.Edge   `json:"edges"`
	Players      []PlayerView   `json:"players"`
	LargestArmy  Achievement    `json:"largest_army"`
	LongestRoad  Achievement    `json:"longest_road"`
	Winner       string         `json:"winner,omitempty"`
	Scores       []ScoreEntry   `json:"scores,omitempty"`
}

// ViewFor builds the view of id. Other seats' hands stay hidden; an empty
// id is a spectator.
func (g *Game) ViewFor(id string) View {
	v := View{
		GameID:       g.id,
		Phase:        g.phase.String(),
		Current:      g.CurrentPlayer(),
		Turn:         g.turnNum,
		LastRoll:     g.lastRoll,
		Rolled:       g.turn.rolled,
		ThiefPending: g.turn.thiefPending,
		DeckSize:     g.deck.Len(),
		Hexes:        g.board.Hexes(),
		Vertices:     g.board.Vertices(),
		Edges:        g.board.Edges(),
		LargestArmy:  g.army,
		LongestRoad:  g.road,
		Winner:       g.winner,
	}
	for _, p := range g.players {
		v.Players = append(v.Players, g.playerView(p, p.ID == id))
	}
	if g.phase == PhaseEnded {
		v.Scores = g.Scores()
	}
	return v
}

// ScoreEntry holds the scoring breakdown for one player.
type ScoreEntry struct {
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	Settlements  int    `json:"settlements"`
	Cities       int    `json:"cities"`
	VictoryCards int    `json:"victory_cards"`
	LargestArmy  int    `json:"largest_army"`
	LongestRoad  int    `json:"longest_road"`
	Total        int    `json:"total"`
}

// Scores computes the breakdown for all players, highest total first.
func (g *Game) Scores() []ScoreEntry {
	entries := make([]ScoreEntry, len(g.players))
	for i, p := range g.players {
		e := ScoreEntry{
			PlayerID:     p.ID,
			PlayerName:   p.Name,
			Settlements:  len(p.settlements),
			Cities:       2 * len(p.cities),
			VictoryCards: p.DevCard(catalog.VictoryPoint),
		}
		if g.army.Holder == p.ID {
			e.LargestArmy = g.cfg.AchievementBonus
		}
		if g.road.Holder == p.ID {
			e.LongestRoad = g.cfg.AchievementBonus
		}
		e.Total = e.Settlements + e.Cities + e.VictoryCards + e.LargestArmy + e.LongestRoad
		entries[i] = e
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Total > entries[j].Total })
	return entries
}
