// Package bot plays seats automatically. It fills empty seats on the server
// and drives whole-game simulations in tests.
package bot

import (
	"context"
	"sort"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/random"
)

// Bot answers every decision with a greedy heuristic. One Bot can serve
// several seats: each call names the player it decides for.
type Bot struct {
	board board.Reader
	rng   random.Source
}

var _ engine.Presenter = (*Bot)(nil)

func New(b board.Reader, rng random.Source) *Bot {
	return &Bot{board: b, rng: rng}
}

// pips is how many of the 36 dice outcomes roll n.
func pips(n int) int {
	if n < 2 || n > 12 || n == 7 {
		return 0
	}
	return 6 - abs(7-n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// vertexValue sums the pips of the producing hexes around v.
func (b *Bot) vertexValue(v board.VertexID) int {
	vx, ok := b.board.Vertex(v)
	if !ok {
		return 0
	}
	total := 0
	for _, hid := range vx.Hexes {
		if h, ok := b.board.Hex(hid); ok && !h.Desert() {
			total += pips(h.Number)
		}
	}
	if vx.HasPort {
		total++
	}
	return total
}

func best[T any](options []T, score func(T) int) T {
	top, topScore := options[0], score(options[0])
	for _, o := range options[1:] {
		if s := score(o); s > topScore {
			top, topScore = o, s
		}
	}
	return top
}

func (b *Bot) ChooseVertex(_ context.Context, _ string, _ engine.Purpose, options []board.VertexID) (board.VertexID, error) {
	if len(options) == 0 {
		return board.NoVertex, engine.ErrInvalidTarget
	}
	return best(options, b.vertexValue), nil
}

// ChooseEdge heads for the richest free corner.
func (b *Bot) ChooseEdge(_ context.Context, player string, _ engine.Purpose, options []board.EdgeID) (board.EdgeID, error) {
	if len(options) == 0 {
		return board.NoEdge, engine.ErrInvalidTarget
	}
	return best(options, func(e board.EdgeID) int {
		edge, _ := b.board.Edge(e)
		score := 0
		for _, end := range edge.Ends {
			if vx, _ := b.board.Vertex(end); vx.Owner == "" {
				score = max(score, b.vertexValue(end))
			}
		}
		return score
	}), nil
}

// ChooseHex puts the thief where it hurts opponents most and never on the
// bot's own buildings if it can help it.
func (b *Bot) ChooseHex(_ context.Context, player string, _ engine.Purpose, options []board.HexID) (board.HexID, error) {
	if len(options) == 0 {
		return board.NoHex, engine.ErrInvalidTarget
	}
	return best(options, func(id board.HexID) int {
		h, _ := b.board.Hex(id)
		score := pips(h.Number)
		for _, v := range h.Vertices {
			vx, _ := b.board.Vertex(v)
			switch vx.Owner {
			case "":
			case player:
				score -= 100
			default:
				score += 10
			}
		}
		return score
	}), nil
}

func (b *Bot) ChoosePlayer(_ context.Context, _ string, _ engine.Purpose, options []string) (string, error) {
	if len(options) == 0 {
		return "", engine.ErrInvalidTarget
	}
	return options[b.rng.IntN(len(options))], nil
}

func (b *Bot) ChooseResource(_ context.Context, _ string, _ engine.Purpose, options []catalog.Resource) (catalog.Resource, error) {
	if len(options) == 0 {
		return catalog.Misc, engine.ErrInvalidTarget
	}
	return options[b.rng.IntN(len(options))], nil
}

// ChooseDiscard gives up cards from the largest piles first.
func (b *Bot) ChooseDiscard(_ context.Context, _ string, count int, hand catalog.Hand) (catalog.Hand, error) {
	left := hand.Clone()
	out := catalog.Hand{}
	for range count {
		kinds := catalog.Producing()
		sort.SliceStable(kinds, func(i, j int) bool { return left[kinds[i]] > left[kinds[j]] })
		r := kinds[0]
		if left[r] == 0 {
			break
		}
		left[r]--
		out[r]++
	}
	return out, nil
}

// ConfirmTrade accepts any offer that does not shrink the bot's hand.
func (b *Bot) ConfirmTrade(_ context.Context, _ string, offer engine.TradeOffer) (bool, error) {
	return offer.Give.Total() >= offer.Want.Total(), nil
}

func (b *Bot) Notify(engine.Event) {}
