// Package enginetest provides a scripted Presenter for deterministic tests.
package enginetest

import (
	"context"
	"errors"
	"sync"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/random"
)

// ErrNoAnswer is returned when a queue is empty and Fallback is off.
var ErrNoAnswer = errors.New("no scripted answer")

// Scripted answers decisions from queues and records every event. With
// Fallback set, an empty queue answers with the first option offered. With
// Stall set, every decision blocks until its context is done.
type Scripted struct {
	mu sync.Mutex

	Vertices  []board.VertexID
	Edges     []board.EdgeID
	Hexes     []board.HexID
	Players   []string
	Resources []catalog.Resource
	Discards  []catalog.Hand
	Trades    []bool

	Fallback bool
	Stall    bool

	Events []engine.Event
	Asked  []engine.Purpose
}

var _ engine.Presenter = (*Scripted)(nil)

func pop[T any](s *Scripted, queue *[]T, options []T, purpose engine.Purpose) (T, error) {
	s.Asked = append(s.Asked, purpose)
	var zero T
	if len(*queue) > 0 {
		v := (*queue)[0]
		*queue = (*queue)[1:]
		return v, nil
	}
	if s.Fallback && len(options) > 0 {
		return options[0], nil
	}
	return zero, ErrNoAnswer
}

func (s *Scripted) stall(ctx context.Context) error {
	if !s.Stall {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *Scripted) ChooseVertex(ctx context.Context, _ string, purpose engine.Purpose, options []board.VertexID) (board.VertexID, error) {
	if err := s.stall(ctx); err != nil {
		return board.NoVertex, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(s, &s.Vertices, options, purpose)
}

func (s *Scripted) ChooseEdge(ctx context.Context, _ string, purpose engine.Purpose, options []board.EdgeID) (board.EdgeID, error) {
	if err := s.stall(ctx); err != nil {
		return board.NoEdge, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(s, &s.Edges, options, purpose)
}

func (s *Scripted) ChooseHex(ctx context.Context, _ string, purpose engine.Purpose, options []board.HexID) (board.HexID, error) {
	if err := s.stall(ctx); err != nil {
		return board.NoHex, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(s, &s.Hexes, options, purpose)
}

func (s *Scripted) ChoosePlayer(ctx context.Context, _ string, purpose engine.Purpose, options []string) (string, error) {
	if err := s.stall(ctx); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(s, &s.Players, options, purpose)
}

func (s *Scripted) ChooseResource(ctx context.Context, _ string, purpose engine.Purpose, options []catalog.Resource) (catalog.Resource, error) {
	if err := s.stall(ctx); err != nil {
		return catalog.Misc, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(s, &s.Resources, options, purpose)
}

func (s *Scripted) ChooseDiscard(ctx context.Context, _ string, count int, hand catalog.Hand) (catalog.Hand, error) {
	if err := s.stall(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Asked = append(s.Asked, "discard")
	if len(s.Discards) > 0 {
		h := s.Discards[0]
		s.Discards = s.Discards[1:]
		return h, nil
	}
	if !s.Fallback {
		return nil, ErrNoAnswer
	}
	return FirstCards(hand, count), nil
}

func (s *Scripted) ConfirmTrade(ctx context.Context, _ string, _ engine.TradeOffer) (bool, error) {
	if err := s.stall(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(s, &s.Trades, []bool{false}, "trade")
}

func (s *Scripted) Notify(ev engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
}

// Types lists the recorded event types in order.
func (s *Scripted) Types() []engine.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.EventType, len(s.Events))
	for i, ev := range s.Events {
		out[i] = ev.Type
	}
	return out
}

// Last returns the most recent event of type t.
func (s *Scripted) Last(t engine.EventType) (engine.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.Events) - 1; i >= 0; i-- {
		if s.Events[i].Type == t {
			return s.Events[i], true
		}
	}
	return engine.Event{}, false
}

// FirstCards takes count cards from hand in canonical resource order.
func FirstCards(hand catalog.Hand, count int) catalog.Hand {
	out := catalog.Hand{}
	for _, r := range catalog.Producing() {
		n := min(hand[r], count)
		if n > 0 {
			out[r] = n
			count -= n
		}
	}
	return out
}

// LoadedDice wraps a source so that die throws come from Faces while they
// last. Everything else, shuffles and steals included, uses the wrapped
// source untouched.
type LoadedDice struct {
	random.Source
	Faces []int
}

// Throw pops two queued faces, or throws the wrapped source's dice once the
// queue runs dry.
func (d *LoadedDice) Throw() (int, int) {
	if len(d.Faces) < 2 {
		return d.Source.IntN(6) + 1, d.Source.IntN(6) + 1
	}
	d1, d2 := d.Faces[0], d.Faces[1]
	d.Faces = d.Faces[2:]
	return d1, d2
}

// Roll queues two faces adding up to total.
func (d *LoadedDice) Roll(total int) {
	a := min(6, total-1)
	d.Faces = append(d.Faces, a, total-a)
}
