package core

import (
	"time"

	"github.com/zyedidia/generic/queue"
)

// Event is a notification from a round to its listeners.
type Event interface {
	roundEvent()
}

// TileMove is a tile that changed cells during gravity.
type TileMove struct {
	ID   uint64
	From Coord
	To   Coord
}

// TilesSpawnedEvent lists new tiles in spawn order.
type TilesSpawnedEvent struct {
	Tiles []Tile
}

// TilesMovedEvent lists tiles moved by gravity.
type TilesMovedEvent struct {
	Moves []TileMove
}

// TilesRemovedEvent lists tiles cleared by a chain.
type TilesRemovedEvent struct {
	Tiles []Tile
}

// SelectionChangedEvent carries the current path, empty when cleared.
type SelectionChangedEvent struct {
	Path []Coord
}

// ChainClearedEvent describes a committed chain.
type ChainClearedEvent struct {
	Length     int
	Tiles      int
	Points     int
	ComboCount int // combo after this chain
	Fever      bool
	CentroidX  float64
	CentroidY  float64
}

// ChainCancelledEvent is sent when a too-short or interrupted selection is dropped.
type ChainCancelledEvent struct {
	Length int
}

type ScoreChangedEvent struct {
	Score     int
	Delta     int
	HighScore int
}

type NewRecordEvent struct {
	Score    int
	Previous int
}

type ComboChangedEvent struct {
	Count      int
	Multiplier float64
}

type ComboBrokenEvent struct {
	Count int
}

type FeverGaugeChangedEvent struct {
	Gauge     int
	Threshold int
}

type FeverStartedEvent struct {
	Duration time.Duration
}

type FeverEndedEvent struct{}

type TimeAddedEvent struct {
	Added     time.Duration
	Remaining time.Duration
}

type StateChangedEvent struct {
	From RoundState
	To   RoundState
}

// RoundEndedEvent carries the final tally.
type RoundEndedEvent struct {
	Summary Summary
}

// StoreFailedEvent reports a high-score read or write that did not go through.
// The round continues with the in-memory value.
type StoreFailedEvent struct {
	Op  string
	Err error
}

func (TilesSpawnedEvent) roundEvent()      {}
func (TilesMovedEvent) roundEvent()        {}
func (TilesRemovedEvent) roundEvent()      {}
func (SelectionChangedEvent) roundEvent()  {}
func (ChainClearedEvent) roundEvent()      {}
func (ChainCancelledEvent) roundEvent()    {}
func (ScoreChangedEvent) roundEvent()      {}
func (NewRecordEvent) roundEvent()         {}
func (ComboChangedEvent) roundEvent()      {}
func (ComboBrokenEvent) roundEvent()       {}
func (FeverGaugeChangedEvent) roundEvent() {}
func (FeverStartedEvent) roundEvent()      {}
func (FeverEndedEvent) roundEvent()        {}
func (TimeAddedEvent) roundEvent()         {}
func (StateChangedEvent) roundEvent()      {}
func (RoundEndedEvent) roundEvent()        {}
func (StoreFailedEvent) roundEvent()       {}

// Listener receives round events.
type Listener func(Event)

// SubscriptionID identifies a listener for Unsubscribe.
type SubscriptionID int

type subscription struct {
	id SubscriptionID
	fn Listener
}

// Bus queues events and fans them out to listeners.
//
// Published events wait in FIFO order until Dispatch, which the round
// calls once per tick. Every listener sees every event, in subscription
// order.
type Bus struct {
	pending *queue.Queue[Event]
	subs    []subscription
	nextID  SubscriptionID
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{pending: queue.New[Event]()}
}

// Subscribe adds a listener and returns its id.
func (b *Bus) Subscribe(fn Listener) SubscriptionID {
	b.nextID++
	b.subs = append(b.subs, subscription{id: b.nextID, fn: fn})
	return b.nextID
}

// Unsubscribe removes a listener. It returns false if id is unknown.
func (b *Bus) Unsubscribe(id SubscriptionID) bool {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Listeners returns the number of subscribed listeners.
func (b *Bus) Listeners() int {
	return len(b.subs)
}

// Publish queues an event for the next Dispatch.
func (b *Bus) Publish(ev Event) {
	b.pending.Enqueue(ev)
}

// Pending reports whether events are waiting.
func (b *Bus) Pending() bool {
	return !b.pending.Empty()
}

// Dispatch delivers queued events, including any published by listeners
// while dispatching, and returns how many were delivered.
func (b *Bus) Dispatch() int {
	n := 0
	for !b.pending.Empty() {
		ev := b.pending.Dequeue()
		subs := b.subs
		for _, s := range subs {
			s.fn(ev)
		}
		n++
	}
	return n
}
