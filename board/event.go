package board

import "github.com/plus3/blockroyale/piece"

//go:generate go tool stringer -type=EventKind

// EventKind names something that happened on a board.
type EventKind int

const (
	PieceLocked EventKind = iota
	LinesCleared
	GarbageReceived
	PieceHeld
	ToppedOut
)

// Event describes one board happening. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Piece   piece.Type
	Lines   int
	Spin    bool
	Perfect bool
	Combo   int
	Score   int
}

// EventSink receives board events as they happen. Audio, effects and statistics hang
// off this instead of reaching into the engine.
type EventSink interface {
	HandleEvent(Event)
}

// EventFunc adapts a function to an EventSink.
type EventFunc func(Event)

func (f EventFunc) HandleEvent(e Event) { f(e) }

type nopSink struct{}

func (nopSink) HandleEvent(Event) {}
