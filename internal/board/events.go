package board

import (
	"github.com/samber/lo"

	"github.com/arcanaland/solitaire/internal/card"
)

// EventKind identifies what changed on the board
type EventKind int

const (
	PositionChanged EventKind = iota
	ZOrderChanged
	FaceChanged
)

func (k EventKind) String() string {
	switch k {
	case PositionChanged:
		return "position"
	case ZOrderChanged:
		return "zorder"
	case FaceChanged:
		return "face"
	}
	return "unknown"
}

// Event is emitted to listeners whenever a card's position, face state or
// the z-order changes. ZOrder is the full back-to-front order.
type Event struct {
	Kind     EventKind
	Card     card.ID
	Position card.Position
	FaceUp   bool
	ZOrder   []card.ID
}

// Listener receives board events synchronously, in emission order
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(Event)

func (f ListenerFunc) Notify(e Event) {
	f(e)
}

// Subscribe registers a listener for every later event
func (b *Board) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Board) emit(e Event) {
	for _, l := range b.listeners {
		l.Notify(e)
	}
}

// Recorder collects events in order
type Recorder struct {
	Events []Event
}

func (r *Recorder) Notify(e Event) {
	r.Events = append(r.Events, e)
}

// Reset drops every recorded event
func (r *Recorder) Reset() {
	r.Events = nil
}

// OfKind returns the recorded events of one kind
func (r *Recorder) OfKind(kind EventKind) []Event {
	return lo.Filter(r.Events, func(e Event, _ int) bool {
		return e.Kind == kind
	})
}
