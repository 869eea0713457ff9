package board

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

// Result is the outcome of a drag or double tap
type Result int

const (
	Ignored Result = iota
	Placed
	Bounced
)

func (r Result) String() string {
	switch r {
	case Placed:
		return "placed"
	case Bounced:
		return "bounced"
	}
	return "ignored"
}

// Outcome describes what a gesture did to the board
type Outcome struct {
	Result Result
	Slot   slot.ID   // Target slot when Result is Placed
	Cards  []card.ID // Cards that moved or were reset
}

// gesture is the single active drag on the board
type gesture struct {
	lead    card.ID
	pile    []card.ID
	anchor  card.Position
	origins map[card.ID]*card.Position
}

// DragStart begins dragging c and every card above it. Face-down ranked cards
// cannot be dragged and the call is a no-op.
func (b *Board) DragStart(id card.ID) error {
	c, err := b.Card(id)
	if err != nil {
		return err
	}
	if b.drag != nil {
		return fmt.Errorf("%w: %s is being dragged", ErrGestureActive, b.drag.lead)
	}
	if !b.draggable(c) {
		log.Debug().Str("card", string(id)).Msg("drag start ignored, card is face down")
		return nil
	}

	b.raise(b.draggablePile(c))
	pile := b.draggablePile(c)

	g := &gesture{
		lead:    id,
		pile:    pile,
		origins: make(map[card.ID]*card.Position, len(pile)),
	}
	if c.Position != nil {
		g.anchor = *c.Position
	}
	for _, pid := range pile {
		if pos := b.cards[pid].Position; pos != nil {
			p := *pos
			g.origins[pid] = &p
		} else {
			g.origins[pid] = nil
		}
	}
	b.drag = g
	return nil
}

// DragUpdate moves the dragged pile to the drag anchor offset by the pointer
// delta. Every update overwrites the previous one.
func (b *Board) DragUpdate(id card.ID, deltaX, deltaY int) error {
	c, err := b.Card(id)
	if err != nil {
		return err
	}
	if err := b.guard(id); err != nil {
		return err
	}
	if b.drag == nil || !b.draggable(c) {
		return nil
	}

	top := max(0, b.drag.anchor.Top+deltaY)
	left := max(0, b.drag.anchor.Left+deltaX)
	for i, pid := range b.drag.pile {
		b.setPosition(b.cards[pid], card.Position{
			Top:  top + i*b.Geometry.CardOffset,
			Left: left,
		})
	}
	return nil
}

// DragEnd releases the dragged pile. It is placed on the first slot that
// accepts it, or bounced back to where it was settled.
func (b *Board) DragEnd(id card.ID) (Outcome, error) {
	c, err := b.Card(id)
	if err != nil {
		return Outcome{}, err
	}
	if err := b.guard(id); err != nil {
		return Outcome{}, err
	}

	g := b.drag
	b.drag = nil
	active := g != nil
	if !active {
		g = &gesture{lead: id, pile: b.draggablePile(c)}
	}

	if active && b.draggable(c) {
		if s := b.ResolveDrop(c); s != nil {
			b.place(g.pile, s)
			return Outcome{Result: Placed, Slot: s.ID, Cards: g.pile}, nil
		}
	}

	b.bounceBack(g)
	log.Debug().Str("card", string(id)).Msg("bounced")
	return Outcome{Result: Bounced, Cards: g.pile}, nil
}

// bounceBack resets every card of the gesture to its settled position in its
// current slot. Cards without a slot return to where the drag found them,
// including having no position at all.
func (b *Board) bounceBack(g *gesture) {
	for _, pid := range g.pile {
		c := b.cards[pid]
		if c.Slot == "" {
			origin := g.origins[pid]
			if origin == nil {
				c.Position = nil
				continue
			}
			b.setPosition(c, *origin)
			continue
		}
		s := b.slotOf(c)
		i := s.IndexOf(c.ID)
		if i < 0 {
			panic(&InvariantError{Card: c.ID, Slot: s.ID, Reason: "card references slot but is missing from its pile"})
		}
		b.setPosition(c, s.SettledAt(i, b.Geometry.CardOffset))
	}
}

// Tap flips the top card of a tableau pile face up. Only face-down ranked
// cards on top of a tableau pile react.
func (b *Board) Tap(id card.ID) error {
	c, err := b.Card(id)
	if err != nil {
		return err
	}
	if err := b.idle(); err != nil {
		return err
	}
	if b.Variant == Plain || c.FaceUp || c.Slot == "" {
		return nil
	}

	s := b.slotOf(c)
	if s.Family != slot.Tableau {
		return nil
	}
	if top, _ := s.TopCard(); top != c.ID {
		return nil
	}
	return b.SetFaceUp(id, true)
}

// DoubleTap plays a single face-up card to the first foundation that accepts it
func (b *Board) DoubleTap(id card.ID) (Outcome, error) {
	c, err := b.Card(id)
	if err != nil {
		return Outcome{}, err
	}
	if err := b.idle(); err != nil {
		return Outcome{}, err
	}
	if b.Variant == Plain {
		return Outcome{Result: Ignored}, nil
	}

	pile := b.draggablePile(c)
	if !c.FaceUp || len(pile) != 1 {
		return Outcome{Result: Ignored}, nil
	}

	b.raise(pile)
	for _, s := range b.SlotsOf(slot.Foundation) {
		if b.Accepts(s, c) {
			b.place(pile, s)
			return Outcome{Result: Placed, Slot: s.ID, Cards: pile}, nil
		}
	}
	return Outcome{Result: Ignored}, nil
}

// guard rejects events for any card other than the active drag's lead card
func (b *Board) guard(id card.ID) error {
	if b.drag != nil && b.drag.lead != id {
		return fmt.Errorf("%w: %s is being dragged", ErrGestureActive, b.drag.lead)
	}
	return nil
}

// idle rejects taps and direct board edits while any drag is active
func (b *Board) idle() error {
	if b.drag != nil {
		return fmt.Errorf("%w: %s is being dragged", ErrGestureActive, b.drag.lead)
	}
	return nil
}

func (b *Board) draggable(c *card.Card) bool {
	return b.Variant == Plain || c.FaceUp
}
