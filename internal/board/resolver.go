package board

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

// resolutionOrder is the family priority used when resolving a drop
var resolutionOrder = []slot.Family{slot.Tableau, slot.Foundation, slot.Generic}

// ResolveDrop picks the slot that accepts c released at its current position.
// Tableau slots are tried first, then foundations, then generic slots, each in
// board order; the first slot within proximity whose rule accepts c wins.
// It returns nil when nothing accepts the drop.
func (b *Board) ResolveDrop(c *card.Card) *slot.Slot {
	if c.Position == nil {
		return nil
	}
	for _, family := range resolutionOrder {
		for _, s := range b.SlotsOf(family) {
			if b.within(*c.Position, s) && b.Accepts(s, c) {
				return s
			}
		}
	}
	return nil
}

// within compares pos against where the next card on s would settle
func (b *Board) within(pos card.Position, s *slot.Slot) bool {
	target := s.NextSettled(b.Geometry.CardOffset)
	return abs(pos.Top-target.Top) < b.Geometry.DropProximity &&
		abs(pos.Left-target.Left) < b.Geometry.DropProximity
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
