package board

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

// InvariantError reports a disagreement between a card's slot reference and
// the slot piles, or a broken z-order. It indicates a programming error.
type InvariantError struct {
	Card   card.ID
	Slot   slot.ID
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Slot == "" {
		return fmt.Sprintf("inconsistent board state: card %s: %s", e.Card, e.Reason)
	}
	return fmt.Sprintf("inconsistent board state: card %s, slot %s: %s", e.Card, e.Slot, e.Reason)
}

// Verify checks that every pile holds exactly the cards referencing its slot
// and that the z-order holds every card exactly once.
func (b *Board) Verify() error {
	seen := make(map[card.ID]slot.ID)
	for _, id := range b.slotOrder {
		s := b.slots[id]
		for _, cid := range s.Pile {
			c, ok := b.cards[cid]
			if !ok {
				return &InvariantError{Card: cid, Slot: id, Reason: "pile holds a card that is not on the board"}
			}
			if prev, dup := seen[cid]; dup {
				return &InvariantError{Card: cid, Slot: id, Reason: fmt.Sprintf("card is also in slot %s", prev)}
			}
			seen[cid] = id
			if slot.ID(c.Slot) != id {
				return &InvariantError{Card: cid, Slot: id, Reason: fmt.Sprintf("card references slot %q", c.Slot)}
			}
		}
	}

	for id, c := range b.cards {
		if c.Slot == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			return &InvariantError{Card: id, Slot: slot.ID(c.Slot), Reason: "card references slot but is missing from its pile"}
		}
	}

	if len(b.zOrder) != len(b.cards) {
		return &InvariantError{Reason: fmt.Sprintf("z-order holds %d cards, board holds %d", len(b.zOrder), len(b.cards))}
	}
	inZ := make(map[card.ID]bool, len(b.zOrder))
	for _, id := range b.zOrder {
		if _, ok := b.cards[id]; !ok || inZ[id] {
			return &InvariantError{Card: id, Reason: "z-order is not a permutation of the cards"}
		}
		inZ[id] = true
	}

	return nil
}
