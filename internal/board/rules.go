package board

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

// Accepts reports whether the rule of the slot's family allows c on top of it
func (b *Board) Accepts(s *slot.Slot, c *card.Card) bool {
	switch s.Family {
	case slot.Tableau:
		return TableauAccepts(b.TopCard(s), c)
	case slot.Foundation:
		return FoundationAccepts(b.TopCard(s), c)
	case slot.Generic:
		return true
	default:
		return false
	}
}

// FoundationAccepts builds same-suit ascending runs starting from an Ace.
// top is nil for an empty foundation.
func FoundationAccepts(top, c *card.Card) bool {
	if top == nil {
		return c.Rank.Name == card.Ace.Name
	}
	return c.Suit == top.Suit && c.Rank.Value == top.Rank.Value+1
}

// TableauAccepts builds alternating-colour descending runs starting from a
// King. Nothing stacks onto a face-down card.
func TableauAccepts(top, c *card.Card) bool {
	if top == nil {
		return c.Rank.Name == card.King.Name
	}
	return top.FaceUp &&
		c.Suit.Color() != top.Suit.Color() &&
		top.Rank.Value-c.Rank.Value == 1
}
