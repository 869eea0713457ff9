package slot

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
)

// ID identifies a slot on the board (e.g., tableau.0, foundation.2)
type ID string

// Family selects the placement rule and fan-out of a slot
type Family int

const (
	Generic Family = iota
	Tableau
	Foundation
	Stock
)

func (f Family) String() string {
	switch f {
	case Tableau:
		return "tableau"
	case Foundation:
		return "foundation"
	case Stock:
		return "stock"
	default:
		return "generic"
	}
}

// ParseFamily parses a family name as written in layout files
func ParseFamily(name string) (Family, error) {
	switch name {
	case "generic":
		return Generic, nil
	case "tableau":
		return Tableau, nil
	case "foundation":
		return Foundation, nil
	case "stock":
		return Stock, nil
	}
	return Generic, fmt.Errorf("unknown slot family: %s", name)
}

// FansOut reports whether cards stacked in the family are offset vertically
func (f Family) FansOut() bool {
	return f == Tableau
}

// Slot is an ordered pile of cards at a fixed board position.
// Pile is bottom-to-top; the last element is the top card.
type Slot struct {
	ID       ID
	Family   Family
	Position card.Position
	Pile     []card.ID
}

// New creates an empty slot
func New(id ID, family Family, pos card.Position) *Slot {
	return &Slot{
		ID:       id,
		Family:   family,
		Position: pos,
		Pile:     []card.ID{},
	}
}

// TopCard returns the top card ID, and false if the slot is empty
func (s *Slot) TopCard() (card.ID, bool) {
	if len(s.Pile) == 0 {
		return "", false
	}
	return s.Pile[len(s.Pile)-1], true
}

// Len returns the number of cards in the pile
func (s *Slot) Len() int {
	return len(s.Pile)
}

// IndexOf returns the pile index of a card, or -1
func (s *Slot) IndexOf(id card.ID) int {
	for i, c := range s.Pile {
		if c == id {
			return i
		}
	}
	return -1
}

// SettledAt returns the settled position of the card at pile index i.
// Only tableau slots fan out; every other family stacks cards in place.
func (s *Slot) SettledAt(i, offset int) card.Position {
	top := s.Position.Top
	if s.Family.FansOut() {
		top += i * offset
	}
	return card.Position{Top: top, Left: s.Position.Left}
}

// NextSettled returns the position the next appended card would settle at
func (s *Slot) NextSettled(offset int) card.Position {
	return s.SettledAt(len(s.Pile), offset)
}

func (s *Slot) String() string {
	return fmt.Sprintf("%s (%s) at %d,%d", s.ID, s.Family, s.Position.Left, s.Position.Top)
}
