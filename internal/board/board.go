package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

var (
	ErrUnknownCard    = errors.New("unknown card")
	ErrUnknownSlot    = errors.New("unknown slot")
	ErrDuplicateCard  = errors.New("card already on the board")
	ErrDuplicateSlot  = errors.New("slot already on the board")
	ErrGestureActive  = errors.New("another drag gesture is active")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Variant selects between ranked cards with tableau/foundation rules and
// plain colour cards with no rules.
type Variant int

const (
	Ranked Variant = iota
	Plain
)

func (v Variant) String() string {
	if v == Plain {
		return "plain"
	}
	return "ranked"
}

// ParseVariant parses a variant name as written in config files
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "ranked", "":
		return Ranked, nil
	case "plain":
		return Plain, nil
	}
	return Ranked, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
}

// Geometry holds the pixel constants used for fan-out and drop detection
type Geometry struct {
	CardOffset    int // Vertical offset per pile index in fanned slots
	DropProximity int // Max distance on each axis for a drop to hit a slot
}

// DefaultGeometry is used when no config overrides it
var DefaultGeometry = Geometry{CardOffset: 30, DropProximity: 50}

// Board owns every slot and card in play along with the z-order of the cards.
// Pile membership changes only through PlaceCard and the gesture handlers,
// which update both the slot pile and the card's slot reference together.
type Board struct {
	Variant  Variant
	Geometry Geometry

	slots     map[slot.ID]*slot.Slot
	slotOrder []slot.ID
	cards     map[card.ID]*card.Card
	zOrder    []card.ID

	drag      *gesture
	listeners []Listener
}

// New creates an empty board
func New(variant Variant, geometry Geometry) *Board {
	return &Board{
		Variant:  variant,
		Geometry: geometry,
		slots:    make(map[slot.ID]*slot.Slot),
		cards:    make(map[card.ID]*card.Card),
	}
}

// AddSlot registers a slot. Slots are evaluated in the order they are added.
func (b *Board) AddSlot(s *slot.Slot) error {
	if _, ok := b.slots[s.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSlot, s.ID)
	}
	b.slots[s.ID] = s
	b.slotOrder = append(b.slotOrder, s.ID)
	return nil
}

// AddCard registers an unplaced card and puts it at the front of the z-order
func (b *Board) AddCard(c *card.Card) error {
	if _, ok := b.cards[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, c.ID)
	}
	if c.Slot != "" {
		return fmt.Errorf("card %s already references slot %s", c.ID, c.Slot)
	}
	b.cards[c.ID] = c
	b.zOrder = append(b.zOrder, c.ID)
	return nil
}

// Card looks up a card by ID
func (b *Board) Card(id card.ID) (*card.Card, error) {
	c, ok := b.cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	return c, nil
}

// Slot looks up a slot by ID
func (b *Board) Slot(id slot.ID) (*slot.Slot, error) {
	s, ok := b.slots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
	}
	return s, nil
}

// Slots returns every slot in board order
func (b *Board) Slots() []*slot.Slot {
	return lo.Map(b.slotOrder, func(id slot.ID, _ int) *slot.Slot {
		return b.slots[id]
	})
}

// SlotsOf returns the slots of one family in board order
func (b *Board) SlotsOf(family slot.Family) []*slot.Slot {
	return lo.Filter(b.Slots(), func(s *slot.Slot, _ int) bool {
		return s.Family == family
	})
}

// ZOrder returns a copy of the z-order, back to front
func (b *Board) ZOrder() []card.ID {
	return append([]card.ID(nil), b.zOrder...)
}

// Dragging returns the lead card of the active gesture, if any
func (b *Board) Dragging() (card.ID, bool) {
	if b.drag == nil {
		return "", false
	}
	return b.drag.lead, true
}

// TopCard resolves the top card of a slot
func (b *Board) TopCard(s *slot.Slot) *card.Card {
	id, ok := s.TopCard()
	if !ok {
		return nil
	}
	return b.mustCard(id)
}

// DraggablePile returns the card and every card stacked above it in its slot.
// A card that is not in a slot forms a pile of one. The result is computed
// from the slot pile on every call.
func (b *Board) DraggablePile(id card.ID) ([]card.ID, error) {
	c, err := b.Card(id)
	if err != nil {
		return nil, err
	}
	return b.draggablePile(c), nil
}

func (b *Board) draggablePile(c *card.Card) []card.ID {
	if c.Slot == "" {
		return []card.ID{c.ID}
	}
	s := b.slotOf(c)
	i := s.IndexOf(c.ID)
	if i < 0 {
		panic(&InvariantError{Card: c.ID, Slot: s.ID, Reason: "card references slot but is missing from its pile"})
	}
	return append([]card.ID(nil), s.Pile[i:]...)
}

// PlaceCard moves a single card onto the top of a slot, settling its
// position. It is the entry point used by dealing and fails while a drag is
// active.
func (b *Board) PlaceCard(cardID card.ID, slotID slot.ID) error {
	if _, err := b.Card(cardID); err != nil {
		return err
	}
	if err := b.idle(); err != nil {
		return err
	}
	s, err := b.Slot(slotID)
	if err != nil {
		return err
	}
	b.place([]card.ID{cardID}, s)
	return nil
}

// SetFaceUp changes the face state of a card and emits the change. It fails
// while a drag is active.
func (b *Board) SetFaceUp(id card.ID, faceUp bool) error {
	c, err := b.Card(id)
	if err != nil {
		return err
	}
	if err := b.idle(); err != nil {
		return err
	}
	if c.FaceUp != faceUp {
		c.FaceUp = faceUp
		b.emit(Event{Kind: FaceChanged, Card: c.ID, FaceUp: faceUp})
	}
	return nil
}

// place moves pile onto s in order. Every card is first detached from its
// current slot so the fan-out of s stays contiguous even when a pile is
// dropped back onto the slot it came from.
func (b *Board) place(pile []card.ID, s *slot.Slot) {
	for _, id := range pile {
		b.detach(b.mustCard(id))
	}
	for _, id := range pile {
		c := b.mustCard(id)
		pos := s.NextSettled(b.Geometry.CardOffset)
		c.Slot = string(s.ID)
		s.Pile = append(s.Pile, c.ID)
		b.setPosition(c, pos)
	}
	log.Debug().Str("slot", string(s.ID)).Interface("cards", pile).Msg("placed")
}

func (b *Board) detach(c *card.Card) {
	if c.Slot == "" {
		return
	}
	s := b.slotOf(c)
	i := s.IndexOf(c.ID)
	if i < 0 {
		panic(&InvariantError{Card: c.ID, Slot: s.ID, Reason: "card references slot but is missing from its pile"})
	}
	s.Pile = append(s.Pile[:i], s.Pile[i+1:]...)
	c.Slot = ""
}

// raise moves pile to the front of the z-order, keeping pile order
func (b *Board) raise(pile []card.ID) {
	b.zOrder = append(lo.Without(b.zOrder, pile...), pile...)
	b.emit(Event{Kind: ZOrderChanged, ZOrder: b.ZOrder()})
}

func (b *Board) setPosition(c *card.Card, pos card.Position) {
	p := pos
	c.Position = &p
	b.emit(Event{Kind: PositionChanged, Card: c.ID, Position: p})
}

func (b *Board) slotOf(c *card.Card) *slot.Slot {
	s, ok := b.slots[slot.ID(c.Slot)]
	if !ok {
		panic(&InvariantError{Card: c.ID, Slot: slot.ID(c.Slot), Reason: "card references a slot that is not on the board"})
	}
	return s
}

func (b *Board) mustCard(id card.ID) *card.Card {
	c, ok := b.cards[id]
	if !ok {
		panic(&InvariantError{Card: id, Reason: "pile holds a card that is not on the board"})
	}
	return c
}
