package card

import (
	"fmt"
	"strings"
)

// ID is the canonical identifier of a card (e.g., hearts.queen, red.3)
type ID string

// Suit of a ranked card. Plain cards have no suit.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Color is the colour identity of a card
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Color returns the colour of the suit
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Clubs, Spades:
		return Black
	}
	return ""
}

// Symbol returns the printable pip of the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "•"
	}
}

// Rank is an ordered rank with a numeric value and a name
type Rank struct {
	Value int
	Name  string
}

var (
	Ace   = Rank{1, "Ace"}
	Two   = Rank{2, "Two"}
	Three = Rank{3, "Three"}
	Four  = Rank{4, "Four"}
	Five  = Rank{5, "Five"}
	Six   = Rank{6, "Six"}
	Seven = Rank{7, "Seven"}
	Eight = Rank{8, "Eight"}
	Nine  = Rank{9, "Nine"}
	Ten   = Rank{10, "Ten"}
	Jack  = Rank{11, "Jack"}
	Queen = Rank{12, "Queen"}
	King  = Rank{13, "King"}
)

// Ranks lists every rank from Ace to King
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// IsZero reports whether the rank is unset, as on plain cards
func (r Rank) IsZero() bool {
	return r.Value == 0
}

// Short returns the one or two character label used on the board
func (r Rank) Short() string {
	switch r.Value {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	}
	return fmt.Sprintf("%d", r.Value)
}

// RankByName looks up a rank by name, case-insensitively
func RankByName(name string) (Rank, bool) {
	for _, r := range Ranks {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Rank{}, false
}

// Position is a board coordinate in pixels from the board origin
type Position struct {
	Top  int
	Left int
}

// Card represents a playing card on the board
type Card struct {
	ID    ID
	Suit  Suit  // Empty for plain cards
	Rank  Rank  // Zero for plain cards
	Color Color // Derived from Suit for ranked cards

	FaceUp   bool
	Position *Position // nil until first placement
	Slot     string    // ID of the containing slot, empty when not placed
}

// New creates a face-down ranked card
func New(suit Suit, rank Rank) *Card {
	return &Card{
		ID:    RankedID(suit, rank),
		Suit:  suit,
		Rank:  rank,
		Color: suit.Color(),
	}
}

// NewPlain creates a plain card identified only by colour. Plain cards are
// always face up.
func NewPlain(color Color, n int) *Card {
	return &Card{
		ID:     ID(fmt.Sprintf("%s.%d", color, n)),
		Color:  color,
		FaceUp: true,
	}
}

// IsPlain reports whether the card carries no suit or rank
func (c *Card) IsPlain() bool {
	return c.Suit == "" && c.Rank.IsZero()
}

// Name returns the display name (e.g., Queen of Hearts)
func (c *Card) Name() string {
	if c.IsPlain() {
		return string(c.ID)
	}
	suit := string(c.Suit)
	return fmt.Sprintf("%s of %s", c.Rank.Name, strings.ToUpper(suit[:1])+suit[1:])
}

// Label returns the short board label (e.g., Q♥)
func (c *Card) Label() string {
	if c.IsPlain() {
		return string(c.ID)
	}
	return c.Rank.Short() + c.Suit.Symbol()
}

func (c *Card) String() string {
	return c.Name()
}

// RankedID builds the canonical ID of a ranked card
func RankedID(suit Suit, rank Rank) ID {
	return ID(fmt.Sprintf("%s.%s", suit, strings.ToLower(rank.Name)))
}

// ParseRankedID splits a canonical ranked ID into suit and rank
func ParseRankedID(id ID) (Suit, Rank, error) {
	parts := strings.Split(string(id), ".")
	if len(parts) != 2 {
		return "", Rank{}, fmt.Errorf("invalid card ID format: %s", id)
	}

	suit := Suit(parts[0])
	if suit.Color() == "" {
		return "", Rank{}, fmt.Errorf("unknown suit: %s", parts[0])
	}

	rank, ok := RankByName(parts[1])
	if !ok {
		return "", Rank{}, fmt.Errorf("unknown rank: %s", parts[1])
	}

	return suit, rank, nil
}
