package deck

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

// PlainColors are the colour identities of the plain deck
var PlainColors = []card.Color{"red", "blue", "green", "yellow"}

// Ranked builds the 52 ranked cards in suit then rank order, face down
func Ranked() []*card.Card {
	cards := make([]*card.Card, 0, len(card.Suits)*len(card.Ranks))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(suit, rank))
		}
	}
	return cards
}

// Plain builds perColor cards of every plain colour
func Plain(perColor int) []*card.Card {
	cards := make([]*card.Card, 0, len(PlainColors)*perColor)
	for _, color := range PlainColors {
		for n := 1; n <= perColor; n++ {
			cards = append(cards, card.NewPlain(color, n))
		}
	}
	return cards
}

// NewRNG returns a deterministic generator for a non-zero seed and a
// randomly seeded one otherwise.
func NewRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}

// Shuffle permutes cards in place
func Shuffle(cards []*card.Card, rng *frand.RNG) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Deal registers cards on b and distributes them through Board.PlaceCard.
// Ranked boards get a Klondike deal; plain boards deal round-robin over their
// generic slots.
func Deal(b *board.Board, cards []*card.Card) error {
	for _, c := range cards {
		if err := b.AddCard(c); err != nil {
			return err
		}
	}

	if b.Variant == board.Plain {
		return dealRoundRobin(b, cards)
	}
	return dealKlondike(b, cards)
}

// dealKlondike gives tableau pile i exactly i+1 cards with only the last face
// up, then stacks the remainder face up on the stock.
func dealKlondike(b *board.Board, cards []*card.Card) error {
	tableau := b.SlotsOf(slot.Tableau)
	stock := b.SlotsOf(slot.Stock)
	if len(tableau) == 0 {
		return fmt.Errorf("layout has no tableau slots")
	}

	next := 0
	for i, s := range tableau {
		for j := 0; j <= i; j++ {
			if next >= len(cards) {
				return fmt.Errorf("not enough cards for %d tableau slots", len(tableau))
			}
			c := cards[next]
			next++
			if err := b.PlaceCard(c.ID, s.ID); err != nil {
				return err
			}
			if err := b.SetFaceUp(c.ID, j == i); err != nil {
				return err
			}
		}
	}

	if next < len(cards) && len(stock) == 0 {
		return fmt.Errorf("layout has no stock slot for %d remaining cards", len(cards)-next)
	}
	for _, c := range cards[next:] {
		if err := b.PlaceCard(c.ID, stock[0].ID); err != nil {
			return err
		}
		if err := b.SetFaceUp(c.ID, true); err != nil {
			return err
		}
	}

	log.Debug().Int("tableau", next).Int("stock", len(cards)-next).Msg("dealt klondike")
	return nil
}

func dealRoundRobin(b *board.Board, cards []*card.Card) error {
	slots := b.SlotsOf(slot.Generic)
	if len(slots) == 0 {
		return fmt.Errorf("layout has no generic slots")
	}
	for i, c := range cards {
		if err := b.PlaceCard(c.ID, slots[i%len(slots)].ID); err != nil {
			return err
		}
	}
	log.Debug().Int("cards", len(cards)).Int("slots", len(slots)).Msg("dealt round robin")
	return nil
}
