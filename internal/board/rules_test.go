package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/solitaire/internal/card"
)

func up(suit card.Suit, rank card.Rank) *card.Card {
	c := card.New(suit, rank)
	c.FaceUp = true
	return c
}

func TestFoundationAccepts(t *testing.T) {
	cases := []struct {
		name string
		top  *card.Card
		c    *card.Card
		want bool
	}{
		{"two on empty", nil, up(card.Hearts, card.Two), false},
		{"ace on empty", nil, up(card.Hearts, card.Ace), true},
		{"two of hearts on ace of hearts", up(card.Hearts, card.Ace), up(card.Hearts, card.Two), true},
		{"two of spades on ace of hearts", up(card.Hearts, card.Ace), up(card.Spades, card.Two), false},
		{"three on ace", up(card.Hearts, card.Ace), up(card.Hearts, card.Three), false},
		{"ace on ace", up(card.Hearts, card.Ace), up(card.Hearts, card.Ace), false},
		{"plain on empty", nil, card.NewPlain("blue", 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FoundationAccepts(tc.top, tc.c))
		})
	}
}

func TestTableauAccepts(t *testing.T) {
	faceDownKing := card.New(card.Spades, card.King)

	cases := []struct {
		name string
		top  *card.Card
		c    *card.Card
		want bool
	}{
		{"king on empty", nil, up(card.Spades, card.King), true},
		{"queen on empty", nil, up(card.Hearts, card.Queen), false},
		{"red queen on black king", up(card.Spades, card.King), up(card.Hearts, card.Queen), true},
		{"black queen on black king", up(card.Spades, card.King), up(card.Spades, card.Queen), false},
		{"red queen on face-down king", faceDownKing, up(card.Hearts, card.Queen), false},
		{"red jack on black king", up(card.Spades, card.King), up(card.Hearts, card.Jack), false},
		{"red king on black queen", up(card.Spades, card.Queen), up(card.Hearts, card.King), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TableauAccepts(tc.top, tc.c))
		})
	}
}

func TestAcceptsDispatchesOnFamily(t *testing.T) {
	b := newTestBoard(t)
	ace := up(card.Hearts, card.Ace)
	king := up(card.Spades, card.King)

	stock, _ := b.Slot("stock")
	found, _ := b.Slot("foundation.0")
	tab, _ := b.Slot("tableau.0")

	assert.False(t, b.Accepts(stock, ace))
	assert.True(t, b.Accepts(found, ace))
	assert.False(t, b.Accepts(found, king))
	assert.True(t, b.Accepts(tab, king))
	assert.False(t, b.Accepts(tab, ace))
}
