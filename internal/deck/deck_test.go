package deck

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/layout"
	"github.com/arcanaland/solitaire/internal/slot"
)

func ids(cards []*card.Card) []card.ID {
	return lo.Map(cards, func(c *card.Card, _ int) card.ID { return c.ID })
}

func TestRankedDeck(t *testing.T) {
	cards := Ranked()
	assert.Len(t, cards, 52)
	assert.Len(t, lo.Uniq(ids(cards)), 52)
	for _, c := range cards {
		assert.False(t, c.FaceUp)
	}
}

func TestPlainDeck(t *testing.T) {
	cards := Plain(3)
	assert.Len(t, cards, 12)
	for _, c := range cards {
		assert.True(t, c.IsPlain())
		assert.True(t, c.FaceUp)
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a, b := Ranked(), Ranked()
	Shuffle(a, NewRNG(42))
	Shuffle(b, NewRNG(42))
	assert.Equal(t, ids(a), ids(b))
	assert.NotEqual(t, ids(Ranked()), ids(a))
	assert.ElementsMatch(t, ids(Ranked()), ids(a))
}

func TestDealKlondike(t *testing.T) {
	b, err := layout.Klondike().Board(board.DefaultGeometry)
	require.NoError(t, err)

	cards := Ranked()
	Shuffle(cards, NewRNG(7))
	require.NoError(t, Deal(b, cards))
	require.NoError(t, b.Verify())

	for i, s := range b.SlotsOf(slot.Tableau) {
		require.Len(t, s.Pile, i+1, string(s.ID))
		for j, id := range s.Pile {
			c, err := b.Card(id)
			require.NoError(t, err)
			assert.Equal(t, j == i, c.FaceUp, string(id))
			assert.Equal(t, s.SettledAt(j, board.DefaultGeometry.CardOffset), *c.Position)
		}
	}

	stock := b.SlotsOf(slot.Stock)[0]
	assert.Len(t, stock.Pile, 52-28)
	assert.Len(t, b.ZOrder(), 52)
}

func TestDealPlain(t *testing.T) {
	b, err := layout.Plain().Board(board.DefaultGeometry)
	require.NoError(t, err)

	require.NoError(t, Deal(b, Plain(2)))
	require.NoError(t, b.Verify())
	for _, s := range b.SlotsOf(slot.Generic) {
		assert.Len(t, s.Pile, 2)
	}
}

func TestDealWithoutSlots(t *testing.T) {
	b := board.New(board.Ranked, board.DefaultGeometry)
	assert.Error(t, Deal(b, Ranked()))

	b = board.New(board.Plain, board.DefaultGeometry)
	assert.Error(t, Deal(b, Plain(1)))
}
