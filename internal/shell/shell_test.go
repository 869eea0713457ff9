package shell

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/layout"
	"github.com/arcanaland/solitaire/internal/render"
)

func newController(t *testing.T) (*Controller, *board.Board, *bytes.Buffer) {
	t.Helper()
	zerolog.SetGlobalLevel(zerolog.Disabled)

	b, err := layout.Klondike().Board(board.DefaultGeometry)
	require.NoError(t, err)
	for _, c := range []*card.Card{card.New(card.Spades, card.King), card.New(card.Hearts, card.Queen)} {
		require.NoError(t, b.AddCard(c))
		require.NoError(t, b.SetFaceUp(c.ID, true))
	}
	require.NoError(t, b.PlaceCard("spades.king", "tableau.0"))
	require.NoError(t, b.PlaceCard("hearts.queen", "tableau.1"))

	var buf bytes.Buffer
	r := &render.Renderer{Theme: config.Default().Theme, Width: 80}
	return NewController(b, r, &buf), b, &buf
}

func TestDragCommandPlaces(t *testing.T) {
	sc, b, buf := newController(t)

	// queen sits at (200, 140); tableau.0 settles its next card at (230, 20)
	require.NoError(t, sc.Execute("drag hearts.queen -120 30"))
	assert.Equal(t, "placed 1 card(s) on tableau.0\n", buf.String())

	c, _ := b.Card("hearts.queen")
	assert.Equal(t, "tableau.0", c.Slot)
}

func TestStepwiseDrag(t *testing.T) {
	sc, _, buf := newController(t)

	require.NoError(t, sc.Execute("events on"))
	require.NoError(t, sc.Execute("start hearts.queen"))
	require.NoError(t, sc.Execute("move hearts.queen 500 500"))
	require.NoError(t, sc.Execute("end hearts.queen"))

	out := buf.String()
	assert.Contains(t, out, "position hearts.queen -> top 700 left 640\n")
	assert.Contains(t, out, "no slot accepts the drop, 1 card(s) bounced back\n")
	assert.Contains(t, out, "position hearts.queen -> top 200 left 140\n")
}

func TestGestureErrorsSurface(t *testing.T) {
	sc, _, _ := newController(t)

	require.NoError(t, sc.Execute("start hearts.queen"))
	assert.ErrorIs(t, sc.Execute("start spades.king"), board.ErrGestureActive)
	assert.ErrorIs(t, sc.Execute("tap clubs.zero"), board.ErrUnknownCard)
}

func TestUsageErrors(t *testing.T) {
	sc, _, _ := newController(t)

	for _, line := range []string{
		"drag hearts.queen 1",
		"drag hearts.queen x 1",
		"move hearts.queen 1 y",
		"tap",
		"events maybe",
		"fly hearts.queen",
		"drag 'hearts.queen",
	} {
		assert.Error(t, sc.Execute(line), line)
	}
	assert.ErrorIs(t, sc.Execute("exit"), ErrExit)
	assert.NoError(t, sc.Execute("   "))
}

func TestPileAndShow(t *testing.T) {
	sc, _, buf := newController(t)

	require.NoError(t, sc.Execute("pile spades.king"))
	assert.Equal(t, "[spades.king]\n", buf.String())

	buf.Reset()
	require.NoError(t, sc.Execute("show"))
	assert.Contains(t, buf.String(), "tableau.0     K♠\n")

	buf.Reset()
	require.NoError(t, sc.Execute("slots"))
	assert.Contains(t, buf.String(), "tableau.1 tableau top 200 left 140, 1 card(s)\n")
}
