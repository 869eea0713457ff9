package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/layout"
)

func plainRenderer() *Renderer {
	return &Renderer{Theme: config.Default().Theme, Width: 80}
}

func TestBoard(t *testing.T) {
	b, err := layout.Klondike().Board(board.DefaultGeometry)
	require.NoError(t, err)
	require.NoError(t, b.AddCard(card.New(card.Spades, card.King)))
	require.NoError(t, b.AddCard(card.New(card.Hearts, card.Queen)))
	require.NoError(t, b.PlaceCard("spades.king", "tableau.0"))
	require.NoError(t, b.PlaceCard("hearts.queen", "tableau.0"))
	require.NoError(t, b.SetFaceUp("hearts.queen", true))

	var buf bytes.Buffer
	plainRenderer().Board(&buf, b)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 12)
	assert.Equal(t, "stock         [ ]", lines[0])
	assert.Equal(t, "tableau.0     ## Q♥", lines[5])
}

func TestPaint(t *testing.T) {
	r := plainRenderer()
	assert.Equal(t, "Q♥", r.paint("Q♥", "#ff0000"))

	r.Color = true
	assert.Equal(t, "\x1b[38;2;255;0;0mQ♥\x1b[0m", r.paint("Q♥", "#ff0000"))
	assert.Equal(t, "Q♥", r.paint("Q♥", "not-a-colour"))
	assert.Equal(t, 2, visibleWidth(r.paint("Q♥", "#ff0000")))
}

func TestWrapFields(t *testing.T) {
	fields := []string{"aaaa", "bbbb", "cccc", "dddd"}
	assert.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, wrapFields(fields, 10))
	assert.Equal(t, []string{"aaaa bbbb cccc dddd"}, wrapFields(fields, 80))
}

func TestEventAndOutcome(t *testing.T) {
	r := plainRenderer()
	var buf bytes.Buffer

	r.Event(&buf, board.Event{Kind: board.PositionChanged, Card: "hearts.queen", Position: card.Position{Top: 230, Left: 20}})
	r.Event(&buf, board.Event{Kind: board.FaceChanged, Card: "hearts.queen", FaceUp: true})
	r.Outcome(&buf, board.Outcome{Result: board.Placed, Slot: "tableau.0", Cards: []card.ID{"hearts.queen"}})

	assert.Equal(t,
		"position hearts.queen -> top 230 left 20\n"+
			"face hearts.queen up\n"+
			"placed 1 card(s) on tableau.0\n",
		buf.String())
}
