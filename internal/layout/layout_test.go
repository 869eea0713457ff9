package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/slot"
)

func TestKlondikeBoard(t *testing.T) {
	b, err := Klondike().Board(board.DefaultGeometry)
	require.NoError(t, err)

	assert.Equal(t, board.Ranked, b.Variant)
	assert.Len(t, b.SlotsOf(slot.Stock), 1)
	assert.Len(t, b.SlotsOf(slot.Foundation), 4)
	assert.Len(t, b.SlotsOf(slot.Tableau), 7)

	tab := b.SlotsOf(slot.Tableau)
	assert.Equal(t, slot.ID("tableau.0"), tab[0].ID)
	assert.Equal(t, 20, tab[0].Position.Left)
	assert.Equal(t, 740, tab[6].Position.Left)
}

func TestPlainBoard(t *testing.T) {
	b, err := Plain().Board(board.DefaultGeometry)
	require.NoError(t, err)
	assert.Equal(t, board.Plain, b.Variant)
	assert.Len(t, b.SlotsOf(slot.Generic), 4)
}

func TestVariantFallback(t *testing.T) {
	l := Plain()
	assert.Equal(t, "plain", l.VariantOr("ranked"))

	l.Layout.Variant = ""
	assert.Equal(t, "ranked", l.VariantOr("ranked"))
	assert.Equal(t, "", l.VariantOr(""))
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, Klondike().Save(path))

	fromFile, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Klondike(), fromFile)

	fromDir, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "klondike", fromDir.Layout.ID)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(bad, []byte("[layout\nid ="), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestBoardRejectsUnknownFamily(t *testing.T) {
	l := Plain()
	l.Slots[0].Family = "cell"
	_, err := l.Board(board.DefaultGeometry)
	assert.Error(t, err)

	l = Plain()
	l.Slots[1].ID = l.Slots[0].ID
	_, err = l.Board(board.DefaultGeometry)
	assert.ErrorIs(t, err, board.ErrDuplicateSlot)
}

func TestBuiltin(t *testing.T) {
	l, ok := Builtin("klondike")
	require.True(t, ok)
	assert.Equal(t, "Klondike", l.Layout.Name)

	_, ok = Builtin("spider")
	assert.False(t, ok)
}
