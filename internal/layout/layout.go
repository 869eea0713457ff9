package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/slot"
)

// FileName is the layout file expected inside a layout directory
const FileName = "layout.toml"

// Layout describes the slots of a board
type Layout struct {
	Layout LayoutSection `toml:"layout"`
	Slots  []SlotSpec    `toml:"slots"`
}

type LayoutSection struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Variant       string `toml:"variant"`
	SchemaVersion string `toml:"schema_version"`
	Description   string `toml:"description"`
}

type SlotSpec struct {
	ID     string `toml:"id"`
	Family string `toml:"family"`
	Top    int    `toml:"top"`
	Left   int    `toml:"left"`
}

// Load reads a layout from a layout.toml file or a directory holding one
func Load(path string) (*Layout, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("layout not found: %s", path)
	}
	if info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	var l Layout
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return &l, nil
}

// Save writes the layout as TOML
func (l *Layout) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating layout file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(l); err != nil {
		return fmt.Errorf("error encoding layout: %w", err)
	}
	return nil
}

// VariantOr returns the layout's variant, or fallback when the layout leaves
// it unset
func (l *Layout) VariantOr(fallback string) string {
	if l.Layout.Variant == "" {
		return fallback
	}
	return l.Layout.Variant
}

// Board builds an empty board with the layout's slots in file order
func (l *Layout) Board(geometry board.Geometry) (*board.Board, error) {
	variant, err := board.ParseVariant(l.Layout.Variant)
	if err != nil {
		return nil, err
	}

	b := board.New(variant, geometry)
	for _, spec := range l.Slots {
		family, err := slot.ParseFamily(spec.Family)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", spec.ID, err)
		}
		s := slot.New(slot.ID(spec.ID), family, card.Position{Top: spec.Top, Left: spec.Left})
		if err := b.AddSlot(s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Builtin returns a built-in layout by ID
func Builtin(id string) (*Layout, bool) {
	switch id {
	case "klondike":
		return Klondike(), true
	case "plain":
		return Plain(), true
	}
	return nil, false
}

// Klondike lays out a stock, four foundations and seven tableau piles
func Klondike() *Layout {
	l := &Layout{
		Layout: LayoutSection{
			ID:            "klondike",
			Name:          "Klondike",
			Variant:       "ranked",
			SchemaVersion: "1.0",
		},
	}
	l.Slots = append(l.Slots, SlotSpec{ID: "stock", Family: "stock", Top: 20, Left: 20})
	for i := 0; i < 4; i++ {
		l.Slots = append(l.Slots, SlotSpec{
			ID:     fmt.Sprintf("foundation.%d", i),
			Family: "foundation",
			Top:    20,
			Left:   380 + i*120,
		})
	}
	for i := 0; i < 7; i++ {
		l.Slots = append(l.Slots, SlotSpec{
			ID:     fmt.Sprintf("tableau.%d", i),
			Family: "tableau",
			Top:    200,
			Left:   20 + i*120,
		})
	}
	return l
}

// Plain lays out four generic slots for the ruleless variant
func Plain() *Layout {
	l := &Layout{
		Layout: LayoutSection{
			ID:            "plain",
			Name:          "Plain",
			Variant:       "plain",
			SchemaVersion: "1.0",
		},
	}
	for i := 0; i < 4; i++ {
		l.Slots = append(l.Slots, SlotSpec{
			ID:     fmt.Sprintf("pile.%d", i),
			Family: "generic",
			Top:    20,
			Left:   20 + i*120,
		})
	}
	return l
}
