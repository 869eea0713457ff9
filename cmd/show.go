package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display where a card was dealt and which slots accept it",
	Long: `Show deals a board and prints a card's slot, position and draggable pile,
along with every slot whose rule accepts it on top.
Use canonical card IDs like 'hearts.queen' or 'blue.3'.

Examples:
  solitaire show spades.king
  solitaire show --seed 42 hearts.ace
  solitaire show --layout plain red.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, b, err := dealBoard(cmd)
		if err != nil {
			return err
		}

		c, err := b.Card(card.ID(args[0]))
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		displayCard(b, c, render.New(cfg.Theme))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	addDealFlags(showCmd)
}

// displayCard prints the card's board state
func displayCard(b *board.Board, c *card.Card, r *render.Renderer) {
	label := func(s string) string { return colorize.CyanString("%-10s", s) }

	var infoLines []string
	infoLines = append(infoLines, label("Card:")+colorize.HiWhiteString("%s", c.Name())+"  "+r.Card(c))
	infoLines = append(infoLines, label("ID:")+colorize.HiWhiteString("%s", c.ID))

	if c.Slot == "" {
		infoLines = append(infoLines, label("Slot:")+colorize.HiWhiteString("none"))
	} else {
		infoLines = append(infoLines, label("Slot:")+colorize.HiWhiteString("%s", c.Slot))
	}
	if c.Position != nil {
		infoLines = append(infoLines, label("Position:")+
			colorize.HiWhiteString("top %d left %d", c.Position.Top, c.Position.Left))
	}

	face := "down"
	if c.FaceUp {
		face = "up"
	}
	infoLines = append(infoLines, label("Face:")+colorize.HiWhiteString("%s", face))

	pile, _ := b.DraggablePile(c.ID)
	infoLines = append(infoLines, label("Moves:")+colorize.HiWhiteString("%s", joinIDs(pile)))

	var accepting []string
	for _, s := range b.Slots() {
		if string(s.ID) != c.Slot && b.Accepts(s, c) {
			accepting = append(accepting, string(s.ID))
		}
	}
	if len(accepting) == 0 {
		accepting = append(accepting, "none")
	}
	infoLines = append(infoLines, label("Accepted:")+colorize.HiWhiteString("%s", strings.Join(accepting, ", ")))

	fmt.Println()
	for _, line := range infoLines {
		fmt.Println("  " + line)
	}
	fmt.Println()
}

func joinIDs(ids []card.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " ")
}
