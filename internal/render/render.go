package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/slot"
)

// Renderer draws boards and board events as terminal text
type Renderer struct {
	Theme config.Theme
	Color bool // Emit 24-bit ANSI colour
	Width int  // Wrap width in columns
}

// New creates a renderer sized to stdout. Colour is enabled only when stdout
// is a terminal.
func New(theme config.Theme) *Renderer {
	fd := int(os.Stdout.Fd())
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	color := term.IsTerminal(fd) && !colorize.NoColor
	return &Renderer{Theme: theme, Color: color, Width: width}
}

// Board writes one line group per slot in board order
func (r *Renderer) Board(w io.Writer, b *board.Board) {
	for _, s := range b.Slots() {
		header := fmt.Sprintf("%-13s", s.ID)
		if r.Color {
			header = colorize.CyanString("%-13s", s.ID)
		}

		labels := make([]string, 0, len(s.Pile))
		for _, id := range s.Pile {
			c, err := b.Card(id)
			if err != nil {
				continue
			}
			labels = append(labels, r.Card(c))
		}
		if len(labels) == 0 {
			labels = append(labels, r.paint("[ ]", r.Theme.Back))
		}

		indent := strings.Repeat(" ", 14)
		for i, line := range wrapFields(labels, r.Width-len(indent)) {
			if i == 0 {
				fmt.Fprintf(w, "%s %s\n", header, line)
			} else {
				fmt.Fprintf(w, "%s%s\n", indent, line)
			}
		}
	}

	if lead, ok := b.Dragging(); ok {
		fmt.Fprintf(w, "dragging %s\n", lead)
	}
}

// Card returns the label of a card, hiding face-down cards
func (r *Renderer) Card(c *card.Card) string {
	if !c.FaceUp {
		return r.paint("##", r.Theme.Back)
	}
	if c.IsPlain() {
		return r.paint(c.Label(), r.Theme.Plain[string(c.Color)])
	}
	hex := r.Theme.Black
	if c.Color == card.Red {
		hex = r.Theme.Red
	}
	return r.paint(c.Label(), hex)
}

// Event writes a one line description of a board event
func (r *Renderer) Event(w io.Writer, e board.Event) {
	kind := e.Kind.String()
	if r.Color {
		kind = colorize.HiBlackString(kind)
	}
	switch e.Kind {
	case board.PositionChanged:
		fmt.Fprintf(w, "%s %s -> top %d left %d\n", kind, e.Card, e.Position.Top, e.Position.Left)
	case board.FaceChanged:
		face := "down"
		if e.FaceUp {
			face = "up"
		}
		fmt.Fprintf(w, "%s %s %s\n", kind, e.Card, face)
	case board.ZOrderChanged:
		n := len(e.ZOrder)
		front := e.ZOrder
		if n > 5 {
			front = e.ZOrder[n-5:]
		}
		fmt.Fprintf(w, "%s front: %v\n", kind, front)
	}
}

// Outcome writes the result of a drag or double tap
func (r *Renderer) Outcome(w io.Writer, out board.Outcome) {
	switch out.Result {
	case board.Placed:
		msg := fmt.Sprintf("placed %d card(s) on %s", len(out.Cards), out.Slot)
		if r.Color {
			msg = colorize.GreenString(msg)
		}
		fmt.Fprintln(w, msg)
	case board.Bounced:
		msg := fmt.Sprintf("no slot accepts the drop, %d card(s) bounced back", len(out.Cards))
		if r.Color {
			msg = colorize.YellowString(msg)
		}
		fmt.Fprintln(w, msg)
	default:
		fmt.Fprintln(w, "nothing happened")
	}
}

// Slot returns a short description of a slot
func (r *Renderer) Slot(s *slot.Slot) string {
	return fmt.Sprintf("%s %s top %d left %d, %d card(s)", s.ID, s.Family, s.Position.Top, s.Position.Left, s.Len())
}

// paint wraps text in a 24-bit foreground colour parsed from hex
func (r *Renderer) paint(text, hex string) string {
	if !r.Color || hex == "" {
		return text
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return text
	}
	red, green, blue := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, text)
}

// wrapFields joins fields with spaces, wrapping to width visible columns
func wrapFields(fields []string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var line string
	lineWidth := 0
	for _, f := range fields {
		fw := visibleWidth(f)
		if lineWidth == 0 {
			line, lineWidth = f, fw
		} else if lineWidth+1+fw <= width {
			line += " " + f
			lineWidth += 1 + fw
		} else {
			result = append(result, line)
			line, lineWidth = f, fw
		}
	}
	if line != "" {
		result = append(result, line)
	}
	return result
}

// visibleWidth counts runes outside ANSI escape sequences
func visibleWidth(s string) int {
	n := 0
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			n++
		}
	}
	return n
}
