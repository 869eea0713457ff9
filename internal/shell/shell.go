package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/render"
)

// ErrExit is returned by Execute when the user asks to leave
var ErrExit = errors.New("exit")

const usage = `Commands:
  drag <card> <dx> <dy>   start, move and release a card in one go
  start <card>            begin dragging a card and everything above it
  move <card> <dx> <dy>   move the dragged pile by a delta from where it started
  end <card>              release the dragged pile
  tap <card>              flip the top card of a tableau pile
  dtap <card>             play a single card to a foundation
  pile <card>             list the cards that would move with a card
  show                    print the board
  slots                   list slots and their positions
  events on|off           print board events as they happen
  help                    show this message
  exit                    leave the shell
Cards are named suit.rank (hearts.queen) or colour.n (blue.3).`

// Controller feeds shell commands to a board as gesture events
type Controller struct {
	board    *board.Board
	renderer *render.Renderer
	out      io.Writer
	events   bool
}

// NewController wires a board to a renderer writing to out. Board events are
// printed while event echo is on.
func NewController(b *board.Board, r *render.Renderer, out io.Writer) *Controller {
	sc := &Controller{board: b, renderer: r, out: out}
	b.Subscribe(board.ListenerFunc(func(e board.Event) {
		if sc.events {
			r.Event(sc.out, e)
		}
	}))
	return sc
}

// Execute runs one command line
func (sc *Controller) Execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", line, err)
	}
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "quit":
		return ErrExit
	case "help":
		fmt.Fprintln(sc.out, usage)
	case "show":
		sc.renderer.Board(sc.out, sc.board)
	case "slots":
		for _, s := range sc.board.Slots() {
			fmt.Fprintln(sc.out, sc.renderer.Slot(s))
		}
	case "events":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return fmt.Errorf("usage: events on|off")
		}
		sc.events = args[0] == "on"
	case "start":
		id, err := oneCard(cmd, args)
		if err != nil {
			return err
		}
		return sc.board.DragStart(id)
	case "move":
		id, dx, dy, err := cardDelta(cmd, args)
		if err != nil {
			return err
		}
		return sc.board.DragUpdate(id, dx, dy)
	case "end":
		id, err := oneCard(cmd, args)
		if err != nil {
			return err
		}
		out, err := sc.board.DragEnd(id)
		if err != nil {
			return err
		}
		sc.renderer.Outcome(sc.out, out)
	case "drag":
		id, dx, dy, err := cardDelta(cmd, args)
		if err != nil {
			return err
		}
		return sc.drag(id, dx, dy)
	case "tap":
		id, err := oneCard(cmd, args)
		if err != nil {
			return err
		}
		return sc.board.Tap(id)
	case "dtap":
		id, err := oneCard(cmd, args)
		if err != nil {
			return err
		}
		out, err := sc.board.DoubleTap(id)
		if err != nil {
			return err
		}
		sc.renderer.Outcome(sc.out, out)
	case "pile":
		id, err := oneCard(cmd, args)
		if err != nil {
			return err
		}
		pile, err := sc.board.DraggablePile(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(sc.out, pile)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (sc *Controller) drag(id card.ID, dx, dy int) error {
	if err := sc.board.DragStart(id); err != nil {
		return err
	}
	if err := sc.board.DragUpdate(id, dx, dy); err != nil {
		return err
	}
	out, err := sc.board.DragEnd(id)
	if err != nil {
		return err
	}
	sc.renderer.Outcome(sc.out, out)
	return nil
}

// Loop reads commands until exit or EOF. Command errors are reported and the
// loop continues.
func (sc *Controller) Loop(historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32msolitaire>\033[0m ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	sc.out = l.Stdout()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		err = sc.Execute(strings.TrimSpace(line))
		if errors.Is(err, ErrExit) {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("")
		}
	}
	log.Debug().Msg("Exiting readline loop...")
	return nil
}

func oneCard(cmd string, args []string) (card.ID, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s <card>", cmd)
	}
	return card.ID(args[0]), nil
}

func cardDelta(cmd string, args []string) (card.ID, int, int, error) {
	if len(args) != 3 {
		return "", 0, 0, fmt.Errorf("usage: %s <card> <dx> <dy>", cmd)
	}
	dx, err := strconv.Atoi(args[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("dx must be an integer: %w", err)
	}
	dy, err := strconv.Atoi(args[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("dy must be an integer: %w", err)
	}
	return card.ID(args[0]), dx, dy, nil
}
