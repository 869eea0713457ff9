package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/layout"
	"github.com/arcanaland/solitaire/internal/render"
)

// plainCardsPerColor is the size of each colour run in the plain deck
const plainCardsPerColor = 5

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a board and print it",
	Long: `Deal shuffles a deck and distributes it over the slots of a layout.
Layouts are looked up as built-ins (klondike, plain), in your layout library
(XDG_DATA_HOME/solitaire/layouts) or as a path. Use --seed for a repeatable deal.

Examples:
  solitaire deal
  solitaire deal --layout plain
  solitaire deal --seed 42 --layout ./my-layout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, b, err := dealBoard(cmd)
		if err != nil {
			return err
		}
		render.New(cfg.Theme).Board(os.Stdout, b)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addDealFlags(dealCmd)
}

func addDealFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("layout", "l", "", "Built-in layout, layout from your library or path to a layout")
	cmd.Flags().Uint64P("seed", "s", 0, "Shuffle seed (0 uses the configured seed or a random one)")
}

// dealBoard loads the config and layout selected by the command flags and
// returns a freshly dealt board.
func dealBoard(cmd *cobra.Command) (*config.Config, *board.Board, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %v", err)
	}

	layoutName, _ := cmd.Flags().GetString("layout")
	if layoutName == "" {
		layoutName = cfg.DefaultLayout
	}
	l, err := resolveLayout(layoutName)
	if err != nil {
		return nil, nil, err
	}

	l.Layout.Variant = l.VariantOr(cfg.Variant)
	b, err := l.Board(cfg.Geometry())
	if err != nil {
		return nil, nil, fmt.Errorf("error building board: %v", err)
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = cfg.Seed
	}

	cards := deck.Ranked()
	if b.Variant == board.Plain {
		cards = deck.Plain(plainCardsPerColor)
	}
	deck.Shuffle(cards, deck.NewRNG(seed))

	if err := deck.Deal(b, cards); err != nil {
		return nil, nil, fmt.Errorf("error dealing: %v", err)
	}
	log.Debug().Str("layout", l.Layout.ID).Uint64("seed", seed).Int("cards", len(cards)).Msg("dealt board")
	return cfg, b, nil
}

// resolveLayout prefers built-in layouts, then the layout library, then a path
func resolveLayout(name string) (*layout.Layout, error) {
	if l, ok := layout.Builtin(name); ok {
		return l, nil
	}
	path, err := config.GetLayoutPath(name)
	if err != nil {
		return nil, err
	}
	l, err := layout.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading layout: %v", err)
	}
	return l, nil
}
