package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/render"
	"github.com/arcanaland/solitaire/internal/shell"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Deal a board and play it from an interactive shell",
	Long: `Play deals a board and reads gesture commands such as
"drag hearts.queen -120 30", "tap spades.king" or "dtap hearts.ace".
Type help inside the shell for the full list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, b, err := dealBoard(cmd)
		if err != nil {
			return err
		}

		r := render.New(cfg.Theme)
		sc := shell.NewController(b, r, os.Stdout)
		r.Board(os.Stdout, b)

		historyDir := filepath.Join(config.GetXDGDataHome(), "solitaire")
		if err := os.MkdirAll(historyDir, 0755); err != nil {
			return err
		}
		return sc.Loop(filepath.Join(historyDir, "history"))
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	addDealFlags(playCmd)
}
