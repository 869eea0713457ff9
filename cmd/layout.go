package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/layout"
)

// layoutCmd represents the layout command group
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage board layouts in your layout library",
	Long:  `Commands for managing board layouts in your layout library.`,
}

// layoutListCmd represents the layout list command
var layoutListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List built-in layouts and layouts in your library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		printLayout := func(id, name string) {
			if id == cfg.DefaultLayout {
				fmt.Printf("* %s (%s) [DEFAULT]\n", id, name)
			} else {
				fmt.Printf("  %s (%s)\n", id, name)
			}
		}

		for _, id := range []string{"klondike", "plain"} {
			l, _ := layout.Builtin(id)
			printLayout(id, l.Layout.Name)
		}

		libraryPath := config.GetLayoutLibraryPath()
		entries, err := os.ReadDir(libraryPath)
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading layout library: %v", err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if _, builtin := layout.Builtin(entry.Name()); builtin {
				continue
			}
			l, err := layout.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid layout, skip
				continue
			}
			printLayout(entry.Name(), l.Layout.Name)
		}
		return nil
	},
}

// layoutSetDefaultCmd represents the layout set-default command
var layoutSetDefaultCmd = &cobra.Command{
	Use:   "set-default [layout_name]",
	Short: "Set the default layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutName := args[0]

		if _, err := resolveLayout(layoutName); err != nil {
			return fmt.Errorf("not a valid layout: %v", err)
		}

		if err := config.SetDefaultLayout(layoutName); err != nil {
			return fmt.Errorf("error setting default layout: %v", err)
		}

		fmt.Printf("Default layout set to: %s\n", layoutName)
		return nil
	},
}

// layoutInitCmd represents the layout init command
var layoutInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the layout library with editable copies of the built-in layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetLayoutLibraryPath()

		for _, l := range []*layout.Layout{layout.Klondike(), layout.Plain()} {
			dir := filepath.Join(libraryPath, l.Layout.ID+"-custom")
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("error creating layout library: %v", err)
			}
			l.Layout.ID += "-custom"
			l.Layout.Name += " (custom)"
			if err := l.Save(filepath.Join(dir, layout.FileName)); err != nil {
				return err
			}
		}
		fmt.Println("Layout library initialized at:", libraryPath)

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd)
	layoutCmd.AddCommand(layoutSetDefaultCmd)
	layoutCmd.AddCommand(layoutInitCmd)
}
