package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a board layout",
	Long: `Validate checks that a layout.toml file, or a directory holding one, describes
a usable board: unique slot ids, known families, on-board positions and slots
spaced further apart than the drop proximity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutPath := args[0]

		// Check if path exists
		if _, err := os.Stat(layoutPath); os.IsNotExist(err) {
			return fmt.Errorf("layout not found: %s", layoutPath)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		v := validator.NewValidator(layoutPath, cfg.Geometry())
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Layout '%s' is valid.\n", layoutPath)
		} else {
			fmt.Printf("❌ Layout '%s' has %d validation errors:\n", layoutPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
