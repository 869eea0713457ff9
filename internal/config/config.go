package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/solitaire/internal/board"
)

// Config represents the application configuration
type Config struct {
	DefaultLayout string `toml:"default_layout"`
	Variant       string `toml:"variant"` // Used by layouts that do not name a variant
	Seed          uint64 `toml:"seed"` // 0 deals a random shuffle
	CardOffset    int    `toml:"card_offset"`
	DropProximity int    `toml:"drop_proximity"`
	Theme         Theme  `toml:"theme"`
}

// Theme holds hex colours used by the terminal renderer
type Theme struct {
	Red   string            `toml:"red"`
	Black string            `toml:"black"`
	Back  string            `toml:"back"`
	Plain map[string]string `toml:"plain"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultLayout: "klondike",
		Variant:       "ranked",
		CardOffset:    board.DefaultGeometry.CardOffset,
		DropProximity: board.DefaultGeometry.DropProximity,
		Theme: Theme{
			Red:   "#e0474c",
			Black: "#d8d8d8",
			Back:  "#3d6fb6",
			Plain: map[string]string{
				"red":    "#e0474c",
				"blue":   "#4c7fe0",
				"green":  "#4ce07a",
				"yellow": "#e0d24c",
			},
		},
	}
}

// Geometry returns the board geometry described by the config
func (c *Config) Geometry() board.Geometry {
	return board.Geometry{CardOffset: c.CardOffset, DropProximity: c.DropProximity}
}

// Validate checks the values a board depends on
func (c *Config) Validate() error {
	if c.CardOffset <= 0 {
		return fmt.Errorf("card_offset must be positive, got %d", c.CardOffset)
	}
	if c.DropProximity <= 0 {
		return fmt.Errorf("drop_proximity must be positive, got %d", c.DropProximity)
	}
	if _, err := board.ParseVariant(c.Variant); err != nil {
		return err
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetLayoutLibraryPath returns the path to the layout library
func GetLayoutLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "solitaire", "layouts")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "solitaire", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first run.
// Keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetLayoutPath returns the path to a layout, either in the layout library or a relative path
func GetLayoutPath(layoutName string) (string, error) {
	libraryPath := GetLayoutLibraryPath()
	layoutPath := filepath.Join(libraryPath, layoutName)

	if _, err := os.Stat(layoutPath); err == nil {
		return layoutPath, nil
	}

	if _, err := os.Stat(layoutName); err == nil {
		return layoutName, nil
	}

	return "", fmt.Errorf("layout not found: %s", layoutName)
}

// SetDefaultLayout sets the default layout in the config
func SetDefaultLayout(layoutName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultLayout = layoutName
	return writeConfig(config)
}
