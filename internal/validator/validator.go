package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/layout"
	"github.com/arcanaland/solitaire/internal/slot"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	LayoutPath string
	Geometry   board.Geometry
	Results    ValidationResults

	layout  layout.Layout
	variant board.Variant
}

func NewValidator(layoutPath string, geometry board.Geometry) *Validator {
	return &Validator{
		LayoutPath: layoutPath,
		Geometry:   geometry,
		Results:    ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateLayoutToml(); err != nil {
		return v.Results, err
	}

	v.validateSlots()
	v.validateSpacing()
	v.validateFamilies()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateLayoutToml() error {
	path := v.LayoutPath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, layout.FileName)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found in %s", layout.FileName, v.LayoutPath)
	}

	if _, err := toml.DecodeFile(path, &v.layout); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}

	l := v.layout.Layout
	if l.ID == "" {
		v.errorf("layout.id is required")
	}
	if l.Name == "" {
		v.errorf("layout.name is required")
	}

	if l.SchemaVersion == "" {
		v.errorf("layout.schema_version is required")
	} else if l.SchemaVersion != "1.0" {
		v.errorf("unsupported schema_version: %s (supported: 1.0)", l.SchemaVersion)
	}

	variant, err := board.ParseVariant(l.Variant)
	if err != nil {
		v.errorf("layout.variant: %v", err)
	}
	v.variant = variant

	if len(v.layout.Slots) == 0 {
		v.errorf("layout defines no slots")
	}
	return nil
}

// validateSlots checks every slot entry on its own
func (v *Validator) validateSlots() {
	seen := make(map[string]bool)
	for i, s := range v.layout.Slots {
		if s.ID == "" {
			v.errorf("slots[%d].id is required", i)
		} else if seen[s.ID] {
			v.errorf("duplicate slot id: %s", s.ID)
		}
		seen[s.ID] = true

		if _, err := slot.ParseFamily(s.Family); err != nil {
			v.errorf("slots[%d] (%s): %v", i, s.ID, err)
		}
		if s.Top < 0 || s.Left < 0 {
			v.errorf("slots[%d] (%s): position %d,%d is above or left of the board origin", i, s.ID, s.Left, s.Top)
		}
	}
}

// validateSpacing warns about slot anchors close enough that a single drop
// lands within proximity of both.
func (v *Validator) validateSpacing() {
	slots := v.layout.Slots
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			dx := slots[i].Left - slots[j].Left
			dy := slots[i].Top - slots[j].Top
			if abs(dx) < v.Geometry.DropProximity && abs(dy) < v.Geometry.DropProximity {
				v.warnf("slots %s and %s overlap within the drop proximity of %d", slots[i].ID, slots[j].ID, v.Geometry.DropProximity)
			}
		}
	}
}

// validateFamilies checks the slot families against the layout variant
func (v *Validator) validateFamilies() {
	counts := make(map[string]int)
	for _, s := range v.layout.Slots {
		counts[s.Family]++
	}

	switch v.variant {
	case board.Ranked:
		if counts["tableau"] == 0 {
			v.warnf("ranked layout has no tableau slots")
		}
		if counts["foundation"] == 0 {
			v.warnf("ranked layout has no foundation slots")
		}
		if counts["stock"] > 1 {
			v.warnf("only the first of %d stock slots receives cards", counts["stock"])
		}
	case board.Plain:
		if counts["generic"] == 0 {
			v.errorf("plain layout needs at least one generic slot")
		}
		if counts["generic"] != len(v.layout.Slots) {
			v.warnf("plain cards never satisfy tableau or foundation rules")
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
