package logic

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// FallbackColor is used for any team missing from the color table
const FallbackColor = "#000000"

//go:embed team_colors.json
var defaultTeamColors []byte

// ColorTable maps a team nickname to its primary hex color
type ColorTable struct {
	colors map[string]string
}

// DefaultColorTable returns the table shipped with the binary
func DefaultColorTable() (*ColorTable, error) {
	colors, err := parseColors(defaultTeamColors)
	if err != nil {
		return nil, fmt.Errorf("embedded team colors: %w", err)
	}
	return &ColorTable{colors: colors}, nil
}

// LoadColorTable returns the embedded table with entries from path laid
// over it. An empty path yields the embedded table unchanged.
func LoadColorTable(path string) (*ColorTable, error) {
	table, err := DefaultColorTable()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return table, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read team colors: %w", err)
	}
	overrides, err := parseColors(content)
	if err != nil {
		return nil, fmt.Errorf("team colors %s: %w", path, err)
	}
	for team, color := range overrides {
		table.colors[team] = color
	}
	return table, nil
}

func parseColors(data []byte) (map[string]string, error) {
	var colors map[string]string
	if err := json.Unmarshal(data, &colors); err != nil {
		return nil, err
	}

	v := validator.New()
	for team, color := range colors {
		if team == "" {
			return nil, fmt.Errorf("empty team nickname")
		}
		if err := v.Var(color, "required,hexcolor"); err != nil {
			return nil, fmt.Errorf("team %s: invalid color %q", team, color)
		}
	}
	return colors, nil
}

// Resolve returns the team's color, or FallbackColor on a miss
func (t *ColorTable) Resolve(team string) string {
	if c, ok := t.colors[team]; ok {
		return c
	}
	return FallbackColor
}

// Len returns the number of known franchises
func (t *ColorTable) Len() int {
	return len(t.colors)
}
