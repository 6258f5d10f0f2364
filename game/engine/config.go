package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MazeConfig describes a maze loaded from a JSON or YAML file
type MazeConfig struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Layout         []string `json:"layout" yaml:"layout"`
	TickIntervalMs int      `json:"tick_interval_ms,omitempty" yaml:"tick_interval_ms,omitempty"`
	Seed           int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	Sound          bool     `json:"sound,omitempty" yaml:"sound,omitempty"`
}

// TickInterval returns the configured scheduler period, defaulting to the reference 200ms
func (c *MazeConfig) TickInterval() time.Duration {
	if c.TickIntervalMs == 0 {
		return DefaultTickIntervalMs * time.Millisecond
	}
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// LayoutCounts tallies the legend characters of a layout
type LayoutCounts struct {
	Rows       int
	Columns    int
	Dots       int
	PowerPills int
	Ghosts     int
	Players    int
	Walls      int
	Empty      int
}

// CountLayout classifies every character of a layout without building a maze
func CountLayout(layout []string) LayoutCounts {
	counts := LayoutCounts{Rows: len(layout)}
	if len(layout) > 0 {
		counts.Columns = utf8.RuneCountInString(layout[0])
	}
	for _, row := range layout {
		for _, c := range row {
			switch EvaluateMazeBlock(c) {
			case Dot:
				counts.Dots++
			case PowerPill:
				counts.PowerPills++
			case Ghost:
				counts.Ghosts++
			case Player:
				counts.Players++
			case Wall:
				counts.Walls++
			case Empty:
				counts.Empty++
			}
		}
	}
	return counts
}

// ValidateMazeConfig validates a maze configuration for correctness and playability
func ValidateMazeConfig(config *MazeConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	if len(config.Layout) == 0 {
		return fmt.Errorf("config validation: layout must have at least one row")
	}
	width := utf8.RuneCountInString(config.Layout[0])
	if width == 0 {
		return fmt.Errorf("config validation: layout rows must not be empty")
	}
	for i, row := range config.Layout {
		if n := utf8.RuneCountInString(row); n != width {
			return fmt.Errorf("config validation: row %d must have %d characters to match row 1, got %d", i+1, width, n)
		}
	}

	if config.TickIntervalMs != 0 && (config.TickIntervalMs < MinTickIntervalMs || config.TickIntervalMs > MaxTickIntervalMs) {
		return fmt.Errorf("config validation: tick_interval_ms must be between %d and %d, got %d",
			MinTickIntervalMs, MaxTickIntervalMs, config.TickIntervalMs)
	}

	counts := CountLayout(config.Layout)
	if counts.Ghosts == 0 {
		return fmt.Errorf("config validation: %w", ErrNoGhosts)
	}
	if counts.Players == 0 {
		return fmt.Errorf("config validation: %w", ErrNoPlayer)
	}
	if counts.Players > 1 {
		return fmt.Errorf("config validation: layout must contain exactly one player (P), got %d", counts.Players)
	}
	if counts.Dots == 0 {
		return fmt.Errorf("config validation: %w", ErrNoDots)
	}

	return nil
}

// DecodeMazeConfig parses config data; YAML for .yaml/.yml names, JSON otherwise
func DecodeMazeConfig(name string, data []byte) (*MazeConfig, error) {
	var config MazeConfig
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}
	return &config, nil
}

// EncodeMazeConfig is the inverse of DecodeMazeConfig
func EncodeMazeConfig(name string, config *MazeConfig) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Marshal(config)
	default:
		return json.MarshalIndent(config, "", "  ")
	}
}

// LoadMazeConfig loads and validates a maze configuration file
func LoadMazeConfig(filename string) (*MazeConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := DecodeMazeConfig(filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", filename, err)
	}

	if err := ValidateMazeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultMazeConfig returns the classic arcade maze
func DefaultMazeConfig() *MazeConfig {
	return &MazeConfig{
		Name:           "classic",
		Description:    "The classic 28x31 arcade maze with side tunnels",
		TickIntervalMs: DefaultTickIntervalMs,
		Layout: []string{
			"┌────────────┐┌────────────┐",
			"│............││............│",
			"│.┌──┐.┌───┐.││.┌───┐.┌──┐.│",
			"│O│  │.│   │.││.│   │.│  │O│",
			"│.└──┘.└───┘.└┘.└───┘.└──┘.│",
			"│..........................│",
			"│.┌──┐.┌┐.┌──────┐.┌┐.┌──┐.│",
			"│.└──┘.││.└──────┘.││.└──┘.│",
			"│......││....┌┐....││......│",
			"└────┐.│└──┐ ││ ┌──┘│.┌────┘",
			"     │.│┌──┘ └┘ └──┐│.│     ",
			"     │.││GGGGGGGGGG││.│     ",
			"     │.││ ┌──────┐ ││.│     ",
			"─────┘.└┘ │      │ └┘.└─────",
			"      .   │      │   .      ",
			"─────┐.┌┐ │      │ ┌┐.┌─────",
			"     │.││ └──────┘ ││.│     ",
			"     │.││          ││.│     ",
			"     │.││ ┌──────┐ ││.│     ",
			"┌────┘.└┘ └──┐┌──┘ └┘.└────┐",
			"│............││............│",
			"│.┌──┐.┌───┐.││.┌───┐.┌──┐.│",
			"│.└─┐│.└───┘.└┘.└───┘.│┌─┘.│",
			"│O..││.......P........││..O│",
			"└─┐.││.┌┐.┌──────┐.┌┐.││.┌─┘",
			"┌─┘.└┘.││.└──┐┌──┘.││.└┘.└─┐",
			"│......││....││....││......│",
			"│.┌────┘└──┐.││.┌──┘└────┐.│",
			"│.└────────┘.└┘.└────────┘.│",
			"│..........................│",
			"└──────────────────────────┘",
		},
	}
}
