// Command validate checks the maze files in the ../configs directory (or the
// directory given as the first argument). It checks:
//   - JSON or YAML structure and required fields
//   - Rectangular layout and a playable cast (one player, ghosts, dots)
//   - Tick interval bounds
//   - Connectivity: every dot and power-pill is reachable from the player,
//     following the wrap-around tunnels
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/mazegame/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single maze file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	config, err := engine.DecodeMazeConfig(filePath, data)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid %s: %v", formatName(filePath), err))
		return result
	}

	if err := engine.ValidateMazeConfig(config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	maze, err := engine.NewMaze(config.Layout, rand.New(rand.NewSource(0)))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	connectivity := validateConnectivity(maze)
	if !connectivity.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, connectivity.Errors...)

	if result.Valid {
		counts := engine.CountLayout(config.Layout)
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", counts.Rows, counts.Columns))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Ghosts: %d", counts.Ghosts))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Dots: %d", counts.Dots))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Power-pills: %d", counts.PowerPills))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Tick: %s", config.TickInterval()))
	}

	return result
}

// validateConnectivity ensures every collectible is reachable from the
// player's starting cell
func validateConnectivity(maze *engine.Maze) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	unreachable := maze.UnreachableCollectibles()
	total := maze.DotsRemaining() + maze.PillsRemaining()

	if len(unreachable) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure: %d/%d collectibles unreachable from the player", len(unreachable), total))
		for _, p := range unreachable {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: %s at (%d,%d)", maze.BlockAt(p.Row, p.Column), p.Row, p.Column))
		}
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity: All %d collectibles reachable from the player", total))
	}

	return result
}

func formatName(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return "YAML"
	}
	return "JSON"
}

// mazeFiles lists the maze files of a directory in name order
func mazeFiles(configDir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(configDir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// main validates each maze file, printing a concise report and exiting with
// non-zero status if any are invalid
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := mazeFiles(configDir)
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No maze files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All mazes are valid!")
	} else {
		fmt.Println("❌ Some mazes have errors")
		os.Exit(1)
	}
}
