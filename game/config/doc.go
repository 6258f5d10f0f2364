// Package config provides maze configuration management.
//
// The config package handles:
//   - Loading maze files written as JSON or YAML
//   - Validation through engine.ValidateMazeConfig
//   - Default maze selection with a built-in fallback
//   - Maze discovery and listing
//
// Configuration Format:
//
// Mazes are stored in the configs directory. Each file defines a name, a
// description, the maze text (one string per row) and optional runtime
// settings:
//
//	name: corridor
//	description: A single winding corridor
//	tick_interval_ms: 150
//	layout:
//	  - "#####"
//	  - "#..G#"
//	  - "#.P.#"
//	  - "#####"
//
// Legend: '.' dot, 'O' power-pill, 'G' ghost spawn, 'P' player spawn,
// ' ' empty. Any other character is a wall.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific maze; the extension is optional
//	mazeConfig, err := manager.LoadConfig("corridor")
//
//	// classic.* when present, otherwise the built-in arcade maze
//	defaultConfig := manager.GetDefault()
//
//	configs, err := manager.ListConfigs()
package config
