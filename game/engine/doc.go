// Package engine provides the core simulation for the maze game.
//
// The engine package implements the game mechanics including:
//   - Parsing maze text into a typed, wrap-around grid
//   - Direction availability and toroidal movement
//   - Ghost wandering and player auto-cornering
//   - Scent trail bookkeeping and dot/power-pill collection
//   - Maze configuration loading and validation
//
// Core Types:
//
// Maze owns the grid and every entity and exposes the per-entity movement
// operations. Engine wraps a Maze with a game state and a caller-driven Step
// that advances the player and then every ghost once. MazeConfig describes a
// maze loaded from a JSON or YAML file.
//
// Usage:
//
//	config, err := engine.LoadMazeConfig("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngineFromConfig(config, rand.New(rand.NewSource(1)))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine.Start()
//	gameEngine.Steer(engine.North)
//	result := gameEngine.Step()
//
// Determinism:
//
// The only source of randomness is the Rand passed at construction. The same
// seed, maze and steering sequence always produce the same trajectory. Nothing
// in this package is safe for concurrent use; the hosting loop must own it.
package engine
