// Command analyze prints quick, human-readable heuristics about the maze
// files in the project's configs directory. It summarizes dimensions, the
// cast, how open the maze is (dead ends, corridors, junctions), the
// wrap-around tunnels and any collectibles the player can never reach.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/wricardo/mazegame/game/config"
	"github.com/wricardo/mazegame/game/engine"
)

// autopilotTicks bounds the unsteered sample run
const autopilotTicks = 500

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	manager, err := config.NewManager(configDir)
	if err != nil {
		fmt.Printf("Error opening config directory: %v\n", err)
		os.Exit(1)
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		fmt.Printf("Error listing configs: %v\n", err)
		os.Exit(1)
	}

	for _, info := range infos {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		mazeConfig, err := manager.LoadConfig(info.Filename)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			continue
		}
		analyzeConfig(os.Stdout, mazeConfig)
	}
}

func analyzeConfig(w io.Writer, mazeConfig *engine.MazeConfig) {
	maze, err := engine.NewMaze(mazeConfig.Layout, rand.New(rand.NewSource(mazeConfig.Seed)))
	if err != nil {
		fmt.Fprintf(w, "Error building maze: %v\n", err)
		return
	}

	player := maze.Player()
	stats := maze.AnalyzeCells()

	fmt.Fprintf(w, "Name: %s\n", mazeConfig.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", maze.Topology().Columns(), maze.Topology().Rows())
	fmt.Fprintf(w, "Tick: %s\n", mazeConfig.TickInterval())
	fmt.Fprintf(w, "Player Start: (%d, %d)\n", player.Row, player.Column)
	fmt.Fprintf(w, "Ghosts: %d\n", maze.GhostCount())
	fmt.Fprintf(w, "Dots: %d (%d points)\n", maze.DotsRemaining(), maze.DotsRemaining()*engine.DotPoints)
	fmt.Fprintf(w, "Power-pills: %d (%d points)\n", maze.PillsRemaining(), maze.PillsRemaining()*engine.PowerPillPoints)
	fmt.Fprintf(w, "Open Cells: %d (dead ends %d, corridors %d, junctions %d, enclosed %d)\n",
		stats.Open, stats.DeadEnds, stats.Corridors, stats.Junctions, stats.Enclosed)

	tunnels := maze.WrapTunnels()
	if len(tunnels) > 0 {
		fmt.Fprintf(w, "Tunnels: %d edge cells wrap around\n", len(tunnels))
		for _, p := range tunnels {
			fmt.Fprintf(w, "   Tunnel: (%d, %d)\n", p.Row, p.Column)
		}
	} else {
		fmt.Fprintf(w, "Tunnels: none\n")
	}

	unreachable := maze.UnreachableCollectibles()
	if len(unreachable) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d collectibles are unreachable from the player!\n", len(unreachable))
		fmt.Fprintf(w, "   The game can never end on this maze\n")
		for i, p := range unreachable {
			if i < 5 { // Show first 5 unreachable points
				fmt.Fprintf(w, "   Unreachable: (%d, %d) - '%c'\n", p.Row, p.Column, maze.LayoutRune(p.Row, p.Column))
			}
		}
		if len(unreachable) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(unreachable)-5)
		}
	} else {
		fmt.Fprintf(w, "✅ Every dot and power-pill is reachable from the player\n")
	}

	score, ticks, cleared := autopilot(mazeConfig)
	if cleared {
		fmt.Fprintf(w, "Autopilot: cleared the maze in %d ticks\n", ticks)
	} else {
		fmt.Fprintf(w, "Autopilot: %d points after %d ticks without steering\n", score, ticks)
	}
}

// autopilot plays the maze without steering, so the player only follows
// corridors and turns corners, and reports how far it got
func autopilot(mazeConfig *engine.MazeConfig) (score, ticks int, cleared bool) {
	e, err := engine.NewEngine(mazeConfig.Layout, rand.New(rand.NewSource(mazeConfig.Seed)))
	if err != nil {
		return 0, 0, false
	}

	e.Start()
	for i := 0; i < autopilotTicks; i++ {
		if e.Step().State == engine.GameOver {
			return e.Maze().Score(), e.Ticks(), true
		}
	}
	return e.Maze().Score(), e.Ticks(), false
}
