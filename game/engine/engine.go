package engine

import "fmt"

// GameState is the lifecycle of a game
type GameState int

const (
	Waiting GameState = iota
	Running
	GameOver
	Quit
)

func (s GameState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// TickResult summarises one simulation step
type TickResult struct {
	Tick        int         `json:"tick"`
	PlayerMoved bool        `json:"player_moved"`
	Score       ScoreUpdate `json:"score"`
	State       GameState   `json:"state"`
}

// Engine advances a maze one tick at a time. It owns no timer; the hosting
// loop decides when to call Step.
type Engine struct {
	maze  *Maze
	state GameState
	ticks int
}

// NewEngine creates an engine for the given maze text
func NewEngine(layout []string, rng Rand) (*Engine, error) {
	maze, err := NewMaze(layout, rng)
	if err != nil {
		return nil, err
	}
	return &Engine{maze: maze, state: Waiting}, nil
}

// NewEngineFromConfig validates the configuration and creates an engine for its layout
func NewEngineFromConfig(config *MazeConfig, rng Rand) (*Engine, error) {
	if err := ValidateMazeConfig(config); err != nil {
		return nil, err
	}
	return NewEngine(config.Layout, rng)
}

// Maze returns the simulated maze
func (e *Engine) Maze() *Maze {
	return e.maze
}

// State returns the current game state
func (e *Engine) State() GameState {
	return e.state
}

// Ticks returns the number of steps taken
func (e *Engine) Ticks() int {
	return e.ticks
}

// Start moves a waiting game to running
func (e *Engine) Start() {
	if e.state == Waiting {
		e.state = Running
	}
}

// Stop quits the game; later steps are no-ops
func (e *Engine) Stop() {
	e.state = Quit
}

// Steer sets the player's desired direction
func (e *Engine) Steer(direction Direction) {
	e.maze.SetPlayerDirection(direction)
}

// Step advances the player and then every ghost in order, once.
// Only a running game advances.
func (e *Engine) Step() TickResult {
	if e.state != Running {
		return TickResult{Tick: e.ticks, State: e.state}
	}

	e.ticks++
	player := e.maze.Player()
	fromRow, fromColumn := player.Row, player.Column
	update := e.maze.MovePlayer()
	playerMoved := player.Row != fromRow || player.Column != fromColumn

	for i := 0; i < e.maze.GhostCount(); i++ {
		e.maze.MoveGhost(i)
	}

	if e.maze.DotsRemaining() == 0 && e.maze.PillsRemaining() == 0 {
		e.state = GameOver
	}

	return TickResult{
		Tick:        e.ticks,
		PlayerMoved: playerMoved,
		Score:       update,
		State:       e.state,
	}
}
