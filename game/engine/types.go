package engine

import "fmt"

// BlockType classifies a grid position
type BlockType int

const (
	Empty BlockType = iota
	Wall
	Dot
	PowerPill

	// Ghost and Player are spawn markers. They classify maze characters
	// during parsing and never appear in the grid.
	Ghost
	Player
)

var blockTypeNames = map[BlockType]string{
	Empty:     "empty",
	Wall:      "wall",
	Dot:       "dot",
	PowerPill: "power_pill",
	Ghost:     "ghost",
	Player:    "player",
}

func (b BlockType) String() string {
	if name, ok := blockTypeNames[b]; ok {
		return name
	}
	return fmt.Sprintf("block(%d)", int(b))
}

// Direction is an entity facing
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections lists every direction in availability order
var AllDirections = []Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection accepts full names, compass letters and screen words (up/down/left/right)
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n", "N", "up":
		return North, nil
	case "east", "e", "E", "right":
		return East, nil
	case "south", "s", "S", "down":
		return South, nil
	case "west", "w", "W", "left":
		return West, nil
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// Maze legend characters
const (
	DotChar       = '.'
	PowerPillChar = 'O'
	EmptyChar     = ' '
	GhostChar     = 'G'
	PlayerChar    = 'P'
)

// Game rule constants
const (
	PlayerDefaultDirection = West
	PlayerDefaultSpeed     = 2
	GhostDefaultSpeed      = 2
	ScentTrailLength       = 8
	DotPoints              = 10
	PowerPillPoints        = 50
	StartingLives          = 3

	// DefaultTickIntervalMs is the reference scheduler period
	DefaultTickIntervalMs = 200
	MinTickIntervalMs     = 20
	MaxTickIntervalMs     = 2000
)

// Block is a single grid cell
type Block struct {
	Type          BlockType `json:"type"`
	TrailStrength float64   `json:"trail_strength"`
}

// Entity is the mutable state shared by the player and every ghost
type Entity struct {
	Row            int       `json:"row"`
	Column         int       `json:"column"`
	PreviousRow    int       `json:"previous_row"`
	PreviousColumn int       `json:"previous_column"`
	Direction      Direction `json:"direction"`
	Speed          int       `json:"speed"`
}

func newEntity(row, column, speed int, direction Direction) Entity {
	return Entity{
		Row:            row,
		Column:         column,
		PreviousRow:    row,
		PreviousColumn: column,
		Direction:      direction,
		Speed:          speed,
	}
}

// Moved reports whether the most recent position change moved the entity
func (e *Entity) Moved() bool {
	return e.Row != e.PreviousRow || e.Column != e.PreviousColumn
}

// GhostName identifies a ghost's personality slot; ghosts beyond the fourth reuse the cycle
type GhostName int

const (
	Blinky GhostName = iota
	Pinky
	Inky
	Clyde
)

// GhostNameFor returns the name slot for the ghost at index i
func GhostNameFor(i int) GhostName {
	return GhostName(i % 4)
}

func (g GhostName) String() string {
	switch g {
	case Blinky:
		return "Blinky"
	case Pinky:
		return "Pinky"
	case Inky:
		return "Inky"
	case Clyde:
		return "Clyde"
	}
	return fmt.Sprintf("ghost(%d)", int(g))
}

// Rand is the sequential random source consulted for ghost directions.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
