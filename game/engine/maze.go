package engine

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidMaze wraps every maze definition failure
	ErrInvalidMaze = errors.New("invalid maze definition")

	ErrNoGhosts = errors.New("No ghosts defined in maze")
	ErrNoPlayer = errors.New("No player defined in maze")
	ErrNoDots   = errors.New("No dots placed in maze")
)

// mazeError keeps the fixed message while matching both the specific
// sentinel and ErrInvalidMaze under errors.Is
type mazeError struct {
	err error
}

func (e *mazeError) Error() string {
	return e.err.Error()
}

func (e *mazeError) Unwrap() []error {
	return []error{e.err, ErrInvalidMaze}
}

func invalidMaze(err error) error {
	return &mazeError{err: err}
}

// playerIndex is the arena slot of the player; ghosts follow it
const playerIndex = 0

// Maze owns the grid and every entity
type Maze struct {
	topology Topology
	blocks   [][]Block
	layout   [][]rune

	// entities[playerIndex] is the player, the rest are ghosts in scan order
	entities []Entity

	scent          ScentMap
	score          int
	livesRemaining int
	dotsRemaining  int
	pillsRemaining int

	rng       Rand
	listeners []ScoreListener
}

// NewMaze parses the maze text and places every entity.
// A maze without ghosts, a player or dots is rejected.
func NewMaze(layout []string, rng Rand) (*Maze, error) {
	if rng == nil {
		return nil, fmt.Errorf("maze random source is required")
	}
	if len(layout) == 0 {
		return nil, invalidMaze(errors.New("maze layout is empty"))
	}

	runes := make([][]rune, len(layout))
	width := utf8.RuneCountInString(layout[0])
	if width == 0 {
		return nil, invalidMaze(errors.New("maze rows must not be empty"))
	}
	for i, row := range layout {
		runes[i] = []rune(row)
		if len(runes[i]) != width {
			return nil, invalidMaze(fmt.Errorf("maze row %d has %d columns, expected %d", i+1, len(runes[i]), width))
		}
	}

	m := &Maze{
		topology:       NewTopology(len(runes), width),
		layout:         runes,
		scent:          make(ScentMap),
		livesRemaining: StartingLives - 1,
		rng:            rng,
	}

	hasPlayer := m.makeMaze()

	if m.GhostCount() == 0 {
		return nil, invalidMaze(ErrNoGhosts)
	}
	if !hasPlayer {
		return nil, invalidMaze(ErrNoPlayer)
	}
	if m.dotsRemaining == 0 {
		return nil, invalidMaze(ErrNoDots)
	}

	// with the grid built, point each ghost somewhere it can actually go
	for i := range m.Ghosts() {
		ghost := m.Ghost(i)
		if directions := m.AvailableDirections(ghost.Row, ghost.Column); len(directions) > 0 {
			ghost.Direction = m.chooseRandomDirection(directions)
		}
	}

	return m, nil
}

// makeMaze builds the grid and the entity arena in row-major scan order
func (m *Maze) makeMaze() bool {
	m.blocks = make([][]Block, m.topology.Rows())
	m.entities = []Entity{{}}
	hasPlayer := false

	for y, row := range m.layout {
		m.blocks[y] = make([]Block, m.topology.Columns())
		for x, c := range row {
			blockType := EvaluateMazeBlock(c)

			switch blockType {
			case Dot:
				m.dotsRemaining++
				m.blocks[y][x] = Block{Type: Dot}
			case PowerPill:
				m.pillsRemaining++
				m.blocks[y][x] = Block{Type: PowerPill}
			case Player:
				m.blocks[y][x] = Block{Type: Empty}
				m.entities[playerIndex] = newEntity(y, x, PlayerDefaultSpeed, PlayerDefaultDirection)
				hasPlayer = true
			case Ghost:
				m.blocks[y][x] = Block{Type: Empty}
				m.entities = append(m.entities, newEntity(y, x, GhostDefaultSpeed, m.randomDirection()))
			default:
				m.blocks[y][x] = Block{Type: blockType}
			}
		}
	}

	return hasPlayer
}

// EvaluateMazeBlock classifies one maze character
func EvaluateMazeBlock(c rune) BlockType {
	switch c {
	case DotChar:
		return Dot
	case PowerPillChar:
		return PowerPill
	case GhostChar:
		return Ghost
	case PlayerChar:
		return Player
	case EmptyChar:
		return Empty
	default:
		return Wall
	}
}

// randomDirection draws any of the four directions
func (m *Maze) randomDirection() Direction {
	return Direction(m.rng.Intn(len(AllDirections)))
}

// chooseRandomDirection picks uniformly; a single option does not consult the source
func (m *Maze) chooseRandomDirection(directions []Direction) Direction {
	if len(directions) == 1 {
		return directions[0]
	}
	return directions[m.rng.Intn(len(directions))]
}

// Topology returns the grid dimensions
func (m *Maze) Topology() Topology {
	return m.topology
}

// MaxRowIndex returns the highest row index
func (m *Maze) MaxRowIndex() int {
	return m.topology.MaxRowIndex
}

// MaxColumnIndex returns the highest column index
func (m *Maze) MaxColumnIndex() int {
	return m.topology.MaxColumnIndex
}

// BlockAt returns the block type at a cell
func (m *Maze) BlockAt(row, column int) BlockType {
	return m.blocks[row][column].Type
}

// TrailAt returns the trail strength mirrored from the scent map
func (m *Maze) TrailAt(row, column int) float64 {
	return m.blocks[row][column].TrailStrength
}

// LayoutRune returns the maze character a cell was parsed from
func (m *Maze) LayoutRune(row, column int) rune {
	return m.layout[row][column]
}

// DotsRemaining returns the number of uncollected dots
func (m *Maze) DotsRemaining() int {
	return m.dotsRemaining
}

// PillsRemaining returns the number of uncollected power-pills
func (m *Maze) PillsRemaining() int {
	return m.pillsRemaining
}

// Score returns the current score
func (m *Maze) Score() int {
	return m.score
}

// LivesRemaining returns the spare lives
func (m *Maze) LivesRemaining() int {
	return m.livesRemaining
}

// Player returns the player entity
func (m *Maze) Player() *Entity {
	return &m.entities[playerIndex]
}

// Ghosts returns the ghost entities in scan order. The slice shares storage
// with the maze.
func (m *Maze) Ghosts() []Entity {
	return m.entities[playerIndex+1:]
}

// Ghost returns the ghost at index i
func (m *Maze) Ghost(i int) *Entity {
	return &m.entities[playerIndex+1+i]
}

// GhostCount returns the number of ghosts
func (m *Maze) GhostCount() int {
	return len(m.entities) - 1
}

// SetPlayerDirection sets the player's desired facing
func (m *Maze) SetPlayerDirection(direction Direction) {
	m.entities[playerIndex].Direction = direction
}
