package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/mazegame/game/engine"
)

// MazeRowOffset leaves room for the score lines above the maze
const MazeRowOffset = 2

const hudLabel = "1UP   HIGH SCORE"

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	dotStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle  = tcell.StyleDefault

	ghostStyles = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		tcell.StyleDefault.Foreground(tcell.ColorAqua),
		tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}
)

// Renderer paints a maze onto a tcell screen
type Renderer struct {
	screen    tcell.Screen
	maze      *engine.Maze
	highScore int
}

// NewRenderer creates a renderer for a maze
func NewRenderer(screen tcell.Screen, maze *engine.Maze) *Renderer {
	return &Renderer{screen: screen, maze: maze}
}

// Size returns the screen cells the maze and HUD need
func (r *Renderer) Size() (width, height int) {
	return r.maze.MaxColumnIndex() + 1, r.maze.MaxRowIndex() + 1 + MazeRowOffset + 1
}

// SetHighScore seeds the high score shown in the HUD
func (r *Renderer) SetHighScore(score int) {
	r.highScore = score
}

// HighScore returns the best score seen so far
func (r *Renderer) HighScore() int {
	return r.highScore
}

// DrawMaze clears the screen and paints every wall, dot and power-pill
func (r *Renderer) DrawMaze() {
	r.screen.Clear()
	for row := 0; row <= r.maze.MaxRowIndex(); row++ {
		for column := 0; column <= r.maze.MaxColumnIndex(); column++ {
			r.drawBlock(row, column)
		}
	}
}

// DrawEntities redraws the cells each entity left, then the entities themselves
func (r *Renderer) DrawEntities() {
	player := r.maze.Player()
	ghosts := r.maze.Ghosts()

	// clear every vacated cell before painting, so a ghost leaving the
	// player's new cell cannot blank the player
	if player.Moved() {
		r.drawBlock(player.PreviousRow, player.PreviousColumn)
	}
	for _, ghost := range ghosts {
		r.drawBlock(ghost.PreviousRow, ghost.PreviousColumn)
	}

	r.setCell(player.Row, player.Column, engine.PlayerChar, playerStyle)
	for i, ghost := range ghosts {
		r.setCell(ghost.Row, ghost.Column, engine.GhostChar, ghostStyles[int(engine.GhostNameFor(i))])
	}
}

// DrawStats paints the score line and the lives count
func (r *Renderer) DrawStats(livesRemaining, score int) {
	if score > r.highScore {
		r.highScore = score
	}

	r.drawText(3, 0, hudLabel, textStyle)
	r.drawText(0, 1, fmt.Sprintf("%6d", score), textStyle)
	r.drawText(9, 1, fmt.Sprintf("%10d", r.highScore), textStyle)
	r.drawText(0, r.livesRow(), fmt.Sprintf("%d", livesRemaining), textStyle)
}

// OnScoreChanged redraws the HUD when the player collects something
func (r *Renderer) OnScoreChanged(livesRemaining, score int) {
	r.DrawStats(livesRemaining, score)
}

// Draw redraws the entities after a step and flushes the screen
func (r *Renderer) Draw(result engine.TickResult) {
	r.DrawEntities()
	if result.State == engine.GameOver {
		r.DrawGameOver()
	}
	r.screen.Show()
}

// DrawGameOver writes the end banner on the lives line
func (r *Renderer) DrawGameOver() {
	const banner = "GAME OVER"
	width, _ := r.Size()
	x := (width - len(banner)) / 2
	if x < 2 {
		x = 2
	}
	r.drawText(x, r.livesRow(), banner, textStyle)
}

func (r *Renderer) livesRow() int {
	return r.maze.MaxRowIndex() + 1 + MazeRowOffset
}

// drawBlock paints the current contents of a maze cell
func (r *Renderer) drawBlock(row, column int) {
	switch r.maze.BlockAt(row, column) {
	case engine.Wall:
		r.setCell(row, column, r.maze.LayoutRune(row, column), wallStyle)
	case engine.Dot:
		r.setCell(row, column, engine.DotChar, dotStyle)
	case engine.PowerPill:
		r.setCell(row, column, engine.PowerPillChar, dotStyle)
	default:
		r.setCell(row, column, engine.EmptyChar, emptyStyle)
	}
}

func (r *Renderer) setCell(row, column int, ch rune, style tcell.Style) {
	r.screen.SetContent(column, row+MazeRowOffset, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
