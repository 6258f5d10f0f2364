package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/mazegame/game/engine"
)

// KeyDirection maps arrow keys and h/j/k/l to a direction
func KeyDirection(ev *tcell.EventKey) (engine.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.North, true
	case tcell.KeyDown:
		return engine.South, true
	case tcell.KeyRight:
		return engine.East, true
	case tcell.KeyLeft:
		return engine.West, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return engine.North, true
		case 'j':
			return engine.South, true
		case 'l':
			return engine.East, true
		case 'h':
			return engine.West, true
		}
	}
	return engine.North, false
}

// IsQuit reports whether a key ends the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
