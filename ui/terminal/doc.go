// Package terminal draws the maze in a terminal and turns key presses into
// steering.
//
// The Renderer paints the maze art once, then redraws only the cells the
// player and ghosts left and entered on each tick. The HUD sits above the
// maze (1UP and HIGH SCORE) with the lives count below it. App connects a
// tcell screen, a runner.Runner and a Renderer into a playable game.
package terminal
