package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values and records every bound it was asked for
type scriptedRand struct {
	values []int
	bounds []int
}

func (r *scriptedRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

var testMaze = []string{
	"####.###",
	"#G.#.#G#",
	"####.#.#",
	"...#G..O",
	"#.##.#.#",
	"#P.#   #",
	"#### ###",
}

var corridorMaze = []string{
	"#####",
	"#..G#",
	"#.###",
	"#.P.#",
	"###.#",
	"#.O.#",
	"#####",
}

func createTestMaze(t *testing.T) *Maze {
	t.Helper()
	m, err := NewMaze(testMaze, rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	return m
}

func assertEntity(t *testing.T, e *Entity, row, column int, direction Direction, prevRow, prevColumn int) {
	t.Helper()
	require.Equal(t, row, e.Row, "row")
	require.Equal(t, column, e.Column, "column")
	require.Equal(t, direction, e.Direction, "direction")
	require.Equal(t, prevRow, e.PreviousRow, "previous row")
	require.Equal(t, prevColumn, e.PreviousColumn, "previous column")
}
