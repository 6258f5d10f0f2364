package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopology_Step(t *testing.T) {
	top := NewTopology(7, 8)

	tests := []struct {
		name             string
		row, column      int
		direction        Direction
		wantRow, wantCol int
	}{
		{"north", 3, 3, North, 2, 3},
		{"east", 3, 3, East, 3, 4},
		{"south", 3, 3, South, 4, 3},
		{"west", 3, 3, West, 3, 2},
		{"north wraps", 0, 4, North, 6, 4},
		{"east wraps", 3, 7, East, 3, 0},
		{"south wraps", 6, 4, South, 0, 4},
		{"west wraps", 4, 0, West, 4, 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, c := top.Step(test.row, test.column, test.direction)
			assert.Equal(t, test.wantRow, r)
			assert.Equal(t, test.wantCol, c)
		})
	}
}

func TestTopology_Dimensions(t *testing.T) {
	top := NewTopology(31, 28)

	assert.Equal(t, 30, top.MaxRowIndex)
	assert.Equal(t, 27, top.MaxColumnIndex)
	assert.Equal(t, 31, top.Rows())
	assert.Equal(t, 28, top.Columns())
	assert.True(t, top.Contains(30, 27))
	assert.True(t, top.Contains(0, 0))
	assert.False(t, top.Contains(31, 0))
	assert.False(t, top.Contains(0, -1))
}

func TestTopology_CellKey(t *testing.T) {
	top := NewTopology(31, 28)

	assert.Equal(t, 0, top.CellKey(0, 0))
	assert.Equal(t, 28, top.CellKey(1, 0))
	assert.Equal(t, 31*28-1, top.CellKey(30, 27))

	for _, cell := range []Position{{0, 0}, {5, 27}, {30, 0}, {14, 13}} {
		r, c := top.CellFromKey(top.CellKey(cell.Row, cell.Column))
		assert.Equal(t, cell, Position{Row: r, Column: c})
	}
}

func TestReciprocal(t *testing.T) {
	assert.Equal(t, South, Reciprocal(North))
	assert.Equal(t, West, Reciprocal(East))
	assert.Equal(t, North, Reciprocal(South))
	assert.Equal(t, East, Reciprocal(West))

	for _, d := range AllDirections {
		assert.Equal(t, d, Reciprocal(Reciprocal(d)))
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"north", North},
		{"up", North},
		{"E", East},
		{"right", East},
		{"s", South},
		{"down", South},
		{"west", West},
		{"left", West},
	}
	for _, test := range tests {
		got, err := ParseDirection(test.input)
		assert.NoError(t, err, test.input)
		assert.Equal(t, test.want, got, test.input)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "power_pill", PowerPill.String())
	assert.Equal(t, "west", West.String())
	assert.Equal(t, "game_over", GameOver.String())
	assert.Equal(t, "Clyde", GhostNameFor(3).String())
	assert.Equal(t, "Blinky", GhostNameFor(4).String())
}
