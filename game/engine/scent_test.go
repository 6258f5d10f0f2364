package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScentMap_Add(t *testing.T) {
	s := make(ScentMap)

	s.Add(9)
	assert.Equal(t, ScentTrailLength, s.Strength(9))

	s.Decay()
	s.Decay()
	require.Equal(t, ScentTrailLength-2, s.Strength(9))

	// re-adding resets rather than accumulates
	s.Add(9)
	assert.Equal(t, ScentTrailLength, s.Strength(9))
	assert.Zero(t, s.Strength(10))
}

func TestScentMap_Decay(t *testing.T) {
	s := make(ScentMap)
	for key := 9; key <= 14; key++ {
		s.Add(key)
		s.Decay()
	}

	// the oldest key has decayed the most
	for key := 9; key <= 14; key++ {
		assert.Equal(t, ScentTrailLength-(15-key), s.Strength(key), "key %d", key)
	}

	expired := s.Decay()
	assert.Empty(t, expired)
	assert.Equal(t, 1, s.Strength(9))

	expired = s.Decay()
	assert.Equal(t, []int{9}, expired)
	assert.NotContains(t, s, 9)
	assert.Len(t, s, 5)
}

func TestScentMap_FullTrail(t *testing.T) {
	s := make(ScentMap)
	var expired []int
	for key := 1; key <= 7+ScentTrailLength; key++ {
		s.Add(key)
		expired = append(expired, s.Decay()...)
	}

	// only the most recent cells survive
	assert.Len(t, s, ScentTrailLength-1)
	sort.Ints(expired)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, expired)
	assert.Equal(t, ScentTrailLength-1, s.Strength(7+ScentTrailLength))
}

func TestMaze_ScentFollowsPlayer(t *testing.T) {
	m := createTestMaze(t)
	key := m.Topology().CellKey

	m.MovePlayer() // (4,1)
	assert.Equal(t, ScentTrailLength-1, m.Scent()[key(4, 1)])
	assert.Equal(t, float64(ScentTrailLength-1), m.TrailAt(4, 1))
	// the spawn cell is never scented
	assert.Zero(t, m.TrailAt(5, 1))

	m.MovePlayer() // (3,1)
	assert.Equal(t, ScentTrailLength-2, m.Scent()[key(4, 1)])
	assert.Equal(t, ScentTrailLength-1, m.Scent()[key(3, 1)])

	// stuck at the junction: the occupied cell is refreshed every tick
	// while the cell behind fades out
	for tick := 3; tick <= 7; tick++ {
		m.MovePlayer()
	}
	assert.Equal(t, 1, m.Scent()[key(4, 1)])
	assert.Equal(t, 1.0, m.TrailAt(4, 1))

	m.MovePlayer()
	assert.NotContains(t, m.Scent(), key(4, 1))
	assert.Zero(t, m.TrailAt(4, 1))
	assert.Equal(t, float64(ScentTrailLength-1), m.TrailAt(3, 1))
}

func TestMaze_ScentKeysAreDistinct(t *testing.T) {
	// a wide grid where row*MaxRowIndex+column style keys would collide
	top := NewTopology(3, 10)
	seen := make(map[int]Position)
	for r := 0; r < top.Rows(); r++ {
		for c := 0; c < top.Columns(); c++ {
			key := top.CellKey(r, c)
			prev, dup := seen[key]
			require.False(t, dup, "(%d,%d) collides with %v", r, c, prev)
			seen[key] = Position{Row: r, Column: c}
		}
	}
}

func TestMaze_ScentIsCopied(t *testing.T) {
	m := createTestMaze(t)
	m.MovePlayer()

	scent := m.Scent()
	scent[0] = 99

	assert.NotContains(t, m.Scent(), 0)
}
