package engine

// Position is a grid coordinate
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// CountBlocks counts the cells of a block type currently in the grid
func (m *Maze) CountBlocks(blockType BlockType) int {
	count := 0
	for _, row := range m.blocks {
		for _, block := range row {
			if block.Type == blockType {
				count++
			}
		}
	}
	return count
}

// CellStats classifies the open cells of a maze by how many directions leave them
type CellStats struct {
	Open      int `json:"open"`
	DeadEnds  int `json:"dead_ends"`
	Corridors int `json:"corridors"`
	Junctions int `json:"junctions"`
	Enclosed  int `json:"enclosed"`
}

// AnalyzeCells computes CellStats over every non-wall cell
func (m *Maze) AnalyzeCells() CellStats {
	var stats CellStats
	for r := 0; r <= m.MaxRowIndex(); r++ {
		for c := 0; c <= m.MaxColumnIndex(); c++ {
			if m.BlockAt(r, c) == Wall {
				continue
			}
			stats.Open++
			switch n := len(m.AvailableDirections(r, c)); {
			case n == 0:
				stats.Enclosed++
			case n == 1:
				stats.DeadEnds++
			case n == 2:
				stats.Corridors++
			default:
				stats.Junctions++
			}
		}
	}
	return stats
}

// WrapTunnels lists the open edge cells whose wrapped neighbour is also open
func (m *Maze) WrapTunnels() []Position {
	var tunnels []Position
	for r := 0; r <= m.MaxRowIndex(); r++ {
		for c := 0; c <= m.MaxColumnIndex(); c++ {
			if m.BlockAt(r, c) == Wall {
				continue
			}
			if (r == 0 && m.DirectionIsAvailable(r, c, North)) ||
				(c == m.MaxColumnIndex() && m.DirectionIsAvailable(r, c, East)) ||
				(r == m.MaxRowIndex() && m.DirectionIsAvailable(r, c, South)) ||
				(c == 0 && m.DirectionIsAvailable(r, c, West)) {
				tunnels = append(tunnels, Position{Row: r, Column: c})
			}
		}
	}
	return tunnels
}

// Reachable returns every open cell reachable from (row, column) over the wrapped grid
func (m *Maze) Reachable(row, column int) map[Position]bool {
	start := Position{Row: row, Column: column}
	seen := map[Position]bool{start: true}
	queue := []Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, direction := range m.AvailableDirections(cur.Row, cur.Column) {
			r, c := m.topology.Step(cur.Row, cur.Column, direction)
			next := Position{Row: r, Column: c}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	return seen
}

// UnreachableCollectibles lists dots and power-pills the player can never reach
func (m *Maze) UnreachableCollectibles() []Position {
	player := m.Player()
	reachable := m.Reachable(player.Row, player.Column)

	var out []Position
	for r := 0; r <= m.MaxRowIndex(); r++ {
		for c := 0; c <= m.MaxColumnIndex(); c++ {
			switch m.BlockAt(r, c) {
			case Dot, PowerPill:
				if !reachable[Position{Row: r, Column: c}] {
					out = append(out, Position{Row: r, Column: c})
				}
			}
		}
	}
	return out
}
