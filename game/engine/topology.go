package engine

// Topology holds the grid dimensions and the wrap-around arithmetic
type Topology struct {
	MaxRowIndex    int `json:"max_row_index"`
	MaxColumnIndex int `json:"max_column_index"`
}

// NewTopology creates a topology for a grid of rows x columns
func NewTopology(rows, columns int) Topology {
	return Topology{MaxRowIndex: rows - 1, MaxColumnIndex: columns - 1}
}

// Rows returns the number of rows
func (t Topology) Rows() int {
	return t.MaxRowIndex + 1
}

// Columns returns the number of columns
func (t Topology) Columns() int {
	return t.MaxColumnIndex + 1
}

// Contains reports whether (row, column) lies inside the grid
func (t Topology) Contains(row, column int) bool {
	return row >= 0 && row <= t.MaxRowIndex && column >= 0 && column <= t.MaxColumnIndex
}

// Step returns the cell one step away in the given direction.
// Crossing an edge lands on the opposite edge of the same row or column.
func (t Topology) Step(row, column int, direction Direction) (int, int) {
	switch direction {
	case North:
		if row > 0 {
			row--
		} else {
			row = t.MaxRowIndex
		}
	case East:
		if column < t.MaxColumnIndex {
			column++
		} else {
			column = 0
		}
	case South:
		if row < t.MaxRowIndex {
			row++
		} else {
			row = 0
		}
	case West:
		if column > 0 {
			column--
		} else {
			column = t.MaxColumnIndex
		}
	}
	return row, column
}

// CellKey encodes a cell as a scent map key. The row stride is the column
// count so every cell of any grid shape gets a distinct key.
func (t Topology) CellKey(row, column int) int {
	return row*t.Columns() + column
}

// CellFromKey is the inverse of CellKey
func (t Topology) CellFromKey(key int) (int, int) {
	return key / t.Columns(), key % t.Columns()
}

// Reciprocal returns the 180 degree opposite direction
func Reciprocal(direction Direction) Direction {
	switch direction {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}
