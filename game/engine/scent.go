package engine

// ScentMap tracks the decaying trail the player leaves behind, keyed by cell key
type ScentMap map[int]int

// Add marks a cell at full strength. Re-adding resets rather than accumulates.
func (s ScentMap) Add(key int) {
	s[key] = ScentTrailLength
}

// Decay weakens every entry by one and drops entries that reach zero.
// It returns the keys that were dropped.
func (s ScentMap) Decay() []int {
	var expired []int
	for key := range s {
		s[key]--
		if s[key] <= 0 {
			delete(s, key)
			expired = append(expired, key)
		}
	}
	return expired
}

// Strength returns the remaining strength for a key, zero when absent
func (s ScentMap) Strength(key int) int {
	return s[key]
}

// addScent refreshes the trail at a cell and mirrors it into the grid
func (m *Maze) addScent(row, column int) {
	m.scent.Add(m.topology.CellKey(row, column))
	m.blocks[row][column].TrailStrength = ScentTrailLength
}

// degradeScent decays the whole trail and mirrors the result into the grid
func (m *Maze) degradeScent() {
	for _, key := range m.scent.Decay() {
		row, column := m.topology.CellFromKey(key)
		m.blocks[row][column].TrailStrength = 0
	}
	for key, strength := range m.scent {
		row, column := m.topology.CellFromKey(key)
		m.blocks[row][column].TrailStrength = float64(strength)
	}
}

// Scent returns a copy of the current scent map
func (m *Maze) Scent() ScentMap {
	out := make(ScentMap, len(m.scent))
	for k, v := range m.scent {
		out[k] = v
	}
	return out
}
