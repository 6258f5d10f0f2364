package engine

import "slices"

// DirectionIsAvailable checks whether one wrapped step in direction lands off a wall
func (m *Maze) DirectionIsAvailable(row, column int, direction Direction) bool {
	r, c := m.topology.Step(row, column, direction)
	return m.blocks[r][c].Type != Wall
}

// AvailableDirections returns the legal directions from a cell in N, E, S, W order
func (m *Maze) AvailableDirections(row, column int) []Direction {
	directions := make([]Direction, 0, len(AllDirections))
	for _, direction := range AllDirections {
		if m.DirectionIsAvailable(row, column, direction) {
			directions = append(directions, direction)
		}
	}
	return directions
}

// ChangePosition commits one step in the entity's facing without a legality check
func (m *Maze) ChangePosition(entity *Entity) {
	entity.PreviousRow = entity.Row
	entity.PreviousColumn = entity.Column
	entity.Row, entity.Column = m.topology.Step(entity.Row, entity.Column, entity.Direction)
}

// MoveGhost advances ghost i one step and picks its next facing.
// A ghost only reverses when the reverse is its sole way out.
func (m *Maze) MoveGhost(i int) {
	ghost := m.Ghost(i)
	m.ChangePosition(ghost)

	directions := m.AvailableDirections(ghost.Row, ghost.Column)
	if len(directions) > 1 {
		directions = removeDirection(directions, Reciprocal(ghost.Direction))
	}
	if len(directions) == 0 {
		return
	}

	ghost.Direction = m.chooseRandomDirection(directions)
}

// MovePlayer advances the player, refreshes the scent trail and collects
// whatever lies under the player's new cell
func (m *Maze) MovePlayer() ScoreUpdate {
	player := m.Player()
	directions := m.AvailableDirections(player.Row, player.Column)

	if slices.Contains(directions, player.Direction) {
		m.ChangePosition(player)
	} else {
		switch len(directions) {
		case 2:
			// take the corner rather than doubling back
			directions = removeDirection(directions, Reciprocal(player.Direction))
			player.Direction = directions[0]
			m.ChangePosition(player)
		case 1:
			player.Direction = directions[0]
			m.ChangePosition(player)
		}
	}

	m.addScent(player.Row, player.Column)
	m.degradeScent()

	return m.collect(player.Row, player.Column)
}

// collect scores a dot or power-pill at a cell and clears it
func (m *Maze) collect(row, column int) ScoreUpdate {
	update := ScoreUpdate{
		Collected:      Empty,
		Score:          m.score,
		LivesRemaining: m.livesRemaining,
	}

	block := &m.blocks[row][column]
	switch block.Type {
	case Dot:
		update.Delta = DotPoints
		m.dotsRemaining--
	case PowerPill:
		update.Delta = PowerPillPoints
		m.pillsRemaining--
	default:
		return update
	}

	update.Collected = block.Type
	block.Type = Empty
	m.score += update.Delta
	update.Score = m.score

	m.raiseScoreUpdated()
	return update
}

// removeDirection drops direction from the list, keeping order
func removeDirection(directions []Direction, direction Direction) []Direction {
	return slices.DeleteFunc(directions, func(d Direction) bool {
		return d == direction
	})
}
