package engine

// ScoreListener is notified when the player collects a dot or power-pill
type ScoreListener interface {
	OnScoreChanged(livesRemaining, score int)
}

// ScoreListenerFunc adapts a plain function to ScoreListener
type ScoreListenerFunc func(livesRemaining, score int)

// OnScoreChanged calls f
func (f ScoreListenerFunc) OnScoreChanged(livesRemaining, score int) {
	f(livesRemaining, score)
}

// ScoreUpdate describes the collection outcome of one player move.
// Collected is Empty when nothing was collected.
type ScoreUpdate struct {
	Collected      BlockType `json:"collected"`
	Delta          int       `json:"delta"`
	Score          int       `json:"score"`
	LivesRemaining int       `json:"lives_remaining"`
}

// Changed reports whether the move changed the score
func (u ScoreUpdate) Changed() bool {
	return u.Delta != 0
}

// Subscribe registers a listener for score changes
func (m *Maze) Subscribe(listener ScoreListener) {
	if listener == nil {
		return
	}
	m.listeners = append(m.listeners, listener)
}

// raiseScoreUpdated notifies every listener synchronously
func (m *Maze) raiseScoreUpdated() {
	for _, listener := range m.listeners {
		listener.OnScoreChanged(m.livesRemaining, m.score)
	}
}
