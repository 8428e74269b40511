package othello

const (
	// Weight of a corner disc in the heuristic
	CornerWeight = 5
	// Multiplier of the exact score at finished games, makes every decided
	// game outweigh any heuristic value
	TerminalScale = 1000
)

// Static evaluation of the position, from the mover's perspective
func Heuristic(p Position) int {
	return CornerWeight*p.CornerDifference() + p.PotentialMovesDifference()
}

// Value of a finished game, from the mover's perspective
func TerminalValue(p Position) int {
	return TerminalScale * p.ExactScore()
}
