package tictactoe

// The game tree is small enough (at most 9! leaf paths, far fewer in
// practice) to search exhaustively, so the engine needs no pruning and
// no heuristic evaluation.

// BestMove - returns the optimal move for the player to move, assuming
// both sides play perfectly for the rest of the game. The second return
// is false iff the board is already terminal, which signals "game over"
// rather than an error.
//
// Ties between equally good moves are broken by taking the first one in
// the row-major order of LegalMoves, so the result is reproducible.
func BestMove(board Board) (Move, bool) {
	if IsTerminal(board) {
		return Move{}, false
	}

	var (
		bestMove  Move
		bestValue int
	)

	if CurrentPlayer(board) == PlayerX {
		bestValue = minInfinity
		for _, move := range LegalMoves(board) {
			next, _ := ApplyMove(board, move)
			if value := minValue(next); value > bestValue {
				bestValue = value
				bestMove = move
			}
		}
	} else {
		bestValue = maxInfinity
		for _, move := range LegalMoves(board) {
			next, _ := ApplyMove(board, move)
			if value := maxValue(next); value < bestValue {
				bestValue = value
				bestMove = move
			}
		}
	}

	return bestMove, true
}

// Sentinels outside the utility range [-1, 1], so the first explored
// move always replaces them.
const (
	minInfinity = -2
	maxInfinity = 2
)

// maxValue - the best utility X can force from board.
func maxValue(board Board) int {
	if IsTerminal(board) {
		return Utility(board)
	}

	value := minInfinity
	for _, move := range LegalMoves(board) {
		next, _ := ApplyMove(board, move)
		if childValue := minValue(next); childValue > value {
			value = childValue
		}
	}

	return value
}

// minValue - the best utility O can force from board (the lowest score).
func minValue(board Board) int {
	if IsTerminal(board) {
		return Utility(board)
	}

	value := maxInfinity
	for _, move := range LegalMoves(board) {
		next, _ := ApplyMove(board, move)
		if childValue := maxValue(next); childValue < value {
			value = childValue
		}
	}

	return value
}
