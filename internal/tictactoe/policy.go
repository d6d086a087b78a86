package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// RandomSource is satisfied by *math/rand/v2.Rand.
type RandomSource interface {
	IntN(n int) int
}

// ChooseMove - picks the engine's move for the given difficulty.
func ChooseMove(board entity.Board, difficulty entity.Difficulty, state entity.SearchState, rng RandomSource) int {
	return ChooseMoveWith(board, difficulty, state, rng, BestMove)
}

// ChooseMoveWith is ChooseMove with the hard-tier search supplied by the caller.
func ChooseMoveWith(board entity.Board, difficulty entity.Difficulty, state entity.SearchState, rng RandomSource, search SearchFunc) int {
	switch difficulty {
	case entity.EasyDifficulty:
		return RandomMove(board, rng)
	case entity.DifficultDifficulty:
		// one coin flip per call
		if rng.IntN(2) == 0 {
			return RandomMove(board, rng)
		}
		return search(board, state)
	default:
		return search(board, state)
	}
}

// RandomMove - returns a uniformly chosen empty cell, or NoMove on a full board.
func RandomMove(board entity.Board, rng RandomSource) int {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return NoMove
	}

	return cells[rng.IntN(len(cells))]
}
