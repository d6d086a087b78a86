package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// NoMove is returned when the board has no empty cell.
	NoMove = -1

	winScore = 10
	// maxDepth bounds the search; positions deeper than this score as neutral.
	maxDepth = 6
)

// SearchFunc picks a move for the side named in the search state.
type SearchFunc func(board entity.Board, state entity.SearchState) int

// BestMove - runs minimax for state.Maximizer() and returns the best cell.
// Candidates are tried in ascending order and the first best score wins ties.
func BestMove(board entity.Board, state entity.SearchState) int {
	maximizer := state.Maximizer()

	bestScore := math.MinInt
	move := NoMove

	for _, cell := range board.EmptyCells() {
		nextBoard, nextState := simulate(board, state, cell, maximizer)

		score := minimax(nextBoard, nextState, maximizer, 0, false)
		if score > bestScore {
			bestScore = score
			move = cell
		}
	}

	return move
}

func minimax(board entity.Board, state entity.SearchState, maximizer entity.Cell, depth int, isMaximizing bool) int {
	if outcome := Evaluate(board); outcome.IsFinished() {
		return terminalScore(outcome, maximizer, depth)
	}

	if depth >= maxDepth {
		return 0
	}

	player := maximizer
	bestScore := math.MinInt
	if !isMaximizing {
		player = maximizer.Opponent()
		bestScore = math.MaxInt
	}

	for _, cell := range board.EmptyCells() {
		nextBoard, nextState := simulate(board, state, cell, player)

		score := minimax(nextBoard, nextState, maximizer, depth+1, !isMaximizing)
		if isMaximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}

func terminalScore(outcome entity.Outcome, maximizer entity.Cell, depth int) int {
	switch {
	case !outcome.IsWin():
		return 0
	case outcome.Winner == maximizer:
		return winScore - depth
	default:
		return depth - winScore
	}
}

// simulate - applies a hypothetical move. Board and state are values, and
// histories are copied on push, so sibling branches never share storage.
func simulate(board entity.Board, state entity.SearchState, cell int, player entity.Cell) (entity.Board, entity.SearchState) {
	if !state.Variant.IsBounded() {
		return place(board, cell, player), state
	}

	transition := placeWithEviction(board, state.History(player), cell, player)

	return transition.Board, state.WithHistory(player, transition.History)
}
