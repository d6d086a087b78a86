package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Evaluate - checks the win lines in order and reports the first one completed,
// then a draw when no empty cell is left.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range entity.WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.WinOutcome(a, line)
		}
	}

	// the game continues while any cell is free
	if !board.IsFull() {
		return entity.NoOutcome()
	}

	return entity.DrawOutcome()
}

// CompletesLine - reports whether the cell at index belongs to a completed line of player.
func CompletesLine(board entity.Board, index int, player entity.Cell) bool {
	if !player.IsPlayer() || !inRange(index) {
		return false
	}

	for _, line := range entity.WinLines {
		if line[0] != index && line[1] != index && line[2] != index {
			continue
		}

		if board[line[0]] == player && board[line[1]] == player && board[line[2]] == player {
			return true
		}
	}

	return false
}

func inRange(index int) bool {
	return index >= 0 && index < entity.BoardSize
}
