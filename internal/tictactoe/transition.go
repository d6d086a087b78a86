package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NoEviction is reported when a placement removed nothing from the board.
const NoEviction = -1

// Transition is the result of a bounded-history placement.
type Transition struct {
	Board   entity.Board
	History entity.MoveHistory
	Evicted int
}

func (that Transition) HasEviction() bool {
	return that.Evicted != NoEviction
}

// Place - puts player's mark on an empty cell and returns the new board.
func Place(board entity.Board, index int, player entity.Cell) (entity.Board, error) {
	if err := validateMove(board, index, player); err != nil {
		return board, err
	}

	return place(board, index, player), nil
}

// PlaceWithEviction - places a mark under the bounded-history rule. When the
// player ends up with more than MaxLivePieces, the oldest piece is removed,
// unless the placement itself completed a line.
func PlaceWithEviction(board entity.Board, history entity.MoveHistory, index int, player entity.Cell) (Transition, error) {
	if err := validateMove(board, index, player); err != nil {
		return Transition{Board: board, History: history, Evicted: NoEviction}, err
	}

	return placeWithEviction(board, history, index, player), nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, index int, player entity.Cell) error {
	if !inRange(index) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrIllegalMove, index)
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown player %q", apperror.ErrIllegalMove, player)
	}

	if board[index] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrIllegalMove, index)
	}

	return nil
}

func place(board entity.Board, index int, player entity.Cell) entity.Board {
	board[index] = player

	return board
}

func placeWithEviction(board entity.Board, history entity.MoveHistory, index int, player entity.Cell) Transition {
	board[index] = player
	history = history.Push(index)

	if len(history) <= entity.MaxLivePieces {
		return Transition{Board: board, History: history, Evicted: NoEviction}
	}

	oldest, rest := history.Shift()

	// a winning piece stays with the others, the game is over anyway
	if CompletesLine(board, index, player) {
		return Transition{Board: board, History: rest, Evicted: NoEviction}
	}

	board[oldest] = entity.EmptyCell

	return Transition{Board: board, History: rest, Evicted: oldest}
}
