package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Cell is the content of one board square.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const BoardSize = 9

// Line is an index triple that wins when all three cells hold the same mark.
type Line [3]int

// WinLines - rows, then columns, then the two diagonals. Evaluation order depends on it.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Cell

func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Cell) IsValid() bool {
	return that == EmptyCell || that.IsPlayer()
}

// Opponent returns the other mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) Count(player Cell) int {
	count := 0
	for _, cell := range that {
		if cell == player {
			count++
		}
	}

	return count
}

// Swap relabels X as O and O as X.
func (that Board) Swap() Board {
	var swapped Board
	for i, cell := range that {
		swapped[i] = cell.Opponent()
	}

	return swapped
}

// String renders the board as nine characters, '_' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// UnmarshalJSON - a board is exactly nine cells. Shorter or longer arrays are rejected.
func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, len(cells), BoardSize)
	}

	copy(that[:], cells)

	return nil
}
