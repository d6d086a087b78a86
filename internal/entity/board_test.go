package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestCell_IsValid(t *testing.T) {
	assert.True(t, EmptyCell.IsValid())
	assert.True(t, PlayerX.IsValid())
	assert.False(t, EmptyCell.IsPlayer())
	assert.False(t, Cell("Z").IsValid())
}

func TestBoard(t *testing.T) {
	board := Board{
		PlayerX, EmptyCell, PlayerO,
		EmptyCell, PlayerX, EmptyCell,
		PlayerO, EmptyCell, EmptyCell,
	}

	t.Run("EmptyCells lists free indices in ascending order", func(t *testing.T) {
		assert.Equal(t, []int{1, 3, 5, 7, 8}, board.EmptyCells())
	})

	t.Run("Count counts one mark", func(t *testing.T) {
		assert.Equal(t, 2, board.Count(PlayerX))
		assert.Equal(t, 2, board.Count(PlayerO))
		assert.Equal(t, 5, board.Count(EmptyCell))
	})

	t.Run("IsFull only on a board without empty cells", func(t *testing.T) {
		assert.False(t, board.IsFull())
		assert.True(t, Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX}.IsFull())
	})

	t.Run("Swap relabels marks and keeps empty cells", func(t *testing.T) {
		// When: swapping the board
		swapped := board.Swap()

		// Then: X and O trade places and the original is untouched
		assert.Equal(t, "O_X_O_X__", swapped.String())
		assert.Equal(t, "X_O_X_O__", board.String())
	})
}

func TestBoard_UnmarshalJSON(t *testing.T) {
	t.Run("Decodes nine cells", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`["X","","O","","X","","","","O"]`), &board)

		require.NoError(t, err)
		assert.Equal(t, "X_O_X___O", board.String())
	})

	t.Run("Rejects any other length", func(t *testing.T) {
		for _, raw := range []string{`[]`, `["X","X"]`, `["X","","","","","","","","","O","O","O"]`, `null`} {
			// Given: a board that starts out non-empty
			board := Board{PlayerO}

			// When: decoding a wrong-sized array
			err := json.Unmarshal([]byte(raw), &board)

			// Then: ErrInvalidBoard is returned and nothing was written
			require.ErrorIs(t, err, apperror.ErrInvalidBoard, raw)
			assert.Equal(t, Board{PlayerO}, board, raw)
		}
	})

	t.Run("Rejects a non-array", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`"XXXOOO___"`), &board)

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Marshals back to a nine-element array", func(t *testing.T) {
		data, err := json.Marshal(Board{PlayerX})

		require.NoError(t, err)
		assert.JSONEq(t, `["X","","","","","","","",""]`, string(data))
	})
}
