package entity

// MaxLivePieces is how many pieces a player may keep in the bounded variant.
const MaxLivePieces = 3

// MoveHistory holds the cells one player occupied, oldest first.
type MoveHistory []int

// Push returns a new history with index appended. The receiver is never modified.
func (that MoveHistory) Push(index int) MoveHistory {
	next := make(MoveHistory, len(that), len(that)+1)
	copy(next, that)

	return append(next, index)
}

// Shift returns the oldest entry and the remaining history.
func (that MoveHistory) Shift() (int, MoveHistory) {
	if len(that) == 0 {
		return -1, that
	}

	return that[0], that[1:]
}

func (that MoveHistory) Clone() MoveHistory {
	if that == nil {
		return nil
	}

	return append(MoveHistory(nil), that...)
}

// SearchState carries what the search needs besides the board.
type SearchState struct {
	Variant Variant `json:"variant"`
	// Player is the side the engine maximizes for. Empty means PlayerO.
	Player   Cell        `json:"player"`
	XHistory MoveHistory `json:"x_history,omitempty"`
	OHistory MoveHistory `json:"o_history,omitempty"`
}

func (that SearchState) Maximizer() Cell {
	if that.Player == EmptyCell {
		return PlayerO
	}

	return that.Player
}

func (that SearchState) History(player Cell) MoveHistory {
	if player == PlayerX {
		return that.XHistory
	}

	return that.OHistory
}

// WithHistory returns a copy of the state holding history for player.
func (that SearchState) WithHistory(player Cell, history MoveHistory) SearchState {
	if player == PlayerX {
		that.XHistory = history
	} else {
		that.OHistory = history
	}

	return that
}
