package apperror

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrInvalidHistory    = errors.New("invalid move history")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownVariant    = errors.New("unknown variant")
)
