package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type moveCache interface {
	Get(ctx context.Context, board entity.Board, state entity.SearchState) (int, error)
	Set(ctx context.Context, board entity.Board, state entity.SearchState, move int) error
}

type commentator interface {
	Comment(ctx context.Context, board entity.Board, engine entity.Cell) string
}

// PlaceResult is the board after a placement together with its outcome.
type PlaceResult struct {
	Board   entity.Board
	History entity.MoveHistory
	Evicted int
	Outcome entity.Outcome
}

type EngineManager struct {
	logger *slog.Logger

	rng         tictactoe.RandomSource
	cache       moveCache
	commentator commentator
}

// NewEngineManager - cache may be nil, then every search runs in place.
func NewEngineManager(logger *slog.Logger, rng tictactoe.RandomSource, cache moveCache, commentator commentator) *EngineManager {
	return &EngineManager{
		logger: logger.With("component", "engine"),

		rng:         rng,
		cache:       cache,
		commentator: commentator,
	}
}

func (that *EngineManager) Evaluate(_ context.Context, board entity.Board) (entity.Outcome, error) {
	if err := validateBoard(board); err != nil {
		return entity.Outcome{}, err
	}

	return tictactoe.Evaluate(board), nil
}

// Place - applies a move under the rules of variant and reports the outcome.
func (that *EngineManager) Place(_ context.Context, board entity.Board, variant entity.Variant, history entity.MoveHistory, index int, player entity.Cell) (*PlaceResult, error) {
	if err := validateBoard(board); err != nil {
		return nil, err
	}

	if tictactoe.Evaluate(board).IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	if !variant.IsBounded() {
		next, err := tictactoe.Place(board, index, player)
		if err != nil {
			return nil, fmt.Errorf("failed to place: %w", err)
		}

		return &PlaceResult{Board: next, Evicted: tictactoe.NoEviction, Outcome: tictactoe.Evaluate(next)}, nil
	}

	if err := validateHistory(board, player, history); err != nil {
		return nil, err
	}

	transition, err := tictactoe.PlaceWithEviction(board, history, index, player)
	if err != nil {
		return nil, fmt.Errorf("failed to place with eviction: %w", err)
	}

	return &PlaceResult{
		Board:   transition.Board,
		History: transition.History,
		Evicted: transition.Evicted,
		Outcome: tictactoe.Evaluate(transition.Board),
	}, nil
}

// ChooseMove - returns the engine's cell for state.Maximizer().
func (that *EngineManager) ChooseMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty, state entity.SearchState) (int, error) {
	log := that.logger.With("method", "ChooseMove", "difficulty", difficulty, "variant", state.Variant)

	if err := validateState(board, state); err != nil {
		return tictactoe.NoMove, err
	}

	move := tictactoe.ChooseMoveWith(board, difficulty, state, that.rng, that.cachedSearch(ctx))

	log.Debug("move chosen", "board", board.String(), "move", move)

	return move, nil
}

// Comment - commentary never fails; only the board and the engine's mark are validated.
// An empty engine mark means PlayerO.
func (that *EngineManager) Comment(ctx context.Context, board entity.Board, engine entity.Cell) (string, error) {
	if err := validateBoard(board); err != nil {
		return "", err
	}

	if engine != entity.EmptyCell && !engine.IsPlayer() {
		return "", fmt.Errorf("%w: unknown player %q", apperror.ErrIllegalMove, engine)
	}

	return that.commentator.Comment(ctx, board, engine), nil
}

// cachedSearch - wraps BestMove with the move cache. Cache failures are logged
// and the search runs directly.
func (that *EngineManager) cachedSearch(ctx context.Context) tictactoe.SearchFunc {
	if that.cache == nil {
		return tictactoe.BestMove
	}

	log := that.logger.With("method", "cachedSearch")

	return func(board entity.Board, state entity.SearchState) int {
		move, err := that.cache.Get(ctx, board, state)
		if err == nil && validCachedMove(board, move) {
			return move
		}

		if err != nil && !errors.Is(err, repository.ErrMoveNotCached) {
			log.Error("failed to read move cache", "error", err)
		}

		move = tictactoe.BestMove(board, state)

		if err = that.cache.Set(ctx, board, state, move); err != nil {
			log.Error("failed to write move cache", "error", err)
		}

		return move
	}
}

func validCachedMove(board entity.Board, move int) bool {
	return move >= 0 && move < entity.BoardSize && board[move] == entity.EmptyCell
}

func validateBoard(board entity.Board) error {
	for i, cell := range board {
		if !cell.IsValid() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, cell)
		}
	}

	return nil
}

func validateState(board entity.Board, state entity.SearchState) error {
	if err := validateBoard(board); err != nil {
		return err
	}

	if state.Player != entity.EmptyCell && !state.Player.IsPlayer() {
		return fmt.Errorf("%w: unknown player %q", apperror.ErrIllegalMove, state.Player)
	}

	if tictactoe.Evaluate(board).IsFinished() {
		return apperror.ErrGameFinished
	}

	if len(board.EmptyCells()) == 0 {
		return apperror.ErrNoAvailableMoves
	}

	if !state.Variant.IsBounded() {
		return nil
	}

	for _, player := range []entity.Cell{entity.PlayerX, entity.PlayerO} {
		if err := validateHistory(board, player, state.History(player)); err != nil {
			return err
		}
	}

	return nil
}

// validateHistory - the history must list exactly the player's live pieces.
func validateHistory(board entity.Board, player entity.Cell, history entity.MoveHistory) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown player %q", apperror.ErrIllegalMove, player)
	}

	if len(history) > entity.MaxLivePieces {
		return fmt.Errorf("%w: %s has %d entries", apperror.ErrInvalidHistory, player, len(history))
	}

	seen := make(map[int]struct{}, len(history))
	for _, cell := range history {
		if cell < 0 || cell >= entity.BoardSize || board[cell] != player {
			return fmt.Errorf("%w: %s does not hold cell %d", apperror.ErrInvalidHistory, player, cell)
		}

		if _, ok := seen[cell]; ok {
			return fmt.Errorf("%w: %s lists cell %d twice", apperror.ErrInvalidHistory, player, cell)
		}
		seen[cell] = struct{}{}
	}

	if board.Count(player) != len(history) {
		return fmt.Errorf("%w: %s has %d pieces but %d entries", apperror.ErrInvalidHistory, player, board.Count(player), len(history))
	}

	return nil
}
