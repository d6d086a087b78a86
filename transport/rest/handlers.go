package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var (
	errInvalidBody  = errors.New("invalid request body")
	errMissingBoard = fmt.Errorf("%w: board is required", apperror.ErrInvalidBoard)
	errBoardSize    = fmt.Errorf("%w: board must hold exactly %d cells", apperror.ErrInvalidBoard, entity.BoardSize)
)

type engineUseCase interface {
	Evaluate(ctx context.Context, board entity.Board) (entity.Outcome, error)
	Place(ctx context.Context, board entity.Board, variant entity.Variant, history entity.MoveHistory, index int, player entity.Cell) (*usecase.PlaceResult, error)
	ChooseMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty, state entity.SearchState) (int, error)
	Comment(ctx context.Context, board entity.Board, engine entity.Cell) (string, error)
}

type engineHandler struct {
	logger *slog.Logger

	engine            engineUseCase
	defaultDifficulty entity.Difficulty
}

func newEngineHandler(logger *slog.Logger, engine engineUseCase, defaultDifficulty entity.Difficulty) *engineHandler {
	return &engineHandler{
		logger:            logger.With("component", "rest"),
		engine:            engine,
		defaultDifficulty: defaultDifficulty,
	}
}

func (that *engineHandler) Evaluate(ctx echo.Context) error {
	var req evaluateRequest
	if err := bind(ctx, &req); err != nil {
		return that.sendError(ctx, "Evaluate", err)
	}

	outcome, err := that.engine.Evaluate(ctx.Request().Context(), *req.Board)
	if err != nil {
		return that.sendError(ctx, "Evaluate", err)
	}

	return ctx.JSON(http.StatusOK, outcomeResponse{Outcome: outcome})
}

func (that *engineHandler) Place(ctx echo.Context) error {
	var req placeRequest
	if err := bind(ctx, &req); err != nil {
		return that.sendError(ctx, "Place", err)
	}

	if req.Index == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "index is required"})
	}

	variant, err := entity.ParseVariant(req.Variant)
	if err != nil {
		return that.sendError(ctx, "Place", err)
	}

	result, err := that.engine.Place(ctx.Request().Context(), *req.Board, variant, req.History, *req.Index, req.Player)
	if err != nil {
		return that.sendError(ctx, "Place", err)
	}

	resp := placeResponse{
		Board:   result.Board,
		History: result.History,
		Outcome: result.Outcome,
	}
	if result.Evicted != tictactoe.NoEviction {
		evicted := result.Evicted
		resp.Evicted = &evicted
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (that *engineHandler) Move(ctx echo.Context) error {
	var req moveRequest
	if err := bind(ctx, &req); err != nil {
		return that.sendError(ctx, "Move", err)
	}

	difficulty := that.defaultDifficulty
	if req.Difficulty != "" {
		parsed, err := entity.ParseDifficulty(req.Difficulty)
		if err != nil {
			return that.sendError(ctx, "Move", err)
		}
		difficulty = parsed
	}

	variant, err := entity.ParseVariant(req.Variant)
	if err != nil {
		return that.sendError(ctx, "Move", err)
	}

	state := entity.SearchState{
		Variant:  variant,
		Player:   req.Player,
		XHistory: req.XHistory,
		OHistory: req.OHistory,
	}

	move, err := that.engine.ChooseMove(ctx.Request().Context(), *req.Board, difficulty, state)
	if err != nil {
		return that.sendError(ctx, "Move", err)
	}

	return ctx.JSON(http.StatusOK, moveResponse{Index: move})
}

func (that *engineHandler) Commentary(ctx echo.Context) error {
	var req commentaryRequest
	if err := bind(ctx, &req); err != nil {
		return that.sendError(ctx, "Commentary", err)
	}

	text, err := that.engine.Comment(ctx.Request().Context(), *req.Board, req.Player)
	if err != nil {
		return that.sendError(ctx, "Commentary", err)
	}

	return ctx.JSON(http.StatusOK, commentaryResponse{Commentary: text})
}

// bind - decodes the body and requires a nine-cell board.
func bind(ctx echo.Context, req boardRequest) error {
	if err := ctx.Bind(req); err != nil {
		if errors.Is(err, apperror.ErrInvalidBoard) {
			return errBoardSize
		}

		return errInvalidBody
	}

	if req.board() == nil {
		return errMissingBoard
	}

	return nil
}

func (that *engineHandler) sendError(ctx echo.Context, method string, err error) error {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		return ctx.JSON(status, errorResponse{Error: "Internal Server Error"})
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidHistory),
		errors.Is(err, apperror.ErrUnknownDifficulty),
		errors.Is(err, apperror.ErrUnknownVariant):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNoAvailableMoves),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
