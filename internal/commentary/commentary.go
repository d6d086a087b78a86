package commentary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	OfflineMessage = "SYSTEM OFFLINE: NO API KEY"
	FailureMessage = "ICE detected in neural link. Commentary offline."

	SystemPrompt = `You are a polite and helpful AI playing Tic-Tac-Toe against a human.
Each message says which mark is yours.
Provide very short, friendly comments about the game state (max 10 words).`
)

var errEmptyCommentary = errors.New("generator returned empty commentary")

// Generator turns a prompt into a line of text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	logger    *slog.Logger
	generator Generator
	timeout   time.Duration
}

// NewService - a nil generator means no credential is configured.
func NewService(logger *slog.Logger, generator Generator, timeout time.Duration) *Service {
	return &Service{
		logger:    logger.With("component", "commentary"),
		generator: generator,
		timeout:   timeout,
	}
}

// Comment - never fails: a missing generator or a failed call yields a fixed message.
// engine is the mark the AI plays; empty means PlayerO.
func (that *Service) Comment(ctx context.Context, board entity.Board, engine entity.Cell) string {
	log := that.logger.With("method", "Comment")

	if that.generator == nil {
		return OfflineMessage
	}

	if that.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.timeout)
		defer cancel()
	}

	text, err := that.generate(ctx, BuildPrompt(board, tictactoe.Evaluate(board), engine))
	if err != nil {
		log.Error("failed to generate commentary", "error", err)
		return FailureMessage
	}

	return text
}

func (that *Service) generate(ctx context.Context, prompt string) (string, error) {
	text, err := that.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyCommentary
	}

	return text, nil
}

// BuildPrompt - describes every cell and asks for a reaction fitting the outcome.
func BuildPrompt(board entity.Board, outcome entity.Outcome, engine entity.Cell) string {
	if !engine.IsPlayer() {
		engine = entity.PlayerO
	}

	cells := make([]string, 0, entity.BoardSize)
	for i, cell := range board {
		mark := string(cell)
		if cell == entity.EmptyCell {
			mark = "empty"
		}
		cells = append(cells, fmt.Sprintf("%d:%s", i, mark))
	}

	prompt := fmt.Sprintf("You play %s, the human plays %s. Board state: %s. ", engine, engine.Opponent(), strings.Join(cells, ", "))

	switch {
	case outcome.IsWin() && outcome.Winner != engine:
		return prompt + "The human somehow won. Act shocked and annoyed."
	case outcome.IsWin():
		return prompt + "You won. Be arrogant and dismissive."
	case outcome.IsDraw():
		return prompt + "It's a draw. Call it a waste of processing power."
	default:
		return prompt + "Game in progress. React to the latest move."
	}
}

// ShouldComment - comment when the game ends and after every full round.
func ShouldComment(board entity.Board) bool {
	if tictactoe.Evaluate(board).IsFinished() {
		return true
	}

	pieces := entity.BoardSize - len(board.EmptyCells())

	return pieces > 0 && pieces%2 == 0
}
