package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMoveNotCached = errors.New("move not cached")

const moveKeyPrefix = "move:"

type MoveCache interface {
	Get(ctx context.Context, board entity.Board, state entity.SearchState) (int, error)
	Set(ctx context.Context, board entity.Board, state entity.SearchState, move int) error
}

type redisMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveCache - stores search results in Redis. A zero ttl keeps entries forever.
func NewMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &redisMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisMoveCache) Get(ctx context.Context, board entity.Board, state entity.SearchState) (int, error) {
	response, err := that.client.Get(ctx, MoveKey(board, state)).Result()

	if errors.Is(err, redis.Nil) {
		return 0, ErrMoveNotCached
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get cached move: %w", err)
	}

	move, err := strconv.Atoi(response)
	if err != nil {
		return 0, fmt.Errorf("failed to parse cached move %q: %w", response, err)
	}

	return move, nil
}

func (that *redisMoveCache) Set(ctx context.Context, board entity.Board, state entity.SearchState, move int) error {
	if err := that.client.Set(ctx, MoveKey(board, state), strconv.Itoa(move), that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached move: %w", err)
	}

	return nil
}

// MoveKey - builds the cache key. Histories only matter in the bounded variant.
func MoveKey(board entity.Board, state entity.SearchState) string {
	variant := state.Variant
	if variant == "" {
		variant = entity.ClassicVariant
	}

	var sb strings.Builder
	sb.WriteString(moveKeyPrefix)
	sb.WriteString(string(variant))
	sb.WriteByte(':')
	sb.WriteString(string(state.Maximizer()))
	sb.WriteByte(':')
	sb.WriteString(board.String())

	if variant.IsBounded() {
		sb.WriteString(":x=")
		writeHistory(&sb, state.XHistory)
		sb.WriteString(":o=")
		writeHistory(&sb, state.OHistory)
	}

	return sb.String()
}

func writeHistory(sb *strings.Builder, history entity.MoveHistory) {
	for _, cell := range history {
		sb.WriteString(strconv.Itoa(cell))
	}
}
