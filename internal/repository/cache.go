package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

type scoreRepo interface {
	Get(ctx context.Context, board entity.Board) (map[int]int, error)
	Set(ctx context.Context, board entity.Board, scores map[int]int) error
}

// ScoreCache keeps recently scored boards in memory in front of an optional shared store.
// Store failures are logged and treated as misses.
type ScoreCache struct {
	logger *slog.Logger

	local  *lru.Cache[string, map[int]int]
	remote scoreRepo
}

// NewScoreCache builds a cache holding up to size boards. remote may be nil.
func NewScoreCache(logger *slog.Logger, size int, remote scoreRepo) (*ScoreCache, error) {
	local, err := lru.New[string, map[int]int](size)
	if err != nil {
		return nil, fmt.Errorf("could not create lru cache: %w", err)
	}

	return &ScoreCache{
		logger: logger.With("component", "score-cache"),
		local:  local,
		remote: remote,
	}, nil
}

func (that *ScoreCache) Get(ctx context.Context, board entity.Board) (map[int]int, bool) {
	key := board.Key()

	if scores, ok := that.local.Get(key); ok {
		return maps.Clone(scores), true
	}

	if that.remote == nil {
		return nil, false
	}

	scores, err := that.remote.Get(ctx, board)
	if err != nil {
		if !errors.Is(err, ErrScoresNotFound) {
			that.logger.Warn("failed to read scores from store", "board", key, "error", err)
		}
		return nil, false
	}

	that.local.Add(key, scores)

	return maps.Clone(scores), true
}

func (that *ScoreCache) Set(ctx context.Context, board entity.Board, scores map[int]int) {
	that.local.Add(board.Key(), maps.Clone(scores))

	if that.remote == nil {
		return
	}

	if err := that.remote.Set(ctx, board, scores); err != nil {
		that.logger.Warn("failed to write scores to store", "board", board.Key(), "error", err)
	}
}

// Len returns how many boards are held in memory.
func (that *ScoreCache) Len() int {
	return that.local.Len()
}
