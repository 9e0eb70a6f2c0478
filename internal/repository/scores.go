package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

var ErrScoresNotFound = errors.New("scores not found")

type ScoreRepository interface {
	Get(ctx context.Context, board entity.Board) (map[int]int, error)
	Set(ctx context.Context, board entity.Board, scores map[int]int) error
}

type dbScores struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreRepository stores move scores in redis. A zero ttl keeps them forever.
func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScores{
		client: client,
		ttl:    ttl,
	}
}

func scoresKey(board entity.Board) string {
	return "scores:" + board.Key()
}

func (that *dbScores) Set(ctx context.Context, board entity.Board, scores map[int]int) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("could not marshal scores: %w", err)
	}

	if err = that.client.Set(ctx, scoresKey(board), scoresJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}

func (that *dbScores) Get(ctx context.Context, board entity.Board) (map[int]int, error) {
	response, err := that.client.Get(ctx, scoresKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrScoresNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	var scores map[int]int
	if err = json.Unmarshal([]byte(response), &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	return scores, nil
}
