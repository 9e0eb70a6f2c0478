package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mover/internal/tictactoe"
)

type StrategyService interface {
	ChooseMove(ctx context.Context, board entity.Board) (int, map[int]int, error)
}

type scoreCache interface {
	Get(ctx context.Context, board entity.Board) (map[int]int, bool)
	Set(ctx context.Context, board entity.Board, scores map[int]int)
}

type strategyService struct {
	logger *slog.Logger
	cache  scoreCache
}

func NewStrategyService(logger *slog.Logger, cache scoreCache) StrategyService {
	return &strategyService{
		logger: logger.With("component", "strategy"),
		cache:  cache,
	}
}

// ChooseMove picks a cell for the player whose turn it is on board.
func (that *strategyService) ChooseMove(ctx context.Context, board entity.Board) (int, map[int]int, error) {
	if tictactoe.CheckForWinner(board) {
		return 0, nil, apperror.ErrGameFinished
	}

	if tictactoe.IsDraw(board) {
		return 0, nil, apperror.ErrNoEmptyCells
	}

	scores, ok := that.cache.Get(ctx, board)
	if !ok {
		mover := tictactoe.NextPlayer(board)
		scores = ScoreMoves(board, mover)
		that.cache.Set(ctx, board, scores)
	}

	cell, err := BestMove(scores)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to choose move: %w", err)
	}

	that.logger.Debug("move chosen", "board", board.Key(), "cell", cell, "cached", ok)

	return cell, scores, nil
}

// ScoreMoves rates every empty cell for mover. Each ordering of the remaining empty cells is
// played out with mover and its opponent alternating; a line completed on turn t of n adds
// n-t to the first cell of the ordering if mover completed it and subtracts it otherwise.
// Orderings that share a finished prefix are counted together rather than enumerated.
func ScoreMoves(board entity.Board, mover entity.Tile) map[int]int {
	emptyCells := tictactoe.EmptyCells(board)
	total := len(emptyCells)
	results := make([]int, total)

	var wg sync.WaitGroup
	for i, cell := range emptyCells {
		wg.Add(1)
		go func(i, cell int) {
			defer wg.Done()
			results[i] = playOut(board.Place(cell, mover), mover, mover, 1, total)
		}(i, cell)
	}
	wg.Wait()

	scores := make(map[int]int, total)
	for i, cell := range emptyCells {
		scores[cell] = results[i]
	}

	return scores
}

func playOut(board entity.Board, lastMover, mover entity.Tile, turns, total int) int {
	remaining := total - turns

	if tictactoe.CheckForWinner(board) {
		weight := remaining * factorial(remaining)
		if lastMover == mover {
			return weight
		}
		return -weight
	}

	if remaining == 0 {
		return 0
	}

	next := lastMover.Opponent()
	score := 0
	for _, cell := range tictactoe.EmptyCells(board) {
		score += playOut(board.Place(cell, next), next, mover, turns+1, total)
	}

	return score
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// BestMove returns the cell with the highest score, the lowest index on a tie.
func BestMove(scores map[int]int) (int, error) {
	if len(scores) == 0 {
		return 0, apperror.ErrNoEmptyCells
	}

	best, bestScore := -1, 0
	for cell, score := range scores {
		if best == -1 || score > bestScore || (score == bestScore && cell < best) {
			best, bestScore = cell, score
		}
	}

	return best, nil
}
