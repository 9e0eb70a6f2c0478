package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

const (
	e = entity.Empty
	x = entity.X
	o = entity.O
)

func TestCheckForWinner_EveryLine(t *testing.T) {
	lines := [][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}

	for _, mark := range []entity.Tile{x, o} {
		for _, line := range lines {
			// Given: a board whose only marks fill one winning line
			board := entity.NewBoard()
			for _, cell := range line {
				board[cell] = mark
			}

			// Then: a winner is detected
			assert.True(t, CheckForWinner(board), "line %v with %s", line, mark)
		}
	}
}

func TestCheckForWinner_LineWithOtherMarksElsewhere(t *testing.T) {
	// Given: the middle column is O and other cells hold mixed marks
	board := entity.Board{
		x, o, x,
		e, o, x,
		x, o, e,
	}

	// Then: a winner is detected
	assert.True(t, CheckForWinner(board))
}

func TestCheckForWinner_Scenarios(t *testing.T) {
	t.Run("Top row", func(t *testing.T) {
		board := entity.Board{x, x, x, e, e, e, e, e, e}

		assert.True(t, CheckForWinner(board))
	})

	t.Run("Diagonal", func(t *testing.T) {
		board := entity.Board{x, e, e, e, x, e, e, e, x}

		assert.True(t, CheckForWinner(board))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		assert.False(t, CheckForWinner(board))
		assert.True(t, IsDraw(board))
	})

	t.Run("Empty board", func(t *testing.T) {
		board := entity.NewBoard()

		assert.False(t, CheckForWinner(board))
		assert.False(t, IsDraw(board))
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, EmptyCells(board))
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		board := entity.Board{x, x, o, e, e, e, e, e, e}

		assert.False(t, CheckForWinner(board))
	})
}

func TestCheckThreeInARow(t *testing.T) {
	board := entity.Board{
		o, x, e,
		o, x, e,
		o, e, e,
	}

	assert.True(t, CheckThreeInARow(board, 0, 3))
	assert.False(t, CheckThreeInARow(board, 1, 3))
	assert.False(t, CheckThreeInARow(board, 2, 3))
}

func TestIsDraw_OneEmptyCell(t *testing.T) {
	// Given: a board with a winning line and one empty cell
	board := entity.Board{
		x, x, x,
		o, o, x,
		o, e, o,
	}

	// Then: it is never a draw
	assert.False(t, IsDraw(board))
}

func TestChecksAreIdempotent(t *testing.T) {
	board := entity.Board{x, o, x, o, x, o, o, x, o}
	snapshot := board

	assert.Equal(t, CheckForWinner(board), CheckForWinner(board))
	assert.Equal(t, IsDraw(board), IsDraw(board))
	assert.Equal(t, snapshot, board)
}

func TestEmptyCells(t *testing.T) {
	board := entity.Board{x, e, o, e, x, e, e, e, o}

	assert.Equal(t, []int{1, 3, 5, 6, 7}, EmptyCells(board))
	assert.Empty(t, EmptyCells(entity.Board{x, o, x, o, x, o, o, x, o}))
}

func TestNextPlayer(t *testing.T) {
	assert.Equal(t, x, NextPlayer(entity.NewBoard()))
	assert.Equal(t, o, NextPlayer(entity.Board{x, e, e, e, e, e, e, e, e}))
	assert.Equal(t, x, NextPlayer(entity.Board{x, o, e, e, e, e, e, e, e}))
}

func TestEvaluate(t *testing.T) {
	t.Run("Win is attributed to the last mover", func(t *testing.T) {
		board := entity.Board{o, o, o, x, x, e, x, e, e}

		result := Evaluate(board, o)

		assert.Equal(t, Result{Winner: o}, result)
		assert.True(t, result.Finished())
	})

	t.Run("Full board with a line is a win, not a draw", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, x, o, x, o}

		assert.Equal(t, Result{Winner: x}, Evaluate(board, x))
	})

	t.Run("Draw", func(t *testing.T) {
		board := entity.Board{x, o, x, o, x, o, o, x, o}

		assert.Equal(t, Result{Draw: true}, Evaluate(board, o))
	})

	t.Run("Ongoing", func(t *testing.T) {
		result := Evaluate(entity.Board{x, e, e, e, e, e, e, e, e}, x)

		assert.False(t, result.Finished())
	})
}
