package tictactoe

import "github.com/rocketscienceinc/tictactoe-mover/internal/entity"

// winningLines are the (start, increment) pairs of the 3 rows, 3 columns and 2 diagonals.
var winningLines = [8][2]int{
	{0, 1}, {3, 1}, {6, 1},
	{0, 3}, {1, 3}, {2, 3},
	{0, 4}, {2, 2},
}

// CheckThreeInARow reports whether the cells start, start+increment and start+2*increment
// hold the same non-empty tile. The caller guarantees the line stays on the board.
func CheckThreeInARow(board entity.Board, start, increment int) bool {
	first := board[start]

	return first != entity.Empty &&
		first == board[start+increment] &&
		first == board[start+2*increment]
}

// CheckForWinner reports whether any winning line is filled by one mark.
// It does not say which mark; the caller knows who just moved.
func CheckForWinner(board entity.Board) bool {
	for _, line := range winningLines {
		if CheckThreeInARow(board, line[0], line[1]) {
			return true
		}
	}

	return false
}

// IsDraw reports whether no cell is empty. Check CheckForWinner first: a full board
// with a completed line is a win.
func IsDraw(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.Empty {
			return false
		}
	}

	return true
}

// EmptyCells returns the indices of the empty cells in ascending order.
func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, entity.BoardSize)
	for i, cell := range board {
		if cell == entity.Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// IsTerminal reports whether no further move can be played.
func IsTerminal(board entity.Board) bool {
	return CheckForWinner(board) || IsDraw(board)
}

// NextPlayer derives whose turn it is from the marks on the board: X moves first.
func NextPlayer(board entity.Board) entity.Tile {
	if board.Count(entity.X) > board.Count(entity.O) {
		return entity.O
	}

	return entity.X
}

// Result is the outcome of a move.
type Result struct {
	Winner entity.Tile
	Draw   bool
}

// Finished reports whether the game ended with the move.
func (that Result) Finished() bool {
	return that.Winner != entity.Empty || that.Draw
}

// Evaluate checks the board right after lastMover played. A completed line is attributed to
// lastMover; otherwise a full board is a draw.
func Evaluate(board entity.Board, lastMover entity.Tile) Result {
	if CheckForWinner(board) {
		return Result{Winner: lastMover}
	}

	return Result{Draw: IsDraw(board)}
}
