package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the number of cells on a 3x3 board.
const BoardSize = 9

var (
	ErrMissingCell = errors.New("board is missing a cell")
	ErrUnknownCell = errors.New("board has an unknown cell")
)

// Board is a row-major 3x3 grid, index = row*3 + col.
type Board [BoardSize]Tile

func NewBoard() Board {
	return Board{}
}

// IsValidCell reports whether index addresses a cell of the board.
func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

// Place returns a copy of the board with cell set to tile.
func (that Board) Place(cell int, tile Tile) Board {
	that[cell] = tile
	return that
}

// Count returns how many cells hold tile.
func (that Board) Count(tile Tile) int {
	count := 0
	for _, cell := range that {
		if cell == tile {
			count++
		}
	}
	return count
}

// Key is a compact, stable encoding of the board used for cache keys, e.g. "XO-------".
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == Empty {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// MarshalJSON encodes the board as an object keyed by the cell index, "0".."8".
func (that Board) MarshalJSON() ([]byte, error) {
	cells := make(map[string]Tile, BoardSize)
	for i, cell := range that {
		cells[strconv.Itoa(i)] = cell
	}

	return json.Marshal(cells)
}

// UnmarshalJSON requires every cell "0".."8" to be present and nothing else.
func (that *Board) UnmarshalJSON(data []byte) error {
	var cells map[string]Tile
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("could not decode board: %w", err)
	}

	var board Board
	for i := range board {
		cell, ok := cells[strconv.Itoa(i)]
		if !ok {
			return fmt.Errorf("%w: %d", ErrMissingCell, i)
		}
		board[i] = cell
	}

	if len(cells) != BoardSize {
		for key := range cells {
			if index, err := strconv.Atoi(key); err != nil || !IsValidCell(index) || key != strconv.Itoa(index) {
				return fmt.Errorf("%w: %q", ErrUnknownCell, key)
			}
		}
	}

	*that = board

	return nil
}
