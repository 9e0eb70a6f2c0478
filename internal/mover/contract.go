package mover

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

// ValidateMove checks a mover's answer against the board that was sent.
func ValidateMove(board entity.Board, response *entity.MoveResponse) (int, error) {
	if response == nil || response.TileIndex == nil {
		return 0, fmt.Errorf("%w: tileIndex is missing", apperror.ErrMalformedResponse)
	}

	cell := *response.TileIndex
	if !entity.IsValidCell(cell) {
		return 0, fmt.Errorf("%w: cell %d is out of range", apperror.ErrProtocolViolation, cell)
	}

	if board[cell] != entity.Empty {
		return 0, fmt.Errorf("%w: cell %d is occupied", apperror.ErrProtocolViolation, cell)
	}

	return cell, nil
}
