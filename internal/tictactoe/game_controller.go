package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

// NewGame returns a fresh game: an empty board with X to move.
func NewGame(id, mode string) *entity.Game {
	return &entity.Game{
		ID:     id,
		Board:  entity.NewBoard(),
		Turn:   entity.X,
		Status: entity.StatusOngoing,
		Mode:   mode,
	}
}

// Restart clears the board and hands the first move back to X.
func Restart(gameInstance *entity.Game) {
	gameInstance.Board = entity.NewBoard()
	gameInstance.Turn = entity.X
	gameInstance.Winner = entity.Empty
	gameInstance.Draw = false
	gameInstance.Status = entity.StatusOngoing
}

func MakeTurn(gameInstance *entity.Game, player entity.Tile, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = player
	updateGameStatus(gameInstance, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player entity.Tile, cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board[cell] != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after player moved.
func updateGameStatus(gameInstance *entity.Game, player entity.Tile) {
	result := Evaluate(gameInstance.Board, player)
	if !result.Finished() {
		gameInstance.Turn = player.Opponent()
		return
	}

	gameInstance.Winner = result.Winner
	gameInstance.Draw = result.Draw
	gameInstance.Status = entity.StatusFinished
	gameInstance.Turn = entity.Empty
}
