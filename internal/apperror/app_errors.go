package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrNoEmptyCells = errors.New("no empty cells left")
	ErrMoveInFlight = errors.New("a move request is already in flight")
	ErrNotMoverTurn = errors.New("it's not the mover's turn")

	// move exchange errors.
	ErrProtocolViolation = errors.New("mover chose an invalid cell")
	ErrMalformedResponse = errors.New("malformed mover response")
	ErrTransport         = errors.New("mover request failed")
	ErrUnexpectedStatus  = errors.New("unexpected mover response status")
)
