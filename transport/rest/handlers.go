package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

// maxBodyBytes bounds a move request; a full board is well under 100 bytes.
const maxBodyBytes = 1 << 12

type strategyService interface {
	ChooseMove(ctx context.Context, board entity.Board) (int, map[int]int, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type moveHandler struct {
	logger   *slog.Logger
	strategy strategyService
}

func (that *moveHandler) move(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "move")

	var board entity.MoveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&board); err != nil {
		log.Debug("rejected move request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	cell, scores, err := that.strategy.ChooseMove(r.Context(), board)
	switch {
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNoEmptyCells):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	case err != nil:
		log.Error("failed to choose move", "board", board.Key(), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, entity.NewMoveResponse(cell, scores, board))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
