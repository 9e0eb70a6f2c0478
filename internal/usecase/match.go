package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mover/internal/tictactoe"
)

var (
	ErrUnknownMode   = errors.New("unknown game mode")
	ErrMoverRequired = errors.New("remote mode needs a mover")
)

// In remote mode the human plays X and the mover plays O.
const (
	humanMark = entity.X
	moverMark = entity.O
)

type moverClient interface {
	RequestMove(ctx context.Context, board entity.Board) (int, error)
}

// Match is one game session. In remote mode no input is accepted while the mover is being asked.
type Match struct {
	logger *slog.Logger
	mover  moverClient

	mu       sync.Mutex
	game     *entity.Game
	inFlight bool
}

func NewMatch(logger *slog.Logger, mode string, mover moverClient) (*Match, error) {
	switch mode {
	case entity.LocalMode:
	case entity.RemoteMode:
		if mover == nil {
			return nil, ErrMoverRequired
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	game := tictactoe.NewGame(uuid.NewString(), mode)

	return &Match{
		logger: logger.With("component", "match", "gameID", game.ID, "mode", mode),
		mover:  mover,
		game:   game,
	}, nil
}

// Game returns a snapshot of the current state.
func (that *Match) Game() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.game
}

// Play places the mark of the player to move on cell. In remote mode the mover answers
// before Play returns. A failed mover request leaves the human move on the board with the
// turn still owed by the mover; see RetryMover.
func (that *Match) Play(ctx context.Context, cell int) (entity.Game, error) {
	board, askMover, err := that.playHuman(cell)
	if err != nil {
		return that.Game(), err
	}

	if !askMover {
		return that.Game(), nil
	}

	return that.completeMoverTurn(ctx, board)
}

// RetryMover asks the mover again after a failed request.
func (that *Match) RetryMover(ctx context.Context) (entity.Game, error) {
	board, err := that.beginMoverTurn()
	if err != nil {
		return that.Game(), err
	}

	return that.completeMoverTurn(ctx, board)
}

// Restart resets the board; X moves first again.
func (that *Match) Restart() (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.inFlight {
		return *that.game, apperror.ErrMoveInFlight
	}

	tictactoe.Restart(that.game)
	that.logger.Debug("game restarted")

	return *that.game, nil
}

func (that *Match) playHuman(cell int) (entity.Board, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.inFlight {
		return entity.Board{}, false, apperror.ErrMoveInFlight
	}

	player := that.game.Turn
	if that.game.IsRemote() && player != humanMark {
		return entity.Board{}, false, apperror.ErrNotYourTurn
	}

	if err := tictactoe.MakeTurn(that.game, player, cell); err != nil {
		return entity.Board{}, false, fmt.Errorf("failed make turn: %w", err)
	}

	if !that.game.IsRemote() || that.game.IsFinished() {
		return entity.Board{}, false, nil
	}

	that.inFlight = true

	return that.game.Board, true, nil
}

func (that *Match) beginMoverTurn() (entity.Board, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case that.inFlight:
		return entity.Board{}, apperror.ErrMoveInFlight
	case that.game.IsFinished():
		return entity.Board{}, apperror.ErrGameFinished
	case !that.game.IsRemote(), that.game.Turn != moverMark:
		return entity.Board{}, apperror.ErrNotMoverTurn
	}

	that.inFlight = true

	return that.game.Board, nil
}

func (that *Match) completeMoverTurn(ctx context.Context, board entity.Board) (entity.Game, error) {
	cell, moveErr := that.mover.RequestMove(ctx, board)

	that.mu.Lock()
	defer that.mu.Unlock()

	that.inFlight = false

	if moveErr != nil {
		that.logger.Warn("mover did not answer with a move", "error", moveErr)
		return *that.game, fmt.Errorf("failed to get mover turn: %w", moveErr)
	}

	if err := tictactoe.MakeTurn(that.game, moverMark, cell); err != nil {
		return *that.game, fmt.Errorf("failed to apply mover turn: %w", err)
	}

	if that.game.IsFinished() {
		that.logger.Info("game finished", "winner", that.game.Winner.String(), "draw", that.game.Draw)
	}

	return *that.game, nil
}
