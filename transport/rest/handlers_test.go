package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mover/internal/repository"
	"github.com/rocketscienceinc/tictactoe-mover/internal/service"
)

var errSomeError = errors.New("some error")

type mockStrategy struct {
	mock.Mock
}

func (that *mockStrategy) ChooseMove(ctx context.Context, board entity.Board) (int, map[int]int, error) {
	args := that.Called(ctx, board)
	scores, _ := args.Get(1).(map[int]int)
	return args.Int(0), scores, args.Error(2)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := newTestLogger()
	cache, err := repository.NewScoreCache(logger, 16, nil)
	require.NoError(t, err)

	return NewRouter(logger, service.NewStrategyService(logger, cache), nil)
}

func postMove(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/move", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestPing(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestMove(t *testing.T) {
	t.Run("Returns an empty cell for the opening reply", func(t *testing.T) {
		// Given: X took the corner
		body := `{"0":"X","1":"","2":"","3":"","4":"","5":"","6":"","7":"","8":""}`

		// When: the mover is asked for a move
		rr := postMove(newTestRouter(t), body)

		// Then: it answers with the center cell and the full score table
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var response entity.MoveResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		require.NotNil(t, response.TileIndex)
		assert.Equal(t, 4, *response.TileIndex)
		assert.Len(t, response.Scores, 8)
		require.NotNil(t, response.Board)
		assert.Equal(t, entity.X, response.Board[0])
	})

	t.Run("Takes the winning cell", func(t *testing.T) {
		body := `{"0":"O","1":"O","2":"","3":"X","4":"X","5":"","6":"X","7":"","8":""}`

		rr := postMove(newTestRouter(t), body)

		require.Equal(t, http.StatusOK, rr.Code)
		var response entity.MoveResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 2, *response.TileIndex)
	})

	t.Run("Bad request on malformed JSON", func(t *testing.T) {
		rr := postMove(newTestRouter(t), `{"0":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bad request on a partial board", func(t *testing.T) {
		rr := postMove(newTestRouter(t), `{"0":"X"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "missing a cell")
	})

	t.Run("Bad request on an invalid tile", func(t *testing.T) {
		rr := postMove(newTestRouter(t), `{"0":"Z","1":"","2":"","3":"","4":"","5":"","6":"","7":"","8":""}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Conflict on a board with a winner", func(t *testing.T) {
		rr := postMove(newTestRouter(t), `{"0":"X","1":"X","2":"X","3":"O","4":"O","5":"","6":"","7":"","8":""}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Conflict on a full board", func(t *testing.T) {
		rr := postMove(newTestRouter(t), `{"0":"X","1":"O","2":"X","3":"O","4":"X","5":"O","6":"O","7":"X","8":"O"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Unsupported media type without JSON content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/move", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()

		newTestRouter(t).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("Internal error from the strategy", func(t *testing.T) {
		// Given: a strategy that fails unexpectedly
		strategy := &mockStrategy{}
		strategy.On("ChooseMove", mock.Anything, entity.NewBoard()).Return(0, nil, errSomeError).Once()
		router := NewRouter(newTestLogger(), strategy, []string{"http://localhost:3000"})

		// When: the mover is asked for a move
		rr := postMove(router, `{"0":"","1":"","2":"","3":"","4":"","5":"","6":"","7":"","8":""}`)

		// Then: the error detail is not leaked
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), errSomeError.Error())
		strategy.AssertExpectations(t)
	})
}

func TestMove_CORS(t *testing.T) {
	// Given: a browser preflight from the game page
	req := httptest.NewRequest(http.MethodOptions, "/move", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()

	// When: it reaches the router
	NewRouter(newTestLogger(), &mockStrategy{}, []string{"http://localhost:3000"}).ServeHTTP(rr, req)

	// Then: the origin is allowed
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
