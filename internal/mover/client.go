package mover

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
)

const (
	defaultTimeout       = 5 * time.Second
	defaultRetryInterval = 200 * time.Millisecond
	maxResponseBytes     = 1 << 16
)

type Options struct {
	// URL is the base address of the mover, POST /move is appended.
	URL string
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// Retries is how many times a transport failure is retried.
	Retries int
	// RetryInterval is the first backoff delay.
	RetryInterval time.Duration
}

// Client asks a remote mover for the next move.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client

	endpoint      string
	timeout       time.Duration
	retries       uint64
	retryInterval time.Duration
}

func NewClient(logger *slog.Logger, httpClient *http.Client, opts Options) (*Client, error) {
	endpoint, err := url.JoinPath(opts.URL, "move")
	if err != nil {
		return nil, fmt.Errorf("invalid mover url %q: %w", opts.URL, err)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retryInterval := opts.RetryInterval
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}

	retries := uint64(0)
	if opts.Retries > 0 {
		retries = uint64(opts.Retries)
	}

	return &Client{
		logger:        logger.With("component", "mover-client"),
		httpClient:    httpClient,
		endpoint:      endpoint,
		timeout:       timeout,
		retries:       retries,
		retryInterval: retryInterval,
	}, nil
}

// RequestMove sends the board and returns the validated cell the mover chose.
func (that *Client) RequestMove(ctx context.Context, board entity.Board) (int, error) {
	body, err := json.Marshal(board)
	if err != nil {
		return 0, fmt.Errorf("could not marshal board: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = that.retryInterval

	attempts := 0
	cell, err := backoff.RetryWithData(func() (int, error) {
		attempts++
		return that.attempt(ctx, body, board)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, that.retries), ctx))
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, apperror.ErrTransport) {
			err = fmt.Errorf("%w: %w", apperror.ErrTransport, err)
		}
		that.logger.Warn("move request failed", "board", board.Key(), "attempts", attempts, "error", err)
		return 0, err
	}

	return cell, nil
}

func (that *Client) attempt(ctx context.Context, body []byte, board entity.Board) (int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, that.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("could not build move request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := that.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", apperror.ErrTransport, err)
		if ctx.Err() != nil {
			return 0, backoff.Permanent(err)
		}
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return 0, fmt.Errorf("%w: %w: %d", apperror.ErrTransport, apperror.ErrUnexpectedStatus, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, backoff.Permanent(fmt.Errorf("%w: %d", apperror.ErrUnexpectedStatus, resp.StatusCode))
	}

	var response entity.MoveResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&response); err != nil {
		return 0, backoff.Permanent(fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err))
	}

	cell, err := ValidateMove(board, &response)
	if err != nil {
		return 0, backoff.Permanent(err)
	}

	return cell, nil
}
