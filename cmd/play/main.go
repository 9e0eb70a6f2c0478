// Command play runs a tic-tac-toe session in the terminal, either two players on one
// keyboard or against the move server.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-mover/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mover/internal/config"
	"github.com/rocketscienceinc/tictactoe-mover/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mover/internal/mover"
	"github.com/rocketscienceinc/tictactoe-mover/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	mode := flag.String("mode", entity.RemoteMode, "local or remote")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err = run(context.Background(), logger, conf, *mode, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, mode string, in io.Reader, out io.Writer) error {
	var moverClient *mover.Client
	if mode == entity.RemoteMode {
		client, err := mover.NewClient(logger, &http.Client{}, mover.Options{
			URL:     conf.Mover.URL,
			Timeout: conf.Mover.Timeout,
			Retries: conf.Mover.Retries,
		})
		if err != nil {
			return fmt.Errorf("could not create mover client: %w", err)
		}
		moverClient = client
	}

	match, err := newMatch(logger, mode, moverClient)
	if err != nil {
		return err
	}

	game := match.Game()
	printBoard(out, game)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "q":
			return nil
		case "r":
			game, err = match.Restart()
		case "retry":
			game, err = match.RetryMover(ctx)
		default:
			cell, convErr := strconv.Atoi(input)
			if convErr != nil {
				fmt.Fprintln(out, "enter a cell 0-8, r to restart, retry to ask the mover again, q to quit")
				continue
			}
			game, err = match.Play(ctx, cell)
		}

		printBoard(out, game)
		if err != nil {
			fmt.Fprintln(out, describe(err))
		}
	}

	return scanner.Err()
}

// newMatch keeps a nil client from turning into a non-nil interface.
func newMatch(logger *slog.Logger, mode string, moverClient *mover.Client) (*usecase.Match, error) {
	if moverClient == nil {
		return usecase.NewMatch(logger, mode, nil)
	}

	return usecase.NewMatch(logger, mode, moverClient)
}

func printBoard(out io.Writer, game entity.Game) {
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := range cells {
			index := row*3 + col
			cells[col] = game.Board[index].String()
			if cells[col] == "" {
				cells[col] = strconv.Itoa(index)
			}
		}
		fmt.Fprintln(out, strings.Join(cells, " | "))
	}

	switch {
	case game.Winner != entity.Empty:
		fmt.Fprintf(out, "The winner is %s!\n", game.Winner)
	case game.Draw:
		fmt.Fprintln(out, "Draw")
	default:
		fmt.Fprintf(out, "%s to move\n", game.Turn)
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrTransport):
		return "the mover could not be reached, type retry to ask again"
	case errors.Is(err, apperror.ErrProtocolViolation), errors.Is(err, apperror.ErrMalformedResponse):
		return "the mover answered with an invalid move"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell is occupied"
	case errors.Is(err, apperror.ErrInvalidCell):
		return "out of bounds"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game is over, type r to restart"
	default:
		return err.Error()
	}
}
