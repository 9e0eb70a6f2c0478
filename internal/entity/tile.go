package entity

import (
	"errors"
	"fmt"
)

// Tile is the content of a single board cell.
type Tile uint8

const (
	Empty Tile = iota
	X
	O
)

var ErrInvalidTile = errors.New("invalid tile value")

func ParseTile(value string) (Tile, error) {
	switch value {
	case "":
		return Empty, nil
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidTile, value)
	}
}

func (that Tile) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// IsPlayer reports whether the tile is one of the two player marks.
func (that Tile) IsPlayer() bool {
	return that == X || that == O
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Tile) Opponent() Tile {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Tile) MarshalText() ([]byte, error) {
	if that > O {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTile, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Tile) UnmarshalText(text []byte) error {
	tile, err := ParseTile(string(text))
	if err != nil {
		return err
	}

	*that = tile

	return nil
}
