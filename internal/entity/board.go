package entity

import (
	"fmt"

	"github.com/tolik-0/four-in-a-row/internal/apperror"
)

const (
	Rows    = 6
	Columns = 7
)

// Cell is one grid position: empty or owned by one of the two players.
type Cell int

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return " "
	}
}

// Board is the fixed 6x7 grid. Row 0 is the top visual row; row Rows-1 is
// the bottom one and fills first.
type Board [Rows][Columns]Cell

func NewBoard() *Board {
	return &Board{}
}

// Drop - places a token into the lowest empty cell of the column and
// returns the row it landed in. The board is left untouched on failure.
func (that *Board) Drop(column int, token Cell) (int, error) {
	if column < 0 || column >= Columns {
		return -1, fmt.Errorf("%w: column %d", apperror.ErrColumnOutOfRange, column)
	}

	for row := Rows - 1; row >= 0; row-- {
		if that[row][column] == Empty {
			that[row][column] = token
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
}

// At - reads the cell at the given position. Callers are expected to stay
// inside the board dimensions.
func (that *Board) At(row, column int) Cell {
	return that[row][column]
}

// IsFull - reports whether the board has no empty cell left. Columns fill
// bottom-up, so checking the top row is enough.
func (that *Board) IsFull() bool {
	for column := 0; column < Columns; column++ {
		if that[0][column] == Empty {
			return false
		}
	}

	return true
}
