package fourinarow

import (
	"fmt"

	"github.com/tolik-0/four-in-a-row/internal/apperror"
	"github.com/tolik-0/four-in-a-row/internal/entity"
)

// runLength is how many same-token cells in a line win the game.
const runLength = 4

// winDirections are the four forward line directions as (deltaRow,
// deltaColumn) pairs. A run anchored at its first cell in a forward
// direction covers the same cells as one anchored at its last cell in the
// backward direction, so scanning forward from every cell finds every win.
var winDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti diagonal
}

// MakeTurn - applies the current player's move to the given column and
// returns the row the token landed in. A rejected move leaves the game
// untouched and does not consume the turn.
func MakeTurn(game *entity.Game, column int) (int, error) {
	if game.IsFinished() {
		return -1, apperror.ErrGameFinished
	}

	row, err := game.Board.Drop(column, game.Turn)
	if err != nil {
		return -1, fmt.Errorf("invalid turn: %w", err)
	}

	game.Moves++
	updateGameStatus(game)

	return row, nil
}

// updateGameStatus - checks the game status after a move. The win check
// runs before the draw check, so a move that both wins and fills the board
// counts as a win.
func updateGameStatus(game *entity.Game) {
	switch {
	case HasWinner(game.Board):
		game.Winner = game.Turn
		game.Status = entity.StatusWon
	case IsDraw(game.Board):
		game.Status = entity.StatusDraw
	default:
		game.Turn = toggleToken(game.Turn)
	}
}

func toggleToken(current entity.Cell) entity.Cell {
	if current == entity.PlayerOne {
		return entity.PlayerTwo
	}
	return entity.PlayerOne
}

// HasWinner - reports whether any cell anchors a run of four equal tokens
// along one of the four line directions.
func HasWinner(board *entity.Board) bool {
	for row := 0; row < entity.Rows; row++ {
		for column := 0; column < entity.Columns; column++ {
			for _, direction := range winDirections {
				if checkDirection(board, row, column, direction[0], direction[1]) {
					return true
				}
			}
		}
	}

	return false
}

// checkDirection - checks four in a row in one direction starting from the
// given cell.
func checkDirection(board *entity.Board, startRow, startColumn, deltaRow, deltaColumn int) bool {
	token := board.At(startRow, startColumn)
	if token == entity.Empty {
		return false
	}

	for step := 1; step < runLength; step++ {
		row := startRow + step*deltaRow
		column := startColumn + step*deltaColumn

		if row < 0 || row >= entity.Rows || column < 0 || column >= entity.Columns {
			return false
		}

		if board.At(row, column) != token {
			return false
		}
	}

	return true
}

// IsDraw - reports whether the board is full. Callers check for a winner
// first; a full board with a winning line is a win, not a draw.
func IsDraw(board *entity.Board) bool {
	return board.IsFull()
}
