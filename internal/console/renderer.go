package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tolik-0/four-in-a-row/internal/entity"
)

// Renderer prints the board and the game messages.
type Renderer struct {
	writer io.Writer
}

func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{writer: writer}
}

// Board - prints the grid with the 1-based column numbers underneath.
func (that *Renderer) Board(board *entity.Board) {
	var out strings.Builder

	out.WriteString("\n")

	for row := 0; row < entity.Rows; row++ {
		out.WriteString("|")
		for column := 0; column < entity.Columns; column++ {
			out.WriteString(board.At(row, column).String())
			out.WriteString("|")
		}
		out.WriteString("\n")
	}

	for column := 1; column <= entity.Columns; column++ {
		out.WriteString(" ")
		out.WriteString(strconv.Itoa(column))
	}
	out.WriteString("\n\n")

	fmt.Fprint(that.writer, out.String())
}

func (that *Renderer) ColumnFull() {
	fmt.Fprintln(that.writer, "This column is full. Choose another one.")
}

// Outcome - announces how the game ended.
func (that *Renderer) Outcome(game *entity.Game) {
	switch game.Status {
	case entity.StatusWon:
		fmt.Fprintf(that.writer, "Player %s wins!\n", game.Winner)
	case entity.StatusDraw:
		fmt.Fprintln(that.writer, "It's a draw! No more moves possible.")
	}
}
