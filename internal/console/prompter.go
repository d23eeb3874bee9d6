package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tolik-0/four-in-a-row/internal/entity"
)

// Prompter reads column choices from the player, one line per attempt.
type Prompter struct {
	logger *slog.Logger
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(logger *slog.Logger, reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// AskColumn - asks the player for a 1-based column number until a valid one
// comes in, and returns it as a zero-based index. There is no limit on the
// number of attempts; only a read failure ends the prompt.
func (that *Prompter) AskColumn(token entity.Cell) (int, error) {
	for {
		fmt.Fprintf(that.writer, "Player %s, choose column (1-%d): ", token, entity.Columns)

		line, err := that.reader.ReadString('\n')
		choice := strings.TrimSpace(line)

		if err != nil && choice == "" {
			return -1, fmt.Errorf("failed to read column choice: %w", err)
		}

		if column, convErr := strconv.Atoi(choice); convErr == nil && column >= 1 && column <= entity.Columns {
			return column - 1, nil
		}

		that.logger.Debug("rejected column choice", "token", token.String(), "input", choice)
		fmt.Fprintf(that.writer, "Invalid input. Enter a number from 1 to %d.\n", entity.Columns)
	}
}
