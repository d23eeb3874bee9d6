package gameplay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tolik-0/four-in-a-row/internal/apperror"
	"github.com/tolik-0/four-in-a-row/internal/entity"
	"github.com/tolik-0/four-in-a-row/internal/fourinarow"
)

type prompter interface {
	AskColumn(token entity.Cell) (int, error)
}

type renderer interface {
	Board(board *entity.Board)
	ColumnFull()
	Outcome(game *entity.Game)
}

// Loop drives one game between the two console players to a terminal
// outcome.
type Loop struct {
	logger   *slog.Logger
	prompter prompter
	renderer renderer
}

func NewLoop(logger *slog.Logger, prompter prompter, renderer renderer) *Loop {
	return &Loop{
		logger:   logger,
		prompter: prompter,
		renderer: renderer,
	}
}

// Run - alternates turns until the game is won or drawn. A full column
// keeps the turn with the same player; a cancelled context stops the game
// between turns.
func (that *Loop) Run(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("component", "gameplay", "game_id", game.ID)
	log.Info("game started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.renderer.Board(game.Board)

		token := game.Turn

		column, err := that.prompter.AskColumn(token)
		if err != nil {
			return fmt.Errorf("failed to get column choice: %w", err)
		}

		row, err := fourinarow.MakeTurn(game, column)
		if errors.Is(err, apperror.ErrColumnFull) {
			log.Info("column full", "token", token.String(), "column", column)
			that.renderer.ColumnFull()
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Info("turn played", "token", token.String(), "column", column, "row", row, "move", game.Moves)

		if game.IsFinished() {
			that.renderer.Board(game.Board)
			that.renderer.Outcome(game)
			log.Info("game over", "status", game.Status, "winner", game.Winner.String(), "moves", game.Moves)

			return nil
		}
	}
}
