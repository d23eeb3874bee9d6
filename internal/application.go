package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/tolik-0/four-in-a-row/internal/config"
	"github.com/tolik-0/four-in-a-row/internal/console"
	"github.com/tolik-0/four-in-a-row/internal/entity"
	"github.com/tolik-0/four-in-a-row/internal/gameplay"
)

// RunApp - runs the application. It returns nil when the game reaches a
// terminal outcome or the player interrupts the process, so both end with
// exit code 0.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	prompter := console.NewPrompter(logger, os.Stdin, os.Stdout)
	renderer := console.NewRenderer(os.Stdout)

	game := entity.NewGame(uuid.NewString())
	loop := gameplay.NewLoop(logger, prompter, renderer)

	log.Info("Starting game", "game_id", game.ID, "log_level", conf.LogLevel)

	loopErrCh := make(chan error, 1)
	go func() {
		loopErrCh <- loop.Run(ctx, game)
	}()

	select {
	case err := <-loopErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game loop error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
