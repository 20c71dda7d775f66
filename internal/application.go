package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one match on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	recorder, closeRecorder, err := newRecorder(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRecorder(); err != nil {
			log.Error("could not close results storage", "error", err)
		}
	}()

	return runMatch(ctx, logger, recorder, os.Stdin, os.Stdout)
}

// runMatch - plays a match in its own goroutine so a signal can end the wait on a blocked read.
func runMatch(ctx context.Context, logger *slog.Logger, recorder game.Recorder, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := game.NewTerminal(logger, console.NewLineReader(in), console.NewBoxRenderer(out), out)
	engine := game.NewEngine(logger, term, recorder)

	errCh := make(chan error, 1)
	go func() {
		log.Debug("Starting match")
		errCh <- engine.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newRecorder(ctx context.Context, logger *slog.Logger, conf *config.Config) (game.Recorder, func() error, error) {
	noop := func() error { return nil }

	if conf.Results.Driver != config.ResultsDriverRedis {
		return nil, noop, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	resultRepo := repository.NewResultRepository(redisStorage.Connection)

	return usecase.NewResultRecorder(logger, resultRepo), redisStorage.Close, nil
}
