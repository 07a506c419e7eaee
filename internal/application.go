package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
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

	moveBook, closeMoveBook, err := newMoveBook(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not create move book: %w", err)
	}

	defer func() {
		if err = closeMoveBook(); err != nil {
			log.Error("could not close move book", "error", err)
		}
	}()

	humanMark, err := conf.GetHumanMark()
	if err != nil {
		return fmt.Errorf("invalid human mark: %w", err)
	}

	computerService := service.NewComputerService(logger, moveBook)
	gameUseCase := usecase.NewGameUseCase(logger, computerService, humanMark, conf.ComputerFirst)

	return runConsole(ctx, log, console.New(logger, gameUseCase, os.Stdin, os.Stdout))
}

func runConsole(ctx context.Context, log *slog.Logger, server *console.Server) error {
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game")
		consoleErrCh <- server.Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console game ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newMoveBook - picks the book backend named in the config. The returned func
// releases whatever connection the book holds.
func newMoveBook(ctx context.Context, conf *config.Config) (repository.MoveBook, func() error, error) {
	if conf.MoveBook.Driver != config.MoveBookRedis {
		return repository.NewMemoryMoveBook(), func() error { return nil }, nil
	}

	redisAddrString := conf.MoveBook.Redis.GetRedisAddr()
	if redisAddrString == ":" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewMoveBookRepository(redisStorage.Connection, conf.MoveBook.TTL), redisStorage.Close, nil
}
