package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/engine"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
)

type ComputerService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type moveBook interface {
	Get(ctx context.Context, key string) (entity.Move, error)
	Save(ctx context.Context, key string, move entity.Move) error
}

type computerService struct {
	logger *slog.Logger

	moveBook moveBook
}

func NewComputerService(logger *slog.Logger, moveBook moveBook) ComputerService {
	return &computerService{
		logger:   logger,
		moveBook: moveBook,
	}
}

// MakeTurn - chooses the computer's reply and plays it on the game.
func (that *computerService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	if game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if !game.IsComputerTurn() {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.chooseMove(ctx, game)
	if err != nil {
		return entity.Move{}, fmt.Errorf("computer failed to choose move: %w", err)
	}

	if err = game.MakeTurn(game.ComputerMark, move); err != nil {
		return entity.Move{}, fmt.Errorf("computer failed to make turn: %w", err)
	}

	return move, nil
}

// chooseMove - the search always decides. A book entry is kept only while it
// names the same cell; anything else is replaced with the searched move.
func (that *computerService) chooseMove(ctx context.Context, game *entity.Game) (entity.Move, error) {
	key := repository.MoveBookKey(game.ComputerMark, game.Board)
	log := that.logger.With("component", "computer", "method", "chooseMove", "key", key)

	chosen, err := engine.New(that.logger, game.ComputerMark).BestMove(game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("search failed: %w", err)
	}

	booked, err := that.moveBook.Get(ctx, key)
	switch {
	case err == nil && booked == chosen.Move:
		log.Debug("book move confirmed", "move", booked.String())
		return chosen.Move, nil
	case err == nil:
		log.Warn("book move disagrees with search, replacing it",
			"book_move", booked.String(),
			"move", chosen.Move.String(),
		)
	case !errors.Is(err, repository.ErrMoveNotFound):
		log.Warn("failed to read move book", "error", err)
	}

	if err = that.moveBook.Save(ctx, key, chosen.Move); err != nil {
		log.Warn("failed to save move to book", "error", err)
	}

	return chosen.Move, nil
}
