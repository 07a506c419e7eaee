package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type GameUseCase interface {
	Start(ctx context.Context) (*entity.Game, error)
	Restart(ctx context.Context) (*entity.Game, error)

	MakeTurn(ctx context.Context, move entity.Move) (*entity.Game, *entity.Move, error)

	Game() *entity.Game
}

type computerService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// gameUseCase owns the authoritative board of a single local game.
type gameUseCase struct {
	logger *slog.Logger

	computerService computerService

	game *entity.Game
}

func NewGameUseCase(logger *slog.Logger, computerService computerService, humanMark entity.Mark, computerFirst bool) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "game"),
		computerService: computerService,
		game:            entity.NewGame(humanMark, computerFirst),
	}
}

func (that *gameUseCase) Game() *entity.Game {
	return that.game
}

// Start - lets the computer open when it moves first.
func (that *gameUseCase) Start(ctx context.Context) (*entity.Game, error) {
	if !that.game.IsComputerTurn() {
		return that.game, nil
	}

	move, err := that.computerService.MakeTurn(ctx, that.game)
	if err != nil {
		return nil, fmt.Errorf("failed to make opening turn: %w", err)
	}

	that.logger.Info("computer opened", "move", move.String())

	return that.game, nil
}

func (that *gameUseCase) Restart(ctx context.Context) (*entity.Game, error) {
	that.game.Restart()
	that.logger.Info("game restarted")

	return that.Start(ctx)
}

// MakeTurn - plays the human move and, unless that ended the game, the computer's
// reply. The reply is nil when the computer did not play.
func (that *gameUseCase) MakeTurn(ctx context.Context, move entity.Move) (*entity.Game, *entity.Move, error) {
	log := that.logger.With("method", "MakeTurn")

	if that.game.IsFinished() {
		return that.game, nil, apperror.ErrGameFinished
	}

	if err := that.game.MakeTurn(that.game.HumanMark, move); err != nil {
		return that.game, nil, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("human moved", "move", move.String())

	if that.game.IsFinished() {
		log.Info("game finished", "outcome", that.game.Outcome.String())
		return that.game, nil, nil
	}

	reply, err := that.computerService.MakeTurn(ctx, that.game)
	if err != nil {
		return that.game, nil, fmt.Errorf("failed to make computer turn: %w", err)
	}

	if that.game.IsFinished() {
		log.Info("game finished", "outcome", that.game.Outcome.String())
	}

	return that.game, &reply, nil
}
