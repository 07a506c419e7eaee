package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-solver/mocks/usecase"
)

var errSearchFailed = errors.New("search failed")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newSolvingUseCase(humanMark entity.Mark, computerFirst bool) GameUseCase {
	logger := newTestLogger()
	computer := service.NewComputerService(logger, repository.NewMemoryMoveBook())

	return NewGameUseCase(logger, computer, humanMark, computerFirst)
}

func TestGameUseCase_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Human opens, computer waits", func(t *testing.T) {
		// Given: a game where the human moves first
		computer := mockedUseCase.NewMockcomputerService(t)
		useCase := NewGameUseCase(newTestLogger(), computer, entity.PlayerX, false)

		// When: the game starts
		game, err := useCase.Start(ctx)

		// Then: the board is empty and it is the human's turn
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, game.Board)
		assert.Equal(t, entity.PlayerX, game.Turn)
		computer.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)
	})

	t.Run("Computer opens", func(t *testing.T) {
		// Given: a game where the computer moves first
		useCase := newSolvingUseCase(entity.PlayerX, true)

		// When: the game starts
		game, err := useCase.Start(ctx)

		// Then: the computer has taken the first corner and waits for the human
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[0][0])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Opening failure is returned", func(t *testing.T) {
		computer := mockedUseCase.NewMockcomputerService(t)
		computer.EXPECT().MakeTurn(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(entity.Move{}, errSearchFailed).
			Once()
		useCase := NewGameUseCase(newTestLogger(), computer, entity.PlayerX, true)

		_, err := useCase.Start(ctx)

		require.ErrorIs(t, err, errSearchFailed)
	})
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Human move is answered by the computer", func(t *testing.T) {
		// Given: a fresh game with the human as X
		useCase := newSolvingUseCase(entity.PlayerX, false)
		_, err := useCase.Start(ctx)
		require.NoError(t, err)

		// When: the human takes the center
		game, reply, err := useCase.MakeTurn(ctx, entity.Move{Row: 1, Col: 1})

		// Then: the computer answers in the first corner and it is the human's turn again
		require.NoError(t, err)
		require.NotNil(t, reply)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, *reply)
		assert.Equal(t, entity.PlayerX, game.Board[1][1])
		assert.Equal(t, entity.PlayerO, game.Board[0][0])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Occupied cell is rejected without a computer reply", func(t *testing.T) {
		// Given: a game where the computer already holds the center
		computer := mockedUseCase.NewMockcomputerService(t)
		useCase := NewGameUseCase(newTestLogger(), computer, entity.PlayerX, false)
		useCase.Game().Board[1][1] = entity.PlayerO

		// When: the human tries to take the center
		_, _, err := useCase.MakeTurn(ctx, entity.Move{Row: 1, Col: 1})

		// Then: ErrCellOccupied is returned and the computer is not asked
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		computer.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)
	})

	t.Run("Invalid cell is rejected", func(t *testing.T) {
		computer := mockedUseCase.NewMockcomputerService(t)
		useCase := NewGameUseCase(newTestLogger(), computer, entity.PlayerX, false)

		_, _, err := useCase.MakeTurn(ctx, entity.Move{Row: 0, Col: 3})

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning human move ends the game", func(t *testing.T) {
		// Given: the human has two in the top row
		computer := mockedUseCase.NewMockcomputerService(t)
		useCase := NewGameUseCase(newTestLogger(), computer, entity.PlayerX, false)
		useCase.Game().Board = entity.Board{
			{entity.PlayerX, entity.PlayerX, entity.EmptyCell},
			{entity.PlayerO, entity.PlayerO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}

		// When: the human completes the row
		game, reply, err := useCase.MakeTurn(ctx, entity.Move{Row: 0, Col: 2})

		// Then: the human wins and the computer does not reply
		require.NoError(t, err)
		assert.Nil(t, reply)
		assert.Equal(t, entity.OutcomeXWins, game.Outcome)
		computer.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)

		// And: further moves are refused
		_, _, err = useCase.MakeTurn(ctx, entity.Move{Row: 2, Col: 2})
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Computer reply can win the game", func(t *testing.T) {
		// Given: O has two in the top row and X is about to play elsewhere
		useCase := newSolvingUseCase(entity.PlayerX, false)
		useCase.Game().Board = entity.Board{
			{entity.PlayerO, entity.PlayerO, entity.EmptyCell},
			{entity.PlayerX, entity.EmptyCell, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}

		// When: the human fails to block
		game, reply, err := useCase.MakeTurn(ctx, entity.Move{Row: 1, Col: 1})

		// Then: the computer completes its row
		require.NoError(t, err)
		require.NotNil(t, reply)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, *reply)
		assert.Equal(t, entity.OutcomeOWins, game.Outcome)
	})

	t.Run("Computer failure is returned", func(t *testing.T) {
		computer := mockedUseCase.NewMockcomputerService(t)
		computer.EXPECT().MakeTurn(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(entity.Move{}, errSearchFailed).
			Once()
		useCase := NewGameUseCase(newTestLogger(), computer, entity.PlayerX, false)

		_, _, err := useCase.MakeTurn(ctx, entity.Move{Row: 1, Col: 1})

		require.ErrorIs(t, err, errSearchFailed)
	})
}

func TestGameUseCase_Restart(t *testing.T) {
	ctx := context.Background()

	// Given: a game the computer opened and then answered once
	useCase := newSolvingUseCase(entity.PlayerX, true)
	_, err := useCase.Start(ctx)
	require.NoError(t, err)
	_, _, err = useCase.MakeTurn(ctx, entity.Move{Row: 1, Col: 1})
	require.NoError(t, err)

	// When: the game is restarted
	game, err := useCase.Restart(ctx)

	// Then: only the computer's new opening is on the board
	require.NoError(t, err)
	expected := entity.Board{}
	expected[0][0] = entity.PlayerO
	assert.Equal(t, expected, game.Board)
	assert.Equal(t, entity.PlayerX, game.Turn)
	assert.Equal(t, entity.OutcomeInProgress, game.Outcome)
}
