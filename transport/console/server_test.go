package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	mockedConsole "github.com/rocketscienceinc/tictactoe-solver/mocks/console"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func finishedGame(t *testing.T, board string) *entity.Game {
	t.Helper()

	game := entity.NewGame(entity.PlayerX, false)
	parsed, err := entity.ParseBoard(board)
	require.NoError(t, err)

	game.Board = parsed
	game.UpdateGameState()
	require.True(t, game.IsFinished())

	return game
}

func TestServer_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays against the engine", func(t *testing.T) {
		// Given: a real game use case and a scripted player
		logger := newTestLogger()
		computer := service.NewComputerService(logger, repository.NewMemoryMoveBook())
		gameUseCase := usecase.NewGameUseCase(logger, computer, entity.PlayerX, false)

		in := strings.NewReader("2 2\n9 9\n2 2\nfoo\nq\n")
		out := &bytes.Buffer{}

		// When: the session runs
		err := New(logger, gameUseCase, in, out).Start(ctx)

		// Then: the computer answers the center in the first corner and bad input is reported
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Your move (X):")
		assert.Contains(t, output, "Computer plays 1 1\n  1 2 3\n1 O . .\n2 . X .\n3 . . .\n")
		assert.Contains(t, output, "Rows and columns go from 1 to 3.")
		assert.Contains(t, output, "That cell is taken.")
		assert.Contains(t, output, `unknown command: "foo"`)
		assert.True(t, strings.HasSuffix(output, "Bye.\n"))
	})

	t.Run("Restart clears the board and input end stops the session", func(t *testing.T) {
		logger := newTestLogger()
		computer := service.NewComputerService(logger, repository.NewMemoryMoveBook())
		gameUseCase := usecase.NewGameUseCase(logger, computer, entity.PlayerX, false)

		in := strings.NewReader("3 3\nrestart\n")
		out := &bytes.Buffer{}

		err := New(logger, gameUseCase, in, out).Start(ctx)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "New game.\n  1 2 3\n1 . . .\n2 . . .\n3 . . .\nYour move (X):\n")
		assert.Equal(t, entity.Board{}, gameUseCase.Game().Board)
	})

	t.Run("Announces the result", func(t *testing.T) {
		cases := []struct {
			name     string
			board    string
			expected string
		}{
			{name: "Human wins", board: "XXX OO. ...", expected: "You win!\n"},
			{name: "Computer wins", board: "XX. OOO X..", expected: "Computer wins.\n"},
			{name: "Draw", board: "XOX XOO OXX", expected: "Draw.\n"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// Given: a use case whose next turn ends the game
				gameUseCase := mockedConsole.NewMockgameUseCase(t)
				gameUseCase.EXPECT().Start(mock.Anything).Return(entity.NewGame(entity.PlayerX, false), nil).Once()
				gameUseCase.EXPECT().MakeTurn(mock.Anything, entity.Move{Row: 0, Col: 0}).
					Return(finishedGame(t, tc.board), (*entity.Move)(nil), nil).
					Once()

				out := &bytes.Buffer{}

				// When: the player moves
				err := New(newTestLogger(), gameUseCase, strings.NewReader("1 1\n"), out).Start(ctx)

				// Then: the result is printed
				require.NoError(t, err)
				assert.True(t, strings.HasSuffix(out.String(), tc.expected), out.String())
			})
		}
	})

	t.Run("Finished game asks for a restart", func(t *testing.T) {
		gameUseCase := mockedConsole.NewMockgameUseCase(t)
		gameUseCase.EXPECT().Start(mock.Anything).Return(entity.NewGame(entity.PlayerX, false), nil).Once()
		gameUseCase.EXPECT().MakeTurn(mock.Anything, entity.Move{Row: 1, Col: 1}).
			Return(finishedGame(t, "XXX OO. ..."), (*entity.Move)(nil), apperror.ErrGameFinished).
			Once()

		out := &bytes.Buffer{}

		err := New(newTestLogger(), gameUseCase, strings.NewReader("2 2\n"), out).Start(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), `The game is over, enter "r" to play again.`)
	})

	t.Run("Start failure is returned", func(t *testing.T) {
		gameUseCase := mockedConsole.NewMockgameUseCase(t)
		gameUseCase.EXPECT().Start(mock.Anything).Return(nil, apperror.ErrNoMoveAvailable).Once()

		err := New(newTestLogger(), gameUseCase, strings.NewReader(""), &bytes.Buffer{}).Start(ctx)

		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})

		gameUseCase := mockedConsole.NewMockgameUseCase(t)
		gameUseCase.EXPECT().Start(mock.Anything).Return(entity.NewGame(entity.PlayerX, false), nil).Once()

		cancelCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			done <- New(newTestLogger(), gameUseCase, reader, &bytes.Buffer{}).Start(cancelCtx)
		}()

		// When: the context is canceled
		cancel()

		// Then: the session ends without an error
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop after cancel")
		}

		// And: the input is closed, so nothing is left reading it
		_, err := writer.Write([]byte("1 1\n"))
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}

func TestParseMove(t *testing.T) {
	t.Run("Accepts 1-based row and column", func(t *testing.T) {
		move, err := parseMove("1 3")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Accepts a comma separator", func(t *testing.T) {
		move, err := parseMove("3,2")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 1}, move)
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, command := range []string{"1", "1 2 3", "a b", "1 b"} {
			_, err := parseMove(command)

			require.ErrorIs(t, err, errUnknownCommand, command)
		}
	})
}
