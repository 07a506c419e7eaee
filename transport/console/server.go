package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var errUnknownCommand = errors.New("unknown command")

type gameUseCase interface {
	Start(ctx context.Context) (*entity.Game, error)
	Restart(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, move entity.Move) (*entity.Game, *entity.Move, error)
}

// Server plays one local game over a line-oriented text stream.
type Server struct {
	logger *slog.Logger

	gameUseCase gameUseCase

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, gameUseCase gameUseCase, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		in:          in,
		out:         out,
	}
}

// Start - runs until the player quits, the input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	game, err := that.gameUseCase.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printf("Enter moves as \"row col\" (1-3), \"r\" to restart, \"q\" to quit.\n")
	that.render(game, nil)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			that.closeInput()
			return nil
		case line, ok := <-lines:
			if !ok {
				// readErr is filled before lines is closed unless ctx stopped the reader
				select {
				case err = <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}

			if quit := that.handleLine(ctx, line); quit {
				return nil
			}
		}
	}
}

// closeInput releases the reader goroutine blocked in Scan. An input that cannot
// be closed keeps it parked until the process exits.
func (that *Server) closeInput() {
	closer, ok := that.in.(io.Closer)
	if !ok {
		return
	}

	if err := closer.Close(); err != nil {
		that.logger.Warn("failed to close input", "error", err)
	}
}

func (that *Server) handleLine(ctx context.Context, line string) bool {
	log := that.logger.With("method", "handleLine")

	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return false
	case "q", "quit", "exit":
		that.printf("Bye.\n")
		return true
	case "r", "restart":
		game, err := that.gameUseCase.Restart(ctx)
		if err != nil {
			log.Error("failed to restart game", "error", err)
			that.printf("Could not restart: %v\n", err)
			return false
		}
		that.printf("New game.\n")
		that.render(game, nil)
		return false
	}

	move, err := parseMove(command)
	if err != nil {
		that.printf("%v\n", err)
		return false
	}

	game, reply, err := that.gameUseCase.MakeTurn(ctx, move)
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		that.printf("The game is over, enter \"r\" to play again.\n")
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("That cell is taken.\n")
	case errors.Is(err, apperror.ErrInvalidCell):
		that.printf("Rows and columns go from 1 to 3.\n")
	case err != nil:
		log.Error("failed to make turn", "error", err)
		that.printf("Something went wrong: %v\n", err)
	default:
		that.render(game, reply)
	}

	return false
}

// parseMove - "row col" with 1-based indices, separated by spaces or a comma.
func parseMove(command string) (entity.Move, error) {
	fields := strings.FieldsFunc(command, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: %q", errUnknownCommand, command)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q", errUnknownCommand, command)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q", errUnknownCommand, command)
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

func (that *Server) render(game *entity.Game, reply *entity.Move) {
	if reply != nil {
		that.printf("Computer plays %d %d\n", reply.Row+1, reply.Col+1)
	}

	that.printf("%s", game.Board.String())

	switch {
	case !game.IsFinished():
		that.printf("Your move (%s):\n", game.HumanMark)
	case game.Winner() == game.HumanMark:
		that.printf("You win!\n")
	case game.Winner() == game.ComputerMark:
		that.printf("Computer wins.\n")
	default:
		that.printf("Draw.\n")
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
