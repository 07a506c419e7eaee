// Package engine solves tic-tac-toe positions by exhaustive minimax search.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Version changes whenever the search could answer a position differently.
const Version = "1"

type Score int

// ScoreWin and ScoreLoss lie outside every other score the search can produce.
const (
	ScoreLoss Score = -1 << 30
	ScoreDraw Score = 0
	ScoreWin  Score = 1 << 30
)

type Candidate struct {
	Move  entity.Move
	Score Score
}

// Engine plays one fixed mark. It holds no state between calls.
type Engine struct {
	logger *slog.Logger

	computer entity.Mark
	human    entity.Mark
}

func New(logger *slog.Logger, computerMark entity.Mark) *Engine {
	return &Engine{
		logger:   logger.With("component", "engine", "mark", computerMark.String()),
		computer: computerMark,
		human:    computerMark.Opponent(),
	}
}

// position keys the memo table of a single search.
type position struct {
	board      entity.Board
	maximizing bool
}

type search struct {
	memo  map[position]Score
	nodes int
}

func newSearch() *search {
	return &search{memo: make(map[position]Score)}
}

// Evaluate - minimax value of board for the engine's mark. maximizing reports
// whether the engine is the side to move.
func (that *Engine) Evaluate(board entity.Board, maximizing bool) Score {
	return that.evaluate(newSearch(), board, maximizing)
}

func (that *Engine) evaluate(s *search, board entity.Board, maximizing bool) Score {
	s.nodes++

	// the order matters for boards holding both a line and no free cell
	switch {
	case board.WinnerIs(that.computer):
		return ScoreWin
	case board.WinnerIs(that.human):
		return ScoreLoss
	case board.IsFull():
		return ScoreDraw
	}

	key := position{board: board, maximizing: maximizing}
	if score, ok := s.memo[key]; ok {
		return score
	}

	mark, best := that.human, ScoreWin
	if maximizing {
		mark, best = that.computer, ScoreLoss
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			child := board
			child[row][col] = mark

			score := that.evaluate(s, child, !maximizing)
			if (maximizing && score > best) || (!maximizing && score < best) {
				best = score
			}
		}
	}

	s.memo[key] = best

	return best
}

// Candidates - every free cell with the score of playing it, in row-major order.
func (that *Engine) Candidates(board entity.Board) ([]Candidate, error) {
	candidates, _, err := that.candidates(newSearch(), board)
	return candidates, err
}

func (that *Engine) candidates(s *search, board entity.Board) ([]Candidate, int, error) {
	if board.WinnerIs(that.computer) || board.WinnerIs(that.human) {
		return nil, 0, apperror.ErrGameFinished
	}

	free := board.FreeCells()
	if len(free) == 0 {
		return nil, 0, apperror.ErrNoMoveAvailable
	}

	candidates := make([]Candidate, 0, len(free))
	for _, move := range free {
		child := board
		child[move.Row][move.Col] = that.computer

		candidates = append(candidates, Candidate{
			Move:  move,
			Score: that.evaluate(s, child, false),
		})
	}

	return candidates, s.nodes, nil
}

// BestMove - the first candidate in row-major order holding the best score.
// The board is not modified.
func (that *Engine) BestMove(board entity.Board) (Candidate, error) {
	candidates, _, err := that.candidates(newSearch(), board)
	if err != nil {
		return Candidate{}, err
	}

	return best(candidates), nil
}

// SelectMove - picks the best cell for the engine's mark, places it on board
// and returns it. Ties go to the first cell in row-major order.
func (that *Engine) SelectMove(board *entity.Board) (entity.Move, error) {
	candidates, nodes, err := that.candidates(newSearch(), *board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	chosen := best(candidates)

	if err = board.Place(chosen.Move.Row, chosen.Move.Col, that.computer); err != nil {
		return entity.Move{}, fmt.Errorf("failed to apply move: %w", err)
	}

	that.logger.Debug("move selected",
		"move", chosen.Move.String(),
		"score", int(chosen.Score),
		"candidates", len(candidates),
		"nodes", nodes,
	)

	return chosen.Move, nil
}

// best expects at least one candidate; only a strictly greater score replaces the leader.
func best(candidates []Candidate) Candidate {
	leader := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Score > leader.Score {
			leader = candidate
		}
	}

	return leader
}
