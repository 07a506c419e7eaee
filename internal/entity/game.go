package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one human-versus-computer session around a single board.
type Game struct {
	Board        Board   `json:"board"`
	HumanMark    Mark    `json:"human_mark"`
	ComputerMark Mark    `json:"computer_mark"`
	FirstTurn    Mark    `json:"first_turn"`
	Turn         Mark    `json:"player_turn"`
	Status       string  `json:"status"`
	Outcome      Outcome `json:"outcome"`
}

func NewGame(humanMark Mark, computerFirst bool) *Game {
	game := &Game{
		HumanMark:    humanMark,
		ComputerMark: humanMark.Opponent(),
		FirstTurn:    humanMark,
	}

	if computerFirst {
		game.FirstTurn = game.ComputerMark
	}

	game.Restart()

	return game
}

// Restart - clears the board and hands the turn back to whoever opened the game.
func (that *Game) Restart() {
	that.Board.Reset()
	that.Turn = that.FirstTurn
	that.Status = StatusOngoing
	that.Outcome = OutcomeInProgress
}

func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Outcome()
	if that.Outcome != OutcomeInProgress {
		that.Status = StatusFinished
		that.Turn = EmptyCell
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) MakeTurn(playerMark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(move.Row, move.Col, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn = playerMark.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsComputerTurn() bool {
	return !that.IsFinished() && that.Turn == that.ComputerMark
}

// Winner - the mark that completed a line, EmptyCell for a draw or an unfinished game.
func (that *Game) Winner() Mark {
	switch that.Outcome {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}
