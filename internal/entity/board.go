package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const BoardSize = 3

type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent - returns the other player's mark, EmptyCell stays EmptyCell.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// ParseMark - accepts "X" or "O" in any case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "X wins"
	case OutcomeOWins:
		return "O wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "in progress"
	}
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// WinCombos - every row, column and diagonal.
var WinCombos = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a value type: assigning it makes an independent copy.
type Board [BoardSize][BoardSize]Mark

func (that *Board) IsFree(row, col int) bool {
	if !(Move{Row: row, Col: col}).IsValid() {
		return false
	}
	return that[row][col] == EmptyCell
}

// Place - puts mark on an empty cell. The board is left unchanged on error.
func (that *Board) Place(row, col int, mark Mark) error {
	if !(Move{Row: row, Col: col}).IsValid() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}
	return true
}

func (that *Board) WinnerIs(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0].Row][combo[0].Col] == mark &&
			that[combo[1].Row][combo[1].Col] == mark &&
			that[combo[2].Row][combo[2].Col] == mark {
			return true
		}
	}
	return false
}

func (that *Board) Outcome() Outcome {
	switch {
	case that.WinnerIs(PlayerX):
		return OutcomeXWins
	case that.WinnerIs(PlayerO):
		return OutcomeOWins
	case that.IsFull():
		return OutcomeDraw
	default:
		return OutcomeInProgress
	}
}

// FreeCells - empty cells in row-major order.
func (that *Board) FreeCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (that *Board) Reset() {
	*that = Board{}
}

// Key - nine characters in row-major order, "." for an empty cell.
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for _, row := range that {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// ParseBoard - inverse of Key. Whitespace and "|" separators are ignored,
// "_" is read as an empty cell.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := strings.NewReplacer(" ", "", "\n", "", "\t", "", "|", "").Replace(s)
	if len(cells) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: board %q must have %d cells", apperror.ErrInvalidCell, s, BoardSize*BoardSize)
	}

	for i, ch := range cells {
		row, col := i/BoardSize, i%BoardSize
		switch ch {
		case '.', '_':
			board[row][col] = EmptyCell
		case 'X', 'x':
			board[row][col] = PlayerX
		case 'O', 'o':
			board[row][col] = PlayerO
		default:
			return Board{}, fmt.Errorf("%w: %q at cell %d", apperror.ErrInvalidMark, ch, i)
		}
	}

	return board, nil
}

// String renders the board with 1-based row and column labels.
func (that *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  1 2 3\n")
	for row := range BoardSize {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := range BoardSize {
			sb.WriteString(" " + that[row][col].String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
