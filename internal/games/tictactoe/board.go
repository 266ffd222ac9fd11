package tictactoe

import (
	"errors"
	"fmt"
)

// ErrCorruptBoard is returned by Evaluate when a cell holds a value outside
// the Mark enum or the move counter disagrees with the cells.
var ErrCorruptBoard = errors.New("tictactoe: board data corrupt")

// Cells is the number of cells on the board.
const Cells = 9

// Mark is the content of a cell.
type Mark uint8

const (
	Empty Mark = iota
	Bot        // player A, moves first by default
	Human      // player B
)

// Valid reports whether m is one of the defined marks.
func (m Mark) Valid() bool {
	return m <= Human
}

func (m Mark) String() string {
	switch m {
	case Empty:
		return "empty"
	case Bot:
		return "bot"
	case Human:
		return "human"
	}
	return fmt.Sprintf("mark(%d)", uint8(m))
}

// Board is the 3x3 grid, indexed row*3+col with row 0 at the bottom.
// The zero value is an empty board.
type Board struct {
	cells [Cells]Mark
	moves int
}

func checkCell(i int) {
	if i < 0 || i >= Cells {
		panic(fmt.Sprintf("tictactoe: cell %d out of range [0, %d)", i, Cells))
	}
}

// At returns the mark in cell i.
func (b *Board) At(i int) Mark {
	checkCell(i)
	return b.cells[i]
}

// Moves returns the number of filled cells.
func (b *Board) Moves() int {
	return b.moves
}

// Apply places m in cell i. It is a no-op returning false when the cell is
// already taken.
func (b *Board) Apply(i int, m Mark) bool {
	checkCell(i)
	if m != Bot && m != Human {
		panic(fmt.Sprintf("tictactoe: cannot place %v", m))
	}
	if b.cells[i] != Empty {
		return false
	}
	b.cells[i] = m
	b.moves++
	return true
}

// Free returns the indices of the empty cells.
func (b *Board) Free() []int {
	var free []int
	for i, m := range b.cells {
		if m == Empty {
			free = append(free, i)
		}
	}
	return free
}

// Status is the result of evaluating a board.
type Status int

const (
	Continue Status = iota
	BotWins
	HumanWins
	Tie
)

func (s Status) String() string {
	switch s {
	case BotWins:
		return "bot wins"
	case HumanWins:
		return "human wins"
	case Tie:
		return "draw"
	default:
		return "continue"
	}
}

// lines are the winning triples: rows, columns, diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Evaluate checks every line for the bot first and then for the human.
// A full board with no line is a draw.
func Evaluate(b *Board) (Status, error) {
	filled := 0
	for i, m := range b.cells {
		if !m.Valid() {
			return Continue, fmt.Errorf("%w: cell %d holds %v", ErrCorruptBoard, i, m)
		}
		if m != Empty {
			filled++
		}
	}
	if filled != b.moves {
		return Continue, fmt.Errorf("%w: %d moves but %d filled cells", ErrCorruptBoard, b.moves, filled)
	}

	for _, p := range []Mark{Bot, Human} {
		for _, l := range lines {
			if b.cells[l[0]] == p && b.cells[l[1]] == p && b.cells[l[2]] == p {
				if p == Bot {
					return BotWins, nil
				}
				return HumanWins, nil
			}
		}
	}
	if b.moves == Cells {
		return Tie, nil
	}
	return Continue, nil
}
