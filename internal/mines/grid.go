package mines

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

type Cell struct {
	Row, Col      int
	IsMine        bool
	AdjacentMines int
	Revealed      bool
	Flagged       bool
}

type CellState int8

const (
	Unknown       CellState = -2
	Flagged       CellState = -1
	ExplodedMine  CellState = 65
	UnflaggedMine CellState = 67
	/*
	 * 0 to 8 mean the cell is revealed and has that many mined
	 * neighbours. ExplodedMine is the mine that ended the game,
	 * UnflaggedMine is any other mine exposed once the game is over.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == ExplodedMine:
		return "X"
	case s == UnflaggedMine:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// neighbours yields the in-bounds indices of the 8-neighbourhood of i,
// excluding i itself.
func (p GameParams) neighbours(i int) iter.Seq[int] {
	row, col := i/p.Cols, i%p.Cols
	return func(yield func(int) bool) {
		for dr := -1; dr <= 1; dr++ {
			r := row + dr
			if r < 0 || r >= p.Rows {
				continue
			}
			for dc := -1; dc <= 1; dc++ {
				c := col + dc
				if c < 0 || c >= p.Cols || (dr == 0 && dc == 0) {
					continue
				}
				if !yield(r*p.Cols + c) {
					return
				}
			}
		}
	}
}

func (p GameParams) index(row, col int) int {
	if !p.ValidatePoint(row, col) {
		panic(AssertionError{
			fmt.Sprintf("cell %d:%d is outside of %dx%d board", row, col, p.Rows, p.Cols),
		})
	}
	return row*p.Cols + col
}
