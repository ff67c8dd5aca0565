package mines

import (
	"iter"
	"strconv"
	"strings"
)

// Describe dumps the mine layout followed by the adjacency counts, one
// board row per line. Every call to the returned sequence starts over.
func (g *Game) Describe() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield("mines " + g.params.String()) {
			return
		}
		if !g.describeRows(yield, func(c Cell) string {
			if c.IsMine {
				return "*"
			}
			return "-"
		}) {
			return
		}
		if !yield("adjacency") {
			return
		}
		g.describeRows(yield, func(c Cell) string {
			return strconv.Itoa(c.AdjacentMines)
		})
	}
}

func (g *Game) describeRows(yield func(string) bool, symbol func(Cell) string) bool {
	var b strings.Builder
	for row := range g.params.Rows {
		b.Reset()
		for col := range g.params.Cols {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(symbol(g.cells[row*g.params.Cols+col]))
		}
		if !yield(b.String()) {
			return false
		}
	}
	return true
}
