package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type phase int8

const (
	unplaced phase = iota // waiting for the first reveal
	placed
	won
	lost
)

type Outcome int8

const (
	NoOp Outcome = iota
	Continue
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "no-op"
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Game struct {
	params       GameParams
	cells        []Cell
	phase        phase
	exploded     int
	minesFlagged int
	safeRevealed int
	r            *rand.Rand
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cells := make([]Cell, params.Size())
	for i := range cells {
		cells[i].Row, cells[i].Col = i/params.Cols, i%params.Cols
	}
	g := &Game{
		params:   params,
		cells:    cells,
		phase:    unplaced,
		exploded: -1,
		r:        r,
	}
	return g, nil
}

func (g *Game) Params() GameParams { return g.params }

func (g *Game) Cell(row, col int) Cell {
	return g.cells[g.params.index(row, col)]
}

func (g *Game) MinesFlagged() int { return g.minesFlagged }

func (g *Game) SafeRevealed() int { return g.safeRevealed }

// MinesLeft is what the mines counter shows; it goes negative when the
// player places more flags than there are mines.
func (g *Game) MinesLeft() int { return g.params.MineCount - g.minesFlagged }

func (g *Game) Placed() bool { return g.phase != unplaced }

func (g *Game) GameOver() bool { return g.phase == won || g.phase == lost }

func (g *Game) Outcome() Outcome {
	switch g.phase {
	case won:
		return Won
	case lost:
		return Lost
	default:
		return Continue
	}
}

func (g *Game) safeCount() int {
	return g.params.Size() - g.params.MineCount
}

func (g *Game) RevealCell(row, col int) Outcome {
	i := g.params.index(row, col)
	if g.GameOver() || g.cells[i].Flagged || g.cells[i].Revealed {
		return NoOp
	}
	if g.phase == unplaced {
		g.plant(g.params.generate(i, g.r))
		Log.WithFields(logrus.Fields{
			"params": g.params.String(),
			"row":    row,
			"col":    col,
		}).Debug("mines placed")
	}
	g.open(i)
	return g.Outcome()
}

// plant marks the given cells as mines and computes every adjacency count.
func (g *Game) plant(mines []int) {
	for _, i := range mines {
		g.cells[i].IsMine = true
	}
	for _, i := range mines {
		for j := range g.params.neighbours(i) {
			if !g.cells[j].IsMine {
				g.cells[j].AdjacentMines++
			}
		}
	}
	g.phase = placed
}

// open reveals cell i and, while zero cells keep turning up, every hidden
// unflagged neighbour of theirs. The revealed flag is the visited marker.
func (g *Game) open(i int) {
	todo := []int{i}
	for len(todo) > 0 {
		j := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		c := &g.cells[j]
		if c.Revealed || c.Flagged {
			continue
		}
		if c.IsMine {
			c.Revealed = true
			g.exploded = j
			g.endGame(false)
			return
		}

		c.Revealed = true
		g.safeRevealed++
		if g.safeRevealed == g.safeCount() {
			g.endGame(true)
			return
		}

		if c.AdjacentMines == 0 {
			for k := range g.params.neighbours(j) {
				if n := g.cells[k]; !n.Revealed && !n.Flagged {
					todo = append(todo, k)
				}
			}
		}
	}
}

func (g *Game) ToggleFlag(row, col int) {
	i := g.params.index(row, col)
	c := &g.cells[i]
	if g.GameOver() || c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		g.minesFlagged++
	} else {
		g.minesFlagged--
	}
}

// ChordCell opens every unflagged neighbour of a revealed cell once the
// number of flags around it matches its mine count.
func (g *Game) ChordCell(row, col int) Outcome {
	i := g.params.index(row, col)
	c := g.cells[i]
	if g.GameOver() || !c.Revealed {
		return NoOp
	}

	var (
		flagged int
		hidden  = make([]int, 0, 8)
	)
	for j := range g.params.neighbours(i) {
		n := g.cells[j]
		if n.Flagged {
			flagged++
		} else if !n.Revealed {
			hidden = append(hidden, j)
		}
	}
	if flagged != c.AdjacentMines || len(hidden) == 0 {
		return NoOp
	}

	for _, j := range hidden {
		g.open(j)
		if g.GameOver() {
			break
		}
	}
	return g.Outcome()
}

// endGame freezes the board and exposes every hidden cell. Exposed cells
// do not count towards safeRevealed. Only the first call has any effect.
func (g *Game) endGame(victory bool) {
	if g.GameOver() {
		return
	}
	if victory {
		g.phase = won
	} else {
		g.phase = lost
	}
	for i := range g.cells {
		g.cells[i].Revealed = true
		g.cells[i].Flagged = false
	}
	Log.WithFields(logrus.Fields{
		"params":       g.params.String(),
		"outcome":      g.Outcome().String(),
		"safeRevealed": g.safeRevealed,
	}).Debug("game over")
}

// PlayerGrid is the board as the player sees it.
func (g *Game) PlayerGrid() Grid {
	grid := make(Grid, len(g.cells))
	for i, c := range g.cells {
		switch {
		case c.Flagged:
			grid[i] = Flagged
		case !c.Revealed:
			grid[i] = Unknown
		case i == g.exploded:
			grid[i] = ExplodedMine
		case c.IsMine:
			grid[i] = UnflaggedMine
		default:
			grid[i] = CellState(c.AdjacentMines)
		}
	}
	return grid
}
