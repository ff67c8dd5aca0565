package mines

import "math/rand/v2"

// generate picks p.MineCount distinct mine positions, none of which is at
// start or within one cell of it.
func (p GameParams) generate(start int, r *rand.Rand) []int {
	var (
		startRow, startCol = start/p.Cols, start%p.Cols
		candidates         = make([]int, 0, p.Size())
	)

	/*
	 * Write down the list of possible mine locations.
	 */
	for row := range p.Rows {
		for col := range p.Cols {
			if absDiff(startRow, row) > 1 || absDiff(startCol, col) > 1 {
				candidates = append(candidates, row*p.Cols+col)
			}
		}
	}

	/*
	 * Now pick n off the list at random: a partial Fisher-Yates shuffle,
	 * the first MineCount entries end up being the chosen ones.
	 */
	for i := range p.MineCount {
		j := i + r.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:p.MineCount]
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
