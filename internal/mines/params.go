package mines

import "fmt"

const (
	MinRows = 3
	MinCols = 3

	// first click and its neighbours never hold a mine
	safeZoneSize = 9
)

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

func (p GameParams) MaxMines() int {
	return p.Size() - safeZoneSize
}

func (p GameParams) Validate() error {
	if p.Rows < MinRows || p.Cols < MinCols {
		return fmt.Errorf(
			"%w: %dx%d (minimum is %dx%d)",
			ErrInvalidDimension, p.Rows, p.Cols, MinRows, MinCols,
		)
	}
	if p.MineCount < 0 || p.MineCount > p.MaxMines() {
		return fmt.Errorf(
			"%w: %d (must be between 0 and %d for a %dx%d board)",
			ErrInvalidMineCount, p.MineCount, p.MaxMines(), p.Rows, p.Cols,
		)
	}
	return nil
}

func (p GameParams) ValidatePoint(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.MineCount)
}
