package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrInvalidDifficultyPreset = errors.New("invalid difficulty preset")

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var presets = map[Difficulty]mines.GameParams{
	Easy:   {Rows: 9, Cols: 9, MineCount: 10},
	Medium: {Rows: 16, Cols: 16, MineCount: 40},
	Hard:   {Rows: 16, Cols: 30, MineCount: 99},
}

func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "EASY":
		return Easy, nil
	case "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficultyPreset, name)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Next cycles EASY -> MEDIUM -> HARD -> EASY.
func (d Difficulty) Next() (Difficulty, error) {
	switch d {
	case Easy:
		return Medium, nil
	case Medium:
		return Hard, nil
	case Hard:
		return Easy, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidDifficultyPreset, int(d))
}

func (d Difficulty) Params() (mines.GameParams, error) {
	p, ok := presets[d]
	if !ok {
		return mines.GameParams{}, fmt.Errorf("%w: %d", ErrInvalidDifficultyPreset, int(d))
	}
	return p, nil
}
