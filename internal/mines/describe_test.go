package mines

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	g := newPlanted(t, 4, 4, [2]int{0, 0}, [2]int{3, 3})

	want := []string{
		"mines 4x4(2)",
		"* - - -",
		"- - - -",
		"- - - -",
		"- - - *",
		"adjacency",
		"0 1 0 0",
		"1 1 0 0",
		"0 0 1 1",
		"0 0 1 0",
	}
	assert.Equal(t, want, slices.Collect(g.Describe()))
}

func TestDescribeIsRestartable(t *testing.T) {
	g, err := NewGame(GameParams{Rows: 3, Cols: 4, MineCount: 0}, newRand())
	assert.NoError(t, err)

	seq := g.Describe()
	first := slices.Collect(seq)
	assert.Len(t, first, 8)
	assert.Equal(t, first, slices.Collect(seq))

	var got []string
	for line := range seq {
		got = append(got, line)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, first[:3], got)
}

func TestDescribeDoesNotPlay(t *testing.T) {
	g, err := NewGame(GameParams{Rows: 9, Cols: 9, MineCount: 10}, newRand())
	assert.NoError(t, err)

	for range g.Describe() {
	}
	assert.False(t, g.Placed())
	assert.Equal(t, 0, g.SafeRevealed())
}
