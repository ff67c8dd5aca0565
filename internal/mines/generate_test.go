package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []GameParams{
		{Rows: 9, Cols: 9, MineCount: 10},
		{Rows: 16, Cols: 16, MineCount: 40},
		{Rows: 16, Cols: 30, MineCount: 99},
		{Rows: 5, Cols: 5, MineCount: 16},
	}

	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			for start := range params.Size() {
				mines := params.generate(start, r)
				require.Len(t, mines, params.MineCount)

				seen := make(map[int]bool, len(mines))
				for _, i := range mines {
					assert.False(t, seen[i], "duplicate mine %d", i)
					seen[i] = true
					assert.True(t,
						absDiff(i/params.Cols, start/params.Cols) > 1 ||
							absDiff(i%params.Cols, start%params.Cols) > 1,
						"mine %d inside safe zone of %d", i, start)
				}
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	params := GameParams{Rows: 9, Cols: 9, MineCount: 10}
	a := params.generate(40, rand.New(rand.NewPCG(7, 7)))
	b := params.generate(40, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}

func TestGenerateSpreadsMines(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	var (
		params = GameParams{Rows: 5, Cols: 5, MineCount: 4}
		r      = rand.New(rand.NewPCG(1, 2))
		runs   = 20000
		hits   = make([]int, params.Size())
	)
	// first click in the corner leaves 21 candidates
	for range runs {
		for _, i := range params.generate(0, r) {
			hits[i]++
		}
	}

	want := float64(runs*params.MineCount) / 21
	for i, h := range hits {
		if i == 0 || i == 1 || i == 5 || i == 6 {
			assert.Zero(t, h, "cell %d", i)
			continue
		}
		assert.InEpsilon(t, want, float64(h), 0.1, "cell %d", i)
	}
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 2, absDiff(1, 3))
	assert.Equal(t, 2, absDiff(3, 1))
	assert.Equal(t, 0, absDiff(-4, -4))
}
