package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"LiveCellIsolatedDies", true, 0, false},
		{"LiveCellLonelyDies", true, 1, false},
		{"LiveCellSurvivesWithTwo", true, 2, true},
		{"LiveCellSurvivesWithThree", true, 3, true},
		{"LiveCellCrowdedDies", true, 4, false},
		{"LiveCellFullyCrowdedDies", true, 8, false},
		{"DeadCellBornWithThree", false, 3, true},
		{"DeadCellStaysDeadWithTwo", false, 2, false},
		{"DeadCellStaysDeadWithFour", false, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Alive(tc.alive, tc.neighbors))
		})
	}
}

// TestAlive_Exhaustive sweeps every reachable neighbor count for both cell
// states: a live cell needs exactly 2 or 3 neighbors, a dead one exactly 3.
func TestAlive_Exhaustive(t *testing.T) {
	t.Parallel()

	for neighbors := 0; neighbors <= 8; neighbors++ {
		t.Run(fmt.Sprintf("neighbors_%d", neighbors), func(t *testing.T) {
			assert.Equal(t, neighbors == 2 || neighbors == 3, Alive(true, neighbors))
			assert.Equal(t, neighbors == 3, Alive(false, neighbors))
		})
	}
}
