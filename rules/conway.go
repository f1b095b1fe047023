package rules

// Conway's standard rule, B3/S23: birth on exactly three neighbors, survival
// on two or three.
const (
	birthNeighbors = 3
	survivalMin    = 2
	survivalMax    = 3
)

/*
Alive reports whether a cell lives in the next generation, given its current
state and the number of living neighbors:

 1. a live cell with fewer than 2 neighbors dies (underpopulation)
 2. a live cell with 2 or 3 neighbors survives
 3. a live cell with more than 3 neighbors dies (overpopulation)
 4. a dead cell with exactly 3 neighbors becomes alive (reproduction)
*/
func Alive(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= survivalMin && neighbors <= survivalMax
	}
	return neighbors == birthNeighbors
}
