package boardview

// neighborOffsets are the 8 king-move deltas, precomputed once rather
// than recomputing the (dx, dy) loop body at every call site.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors8 returns the 8-neighborhood of (x, y), clipped to the
// [0, width) x [0, height) board. Order is the fixed scan order of
// neighborOffsets (row above, left/right, row below) — deterministic and
// reused by every caller that needs a stable neighbor ordering.
func Neighbors8(x, y, width, height int) []Coord {
	neighbors := make([]Coord, 0, 8)
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < width && ny >= 0 && ny < height {
			neighbors = append(neighbors, Coord{X: nx, Y: ny})
		}
	}
	return neighbors
}
