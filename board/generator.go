package board

import "github.com/minemind-go/minemind/boardview"

// generator places mines first-click-safe (never under the clicked cell
// or its 8-neighbors, when enough non-forbidden cells exist) and
// computes each cell's adjacent-mine count. Grounded on
// core/generator.py's _neighbors/place_mines/compute_counts split.
type generator struct {
	width, height, mines int
	rng                  *RNG
}

func newGenerator(width, height, mines int, rng *RNG) *generator {
	return &generator{width: width, height: height, mines: mines, rng: rng}
}

// placeMines returns the set of mine coordinates, excluding firstX/firstY
// and its neighbors whenever enough other cells remain to hold every
// mine; if the board is too small or too dense to honor that exclusion,
// it falls back to sampling from every cell so placement never fails.
func (g *generator) placeMines(firstX, firstY int) map[boardview.Coord]struct{} {
	forbidden := make(map[boardview.Coord]struct{})
	forbidden[boardview.Coord{X: firstX, Y: firstY}] = struct{}{}
	for _, n := range boardview.Neighbors8(firstX, firstY, g.width, g.height) {
		forbidden[n] = struct{}{}
	}

	candidates := g.cellsExcept(forbidden)
	if len(candidates) < g.mines {
		// Board too small/dense to honor the full first-click-and-neighbors
		// exclusion; fall back to excluding only the clicked cell itself,
		// since a revealed cell may never hold a mine even when its
		// neighbors must.
		clickOnly := map[boardview.Coord]struct{}{{X: firstX, Y: firstY}: {}}
		candidates = g.cellsExcept(clickOnly)
	}

	mines := make(map[boardview.Coord]struct{}, g.mines)
	for _, idx := range g.rng.Sample(len(candidates), g.mines) {
		mines[candidates[idx]] = struct{}{}
	}
	return mines
}

// cellsExcept returns every board cell not present in exclude.
func (g *generator) cellsExcept(exclude map[boardview.Coord]struct{}) []boardview.Coord {
	cells := make([]boardview.Coord, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := boardview.Coord{X: x, Y: y}
			if _, skip := exclude[c]; !skip {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// computeCounts returns, for every non-mine cell, its count of adjacent
// mines.
func (g *generator) computeCounts(mines map[boardview.Coord]struct{}) map[boardview.Coord]int {
	counts := make(map[boardview.Coord]int, g.width*g.height-len(mines))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := boardview.Coord{X: x, Y: y}
			if _, isMine := mines[c]; isMine {
				continue
			}
			n := 0
			for _, nb := range boardview.Neighbors8(x, y, g.width, g.height) {
				if _, isMine := mines[nb]; isMine {
					n++
				}
			}
			counts[c] = n
		}
	}
	return counts
}
