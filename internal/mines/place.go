package mines

import "math/rand/v2"

// placeMines writes down the list of every position outside the safe
// region, then picks MineCount off it at random. Unlike rejection
// sampling this cannot under-place on dense boards: the count is exact
// by construction.
func (g *Game) placeMines(r *rand.Rand) {
	safe := make(map[int]bool, 4)
	for _, rc := range g.SafeRegion() {
		safe[rc[0]*g.GridSize+rc[1]] = true
	}

	candidates := make([]int, 0, g.CellCount()-len(safe))
	for i := range g.Cells {
		if !safe[i] {
			candidates = append(candidates, i)
		}
	}

	k := len(candidates)
	for range g.MineCount {
		i := r.IntN(k)
		g.Cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}
}

func (g *Game) computeAdjacency() {
	for row := range g.GridSize {
		for col := range g.GridSize {
			c := g.cellAt(row, col)
			if c.Mine {
				continue
			}
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					rr, cc := row+dr, col+dc
					if g.InBounds(rr, cc) && g.cellAt(rr, cc).Mine {
						n++
					}
				}
			}
			c.Adjacent = n
		}
	}
}
