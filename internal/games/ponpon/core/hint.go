package core

const defaultSearchBudget = 4096

// LongestChain searches g for the longest path of Idle, adjacent,
// same-type tiles, up to maxLen tiles. Each start cell gets at most
// budget extensions, so on crowded boards the answer is a long chain
// rather than the longest one. Ties go to the first start in row-major
// order. It returns nil on an empty board.
func LongestChain(g *Grid, maxLen, budget int) []Coord {
	if maxLen <= 0 {
		maxLen = g.W * g.H
	}
	if budget <= 0 {
		budget = defaultSearchBudget
	}
	var best []Coord
	visited := make([]bool, g.W*g.H)
	path := make([]Coord, 0, maxLen)

	var steps int
	var walk func(c Coord)
	walk = func(c Coord) {
		steps++
		visited[g.index(c)] = true
		path = append(path, c)
		if len(path) > len(best) {
			best = append(best[:0], path...)
		}
		if len(path) < maxLen && steps < budget {
			t := g.At(c)
			for _, n := range g.Neighbours(c) {
				nt := g.At(n)
				if visited[g.index(n)] || nt == nil || nt.State != TileIdle || nt.Type != t.Type {
					continue
				}
				walk(n)
				if len(best) >= maxLen {
					break
				}
			}
		}
		path = path[:len(path)-1]
		visited[g.index(c)] = false
	}

	g.Each(func(c Coord, t *Tile) {
		if t == nil || t.State != TileIdle || len(best) >= maxLen {
			return
		}
		steps = 0
		walk(c)
	})
	if len(best) == 0 {
		return nil
	}
	return best
}
