package board

// idGen hands out millisecond-shaped ids that never repeat, even when two
// records are created within the same millisecond.
type idGen struct {
	last int64
}

func (g *idGen) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

func (g *idGen) next(nowMillis int64) int64 {
	id := max(nowMillis, g.last+1)
	g.last = id
	return id
}
