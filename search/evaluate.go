package search

import (
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
)

// Metrics describe the board that results from locking one placement, measured after
// full rows are removed.
type Metrics struct {
	Lines           int
	MaxHeight       int
	AggregateHeight int
	Holes           int
	Bumpiness       int
	Spin            bool
	Perfect         bool
}

// Analyze locks p into scratch, a copy of g, clears full rows and measures the surface.
// g is never modified. scratch must have the size of g; its contents are overwritten.
func Analyze(g, scratch *board.Grid, p piece.Piece) Metrics {
	m := Metrics{Spin: board.IsSpin(g, p)}
	scratch.CopyFrom(g)
	scratch.Place(p)
	m.Lines = scratch.ClearFullRows()
	m.Perfect = m.Lines > 0 && scratch.IsEmpty()
	measureSurface(scratch, &m)
	return m
}

func measureSurface(g *board.Grid, m *Metrics) {
	prev := 0
	for x := 0; x < g.Width(); x++ {
		h := g.ColumnHeight(x)
		m.AggregateHeight += h
		m.MaxHeight = max(m.MaxHeight, h)
		if x > 0 {
			m.Bumpiness += abs(h - prev)
		}
		prev = h
		for y := g.Height() - h; y < g.Height(); y++ {
			if !g.At(x, y).Filled() {
				m.Holes++
			}
		}
	}
}

// Score combines metrics into one value; higher is better. Cleared lines count
// squared so multi-line clears are preferred.
func (p Profile) Score(m Metrics) float64 {
	w := p.Weights
	score := w.Lines*float64(m.Lines*m.Lines) +
		w.Height*float64(m.MaxHeight) +
		w.Holes*float64(m.Holes) +
		w.Bumpiness*float64(m.Bumpiness) +
		w.AggregateHeight*float64(m.AggregateHeight)
	if m.Spin {
		score += p.SpinBonus
	}
	if m.Perfect {
		score += p.PerfectClearBonus
	}
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
