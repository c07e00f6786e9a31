package match

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Roster holds a match's competitors in join order and indexes them by id.
type Roster struct {
	competitors []Competitor
	slots       *intmap.Map[int, int]
	alive       int
}

func newRoster(capacity int) *Roster {
	return &Roster{
		competitors: make([]Competitor, 0, capacity),
		slots:       intmap.New[int, int](capacity),
	}
}

func (r *Roster) add(c Competitor) {
	r.slots.Put(c.ID(), len(r.competitors))
	r.competitors = append(r.competitors, c)
	if c.Alive() {
		r.alive++
	}
}

// Get returns the competitor with the given id.
func (r *Roster) Get(id int) (Competitor, bool) {
	slot, ok := r.slots.Get(id)
	if !ok {
		return nil, false
	}
	return r.competitors[slot], true
}

// Len is the number of competitors that joined the match.
func (r *Roster) Len() int { return len(r.competitors) }

// AliveCount is the number of competitors not yet eliminated.
func (r *Roster) AliveCount() int { return r.alive }

// All iterates over every competitor in join order.
func (r *Roster) All() iter.Seq[Competitor] {
	return func(yield func(Competitor) bool) {
		for _, c := range r.competitors {
			if !yield(c) {
				return
			}
		}
	}
}

// Alive iterates over competitors still in play, in join order.
func (r *Roster) Alive() iter.Seq[Competitor] {
	return func(yield func(Competitor) bool) {
		for _, c := range r.competitors {
			if c.Alive() && !yield(c) {
				return
			}
		}
	}
}

// eliminate marks c as out and returns its final rank: one more than the number of
// competitors still alive.
func (r *Roster) eliminate(c Competitor) int {
	p := c.state()
	if !p.alive {
		return p.rank
	}
	p.alive = false
	r.alive--
	p.rank = r.alive + 1
	return p.rank
}
