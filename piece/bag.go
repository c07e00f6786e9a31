package piece

import "math/rand/v2"

// Bag is the 7-bag randomizer: it deals every type once per shuffled cycle before
// starting a fresh cycle, so no type is ever absent for more than 2*NumTypes-2 draws.
type Bag struct {
	rng   *rand.Rand
	queue []Type
	drawn int
}

// NewBag creates a bag that shuffles with rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// NewSeededBag creates a bag whose sequence is fully determined by seed.
func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Next removes and returns the next piece, positioned at the origin.
func (b *Bag) Next() Piece {
	return New(b.NextType())
}

// NextType removes and returns the next piece type.
func (b *Bag) NextType() Type {
	if len(b.queue) == 0 {
		b.refill()
	}
	t := b.queue[0]
	b.queue = b.queue[1:]
	b.drawn++
	return t
}

// Preview returns the next n types without consuming them. Later calls to Next return
// exactly these types in this order.
func (b *Bag) Preview(n int) []Type {
	if n <= 0 {
		return nil
	}
	for len(b.queue) < n {
		b.refill()
	}
	out := make([]Type, n)
	copy(out, b.queue)
	return out
}

// Drawn returns how many pieces have been dealt since the bag was created.
func (b *Bag) Drawn() int {
	return b.drawn
}

func (b *Bag) refill() {
	cycle := All()
	b.rng.Shuffle(len(cycle), func(i, j int) {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	})
	b.queue = append(b.queue, cycle[:]...)
}
