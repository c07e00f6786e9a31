package piece_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockroyale/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagCyclesArePermutations(t *testing.T) {
	bag := piece.NewSeededBag(42)

	for cycle := 0; cycle < 50; cycle++ {
		seen := make(map[piece.Type]int)
		for i := 0; i < piece.NumTypes; i++ {
			seen[bag.Next().Type]++
		}
		require.Len(t, seen, piece.NumTypes, "cycle %d", cycle)
		for typ, n := range seen {
			assert.Equal(t, 1, n, "type %s in cycle %d", typ, cycle)
		}
	}
	assert.Equal(t, 50*piece.NumTypes, bag.Drawn())
}

func TestBagStarvationWindow(t *testing.T) {
	bag := piece.NewBag(rand.New(rand.NewPCG(7, 11)))
	draws := make([]piece.Type, 700)
	for i := range draws {
		draws[i] = bag.NextType()
	}

	window := 2*piece.NumTypes - 1
	for start := 0; start+window <= len(draws); start++ {
		seen := make(map[piece.Type]bool)
		for _, typ := range draws[start : start+window] {
			seen[typ] = true
		}
		require.Len(t, seen, piece.NumTypes, "window starting at %d", start)
	}
}

func TestBagPreview(t *testing.T) {
	t.Run("preview matches later draws", func(t *testing.T) {
		bag := piece.NewSeededBag(3)
		bag.Next()
		bag.Next()

		preview := bag.Preview(12)
		require.Len(t, preview, 12)
		assert.Equal(t, preview, bag.Preview(12), "preview must be repeatable")

		for i, want := range preview {
			assert.Equal(t, want, bag.Next().Type, "draw %d", i)
		}
	})

	t.Run("preview does not change the sequence", func(t *testing.T) {
		a := piece.NewSeededBag(99)
		b := piece.NewSeededBag(99)
		b.Preview(20)

		for i := 0; i < 30; i++ {
			assert.Equal(t, a.NextType(), b.NextType(), "draw %d", i)
		}
		assert.Equal(t, a.Drawn(), b.Drawn())
	})

	t.Run("non-positive preview", func(t *testing.T) {
		assert.Empty(t, piece.NewSeededBag(1).Preview(0))
	})
}

func TestBagShuffleIsUniform(t *testing.T) {
	bag := piece.NewSeededBag(2024)
	const cycles = 7000
	var firsts [piece.NumTypes]int
	for i := 0; i < cycles; i++ {
		firsts[bag.NextType()]++
		for j := 1; j < piece.NumTypes; j++ {
			bag.NextType()
		}
	}
	for typ, n := range firsts {
		// expected 1000 per type
		assert.InDelta(t, cycles/piece.NumTypes, n, 150, "type %s led %d cycles", piece.Type(typ), n)
	}
}

func ExampleBag() {
	bag := piece.NewSeededBag(1)
	seen := make(map[piece.Type]bool)
	for i := 0; i < piece.NumTypes; i++ {
		seen[bag.Next().Type] = true
	}
	fmt.Println(len(seen))
	// Output: 7
}
