package piece

import "fmt"

// Offset is a wall-kick translation. DY grows downward like board rows.
type Offset struct {
	DX, DY int
}

// Kick tables are indexed by transition (see transition) and list the offsets to try in
// order. The first entry is always the unkicked rotation.
var (
	standardKicks = [8][5]Offset{
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 0->1
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 1->0
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 1->2
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 2->1
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 2->3
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 3->2
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 3->0
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 0->3
	}
	longKicks = [8][5]Offset{
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 0->1
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 1->0
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 1->2
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 2->1
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 2->3
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 3->2
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 3->0
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 0->3
	}
	noKicks = []Offset{{0, 0}}
)

// transition maps a pair of adjacent rotation indices to its kick table row.
func transition(from, to int) (int, bool) {
	if from < 0 || from > 3 || to < 0 || to > 3 {
		return 0, false
	}
	switch {
	case to == (from+1)%4:
		return from * 2, true
	case from == (to+1)%4:
		return to*2 + 1, true
	}
	return 0, false
}

// Adjacent reports whether two rotation indices differ by exactly one step (mod 4).
func Adjacent(from, to int) bool {
	_, ok := transition(from, to)
	return ok
}

// WallKicks returns the ordered kick offsets for rotating t from one rotation index to an
// adjacent one. The first offset is always (0,0). The O piece only ever yields (0,0).
// Requesting a non-adjacent transition panics.
func WallKicks(t Type, from, to int) []Offset {
	mustValid(t)
	if t == O {
		return noKicks
	}
	idx, ok := transition(from, to)
	if !ok {
		panic(fmt.Sprintf("piece: no kick data for %s %d->%d", t, from, to))
	}
	if t == I {
		return longKicks[idx][:]
	}
	return standardKicks[idx][:]
}
