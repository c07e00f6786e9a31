package match

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Targeting picks which opponent receives an outgoing attack.
type Targeting string

const (
	// TargetRandom picks a uniformly random opponent.
	TargetRandom Targeting = "random"
	// TargetLeader picks the opponent with the highest score.
	TargetLeader Targeting = "leader"
	// TargetWeakest picks the opponent with the tallest stack.
	TargetWeakest Targeting = "weakest"
)

// ParseTargeting validates a targeting name.
func ParseTargeting(s string) (Targeting, error) {
	switch t := Targeting(s); t {
	case TargetRandom, TargetLeader, TargetWeakest:
		return t, nil
	}
	return "", errors.Errorf("unknown targeting %q", s)
}

// pick returns the opponent of from chosen by t among alive competitors. Ties go to
// the earliest joined competitor.
func (t Targeting) pick(r *Roster, from Competitor, rng *rand.Rand) (Competitor, bool) {
	var candidates []Competitor
	for c := range r.Alive() {
		if c.ID() != from.ID() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	switch t {
	case TargetLeader:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Engine().Score() > best.Engine().Score() {
				best = c
			}
		}
		return best, true
	case TargetWeakest:
		best, bestHeight := candidates[0], stackHeight(candidates[0])
		for _, c := range candidates[1:] {
			if h := stackHeight(c); h > bestHeight {
				best, bestHeight = c, h
			}
		}
		return best, true
	default:
		return candidates[rng.IntN(len(candidates))], true
	}
}

func stackHeight(c Competitor) int {
	g := c.Engine().Grid()
	height := 0
	for x := 0; x < g.Width(); x++ {
		height = max(height, g.ColumnHeight(x))
	}
	return height
}
