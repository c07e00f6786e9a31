package search

import (
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Weights are the coefficients of the placement heuristic. Penalties are negative.
type Weights struct {
	Lines           float64 `yaml:"lines"`
	Height          float64 `yaml:"height"`
	Holes           float64 `yaml:"holes"`
	Bumpiness       float64 `yaml:"bumpiness"`
	AggregateHeight float64 `yaml:"aggregate_height"`
}

// Profile is an immutable AI difficulty setting.
type Profile struct {
	Name string `yaml:"name"`
	// LookAhead is the number of known pieces considered: 1 searches only the current
	// piece, 2 also places the next piece on each resulting board.
	LookAhead            int           `yaml:"look_ahead"`
	Weights              Weights       `yaml:"weights"`
	SpinBonus            float64       `yaml:"spin_bonus"`
	PerfectClearBonus    float64       `yaml:"perfect_clear_bonus"`
	MoveErrorProbability float64       `yaml:"move_error_probability"`
	MinDecisionInterval  time.Duration `yaml:"min_decision_interval"`
	MaxDecisionInterval  time.Duration `yaml:"max_decision_interval"`
}

// DefaultWeights is the tuned heuristic used by the medium and stronger presets.
var DefaultWeights = Weights{
	Lines:           76.0,
	Height:          -20.0,
	Holes:           -35.7,
	Bumpiness:       -18.4,
	AggregateHeight: -51.0,
}

const (
	defaultSpinBonus         = 100
	defaultPerfectClearBonus = 1000
)

var presets = map[string]Profile{
	"easy": {
		Name:      "easy",
		LookAhead: 1,
		Weights: Weights{
			Lines:           50.0,
			Height:          -10.0,
			Holes:           -15.0,
			Bumpiness:       -8.0,
			AggregateHeight: -30.0,
		},
		SpinBonus:            defaultSpinBonus,
		PerfectClearBonus:    defaultPerfectClearBonus,
		MoveErrorProbability: 0.15,
		MinDecisionInterval:  600 * time.Millisecond,
		MaxDecisionInterval:  1000 * time.Millisecond,
	},
	"medium": {
		Name:                 "medium",
		LookAhead:            1,
		Weights:              DefaultWeights,
		SpinBonus:            defaultSpinBonus,
		PerfectClearBonus:    defaultPerfectClearBonus,
		MoveErrorProbability: 0.06,
		MinDecisionInterval:  300 * time.Millisecond,
		MaxDecisionInterval:  600 * time.Millisecond,
	},
	"hard": {
		Name:                 "hard",
		LookAhead:            1,
		Weights:              DefaultWeights,
		SpinBonus:            defaultSpinBonus,
		PerfectClearBonus:    defaultPerfectClearBonus,
		MoveErrorProbability: 0.02,
		MinDecisionInterval:  150 * time.Millisecond,
		MaxDecisionInterval:  300 * time.Millisecond,
	},
	"expert": {
		Name:                 "expert",
		LookAhead:            2,
		Weights:              DefaultWeights,
		SpinBonus:            defaultSpinBonus,
		PerfectClearBonus:    defaultPerfectClearBonus,
		MoveErrorProbability: 0,
		MinDecisionInterval:  50 * time.Millisecond,
		MaxDecisionInterval:  150 * time.Millisecond,
	},
}

// DefaultProfile returns the medium preset.
func DefaultProfile() Profile {
	return presets["medium"]
}

// ProfileByName returns a preset by name.
func ProfileByName(name string) (Profile, bool) {
	p, ok := presets[name]
	return p, ok
}

// ProfileNames lists the preset names in alphabetical order.
func ProfileNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports every invalid field of the profile.
func (p Profile) Validate() error {
	var result *multierror.Error
	if p.Name == "" {
		result = multierror.Append(result, errors.New("profile name is empty"))
	}
	if p.LookAhead < 1 || p.LookAhead > 2 {
		result = multierror.Append(result, errors.Errorf("%s: look_ahead must be 1 or 2, got %d", p.Name, p.LookAhead))
	}
	if p.MoveErrorProbability < 0 || p.MoveErrorProbability > 1 {
		result = multierror.Append(result, errors.Errorf("%s: move_error_probability %v is outside [0,1]", p.Name, p.MoveErrorProbability))
	}
	if p.MinDecisionInterval <= 0 {
		result = multierror.Append(result, errors.Errorf("%s: min_decision_interval must be positive", p.Name))
	}
	if p.MaxDecisionInterval < p.MinDecisionInterval {
		result = multierror.Append(result, errors.Errorf("%s: max_decision_interval %s is below min %s", p.Name, p.MaxDecisionInterval, p.MinDecisionInterval))
	}
	return result.ErrorOrNil()
}
