package match

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/search"
)

// Config describes the competitors and rules of one match.
type Config struct {
	Width  int
	Height int
	// Human adds a keyboard-driven competitor that joins first.
	Human     bool
	HumanName string
	// AIs holds one difficulty profile per AI competitor.
	AIs []search.Profile
	// Seed makes the match reproducible. Zero picks a random seed.
	Seed      uint64
	Targeting Targeting
	// MaxDecisionsPerTick caps AI searches per tick. Zero means no cap.
	MaxDecisionsPerTick int
}

// DefaultConfig is a human against seven medium AIs on standard boards.
func DefaultConfig() Config {
	ais := make([]search.Profile, 7)
	for i := range ais {
		ais[i] = search.DefaultProfile()
	}
	return Config{
		Width:               board.DefaultWidth,
		Height:              board.DefaultHeight,
		Human:               true,
		HumanName:           "you",
		AIs:                 ais,
		Targeting:           TargetRandom,
		MaxDecisionsPerTick: 4,
	}
}

// Competitors is the total number of boards in the match.
func (c Config) Competitors() int {
	n := len(c.AIs)
	if c.Human {
		n++
	}
	return n
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Width < 4 {
		result = multierror.Append(result, errors.Errorf("width %d is narrower than a piece", c.Width))
	}
	if c.Height < 4 {
		result = multierror.Append(result, errors.Errorf("height %d is shorter than a piece", c.Height))
	}
	if c.Competitors() == 0 {
		result = multierror.Append(result, errors.New("match has no competitors"))
	}
	if _, err := ParseTargeting(string(c.Targeting)); err != nil {
		result = multierror.Append(result, err)
	}
	if c.MaxDecisionsPerTick < 0 {
		result = multierror.Append(result, errors.Errorf("max decisions per tick %d is negative", c.MaxDecisionsPerTick))
	}
	for i, p := range c.AIs {
		if err := p.Validate(); err != nil {
			result = multierror.Append(result, errors.WithMessagef(err, "ai %d", i+1))
		}
	}
	return result.ErrorOrNil()
}
