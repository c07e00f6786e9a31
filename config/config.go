// Package config loads the game settings from a YAML file in the user's XDG config
// directory.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/match"
	"github.com/plus3/blockroyale/search"
	"gopkg.in/yaml.v3"
)

var cfgFile = "blockroyale/config.yaml"

// InvalidConfig lists every problem found by Validate.
type InvalidConfig struct {
	Errors *multierror.Error
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.Errors.Error())
}

func (e *InvalidConfig) Unwrap() error { return e.Errors }

type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Human     bool   `yaml:"human"`
	HumanName string `yaml:"human_name"`
	AIs       int    `yaml:"ais"`
	// Opponents is the difficulty mix. AI i plays Opponents[i%len(Opponents)].
	Opponents []string `yaml:"opponents"`
	// Seed zero picks a time based seed.
	Seed                uint64        `yaml:"seed"`
	Targeting           string        `yaml:"targeting"`
	TickInterval        time.Duration `yaml:"tick_interval"`
	MaxDecisionsPerTick int           `yaml:"max_decisions_per_tick"`
	// Profiles adds custom difficulties or replaces presets of the same name.
	Profiles []search.Profile `yaml:"profiles,omitempty"`
}

// Default is a human against seven AIs of mixed difficulty at 60 ticks per second.
func Default() Config {
	return Config{
		Width:               board.DefaultWidth,
		Height:              board.DefaultHeight,
		Human:               true,
		HumanName:           "you",
		AIs:                 7,
		Opponents:           []string{"easy", "medium", "medium", "hard"},
		Targeting:           string(match.TargetRandom),
		TickInterval:        time.Second / 60,
		MaxDecisionsPerTick: 4,
	}
}

// Load reads the config file from the XDG config directories. A missing file yields
// the defaults.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		cfg := Default()
		return &cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path. Keys absent from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.WithMessagef(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", errors.Wrap(err, "locate config file")
	}
	return path, c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o664), "write config")
}

// Profile resolves a difficulty name, preferring custom profiles over presets.
func (c *Config) Profile(name string) (search.Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return search.ProfileByName(name)
}

func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, errors.Errorf(format, args...))
	}

	if c.AIs < 0 {
		add("ais must not be negative, got %d", c.AIs)
	}
	if c.AIs > 0 && len(c.Opponents) == 0 {
		add("opponents must name at least one difficulty")
	}
	for _, name := range c.Opponents {
		if _, ok := c.Profile(name); !ok {
			add("unknown difficulty %q", name)
		}
	}
	for _, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			result = multierror.Append(result, errors.WithMessagef(err, "profile %q", p.Name))
		}
	}
	if c.TickInterval <= 0 {
		add("tick_interval must be positive, got %s", c.TickInterval)
	}
	if err := c.matchConfig().Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return &InvalidConfig{Errors: result}
	}
	return nil
}

// MatchConfig validates c and converts it into match rules.
func (c *Config) MatchConfig() (match.Config, error) {
	if err := c.Validate(); err != nil {
		return match.Config{}, err
	}
	return c.matchConfig(), nil
}

func (c *Config) matchConfig() match.Config {
	ais := make([]search.Profile, 0, c.AIs)
	for i := 0; i < c.AIs && len(c.Opponents) > 0; i++ {
		if p, ok := c.Profile(c.Opponents[i%len(c.Opponents)]); ok {
			ais = append(ais, p)
		}
	}
	return match.Config{
		Width:               c.Width,
		Height:              c.Height,
		Human:               c.Human,
		HumanName:           c.HumanName,
		AIs:                 ais,
		Seed:                c.Seed,
		Targeting:           match.Targeting(c.Targeting),
		MaxDecisionsPerTick: c.MaxDecisionsPerTick,
	}
}
