package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrDuplicateShipName = errors.New("fleet lists a ship name twice")

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Rules    Rules    `yaml:"rules"`
	Layouts  []Layout `yaml:"layouts"`
}

type Rules struct {
	Width  int        `yaml:"width" env:"BATTLEFIELD_WIDTH" env-default:"10"`
	Height int        `yaml:"height" env:"BATTLEFIELD_HEIGHT" env-default:"10"`
	Fleet  []ShipSpec `yaml:"fleet"`
}

type ShipSpec struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// Layout - preset placements of one player.
type Layout struct {
	Player string      `yaml:"player"`
	Ships  []Placement `yaml:"ships"`
}

type Placement struct {
	Ship        string `yaml:"ship"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Orientation string `yaml:"orientation"`
}

// DefaultFleet - used when the config file does not list a fleet.
var DefaultFleet = []ShipSpec{
	{Name: "Carrier", Length: 5},
	{Name: "Battleship", Length: 4},
	{Name: "Cruiser", Length: 3},
	{Name: "Submarine", Length: 3},
	{Name: "Destroyer", Length: 2},
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if len(config.Rules.Fleet) == 0 {
		config.Rules.Fleet = append([]ShipSpec(nil), DefaultFleet...)
	}

	if err := config.Rules.validateFleet(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// validateFleet - layouts refer to ships by name, so names must be unique.
func (that *Rules) validateFleet() error {
	seen := make(map[string]struct{}, len(that.Fleet))
	for _, spec := range that.Fleet {
		if _, ok := seen[spec.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateShipName, spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}
	return nil
}

// FindShip - looks a fleet entry up by name.
func (that *Rules) FindShip(name string) (int, bool) {
	for i, spec := range that.Fleet {
		if spec.Name == name {
			return i, true
		}
	}
	return 0, false
}
