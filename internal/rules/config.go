package rules

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// IntRange is an inclusive span of integers plus a set of extra values that
// are drawn with the same weight as each value of the span.
type IntRange struct {
	Min    int   `yaml:"min"`
	Max    int   `yaml:"max"`
	Extras []int `yaml:"extras,omitempty"`
}

// spanSize is the number of values in [Min, Max], zero when Max < Min
func (r IntRange) spanSize() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// IsZero reports whether the range was left unset
func (r IntRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0 && len(r.Extras) == 0
}

// PoolSize is the number of equally likely outcomes of the range
func (r IntRange) PoolSize() int {
	return r.spanSize() + len(r.Extras)
}

// Contains reports whether v is a possible outcome of the range
func (r IntRange) Contains(v int) bool {
	if r.spanSize() > 0 && v >= r.Min && v <= r.Max {
		return true
	}
	for _, e := range r.Extras {
		if e == v {
			return true
		}
	}
	return false
}

// WildScene is a scene where walking through grass can trigger encounters.
// A scene without a pokedex range draws from the global one.
type WildScene struct {
	PokedexRange IntRange `yaml:"pokedex_range"`
	LevelRange   IntRange `yaml:"level_range"`
}

// Config holds the game rules. It is loaded once at startup and handed out by
// value.
type Config struct {
	BaseXPCeiling         float64 `yaml:"base_xp_ceiling"`
	NormalXPMultiplier    float64 `yaml:"normal_xp_multiplier"`
	LegendaryXPMultiplier float64 `yaml:"legendary_xp_multiplier"`
	MaxLevel              int     `yaml:"max_level"`

	DefaultIV int `yaml:"default_iv"`
	DefaultEV int `yaml:"default_ev"`

	// WildEncounterLikelihood is a percentage in [0, 100]
	WildEncounterLikelihood int                  `yaml:"wild_encounter_likelihood"`
	PokedexRange            IntRange             `yaml:"pokedex_range"`
	Scenes                  map[string]WildScene `yaml:"scenes"`

	StarterScene     string  `yaml:"starter_scene"`
	StarterLocationX float64 `yaml:"starter_location_x"`
	StarterLocationY float64 `yaml:"starter_location_y"`

	MaxGameSaves int `yaml:"max_game_saves"`
	MaxDeckSize  int `yaml:"max_deck_size"`
}

// Validate checks the rules for internal consistency
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BaseXPCeiling <= 0 {
		vb.Field("base_xp_ceiling", "must be positive")
	}
	if c.NormalXPMultiplier < 1 {
		vb.Field("normal_xp_multiplier", "must be at least 1")
	}
	if c.LegendaryXPMultiplier < c.NormalXPMultiplier {
		vb.Field("legendary_xp_multiplier", "must be at least normal_xp_multiplier")
	}
	errors.ValidateMin("max_level", c.MaxLevel, 1, vb)
	errors.ValidateRange("default_iv", c.DefaultIV, 0, 31, vb)
	errors.ValidateRange("default_ev", c.DefaultEV, 0, 255, vb)
	errors.ValidateRange("wild_encounter_likelihood", c.WildEncounterLikelihood, 0, 100, vb)
	validateIntRange("pokedex_range", c.PokedexRange, vb)

	for name, scene := range c.Scenes {
		if !scene.PokedexRange.IsZero() {
			validateIntRange(fmt.Sprintf("scenes.%s.pokedex_range", name), scene.PokedexRange, vb)
		}
		validateIntRange(fmt.Sprintf("scenes.%s.level_range", name), scene.LevelRange, vb)
		if scene.LevelRange.Min < 1 || scene.LevelRange.Max > c.MaxLevel {
			vb.Fieldf(fmt.Sprintf("scenes.%s.level_range", name), "must be within 1 and %d", c.MaxLevel)
		}
	}

	errors.ValidateRequired("starter_scene", c.StarterScene, vb)
	errors.ValidateMin("max_game_saves", c.MaxGameSaves, 1, vb)
	errors.ValidateMin("max_deck_size", c.MaxDeckSize, 1, vb)

	return vb.Build()
}

func validateIntRange(field string, r IntRange, vb *errors.ValidationBuilder) {
	if r.PoolSize() == 0 {
		vb.Field(field, "must contain at least one value")
	}
}

// ParseConfig decodes YAML rules and validates them. Unknown keys are
// rejected so typos do not silently fall back to zero values.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rules")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads rules from path, or the built-in rules when path is empty
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read rules file %s", path)
	}
	return ParseConfig(data)
}

// DefaultConfig returns the built-in rules
func DefaultConfig() (Config, error) {
	return ParseConfig(defaultRulesYAML)
}
