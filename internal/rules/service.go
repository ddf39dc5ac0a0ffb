// Package rules implements the game mechanics: stat growth, experience and
// leveling, move set selection and wild encounter rolls. It performs no I/O.
package rules

//go:generate mockgen -destination=mock/mock_service.go -package=rulesmock github.com/KirkDiggler/pokemon-api/internal/rules Service

import (
	"maps"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// MoveSet holds up to four move resource names. Empty strings are empty slots.
type MoveSet [entities.MoveSlots]string

// Names returns the non-empty move names in slot order
func (m MoveSet) Names() []string {
	names := make([]string, 0, len(m))
	for _, n := range m {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// AddXpOutput is the result of applying experience to an owned pokemon
type AddXpOutput struct {
	OwnedPokemon *entities.OwnedPokemon
	LevelsGained int
}

// Service defines the game rule computations
type Service interface {
	// CalculateStat computes a non-HP stat at the given level
	CalculateStat(level, baseStat, iv, ev int) int

	// GetPokemonMaxHp computes max HP from the catalog hp base stat
	GetPokemonMaxHp(pokemon *catalog.Pokemon, level int) (int, error)

	// GetRandomNumberFromIntRange draws uniformly from the span and extras of r
	GetRandomNumberFromIntRange(r IntRange) (int, error)

	// GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded first rolls
	// for an encounter and returns nil when none happens
	GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(r IntRange) (*int, error)

	// GetRandomMoveSetFromPokemon samples up to four distinct moves learnable
	// at or below level
	GetRandomMoveSetFromPokemon(pokemon *catalog.Pokemon, level int) (MoveSet, error)

	// AddXpToOwnedPokemon applies experience and levels up as often as the
	// experience allows. The input is not modified.
	AddXpToOwnedPokemon(owned *entities.OwnedPokemon, xpGained int) (*AddXpOutput, error)

	// RefillOwnedPokemonHp restores current HP to max HP. The input is not
	// modified.
	RefillOwnedPokemonHp(owned *entities.OwnedPokemon) (*entities.OwnedPokemon, error)

	// WildScene returns the encounter table of a scene
	WildScene(name string) (WildScene, bool)

	// IsWildEncounterScene reports whether encounters can happen in the scene
	IsWildEncounterScene(name string) bool

	// Config returns a copy of the rules
	Config() Config
}

// ServiceConfig holds the dependencies of the rules service
type ServiceConfig struct {
	Rules  Config
	Roller dice.Roller
}

// Validate validates the config and defaults the roller
func (cfg *ServiceConfig) Validate() error {
	if cfg.Roller == nil {
		cfg.Roller = dice.DefaultRoller
	}
	return cfg.Rules.Validate()
}

type service struct {
	rules  Config
	roller dice.Roller
}

// New creates the rules service
func New(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rules")
	}

	rules := cfg.Rules
	rules.Scenes = maps.Clone(cfg.Rules.Scenes)

	return &service{
		rules:  rules,
		roller: cfg.Roller,
	}, nil
}

func (s *service) WildScene(name string) (WildScene, bool) {
	scene, ok := s.rules.Scenes[name]
	if !ok {
		return WildScene{}, false
	}
	if scene.PokedexRange.IsZero() {
		scene.PokedexRange = s.rules.PokedexRange
	}
	return scene, true
}

func (s *service) IsWildEncounterScene(name string) bool {
	_, ok := s.rules.Scenes[name]
	return ok
}

func (s *service) Config() Config {
	c := s.rules
	c.Scenes = maps.Clone(s.rules.Scenes)
	return c
}
