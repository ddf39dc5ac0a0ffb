package rules

import (
	"math"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// XPCeiling is the experience needed to advance from level to level+1
func (c Config) XPCeiling(level int, species *catalog.PokemonSpecies) int {
	multiplier := c.NormalXPMultiplier
	if species.LevelsSlowly() {
		multiplier = c.LegendaryXPMultiplier
	}
	return int(math.Floor(c.BaseXPCeiling * math.Pow(multiplier, float64(level))))
}

func (s *service) AddXpToOwnedPokemon(owned *entities.OwnedPokemon, xpGained int) (*AddXpOutput, error) {
	if owned == nil {
		return nil, errors.InvalidArgument("owned pokemon is required")
	}
	if xpGained < 0 {
		return nil, errors.InvalidArgumentf("experience gained must not be negative, got %d", xpGained)
	}
	if owned.Pokemon == nil || owned.PokemonSpecies == nil {
		return nil, errors.Internalf("owned pokemon %s is missing catalog data", owned.ID)
	}

	updated := owned.Clone()
	updated.CurrentExperience += xpGained

	gained := 0
	for updated.PokemonLevel < s.rules.MaxLevel {
		ceiling := s.rules.XPCeiling(updated.PokemonLevel, updated.PokemonSpecies)
		if updated.CurrentExperience < ceiling {
			break
		}
		updated.CurrentExperience -= ceiling
		updated.PokemonLevel++
		gained++
	}

	return &AddXpOutput{
		OwnedPokemon: updated,
		LevelsGained: gained,
	}, nil
}
