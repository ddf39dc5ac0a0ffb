package rules

import (
	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// statBracket is the level-scaled part shared by every stat formula
func statBracket(level, baseStat, iv, ev int) int {
	return (2*baseStat + iv + ev/4) * level / 100
}

func (s *service) CalculateStat(level, baseStat, iv, ev int) int {
	return statBracket(level, baseStat, iv, ev) + 5
}

func (s *service) GetPokemonMaxHp(pokemon *catalog.Pokemon, level int) (int, error) {
	if pokemon == nil {
		return 0, errors.Internal("pokemon is required to compute max hp")
	}
	if level < 1 {
		return 0, errors.InvalidArgumentf("level must be at least 1, got %d", level)
	}

	hp, ok := pokemon.Stat(catalog.StatNameHP)
	if !ok {
		return 0, errors.Internalf("pokemon %s has no %s stat", pokemon.Name, catalog.StatNameHP).
			WithMeta("pokemon", pokemon.Name)
	}

	return statBracket(level, hp.BaseStat, s.rules.DefaultIV, s.rules.DefaultEV) + level + 10, nil
}

func (s *service) RefillOwnedPokemonHp(owned *entities.OwnedPokemon) (*entities.OwnedPokemon, error) {
	if owned == nil {
		return nil, errors.InvalidArgument("owned pokemon is required")
	}
	if owned.Pokemon == nil {
		return nil, errors.Internalf("owned pokemon %s is missing catalog data", owned.ID)
	}

	maxHp, err := s.GetPokemonMaxHp(owned.Pokemon, owned.PokemonLevel)
	if err != nil {
		return nil, errors.AsServerError(err, "failed to compute max hp")
	}

	refilled := owned.Clone()
	refilled.CurrentHp = maxHp
	return refilled, nil
}
