package rules

import (
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const percentDie = 100

// roll draws a value in [1, size] from the roller
func (s *service) roll(size int) (int, error) {
	v, err := s.roller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if v < 1 || v > size {
		return 0, errors.Internalf("roller returned %d for d%d", v, size)
	}
	return v, nil
}

func (s *service) GetRandomNumberFromIntRange(r IntRange) (int, error) {
	pool := r.PoolSize()
	if pool == 0 {
		return 0, errors.InvalidArgumentf("range [%d, %d] with no extras is empty", r.Min, r.Max)
	}

	v, err := s.roll(pool)
	if err != nil {
		return 0, err
	}

	idx := v - 1
	span := r.spanSize()
	if idx < span {
		return r.Min + idx, nil
	}
	return r.Extras[idx-span], nil
}

func (s *service) GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(r IntRange) (*int, error) {
	v, err := s.roll(percentDie)
	if err != nil {
		return nil, err
	}
	if v > s.rules.WildEncounterLikelihood {
		return nil, nil
	}

	n, err := s.GetRandomNumberFromIntRange(r)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *service) GetRandomMoveSetFromPokemon(pokemon *catalog.Pokemon, level int) (MoveSet, error) {
	var set MoveSet
	if pokemon == nil {
		return set, errors.Internal("pokemon is required to pick a move set")
	}

	seen := make(map[string]struct{}, len(pokemon.Moves))
	eligible := make([]string, 0, len(pokemon.Moves))
	for _, m := range pokemon.Moves {
		if m.Move.Name == "" || !m.LearnableAt(level) {
			continue
		}
		if _, dup := seen[m.Move.Name]; dup {
			continue
		}
		seen[m.Move.Name] = struct{}{}
		eligible = append(eligible, m.Move.Name)
	}

	// partial Fisher-Yates over the eligible moves
	picks := min(len(set), len(eligible))
	for i := 0; i < picks; i++ {
		v, err := s.roll(len(eligible) - i)
		if err != nil {
			return MoveSet{}, err
		}
		j := i + v - 1
		eligible[i], eligible[j] = eligible[j], eligible[i]
		set[i] = eligible[i]
	}

	return set, nil
}
