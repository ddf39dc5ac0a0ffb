package rules

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
)

// rapidRoller lets rapid drive and shrink every die roll. t is swapped per
// check iteration.
type rapidRoller struct {
	t *rapid.T
}

func (r *rapidRoller) Roll(size int) (int, error) {
	return rapid.IntRange(1, size).Draw(r.t, "roll"), nil
}

func (r *rapidRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

func testRules() Config {
	return Config{
		BaseXPCeiling:           100,
		NormalXPMultiplier:      1.05,
		LegendaryXPMultiplier:   1.1,
		MaxLevel:                100,
		DefaultIV:               15,
		DefaultEV:               0,
		WildEncounterLikelihood: 25,
		PokedexRange:            IntRange{Min: 1, Max: 151},
		Scenes: map[string]WildScene{
			"viridian-forest": {
				PokedexRange: IntRange{Min: 10, Max: 15, Extras: []int{25}},
				LevelRange:   IntRange{Min: 3, Max: 6},
			},
			"tall-grass": {
				LevelRange: IntRange{Min: 2, Max: 4},
			},
		},
		StarterScene: "pallet-town",
		MaxGameSaves: 5,
		MaxDeckSize:  6,
	}
}

func newTestService(t testing.TB, roller dice.Roller) *service {
	svc, err := New(&ServiceConfig{Rules: testRules(), Roller: roller})
	require.NoError(t, err)
	return svc.(*service)
}

func pokemonWithHP(name string, baseHP int) *catalog.Pokemon {
	return &catalog.Pokemon{
		ID:   1,
		Name: name,
		Stats: []catalog.PokemonStat{
			{BaseStat: baseHP, Stat: catalog.NamedAPIResource{Name: catalog.StatNameHP}},
			{BaseStat: 49, Stat: catalog.NamedAPIResource{Name: "attack"}},
		},
	}
}

func learnable(name string, levels ...int) catalog.PokemonMove {
	m := catalog.PokemonMove{Move: catalog.NamedAPIResource{Name: name}}
	for _, l := range levels {
		m.VersionGroupDetails = append(m.VersionGroupDetails, catalog.PokemonMoveVersion{
			LevelLearnedAt:  l,
			MoveLearnMethod: catalog.NamedAPIResource{Name: "level-up"},
		})
	}
	return m
}
