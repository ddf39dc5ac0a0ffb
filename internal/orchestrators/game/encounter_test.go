package game_test

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	gameorchestrator "github.com/KirkDiggler/pokemon-api/internal/orchestrators/game"
	"github.com/KirkDiggler/pokemon-api/internal/rules"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

var route1 = rules.WildScene{
	PokedexRange: rules.IntRange{Min: 16, Max: 20},
	LevelRange:   rules.IntRange{Min: 2, Max: 5},
}

func encounterInput(scene string) *game.InGrassRandomPokemonEncounterInput {
	return &game.InGrassRandomPokemonEncounterInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
		SceneName:    scene,
	}
}

func (s *OrchestratorTestSuite) TestEncounterUnknownScene() {
	s.mockRules.EXPECT().WildScene("pallet-town").Return(rules.WildScene{}, false)

	_, err := s.orchestrator.InGrassRandomPokemonEncounter(s.ctx, encounterInput("pallet-town"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEncounterNoneSkipsSessionLookup() {
	s.mockRules.EXPECT().WildScene("route-1").Return(route1, true)
	s.mockRules.EXPECT().
		GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(route1.PokedexRange).
		Return(nil, nil)

	out, err := s.orchestrator.InGrassRandomPokemonEncounter(s.ctx, encounterInput("route-1"))
	s.Require().NoError(err)
	s.Nil(out.WildPokemon)
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestEncounterLockedScene() {
	dex := 16
	s.mockRules.EXPECT().WildScene("viridian-forest").Return(route1, true)
	s.mockRules.EXPECT().GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(gomock.Any()).Return(&dex, nil)
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))

	_, err := s.orchestrator.InGrassRandomPokemonEncounter(s.ctx, encounterInput("viridian-forest"))
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestEncounterBuildsWildPokemon() {
	dex := 16
	pidgey := &catalog.Pokemon{ID: 16, Name: "pidgey"}
	species := &catalog.PokemonSpecies{ID: 16, Name: "pidgey"}
	moveSet := rules.MoveSet{"tackle", "gust", "", ""}

	s.mockRules.EXPECT().WildScene("route-1").Return(route1, true)
	s.mockRules.EXPECT().GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(route1.PokedexRange).Return(&dex, nil)
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))
	s.mockEnrichment.EXPECT().
		GetPokemonAndSpecies(s.ctx, &enrichment.GetPokemonAndSpeciesInput{PokedexID: 16}).
		Return(&enrichment.GetPokemonAndSpeciesOutput{Pokemon: pidgey, PokemonSpecies: species}, nil)
	s.mockRules.EXPECT().GetRandomNumberFromIntRange(route1.LevelRange).Return(4, nil)
	s.mockRules.EXPECT().GetRandomMoveSetFromPokemon(pidgey, 4).Return(moveSet, nil)
	s.mockEnrichment.EXPECT().
		GetMoveSet(s.ctx, &enrichment.GetMoveSetInput{MoveSet: moveSet}).
		Return(&enrichment.GetMoveSetOutput{Moves: [4]*catalog.Move{{Name: "tackle"}, {Name: "gust"}}}, nil)
	s.mockRules.EXPECT().GetPokemonMaxHp(pidgey, 4).Return(17, nil)

	out, err := s.orchestrator.InGrassRandomPokemonEncounter(s.ctx, encounterInput("route-1"))
	s.Require().NoError(err)

	wild := out.WildPokemon
	s.Require().NotNil(wild)
	s.NotEmpty(wild.ID)
	s.Equal("route-1", wild.SceneName)
	s.Equal("pidgey", wild.PokemonResourceName)
	s.Equal(4, wild.PokemonLevel)
	s.Equal(17, wild.MaxHp)
	s.Equal(17, wild.CurrentHp)
	s.Equal("tackle", wild.MoveOneResourceName)
	s.Equal("gust", wild.MoveTwo.Name)
	s.Nil(wild.MoveThree)
	s.Same(species, wild.PokemonSpecies)
	s.Equal([]string{gameorchestrator.EventWildPokemonEncountered}, s.bus.types())

	moves, ok := s.bus.published[0].Context().Get(gameorchestrator.EventKeyMoves)
	s.Require().True(ok)
	s.Equal([]string{"tackle", "gust"}, moves)
}

func (s *OrchestratorTestSuite) TestEncounterCatalogFailure() {
	dex := 16
	s.mockRules.EXPECT().WildScene("route-1").Return(route1, true)
	s.mockRules.EXPECT().GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(gomock.Any()).Return(&dex, nil)
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))
	s.mockEnrichment.EXPECT().
		GetPokemonAndSpecies(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("catalog down"))

	_, err := s.orchestrator.InGrassRandomPokemonEncounter(s.ctx, encounterInput("route-1"))
	s.Require().Error(err)
	s.True(errors.IsServerError(err))
}
