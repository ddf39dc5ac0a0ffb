package game_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	gameorchestrator "github.com/KirkDiggler/pokemon-api/internal/orchestrators/game"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
	"github.com/KirkDiggler/pokemon-api/internal/rules"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

func enriched(owned *entities.OwnedPokemon) *entities.OwnedPokemon {
	c := owned.Clone()
	c.Pokemon = &catalog.Pokemon{Name: owned.PokemonResourceName}
	c.PokemonSpecies = &catalog.PokemonSpecies{Name: owned.PokemonResourceName}
	return c
}

func (s *OrchestratorTestSuite) TestGetOwnedPokemonInDeckShallow() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_2", "owned_1"))
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"owned_2", "owned_1"}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{
			testutils.CreateTestOwnedPokemon("owned_2", testSaveID),
			testutils.CreateTestOwnedPokemon("owned_1", testSaveID),
		}}, nil)

	out, err := s.orchestrator.GetOwnedPokemonInDeck(s.ctx, &game.GetOwnedPokemonInDeckInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
	})
	s.Require().NoError(err)
	s.Require().Len(out.OwnedPokemon, 2)
	s.Equal("owned_2", out.OwnedPokemon[0].ID)
	s.Equal("owned_1", out.OwnedPokemon[1].ID)
	s.False(out.OwnedPokemon[0].IsEnriched())
}

func (s *OrchestratorTestSuite) TestGetOwnedPokemonInDeckDeep() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_1"))
	s.mockEnrichment.EXPECT().
		GetFullOwnedPokemon(s.ctx, &enrichment.GetFullOwnedPokemonInput{IDs: []string{"owned_1"}}).
		Return(&enrichment.GetFullOwnedPokemonOutput{OwnedPokemon: []*entities.OwnedPokemon{
			enriched(testutils.CreateTestOwnedPokemon("owned_1", testSaveID)),
		}}, nil)

	out, err := s.orchestrator.GetOwnedPokemonInDeck(s.ctx, &game.GetOwnedPokemonInDeckInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
		Deep:         true,
	})
	s.Require().NoError(err)
	s.Require().Len(out.OwnedPokemon, 1)
	s.True(out.OwnedPokemon[0].IsEnriched())
}

func (s *OrchestratorTestSuite) TestGetOwnedPokemonInDeckEmpty() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))

	out, err := s.orchestrator.GetOwnedPokemonInDeck(s.ctx, &game.GetOwnedPokemonInDeckInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
		Deep:         true,
	})
	s.Require().NoError(err)
	s.Empty(out.OwnedPokemon)
}

func (s *OrchestratorTestSuite) TestGetOwnedPokemonByIDRejectsForeignPokemon() {
	s.expectSession(testUserID)
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"foreign"}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{
			testutils.CreateTestOwnedPokemon("foreign", "save_of_gary"),
		}}, nil)

	_, err := s.orchestrator.GetOwnedPokemonByID(s.ctx, &game.GetOwnedPokemonByIDInput{
		ConnectionID:    testConnectionID,
		UserID:          testUserID,
		OwnedPokemonIDs: []string{"foreign"},
		Deep:            true,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetOwnedPokemonByIDDeep() {
	owned := testutils.CreateTestOwnedPokemon("owned_1", testSaveID)
	s.expectSession(testUserID)
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"owned_1"}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{owned}}, nil)
	s.mockEnrichment.EXPECT().
		GetDeepOwnedPokemon(s.ctx, &enrichment.GetDeepOwnedPokemonInput{OwnedPokemon: []*entities.OwnedPokemon{owned}}).
		Return(&enrichment.GetDeepOwnedPokemonOutput{OwnedPokemon: []*entities.OwnedPokemon{enriched(owned)}}, nil)

	out, err := s.orchestrator.GetOwnedPokemonByID(s.ctx, &game.GetOwnedPokemonByIDInput{
		ConnectionID:    testConnectionID,
		UserID:          testUserID,
		OwnedPokemonIDs: []string{"owned_1"},
		Deep:            true,
	})
	s.Require().NoError(err)
	s.True(out.OwnedPokemon[0].IsEnriched())
}

func (s *OrchestratorTestSuite) TestGetOwnedPokemonByIDMissing() {
	s.expectSession(testUserID)
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, gomock.Any()).
		Return(&ownedpokemon.GetManyOutput{MissingIDs: []string{"ghost"}}, nil)

	_, err := s.orchestrator.GetOwnedPokemonByID(s.ctx, &game.GetOwnedPokemonByIDInput{
		ConnectionID:    testConnectionID,
		UserID:          testUserID,
		OwnedPokemonIDs: []string{"ghost"},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRefillDeckHpWritesOnlyChangedPokemon() {
	hurt := enriched(testutils.CreateTestOwnedPokemon("owned_1", testSaveID))
	full := enriched(testutils.CreateTestOwnedPokemon("owned_2", testSaveID))
	full.CurrentHp = 20

	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_1", "owned_2"))
	s.mockEnrichment.EXPECT().
		GetFullOwnedPokemon(s.ctx, gomock.Any()).
		Return(&enrichment.GetFullOwnedPokemonOutput{OwnedPokemon: []*entities.OwnedPokemon{hurt, full}}, nil)
	s.mockRules.EXPECT().
		RefillOwnedPokemonHp(gomock.Any()).
		DoAndReturn(func(owned *entities.OwnedPokemon) (*entities.OwnedPokemon, error) {
			c := owned.Clone()
			c.CurrentHp = 20
			return c, nil
		}).Times(2)
	s.mockOwnedRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input ownedpokemon.UpdateInput) (*ownedpokemon.UpdateOutput, error) {
			s.Equal("owned_1", input.OwnedPokemon.ID)
			s.Equal(20, input.OwnedPokemon.CurrentHp)
			s.False(input.OwnedPokemon.IsEnriched(), "catalog data is never stored")
			return &ownedpokemon.UpdateOutput{OwnedPokemon: input.OwnedPokemon}, nil
		})

	out, err := s.orchestrator.RefillDeckHp(s.ctx, &game.RefillDeckHpInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
	})
	s.Require().NoError(err)
	s.Require().Len(out.OwnedPokemon, 2)
	for _, p := range out.OwnedPokemon {
		s.Equal(20, p.CurrentHp)
	}
	s.Equal(10, hurt.CurrentHp, "the loaded pokemon is not modified")
}

func (s *OrchestratorTestSuite) TestRefillDeckHpRulesFailureWritesNothing() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_1"))
	s.mockEnrichment.EXPECT().
		GetFullOwnedPokemon(s.ctx, gomock.Any()).
		Return(&enrichment.GetFullOwnedPokemonOutput{OwnedPokemon: []*entities.OwnedPokemon{
			testutils.CreateTestOwnedPokemon("owned_1", testSaveID),
		}}, nil)
	s.mockRules.EXPECT().RefillOwnedPokemonHp(gomock.Any()).Return(nil, errors.Internal("pokemon has no catalog data"))

	_, err := s.orchestrator.RefillDeckHp(s.ctx, &game.RefillDeckHpInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
	})
	s.Require().Error(err)
	s.True(errors.IsServerError(err))
}

func (s *OrchestratorTestSuite) expectDeepOwned(owned *entities.OwnedPokemon) *entities.OwnedPokemon {
	deep := enriched(owned)
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{owned.ID}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{owned}}, nil)
	s.mockEnrichment.EXPECT().
		GetDeepOwnedPokemon(s.ctx, gomock.Any()).
		Return(&enrichment.GetDeepOwnedPokemonOutput{OwnedPokemon: []*entities.OwnedPokemon{deep}}, nil)
	return deep
}

func (s *OrchestratorTestSuite) TestAddExperienceLevelsUp() {
	s.expectSession(testUserID)
	deep := s.expectDeepOwned(testutils.CreateTestOwnedPokemon("owned_1", testSaveID))
	s.mockRules.EXPECT().
		AddXpToOwnedPokemon(deep, 250).
		DoAndReturn(func(owned *entities.OwnedPokemon, xp int) (*rules.AddXpOutput, error) {
			c := owned.Clone()
			c.PokemonLevel = 7
			c.CurrentExperience = 30
			return &rules.AddXpOutput{OwnedPokemon: c, LevelsGained: 2}, nil
		})
	s.mockOwnedRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input ownedpokemon.UpdateInput) (*ownedpokemon.UpdateOutput, error) {
			s.Equal(7, input.OwnedPokemon.PokemonLevel)
			s.Equal(30, input.OwnedPokemon.CurrentExperience)
			return &ownedpokemon.UpdateOutput{OwnedPokemon: input.OwnedPokemon}, nil
		})

	out, err := s.orchestrator.AddExperience(s.ctx, &game.AddExperienceInput{
		ConnectionID:   testConnectionID,
		UserID:         testUserID,
		OwnedPokemonID: "owned_1",
		Experience:     250,
	})
	s.Require().NoError(err)
	s.Equal(2, out.LevelsGained)
	s.Equal(7, out.OwnedPokemon.PokemonLevel)
	s.Equal([]string{gameorchestrator.EventOwnedPokemonLeveledUp}, s.bus.types())
}

func (s *OrchestratorTestSuite) TestAddExperienceWithoutLevelUpPublishesNothing() {
	s.expectSession(testUserID)
	deep := s.expectDeepOwned(testutils.CreateTestOwnedPokemon("owned_1", testSaveID))
	s.mockRules.EXPECT().
		AddXpToOwnedPokemon(deep, 10).
		DoAndReturn(func(owned *entities.OwnedPokemon, xp int) (*rules.AddXpOutput, error) {
			c := owned.Clone()
			c.CurrentExperience += xp
			return &rules.AddXpOutput{OwnedPokemon: c}, nil
		})
	s.mockOwnedRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(&ownedpokemon.UpdateOutput{}, nil)

	out, err := s.orchestrator.AddExperience(s.ctx, &game.AddExperienceInput{
		ConnectionID:   testConnectionID,
		UserID:         testUserID,
		OwnedPokemonID: "owned_1",
		Experience:     10,
	})
	s.Require().NoError(err)
	s.Equal(0, out.LevelsGained)
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestAddExperienceRejectsNegativeExperience() {
	_, err := s.orchestrator.AddExperience(s.ctx, &game.AddExperienceInput{
		ConnectionID:   testConnectionID,
		UserID:         testUserID,
		OwnedPokemonID: "owned_1",
		Experience:     -5,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
