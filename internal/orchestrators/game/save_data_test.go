package game_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	gameorchestrator "github.com/KirkDiggler/pokemon-api/internal/orchestrators/game"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

func (s *OrchestratorTestSuite) saveInput(deckIDs ...string) *game.SaveGameDataInput {
	data := testutils.CreateTestGameSaveData(testSaveID, deckIDs...)
	data.GameData.LastPlayedScene = "route-1"
	data.GameData.LastPlayedLocationX = 12.5
	return &game.SaveGameDataInput{
		ConnectionID: testConnectionID,
		UserID:       testUserID,
		GameData:     data.GameData,
	}
}

func (s *OrchestratorTestSuite) TestSaveGameDataEmptyDeck() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_1"))
	s.mockSaveRepo.EXPECT().
		UpdateData(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input gamesave.UpdateDataInput) (*gamesave.UpdateDataOutput, error) {
			s.Equal(int64(3), input.ExpectedVersion)
			s.Equal("data_1", input.GameSaveData.ID)
			s.Equal(testSaveID, input.GameSaveData.GameSaveID)
			s.Equal("route-1", input.GameSaveData.GameData.LastPlayedScene)
			s.NotNil(input.GameSaveData.GameData.DeckPokemon)
			s.Empty(input.GameSaveData.GameData.DeckPokemon)
			stored := *input.GameSaveData
			stored.Version = input.ExpectedVersion + 1
			return &gamesave.UpdateDataOutput{GameSaveData: &stored}, nil
		})

	input := s.saveInput()
	input.GameData.DeckPokemon = nil

	out, err := s.orchestrator.SaveGameData(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(int64(4), out.GameSaveData.Version)
	s.Equal([]string{gameorchestrator.EventGameSaveDataSaved}, s.bus.types())
}

func (s *OrchestratorTestSuite) TestSaveGameDataChangedDeckIsChecked() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_1"))
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"owned_2", "owned_1"}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{
			testutils.CreateTestOwnedPokemon("owned_2", testSaveID),
			testutils.CreateTestOwnedPokemon("owned_1", testSaveID),
		}}, nil)
	s.mockSaveRepo.EXPECT().
		UpdateData(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input gamesave.UpdateDataInput) (*gamesave.UpdateDataOutput, error) {
			s.Equal([]string{"owned_2", "owned_1"}, input.GameSaveData.GameData.DeckPokemonIDs())
			return &gamesave.UpdateDataOutput{GameSaveData: input.GameSaveData}, nil
		})

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput("owned_2", "owned_1"))
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestSaveGameDataReorderedDeckSkipsOwnershipLookup() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID, "owned_1", "owned_2"))
	s.mockSaveRepo.EXPECT().
		UpdateData(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input gamesave.UpdateDataInput) (*gamesave.UpdateDataOutput, error) {
			return &gamesave.UpdateDataOutput{GameSaveData: input.GameSaveData}, nil
		})

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput("owned_2", "owned_1"))
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestSaveGameDataRejectsForeignPokemonBeforeWrite() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"owned_1", "stolen"}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{
			testutils.CreateTestOwnedPokemon("owned_1", testSaveID),
			testutils.CreateTestOwnedPokemon("stolen", "save_of_gary"),
		}}, nil)

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput("owned_1", "stolen"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(errors.GetMessage(err), "stolen")
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestSaveGameDataRejectsUnknownPokemon() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))
	s.mockOwnedRepo.EXPECT().
		GetMany(s.ctx, gomock.Any()).
		Return(&ownedpokemon.GetManyOutput{MissingIDs: []string{"ghost"}}, nil)

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput("ghost"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveGameDataRejectsOversizedDeck() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput("a", "b", "c", "d", "e", "f", "g"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveGameDataRejectsDuplicateDeckEntries() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput("owned_1", "owned_1"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveGameDataVersionConflictIsRetryable() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))
	s.mockSaveRepo.EXPECT().UpdateData(s.ctx, gomock.Any()).Return(nil, errors.Aborted("version mismatch"))

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput())
	s.Require().Error(err)
	s.True(errors.IsAborted(err))
	s.True(errors.IsUserError(err))
}

func (s *OrchestratorTestSuite) TestSaveGameDataStoreFailureIsServerError() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))
	s.mockSaveRepo.EXPECT().UpdateData(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.SaveGameData(s.ctx, s.saveInput())
	s.Require().Error(err)
	s.True(errors.IsServerError(err))
}

func (s *OrchestratorTestSuite) TestSaveGameDataRequiresUnlockedScenes() {
	s.expectSession(testUserID)
	s.expectSaveData(testutils.CreateTestGameSaveData(testSaveID))

	input := s.saveInput()
	input.GameData.UnlockedGameResources.Scenes = nil

	_, err := s.orchestrator.SaveGameData(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveGameDataPropagatesCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockSessionRepo.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.WrapWithCode(context.Canceled, errors.CodeCanceled, "canceled"))

	_, err := s.orchestrator.SaveGameData(ctx, s.saveInput())
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}
