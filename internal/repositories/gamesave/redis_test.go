package gamesave_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

const (
	testUserID = "user_ash"
	testSaveID = "save_123"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    gamesave.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := gamesave.NewRedis(&gamesave.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testNow},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func newSave(id, userID string, created time.Time) (*entities.GameSave, *entities.GameSaveData) {
	save := &entities.GameSave{
		ID:            id,
		UserID:        userID,
		CharacterName: "Red",
		DateCreated:   created,
		LastPlayed:    created,
	}
	data := &entities.GameSaveData{
		ID:         "data_" + id,
		GameSaveID: id,
		GameData: entities.GameData{
			LastPlayedScene:       "pallet-town",
			UnlockedGameResources: entities.UnlockedGameResources{Scenes: []string{"pallet-town"}},
		},
	}
	return save, data
}

func (s *RedisRepositoryTestSuite) create(id, userID string, created time.Time) {
	save, data := newSave(id, userID, created)
	_, err := s.repo.Create(s.ctx, gamesave.CreateInput{GameSave: save, GameSaveData: data, MaxPerUser: 5})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	save, data := newSave(testSaveID, testUserID, testNow)

	out, err := s.repo.Create(s.ctx, gamesave.CreateInput{GameSave: save, GameSaveData: data, MaxPerUser: 5})
	s.Require().NoError(err)

	s.Equal(int64(1), out.GameSaveData.Version)
	s.Equal(testNow, out.GameSaveData.DateModified)
	s.True(s.mr.Exists("game_save:" + testSaveID))
	s.True(s.mr.Exists("game_save_data:" + testSaveID))
	members, err := s.mr.Members("game_save:user:" + testUserID)
	s.Require().NoError(err)
	s.Equal([]string{testSaveID}, members)

	got, err := s.repo.GetData(s.ctx, gamesave.GetDataInput{GameSaveID: testSaveID})
	s.Require().NoError(err)
	s.Equal("pallet-town", got.GameSaveData.GameData.LastPlayedScene)
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsDuplicateID() {
	s.create(testSaveID, testUserID, testNow)

	save, data := newSave(testSaveID, testUserID, testNow)
	_, err := s.repo.Create(s.ctx, gamesave.CreateInput{GameSave: save, GameSaveData: data})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateEnforcesQuota() {
	for i := 0; i < 5; i++ {
		s.create(fmt.Sprintf("save_%d", i), testUserID, testNow)
	}

	save, data := newSave("save_6", testUserID, testNow)
	_, err := s.repo.Create(s.ctx, gamesave.CreateInput{GameSave: save, GameSaveData: data, MaxPerUser: 5})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.False(s.mr.Exists("game_save:save_6"))
	s.False(s.mr.Exists("game_save_data:save_6"))
}

func (s *RedisRepositoryTestSuite) TestCreateQuotaHoldsUnderConcurrency() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			save, data := newSave(fmt.Sprintf("save_%d", i), testUserID, testNow)
			_, _ = s.repo.Create(s.ctx, gamesave.CreateInput{GameSave: save, GameSaveData: data, MaxPerUser: 5})
		}(i)
	}
	wg.Wait()

	out, err := s.repo.CountByUserID(s.ctx, gamesave.CountByUserIDInput{UserID: testUserID})
	s.Require().NoError(err)
	s.LessOrEqual(out.Count, 5)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	save, data := newSave(testSaveID, testUserID, testNow)
	data.GameSaveID = "other"

	_, err := s.repo.Create(s.ctx, gamesave.CreateInput{GameSave: save, GameSaveData: data})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, gamesave.CreateInput{GameSaveData: data})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, gamesave.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByUserIDOrdersByCreation() {
	s.create("save_b", testUserID, testNow.Add(time.Hour))
	s.create("save_a", testUserID, testNow)
	s.create("save_other", "user_gary", testNow)

	out, err := s.repo.ListByUserID(s.ctx, gamesave.ListByUserIDInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Require().Len(out.GameSaves, 2)
	s.Equal("save_a", out.GameSaves[0].ID)
	s.Equal("save_b", out.GameSaves[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListByUserIDCleansStaleIndex() {
	s.create(testSaveID, testUserID, testNow)
	s.mr.Del("game_save:" + testSaveID)

	out, err := s.repo.ListByUserID(s.ctx, gamesave.ListByUserIDInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Empty(out.GameSaves)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	s.create(testSaveID, testUserID, testNow)

	got, err := s.repo.Get(s.ctx, gamesave.GetInput{ID: testSaveID})
	s.Require().NoError(err)
	got.GameSave.LastPlayed = testNow.Add(time.Hour)

	_, err = s.repo.Update(s.ctx, gamesave.UpdateInput{GameSave: got.GameSave})
	s.Require().NoError(err)

	again, err := s.repo.Get(s.ctx, gamesave.GetInput{ID: testSaveID})
	s.Require().NoError(err)
	s.Equal(testNow.Add(time.Hour), again.GameSave.LastPlayed)

	got.GameSave.UserID = "user_gary"
	_, err = s.repo.Update(s.ctx, gamesave.UpdateInput{GameSave: got.GameSave})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteCascades() {
	s.create(testSaveID, testUserID, testNow)

	_, err := s.repo.Delete(s.ctx, gamesave.DeleteInput{ID: testSaveID})
	s.Require().NoError(err)

	s.False(s.mr.Exists("game_save:" + testSaveID))
	s.False(s.mr.Exists("game_save_data:" + testSaveID))
	count, err := s.repo.CountByUserID(s.ctx, gamesave.CountByUserIDInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Zero(count.Count)

	_, err = s.repo.Delete(s.ctx, gamesave.DeleteInput{ID: testSaveID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateData() {
	s.create(testSaveID, testUserID, testNow)

	current, err := s.repo.GetData(s.ctx, gamesave.GetDataInput{GameSaveID: testSaveID})
	s.Require().NoError(err)

	next := *current.GameSaveData
	next.GameData.LastPlayedScene = "viridian-forest"
	next.GameData.DeckPokemon = []entities.DeckPokemon{{OwnedPokemonID: "owned_1"}}

	out, err := s.repo.UpdateData(s.ctx, gamesave.UpdateDataInput{
		GameSaveData:    &next,
		ExpectedVersion: current.GameSaveData.Version,
	})
	s.Require().NoError(err)
	s.Equal(current.GameSaveData.Version+1, out.GameSaveData.Version)
	s.Equal(current.GameSaveData.ID, out.GameSaveData.ID)

	stored, err := s.repo.GetData(s.ctx, gamesave.GetDataInput{GameSaveID: testSaveID})
	s.Require().NoError(err)
	s.Equal("viridian-forest", stored.GameSaveData.GameData.LastPlayedScene)
	s.Equal(out.GameSaveData.Version, stored.GameSaveData.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdateDataStaleVersion() {
	s.create(testSaveID, testUserID, testNow)

	current, err := s.repo.GetData(s.ctx, gamesave.GetDataInput{GameSaveID: testSaveID})
	s.Require().NoError(err)

	first := *current.GameSaveData
	_, err = s.repo.UpdateData(s.ctx, gamesave.UpdateDataInput{GameSaveData: &first, ExpectedVersion: first.Version})
	s.Require().NoError(err)

	second := *current.GameSaveData
	second.GameData.LastPlayedScene = "lost-update"
	_, err = s.repo.UpdateData(s.ctx, gamesave.UpdateDataInput{GameSaveData: &second, ExpectedVersion: second.Version})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))
	s.True(errors.IsUserError(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateDataNotFound() {
	_, err := s.repo.UpdateData(s.ctx, gamesave.UpdateDataInput{
		GameSaveData: &entities.GameSaveData{GameSaveID: "missing"},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := gamesave.NewRedis(&gamesave.RedisConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
