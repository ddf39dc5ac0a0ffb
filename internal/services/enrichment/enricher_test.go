package enrichment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
	ownedpokemonmock "github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon/mock"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
)

type EnricherTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	mockRepo   *ownedpokemonmock.MockRepository
	enricher   *enrichment.Enricher
	ctx        context.Context
}

func (s *EnricherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.mockRepo = ownedpokemonmock.NewMockRepository(s.ctrl)

	e, err := enrichment.New(&enrichment.Config{
		Client:               s.mockClient,
		OwnedPokemonRepo:     s.mockRepo,
		MaxConcurrentFetches: 2,
	})
	s.Require().NoError(err)
	s.enricher = e
	s.ctx = context.Background()
}

func (s *EnricherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func bulbasaur() *catalog.Pokemon {
	return &catalog.Pokemon{
		ID:      1,
		Name:    "bulbasaur",
		Species: catalog.NamedAPIResource{Name: "bulbasaur"},
	}
}

func bulbasaurSpecies() *catalog.PokemonSpecies {
	return &catalog.PokemonSpecies{ID: 1, Name: "bulbasaur", CaptureRate: 45}
}

func ownedBulbasaur(id string) *entities.OwnedPokemon {
	return &entities.OwnedPokemon{
		ID:                  id,
		GameSaveID:          "save_1",
		PokemonResourceName: "Bulbasaur",
		PokemonLevel:        5,
		CurrentHp:           19,
		MoveOneResourceName: "tackle",
		MoveTwoResourceName: "growl",
	}
}

func (s *EnricherTestSuite) TestGetDeepOwnedPokemonAttachesCatalogData() {
	owned := ownedBulbasaur("owned_1")

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.Key("bulbasaur")).Return(bulbasaur(), nil)
	s.mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), pokeapi.Key("bulbasaur")).Return(bulbasaurSpecies(), nil)
	s.mockClient.EXPECT().GetMove(gomock.Any(), pokeapi.Key("tackle")).Return(&catalog.Move{Name: "tackle"}, nil)
	s.mockClient.EXPECT().GetMove(gomock.Any(), pokeapi.Key("growl")).Return(&catalog.Move{Name: "growl"}, nil)

	out, err := s.enricher.GetDeepOwnedPokemon(s.ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: []*entities.OwnedPokemon{owned},
	})
	s.Require().NoError(err)
	s.Require().Len(out.OwnedPokemon, 1)

	deep := out.OwnedPokemon[0]
	s.True(deep.IsEnriched())
	s.Equal("owned_1", deep.ID)
	s.Equal(5, deep.PokemonLevel)
	s.Equal(19, deep.CurrentHp)
	s.Equal("tackle", deep.MoveOne.Name)
	s.Equal("growl", deep.MoveTwo.Name)
	s.Nil(deep.MoveThree)
	s.Nil(deep.MoveFour)

	s.False(owned.IsEnriched(), "input must not be mutated")
	s.Nil(owned.MoveOne)
}

func (s *EnricherTestSuite) TestGetDeepOwnedPokemonFetchesSharedResourcesOnce() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.Key("bulbasaur")).Return(bulbasaur(), nil).Times(1)
	s.mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), pokeapi.Key("bulbasaur")).Return(bulbasaurSpecies(), nil).Times(1)
	s.mockClient.EXPECT().GetMove(gomock.Any(), pokeapi.Key("tackle")).Return(&catalog.Move{Name: "tackle"}, nil).Times(1)
	s.mockClient.EXPECT().GetMove(gomock.Any(), pokeapi.Key("growl")).Return(&catalog.Move{Name: "growl"}, nil).Times(1)

	out, err := s.enricher.GetDeepOwnedPokemon(s.ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: []*entities.OwnedPokemon{
			ownedBulbasaur("owned_1"),
			ownedBulbasaur("owned_2"),
			ownedBulbasaur("owned_3"),
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.OwnedPokemon, 3)
	for i, id := range []string{"owned_1", "owned_2", "owned_3"} {
		s.Equal(id, out.OwnedPokemon[i].ID)
		s.True(out.OwnedPokemon[i].IsEnriched())
	}
}

func (s *EnricherTestSuite) TestGetDeepOwnedPokemonFallsBackToResourceNameForSpecies() {
	owned := &entities.OwnedPokemon{ID: "owned_1", GameSaveID: "save_1", PokemonResourceName: "mew", PokemonLevel: 1}

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.Key("mew")).Return(&catalog.Pokemon{ID: 151, Name: "mew"}, nil)
	s.mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), pokeapi.Key("mew")).
		Return(&catalog.PokemonSpecies{ID: 151, Name: "mew", IsMythical: true}, nil)

	out, err := s.enricher.GetDeepOwnedPokemon(s.ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: []*entities.OwnedPokemon{owned},
	})
	s.Require().NoError(err)
	s.True(out.OwnedPokemon[0].PokemonSpecies.IsMythical)
}

func (s *EnricherTestSuite) TestGetDeepOwnedPokemonCatalogFailureIsServerError() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.Key("bulbasaur")).
		Return(nil, errors.NotFound("pokemon bulbasaur not found"))
	s.mockClient.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(&catalog.Move{}, nil).AnyTimes()

	_, err := s.enricher.GetDeepOwnedPokemon(s.ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: []*entities.OwnedPokemon{ownedBulbasaur("owned_1")},
	})
	s.Require().Error(err)
	s.True(errors.IsServerError(err))
	s.Equal(errors.CodeInternal, errors.GetCode(err))
	s.Equal(catalog.KindPokemon, errors.GetMeta(err)["kind"])
}

func (s *EnricherTestSuite) TestGetDeepOwnedPokemonPropagatesCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	s.mockClient.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(nil, context.Canceled).AnyTimes()

	_, err := s.enricher.GetDeepOwnedPokemon(ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: []*entities.OwnedPokemon{ownedBulbasaur("owned_1")},
	})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *EnricherTestSuite) TestGetDeepOwnedPokemonRejectsNilRecord() {
	_, err := s.enricher.GetDeepOwnedPokemon(s.ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: []*entities.OwnedPokemon{nil},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EnricherTestSuite) TestGetFullOwnedPokemon() {
	s.mockRepo.EXPECT().GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"owned_1"}}).
		Return(&ownedpokemon.GetManyOutput{OwnedPokemon: []*entities.OwnedPokemon{ownedBulbasaur("owned_1")}}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.Key("bulbasaur")).Return(bulbasaur(), nil)
	s.mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), pokeapi.Key("bulbasaur")).Return(bulbasaurSpecies(), nil)
	s.mockClient.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(&catalog.Move{Name: "move"}, nil).Times(2)

	out, err := s.enricher.GetFullOwnedPokemon(s.ctx, &enrichment.GetFullOwnedPokemonInput{IDs: []string{"owned_1"}})
	s.Require().NoError(err)
	s.Require().Len(out.OwnedPokemon, 1)
	s.True(out.OwnedPokemon[0].IsEnriched())
}

func (s *EnricherTestSuite) TestGetFullOwnedPokemonMissingIDIsUserError() {
	s.mockRepo.EXPECT().GetMany(s.ctx, ownedpokemon.GetManyInput{IDs: []string{"owned_1", "ghost"}}).
		Return(&ownedpokemon.GetManyOutput{
			OwnedPokemon: []*entities.OwnedPokemon{ownedBulbasaur("owned_1")},
			MissingIDs:   []string{"ghost"},
		}, nil)

	_, err := s.enricher.GetFullOwnedPokemon(s.ctx, &enrichment.GetFullOwnedPokemonInput{IDs: []string{"owned_1", "ghost"}})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.True(errors.IsUserError(err))
	s.Contains(err.Error(), "ghost")
}

func (s *EnricherTestSuite) TestGetFullOwnedPokemonRepositoryFailureIsServerError() {
	s.mockRepo.EXPECT().GetMany(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err := s.enricher.GetFullOwnedPokemon(s.ctx, &enrichment.GetFullOwnedPokemonInput{IDs: []string{"owned_1"}})
	s.Require().Error(err)
	s.True(errors.IsServerError(err))
}

func (s *EnricherTestSuite) TestGetFullOwnedPokemonNoIDs() {
	out, err := s.enricher.GetFullOwnedPokemon(s.ctx, &enrichment.GetFullOwnedPokemonInput{})
	s.Require().NoError(err)
	s.Empty(out.OwnedPokemon)
}

func (s *EnricherTestSuite) TestGetPokemonAndSpecies() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.IDKey(1)).Return(bulbasaur(), nil)
	s.mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), pokeapi.IDKey(1)).Return(bulbasaurSpecies(), nil)

	out, err := s.enricher.GetPokemonAndSpecies(s.ctx, &enrichment.GetPokemonAndSpeciesInput{PokedexID: 1})
	s.Require().NoError(err)
	s.Equal("bulbasaur", out.Pokemon.Name)
	s.Equal(45, out.PokemonSpecies.CaptureRate)
}

func (s *EnricherTestSuite) TestGetPokemonAndSpeciesInvalidID() {
	_, err := s.enricher.GetPokemonAndSpecies(s.ctx, &enrichment.GetPokemonAndSpeciesInput{PokedexID: 0})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EnricherTestSuite) TestGetPokemonAndSpeciesUnavailable() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), pokeapi.IDKey(25)).Return(nil, errors.Unavailable("catalog down")).AnyTimes()
	s.mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), pokeapi.IDKey(25)).Return(nil, errors.Unavailable("catalog down")).AnyTimes()

	_, err := s.enricher.GetPokemonAndSpecies(s.ctx, &enrichment.GetPokemonAndSpeciesInput{PokedexID: 25})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *EnricherTestSuite) TestGetMoveSetLeavesEmptySlotsNil() {
	s.mockClient.EXPECT().GetMove(gomock.Any(), pokeapi.Key("tackle")).Return(&catalog.Move{Name: "tackle"}, nil)
	s.mockClient.EXPECT().GetMove(gomock.Any(), pokeapi.Key("vine-whip")).Return(&catalog.Move{Name: "vine-whip"}, nil)

	out, err := s.enricher.GetMoveSet(s.ctx, &enrichment.GetMoveSetInput{
		MoveSet: [entities.MoveSlots]string{"tackle", "", "vine-whip", ""},
	})
	s.Require().NoError(err)
	s.Equal("tackle", out.Moves[0].Name)
	s.Nil(out.Moves[1])
	s.Equal("vine-whip", out.Moves[2].Name)
	s.Nil(out.Moves[3])
}

func (s *EnricherTestSuite) TestGetMoveSetEmpty() {
	out, err := s.enricher.GetMoveSet(s.ctx, &enrichment.GetMoveSetInput{})
	s.Require().NoError(err)
	s.Equal([entities.MoveSlots]*catalog.Move{}, out.Moves)
}

func TestEnricherTestSuite(t *testing.T) {
	suite.Run(t, new(EnricherTestSuite))
}

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	ctrl := gomock.NewController(s.T())
	cfg := &enrichment.Config{
		Client:           pokeapimock.NewMockClient(ctrl),
		OwnedPokemonRepo: ownedpokemonmock.NewMockRepository(ctrl),
	}
	s.Require().NoError(cfg.Validate())
	s.Equal(enrichment.DefaultMaxConcurrentFetches, cfg.MaxConcurrentFetches)
}

func (s *ConfigTestSuite) TestMissingDependencies() {
	_, err := enrichment.New(&enrichment.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Client")
	s.Contains(err.Error(), "OwnedPokemonRepo")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
