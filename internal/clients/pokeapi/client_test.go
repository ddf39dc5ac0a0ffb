package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const bulbasaurJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "base_experience": 64,
  "species": {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "attack"}}
  ],
  "moves": [
    {"move": {"name": "tackle"}, "version_group_details": [
      {"level_learned_at": 1, "move_learn_method": {"name": "level-up"}}
    ]}
  ],
  "types": [{"slot": 1, "type": {"name": "grass"}}]
}`

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests atomic.Int32
	lastPath atomic.Value
	client   Client
	ctx      context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.requests.Store(0)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.lastPath.Store(r.URL.Path)
		switch r.URL.Path {
		case "/api/v2/pokemon/1/", "/api/v2/pokemon/bulbasaur/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(bulbasaurJSON))
		case "/api/v2/pokemon-species/1/":
			_, _ = w.Write([]byte(`{"id": 1, "name": "bulbasaur", "is_legendary": false, "is_mythical": false}`))
		case "/api/v2/move/tackle/":
			_, _ = w.Write([]byte(`{"id": 33, "name": "tackle", "power": 40, "accuracy": 100, "pp": 35}`))
		case "/api/v2/move/broken/":
			_, _ = w.Write([]byte(`{not json`))
		case "/api/v2/move/huge/":
			_, _ = w.Write([]byte(`{"name": "` + strings.Repeat("a", maxBodyBytes) + `"}`))
		case "/api/v2/move/slow/":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		case "/api/v2/move/teapot/":
			w.WriteHeader(http.StatusTeapot)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	var err error
	s.client, err = New(&Config{BaseURL: s.server.URL + "/api/v2"})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestGetPokemon() {
	pokemon, err := s.client.GetPokemon(s.ctx, IDKey(1))
	s.Require().NoError(err)

	s.Equal("bulbasaur", pokemon.Name)
	s.Equal("bulbasaur", pokemon.Species.Name)
	hp, ok := pokemon.Stat(catalog.StatNameHP)
	s.Require().True(ok)
	s.Equal(45, hp.BaseStat)
	s.Require().Len(pokemon.Moves, 1)
	s.True(pokemon.Moves[0].LearnableAt(1))
	s.Equal("/api/v2/pokemon/1/", s.lastPath.Load())
}

func (s *ClientTestSuite) TestGetPokemonBySlugIsLowerCased() {
	pokemon, err := s.client.GetPokemon(s.ctx, SlugKey(" Bulbasaur "))
	s.Require().NoError(err)
	s.Equal(1, pokemon.ID)
}

func (s *ClientTestSuite) TestGetPokemonSpecies() {
	species, err := s.client.GetPokemonSpecies(s.ctx, IDKey(1))
	s.Require().NoError(err)
	s.Equal("bulbasaur", species.Name)
	s.False(species.LevelsSlowly())
}

func (s *ClientTestSuite) TestGetMove() {
	move, err := s.client.GetMove(s.ctx, SlugKey("tackle"))
	s.Require().NoError(err)
	s.Equal("tackle", move.Name)
	s.Require().NotNil(move.Power)
	s.Equal(40, *move.Power)
}

func (s *ClientTestSuite) TestNotFound() {
	_, err := s.client.GetMove(s.ctx, SlugKey("splash-of-nothing"))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestUnexpectedStatusIsUnavailable() {
	_, err := s.client.GetMove(s.ctx, SlugKey("teapot"))
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.True(errors.IsServerError(err))
}

func (s *ClientTestSuite) TestDecodeFailureIsInternal() {
	_, err := s.client.GetMove(s.ctx, SlugKey("broken"))
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *ClientTestSuite) TestOversizedDocumentIsReported() {
	_, err := s.client.GetMove(s.ctx, SlugKey("huge"))
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "catalog document too large")
	s.Equal(maxBodyBytes, errors.GetMeta(err)["max_bytes"])
}

func (s *ClientTestSuite) TestEmptyKey() {
	_, err := s.client.GetPokemon(s.ctx, SlugKey(""))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	_, err := s.client.GetMove(ctx, SlugKey("slow"))
	s.Require().Error(err)
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(err))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg := &Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(defaultBaseURL, cfg.BaseURL)
	s.Equal(defaultHTTPTimeout, cfg.HTTPTimeout)
}

func (s *ConfigTestSuite) TestAddsTrailingSlash() {
	cfg := &Config{BaseURL: "http://localhost:9999/api/v2"}
	s.Require().NoError(cfg.Validate())
	s.Equal("http://localhost:9999/api/v2/", cfg.BaseURL)
}

func (s *ConfigTestSuite) TestRejectsBadURL() {
	cfg := &Config{BaseURL: "ftp://example.com"}
	err := cfg.Validate()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestNilConfig() {
	_, err := New(nil)
	s.Require().Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
