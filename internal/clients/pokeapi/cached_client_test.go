package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/redis"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

type CachedClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	hits    atomic.Int32
	flaky   atomic.Int32
	redis   redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	client  Client
	ctx     context.Context
}

func (s *CachedClientTestSuite) SetupTest() {
	s.hits.Store(0)
	s.flaky.Store(0)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		switch r.URL.Path {
		case "/pokemon/1/":
			_, _ = w.Write([]byte(bulbasaurJSON))
			return
		case "/pokemon/2/":
			// a proxy error page first, the real document afterwards
			if s.flaky.Add(1) == 1 {
				_, _ = w.Write([]byte(`<html><body>502 Bad Gateway</body></html>`))
				return
			}
			_, _ = w.Write([]byte(bulbasaurJSON))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	s.redis, s.mr, s.cleanup = testutils.CreateTestRedis(s.T())

	base, err := New(&Config{BaseURL: s.server.URL})
	s.Require().NoError(err)

	s.client, err = NewCachedClient(&CachedClientConfig{
		Client: base,
		Redis:  s.redis,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *CachedClientTestSuite) TearDownTest() {
	s.server.Close()
	s.cleanup()
}

func (s *CachedClientTestSuite) TestSecondReadIsServedFromCache() {
	first, err := s.client.GetPokemon(s.ctx, IDKey(1))
	s.Require().NoError(err)
	second, err := s.client.GetPokemon(s.ctx, IDKey(1))
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(int32(1), s.hits.Load())
	s.True(s.mr.Exists("pokeapi:pokemon:1"))
}

func (s *CachedClientTestSuite) TestEntriesExpire() {
	_, err := s.client.GetPokemon(s.ctx, IDKey(1))
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.client.GetPokemon(s.ctx, IDKey(1))
	s.Require().NoError(err)
	s.Equal(int32(2), s.hits.Load())
}

func (s *CachedClientTestSuite) TestMissesAreNotCached() {
	_, err := s.client.GetPokemon(s.ctx, IDKey(9999))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("pokeapi:pokemon:9999"))
}

func (s *CachedClientTestSuite) TestMalformedDocumentsAreNotCached() {
	_, err := s.client.GetPokemon(s.ctx, IDKey(2))
	s.Require().Error(err)
	s.True(errors.IsServerError(err))
	s.False(s.mr.Exists("pokeapi:pokemon:2"))

	pokemon, err := s.client.GetPokemon(s.ctx, IDKey(2))
	s.Require().NoError(err)
	s.Equal("bulbasaur", pokemon.Name)
	s.Equal(int32(2), s.flaky.Load())
	s.True(s.mr.Exists("pokeapi:pokemon:2"))
}

func (s *CachedClientTestSuite) TestReadsThroughWhenRedisIsDown() {
	s.mr.Close()

	pokemon, err := s.client.GetPokemon(s.ctx, IDKey(1))
	s.Require().NoError(err)
	s.Equal("bulbasaur", pokemon.Name)
}

func (s *CachedClientTestSuite) TestGetResourceGeneric() {
	pokemon, err := GetResource[catalog.Pokemon](s.ctx, s.client, catalog.KindPokemon, IDKey(1))
	s.Require().NoError(err)
	s.Equal(64, pokemon.BaseExperience)
}

func (s *CachedClientTestSuite) TestConfigRequiresCollaborators() {
	_, err := NewCachedClient(&CachedClientConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestCachedClientTestSuite(t *testing.T) {
	suite.Run(t, new(CachedClientTestSuite))
}
