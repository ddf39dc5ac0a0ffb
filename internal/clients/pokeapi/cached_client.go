package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/redis"
)

const (
	cacheKeyPrefix  = "pokeapi"
	defaultCacheTTL = 24 * time.Hour
)

// CachedClientConfig configures the read-through redis cache
type CachedClientConfig struct {
	Client Client
	Redis  redis.Client
	// TTL of cached documents (optional, defaults to 24 hours)
	TTL time.Duration
}

// Validate validates the config and sets defaults
func (cfg *CachedClientConfig) Validate() error {
	if cfg.TTL == 0 {
		cfg.TTL = defaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	if cfg.Redis == nil {
		vb.RequiredField("redis")
	}
	if cfg.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	return vb.Build()
}

type cachedClient struct {
	next  Client
	redis redis.Client
	ttl   time.Duration
}

// NewCachedClient wraps a client with a redis cache of raw catalog documents.
// Catalog data is read-only so entries are only ever expired, never updated.
func NewCachedClient(cfg *CachedClientConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedClient{
		next:  cfg.Client,
		redis: cfg.Redis,
		ttl:   cfg.TTL,
	}, nil
}

func cacheKey(kind string, key Key) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, kind, key)
}

func (c *cachedClient) Fetch(ctx context.Context, kind string, key Key) ([]byte, error) {
	ck := cacheKey(kind, key)

	body, err := c.redis.Get(ctx, ck).Bytes()
	switch {
	case err == nil:
		return body, nil
	case errors.Is(err, redis.Nil):
	default:
		// cache failures fall through to the catalog
		slog.WarnContext(ctx, "catalog cache read failed",
			"key", ck,
			"error", err)
	}

	body, err = c.next.Fetch(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	// a malformed document is returned once but never cached
	if !json.Valid(body) {
		slog.WarnContext(ctx, "catalog returned malformed document, not caching",
			"key", ck,
			"size", len(body))
		return body, nil
	}

	if err := c.redis.Set(ctx, ck, body, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed",
			"key", ck,
			"error", err)
	}

	return body, nil
}

func (c *cachedClient) GetPokemon(ctx context.Context, key Key) (*catalog.Pokemon, error) {
	return GetResource[catalog.Pokemon](ctx, c, catalog.KindPokemon, key)
}

func (c *cachedClient) GetPokemonSpecies(ctx context.Context, key Key) (*catalog.PokemonSpecies, error) {
	return GetResource[catalog.PokemonSpecies](ctx, c, catalog.KindPokemonSpecies, key)
}

func (c *cachedClient) GetMove(ctx context.Context, key Key) (*catalog.Move, error) {
	return GetResource[catalog.Move](ctx, c, catalog.KindMove, key)
}
